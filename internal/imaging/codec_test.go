package imaging

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestEncodeFileRoundTrip(t *testing.T) {
	data := pngBytes(t)

	asset, err := EncodeFile("product.png", data)
	if err != nil {
		t.Fatalf("EncodeFile returned error: %v", err)
	}
	if asset.MIMEType != "image/png" {
		t.Fatalf("MIMEType = %q, want %q", asset.MIMEType, "image/png")
	}
	if !strings.HasPrefix(asset.DataURL, "data:image/png;base64,") {
		t.Fatalf("unexpected data url prefix: %q", asset.DataURL[:30])
	}

	payload, mimeType, err := SplitDataURL(asset.DataURL)
	if err != nil {
		t.Fatalf("SplitDataURL returned error: %v", err)
	}
	if mimeType != "image/png" {
		t.Fatalf("split mime = %q, want %q", mimeType, "image/png")
	}
	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if !bytes.Equal(decoded, data) {
		t.Fatalf("round trip mismatch: got %d bytes, want %d", len(decoded), len(data))
	}
}

func TestEncodeFileRejectsBadInput(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		data     []byte
		wantErr  error
	}{
		{
			name:     "empty file",
			filename: "empty.png",
			data:     nil,
			wantErr:  ErrEmptyFile,
		},
		{
			name:     "over the size limit",
			filename: "big.png",
			data:     make([]byte, MaxUploadBytes+1),
			wantErr:  ErrTooLarge,
		},
		{
			name:     "unsupported type",
			filename: "notes.txt",
			data:     []byte("plain text, not an image"),
			wantErr:  ErrUnsupportedType,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := EncodeFile(tc.filename, tc.data); !errors.Is(err, tc.wantErr) {
				t.Fatalf("EncodeFile error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestEncodeFromURL(t *testing.T) {
	data := pngBytes(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	asset, err := EncodeFromURL(context.Background(), srv.Client(), srv.URL+"/example.png")
	if err != nil {
		t.Fatalf("EncodeFromURL returned error: %v", err)
	}
	if asset.MIMEType != "image/png" {
		t.Fatalf("MIMEType = %q, want %q", asset.MIMEType, "image/png")
	}
}

func TestEncodeFromURLRejectsBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := EncodeFromURL(context.Background(), srv.Client(), srv.URL); !errors.Is(err, ErrFetchFailed) {
		t.Fatalf("EncodeFromURL error = %v, want %v", err, ErrFetchFailed)
	}
}

func TestSplitDataURLRejectsMissingComma(t *testing.T) {
	if _, _, err := SplitDataURL("data:image/png;base64"); err == nil {
		t.Fatalf("expected error for malformed data url")
	}
}
