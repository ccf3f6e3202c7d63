package genai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestEditImageSuccess(t *testing.T) {
	var gotPath, gotKey string
	var gotBody geminiGenerateContentRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(geminiGenerateContentResponse{
			Candidates: []geminiCandidate{{
				Content: geminiContent{Parts: []geminiPart{
					{Text: "here you go"},
					{InlineData: &geminiInlineData{MimeType: "image/png", Data: "Zm9v"}},
				}},
			}},
		})
	}))
	defer srv.Close()

	client := NewClient(Options{
		APIKey:     "test-key",
		BaseURL:    srv.URL,
		Model:      "gemini-2.5-flash-image",
		HTTPClient: srv.Client(),
	})

	out, err := client.EditImage(context.Background(), "c291cmNl", "image/jpeg", "replace the background")
	if err != nil {
		t.Fatalf("EditImage returned error: %v", err)
	}
	if out != "Zm9v" {
		t.Fatalf("out = %q, want %q", out, "Zm9v")
	}
	if gotPath != "/models/gemini-2.5-flash-image:generateContent" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotKey != "test-key" {
		t.Fatalf("api key header = %q", gotKey)
	}
	if len(gotBody.Contents) != 1 || len(gotBody.Contents[0].Parts) != 2 {
		t.Fatalf("unexpected request shape: %+v", gotBody)
	}
	inline := gotBody.Contents[0].Parts[0].InlineData
	if inline == nil || inline.Data != "c291cmNl" || inline.MimeType != "image/jpeg" {
		t.Fatalf("inline data not forwarded: %+v", inline)
	}
	if gotBody.Contents[0].Parts[1].Text != "replace the background" {
		t.Fatalf("prompt not forwarded: %+v", gotBody.Contents[0].Parts[1])
	}
}

func TestEditImageProviderRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"unsafe prompt"}}`))
	}))
	defer srv.Close()

	client := NewClient(Options{BaseURL: srv.URL, HTTPClient: srv.Client()})

	_, err := client.EditImage(context.Background(), "c291cmNl", "image/png", "prompt")
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("error = %T, want *GenerationError", err)
	}
	if !strings.Contains(genErr.Message, "unsafe prompt") {
		t.Fatalf("message = %q, want provider text included", genErr.Message)
	}
}

func TestEditImageNoImageReturned(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(geminiGenerateContentResponse{
			Candidates: []geminiCandidate{{
				Content: geminiContent{Parts: []geminiPart{{Text: "cannot comply"}}},
			}},
		})
	}))
	defer srv.Close()

	client := NewClient(Options{BaseURL: srv.URL, HTTPClient: srv.Client()})

	_, err := client.EditImage(context.Background(), "c291cmNl", "image/png", "prompt")
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("error = %T, want *GenerationError", err)
	}
	if genErr.Message != "provider returned no image" {
		t.Fatalf("message = %q", genErr.Message)
	}
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient(Options{})
	if client.Model() != "gemini-2.5-flash-image" {
		t.Fatalf("model = %q", client.Model())
	}
	if client.baseURL != "https://generativelanguage.googleapis.com/v1beta" {
		t.Fatalf("baseURL = %q", client.baseURL)
	}
}
