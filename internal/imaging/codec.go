package imaging

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path"
	"strings"
)

// MaxUploadBytes caps the size of a source image accepted by the codec.
const MaxUploadBytes = 10 << 20

var (
	ErrEmptyFile       = errors.New("empty file")
	ErrTooLarge        = errors.New("file exceeds the 10MB limit")
	ErrUnsupportedType = errors.New("unsupported image type")
	ErrFetchFailed     = errors.New("fetch failed")
)

// Asset is a source image encoded as a data URL, ready to be displayed or
// forwarded to a provider. Assets are replaced wholesale, never mutated.
type Asset struct {
	DataURL  string `json:"data_url"`
	MIMEType string `json:"mime_type"`
}

var allowedTypes = map[string]struct{}{
	"image/png":  {},
	"image/jpeg": {},
	"image/webp": {},
}

// EncodeFile wraps raw image bytes as an Asset. The MIME type is sniffed from
// the content, with the filename extension as fallback.
func EncodeFile(filename string, data []byte) (*Asset, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	if len(data) > MaxUploadBytes {
		return nil, ErrTooLarge
	}
	mimeType := detectMIME(filename, data)
	if _, ok := allowedTypes[mimeType]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, mimeType)
	}
	return &Asset{
		DataURL:  BuildDataURL(mimeType, base64.StdEncoding.EncodeToString(data)),
		MIMEType: mimeType,
	}, nil
}

// EncodeFromURL fetches a remote image and delegates the payload to EncodeFile.
func EncodeFromURL(ctx context.Context, client *http.Client, url string) (*Asset, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: status %d", ErrFetchFailed, resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return EncodeFile(path.Base(req.URL.Path), data)
}

// BuildDataURL assembles a data URL from a MIME type and base64 payload.
func BuildDataURL(mimeType, payload string) string {
	return "data:" + mimeType + ";base64," + payload
}

// SplitDataURL returns the base64 payload and declared MIME type of a data
// URL. The payload is everything after the first comma.
func SplitDataURL(dataURL string) (payload, mimeType string, err error) {
	prefix, payload, ok := strings.Cut(dataURL, ",")
	if !ok {
		return "", "", fmt.Errorf("malformed data url")
	}
	mimeType = strings.TrimPrefix(prefix, "data:")
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = mimeType[:i]
	}
	return payload, mimeType, nil
}

func detectMIME(filename string, data []byte) string {
	sniffed := http.DetectContentType(data)
	if _, ok := allowedTypes[sniffed]; ok {
		return sniffed
	}
	if ext := path.Ext(filename); ext != "" {
		if byExt := mime.TypeByExtension(ext); byExt != "" {
			return byExt
		}
	}
	return sniffed
}
