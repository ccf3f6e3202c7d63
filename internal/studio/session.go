package studio

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"backdrop/internal/imaging"
	"backdrop/internal/middleware"
)

// Editor is the narrow contract the session needs from an image provider.
type Editor interface {
	EditImage(ctx context.Context, imageBase64, mimeType, prompt string) (string, error)
}

// Options configures a new session.
type Options struct {
	Editor          Editor
	HTTPClient      *http.Client
	ExampleImageURL string
	Logger          *zerolog.Logger
}

// Session is the single state container behind the page. All state lives
// behind one mutex and is changed only by the three workflows (load example,
// upload, generate), each of which runs clear error, set loading, do the
// async work, then commit or fail.
//
// Every workflow takes a generation number at start and may only commit while
// it is still the latest one, so a stale workflow never overwrites state
// written by a newer trigger.
type Session struct {
	editor     Editor
	httpClient *http.Client
	exampleURL string
	logger     zerolog.Logger

	mu       sync.Mutex
	gen      uint64
	original *imaging.Asset
	edited   string
	prompt   string
	ratio    AspectRatio
	loading  bool
	errMsg   string
}

// Snapshot is a point-in-time copy of the session state for rendering.
type Snapshot struct {
	OriginalImage *imaging.Asset `json:"original_image,omitempty"`
	EditedImage   string         `json:"edited_image,omitempty"`
	Prompt        string         `json:"prompt"`
	AspectRatio   AspectRatio    `json:"aspect_ratio"`
	IsLoading     bool           `json:"is_loading"`
	Error         string         `json:"error,omitempty"`
}

// NewSession constructs a session with the default prompt template and the
// original aspect ratio selected.
func NewSession(opts Options) *Session {
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	client := opts.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	return &Session{
		editor:     opts.Editor,
		httpClient: client,
		exampleURL: opts.ExampleImageURL,
		logger:     logger,
		prompt:     DefaultPrompt,
		ratio:      RatioOriginal,
	}
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		OriginalImage: s.original,
		EditedImage:   s.edited,
		Prompt:        s.prompt,
		AspectRatio:   s.ratio,
		IsLoading:     s.loading,
		Error:         s.errMsg,
	}
}

// LoadExample fetches the bundled example image and stores it as the original.
// Failure is non-fatal: the session keeps no original and asks the user to
// upload instead.
func (s *Session) LoadExample(ctx context.Context) error {
	locale := middleware.LocaleFromContext(ctx)
	gen := s.begin(nil)

	asset, err := imaging.EncodeFromURL(ctx, s.httpClient, s.exampleURL)
	if err != nil {
		s.logger.Warn().Err(err).Str("url", s.exampleURL).Msg("studio: example image load failed")
		s.commit(gen, func(s *Session) { s.errMsg = message("example_unavailable", locale) })
		return err
	}

	s.commit(gen, func(s *Session) { s.original = asset })
	return nil
}

// Upload replaces the original image with the uploaded file. Any previously
// generated image is cleared up front, regardless of the upload outcome.
func (s *Session) Upload(ctx context.Context, filename string, data []byte) error {
	locale := middleware.LocaleFromContext(ctx)
	gen := s.begin(func(s *Session) { s.edited = "" })

	asset, err := imaging.EncodeFile(filename, data)
	if err != nil {
		s.logger.Warn().Err(err).Str("filename", filename).Msg("studio: upload failed")
		s.commit(gen, func(s *Session) { s.errMsg = message("read_failed", locale) })
		return err
	}

	s.commit(gen, func(s *Session) { s.original = asset })
	return nil
}

// Generate sends the original image and the effective prompt to the editor
// and stores the result as the edited image. With no original image or an
// empty prompt it records a validation message and makes no provider call,
// leaving the loading flag untouched.
func (s *Session) Generate(ctx context.Context, prompt, ratio string) error {
	locale := middleware.LocaleFromContext(ctx)

	s.mu.Lock()
	s.prompt = prompt
	s.ratio = NormalizeRatio(ratio)
	s.errMsg = ""
	if s.original == nil {
		s.errMsg = message("missing_image", locale)
		s.mu.Unlock()
		return ErrNoImage
	}
	if strings.TrimSpace(prompt) == "" {
		s.errMsg = message("missing_prompt", locale)
		s.mu.Unlock()
		return ErrEmptyPrompt
	}
	s.gen++
	gen := s.gen
	s.loading = true
	s.edited = ""
	instruction := BuildPrompt(s.prompt, s.ratio)
	mimeType := s.original.MIMEType
	payload, _, err := imaging.SplitDataURL(s.original.DataURL)
	s.mu.Unlock()

	if err != nil {
		s.commit(gen, func(s *Session) { s.errMsg = "Generation failed: " + err.Error() })
		return err
	}

	out, err := s.editor.EditImage(ctx, payload, mimeType, instruction)
	if err != nil {
		s.logger.Warn().Err(err).Msg("studio: generation failed")
		s.commit(gen, func(s *Session) { s.errMsg = "Generation failed: " + err.Error() })
		return err
	}

	s.commit(gen, func(s *Session) { s.edited = imaging.BuildDataURL("image/png", out) })
	return nil
}

func (s *Session) begin(mutate func(*Session)) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.errMsg = ""
	s.loading = true
	if mutate != nil {
		mutate(s)
	}
	return s.gen
}

// commit applies the result of a workflow only while it is still the latest
// one. A superseded workflow leaves state alone, including the loading flag,
// which now belongs to its successor.
func (s *Session) commit(gen uint64, apply func(*Session)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return false
	}
	if apply != nil {
		apply(s)
	}
	s.loading = false
	return true
}
