package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"backdrop/internal/http/handlers"
	"backdrop/internal/middleware"
)

func NewRouter(app *handlers.App) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimiddleware.RealIP,
		chimiddleware.Recoverer,
		middleware.Logger(app.Logger),
		middleware.CORS(app.Config.AllowedOrigins),
		middleware.Locale(app.Config.DefaultLocale),
		middleware.RateLimit(app.Config.RateLimitPerMin, time.Minute),
	)

	r.Get("/", app.Index)
	r.Get("/v1/healthz", app.Health)

	r.Route("/v1/state", func(r chi.Router) {
		r.Get("/", app.State)
		r.Post("/reload-example", app.ReloadExample)
	})

	r.Route("/v1/images", func(r chi.Router) {
		r.Post("/upload", app.ImageUpload)
		r.Post("/generate", app.ImageGenerate)
		r.Get("/edited/download", app.EditedImageDownload)
	})

	return r
}
