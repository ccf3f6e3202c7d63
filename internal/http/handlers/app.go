package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"backdrop/internal/infra"
	"backdrop/internal/studio"
)

// App is the container injected into every handler.
type App struct {
	Config  *infra.Config
	Logger  zerolog.Logger
	Session *studio.Session
}

func NewApp(cfg *infra.Config, logger zerolog.Logger, session *studio.Session) *App {
	return &App{Config: cfg, Logger: logger, Session: session}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}
