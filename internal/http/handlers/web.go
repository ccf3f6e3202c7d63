package handlers

import (
	"embed"
	"net/http"
)

//go:embed web/index.html
var webFS embed.FS

// Index serves the single page that drives the API.
func (a *App) Index(w http.ResponseWriter, r *http.Request) {
	data, err := webFS.ReadFile("web/index.html")
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "page unavailable")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(data)
}
