package handlers

import (
	"net/http"
)

// State returns a snapshot of the session for rendering.
func (a *App) State(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, a.Session.Snapshot())
}

// ReloadExample re-runs the initial-load workflow. Failure is non-fatal; the
// snapshot carries the user-facing message.
func (a *App) ReloadExample(w http.ResponseWriter, r *http.Request) {
	_ = a.Session.LoadExample(r.Context())
	a.json(w, http.StatusOK, a.Session.Snapshot())
}
