package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"backdrop/internal/imaging"
	"backdrop/internal/studio"
)

type generateRequest struct {
	Prompt      string `json:"prompt"`
	AspectRatio string `json:"aspect_ratio"`
}

// ImageUpload runs the upload workflow on a multipart file. The workflow
// outcome, success or failure, lives in the returned snapshot; only a
// malformed request is rejected outright.
func (a *App) ImageUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, a.Config.MaxUploadBytes+1<<20)
	if err := r.ParseMultipartForm(a.Config.MaxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			a.error(w, http.StatusRequestEntityTooLarge, "too_large", "upload exceeds the size limit")
			return
		}
		a.error(w, http.StatusBadRequest, "bad_request", "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "image file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, imaging.MaxUploadBytes+1))
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "failed to read upload")
		return
	}

	if err := a.Session.Upload(r.Context(), header.Filename, data); err != nil {
		a.json(w, http.StatusUnprocessableEntity, a.Session.Snapshot())
		return
	}
	a.json(w, http.StatusOK, a.Session.Snapshot())
}

// ImageGenerate runs the generate workflow. Validation problems map to 422,
// provider failures to 502; either way the snapshot carries the message.
func (a *App) ImageGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	err := a.Session.Generate(r.Context(), req.Prompt, req.AspectRatio)
	switch {
	case err == nil:
		a.json(w, http.StatusOK, a.Session.Snapshot())
	case errors.Is(err, studio.ErrNoImage), errors.Is(err, studio.ErrEmptyPrompt):
		a.json(w, http.StatusUnprocessableEntity, a.Session.Snapshot())
	default:
		a.json(w, http.StatusBadGateway, a.Session.Snapshot())
	}
}
