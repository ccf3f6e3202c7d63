package handlers

import (
	"encoding/base64"
	"net/http"
	"strconv"

	"backdrop/internal/imaging"
)

// EditedImageDownload streams the generated image as an attachment named
// edited-image.png.
func (a *App) EditedImageDownload(w http.ResponseWriter, r *http.Request) {
	snapshot := a.Session.Snapshot()
	if snapshot.EditedImage == "" {
		a.error(w, http.StatusNotFound, "not_found", "no edited image available")
		return
	}

	payload, mimeType, err := imaging.SplitDataURL(snapshot.EditedImage)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "stored image is corrupt")
		return
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "stored image is corrupt")
		return
	}

	w.Header().Set("Content-Type", mimeType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Content-Disposition", `attachment; filename="edited-image.png"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
