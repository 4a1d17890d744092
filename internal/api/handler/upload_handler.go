package handler

import (
	"net/http"

	"game_catalog/internal/common"
	"game_catalog/internal/platform/storage"

	"github.com/go-chi/chi/v5"
)

const maxUploadBytes = 10 << 20 // 10 MiB

type UploadHandler struct {
	store storage.BlobStore
}

func NewUploadHandler(store storage.BlobStore) *UploadHandler {
	return &UploadHandler{store: store}
}

func (h *UploadHandler) RegisterRoutes(r chi.Router) {
	r.Post("/image", h.uploadImage)
}

// uploadImage accepts a multipart "file" field and responds with the public
// URL the review form can reference.
func (h *UploadHandler) uploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid multipart payload: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Missing file field: "+err.Error())
		return
	}
	defer file.Close()

	url, err := h.store.Save(header.Filename, file)
	if err != nil {
		common.RespondWithError(w, http.StatusInternalServerError, "Failed to store file")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]string{"url": url})
}
