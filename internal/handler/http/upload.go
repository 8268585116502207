package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/aognev/go-notes-api/internal/app"
	"github.com/aognev/go-notes-api/internal/logger"
	"github.com/aognev/go-notes-api/internal/service"
	"github.com/aognev/go-notes-api/internal/utils"
	"github.com/aognev/go-notes-api/models"
)

// multipartMemoryLimit caps how much of the multipart body is held in memory
// while parsing; larger parts spill to temporary files.
const multipartMemoryLimit = 8 << 20

func (h *Handler) uploadImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	owner, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		utils.WriteErrorJSON(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		log.Err(err).Msg("multipart parse failed")
		utils.WriteErrorJSON(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Err(err).Msg("missing file part")
		utils.WriteErrorJSON(w, "Missing 'file' field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	// Read one byte past the cap so oversize payloads are detected without
	// buffering arbitrarily large bodies.
	data, err := io.ReadAll(io.LimitReader(file, service.MaxUploadSize+1))
	if err != nil {
		log.Err(err).Msg("file read failed")
		utils.WriteErrorJSON(w, "Failed to read file", http.StatusBadRequest)
		return
	}

	result, err := h.services.UploadService.UploadImage(ctx, owner, models.ImageUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		log.Err(err).Str("filename", header.Filename).Msg("image upload failed")
		utils.WriteErrorJSON(w, uploadErrorDetail(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func uploadErrorDetail(err error) string {
	switch {
	case errors.Is(err, service.ErrInvalidContentType):
		return fmt.Sprintf("Invalid file type. Allowed types: %s", service.AllowedImageTypes())
	case errors.Is(err, service.ErrFileTooLarge):
		return fmt.Sprintf("File too large. Maximum size is %dMB", service.MaxUploadSize/(1024*1024))
	default:
		return fmt.Sprintf("Failed to upload image: %s. %s", err, app.StorageBucketHint)
	}
}
