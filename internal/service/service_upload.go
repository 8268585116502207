package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/aognev/go-notes-api/internal/adapter"
	"github.com/aognev/go-notes-api/internal/config"
	"github.com/aognev/go-notes-api/internal/logger"
	"github.com/aognev/go-notes-api/internal/utils"
	"github.com/aognev/go-notes-api/models"
)

// MaxUploadSize is the upload payload cap in bytes (5 MiB).
const MaxUploadSize = 5 * 1024 * 1024

// allowedImageTypes is the upload content-type whitelist.
var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

// AllowedImageTypes returns the whitelist as a sorted-ish display string for
// error messages.
func AllowedImageTypes() string {
	return "image/jpeg, image/jpg, image/png, image/gif, image/webp"
}

// uploadService is the concrete implementation of UploadService. Objects are
// stored under a key namespaced by the owner's user identifier with a
// server-generated unique suffix; they are never deleted by this system.
type uploadService struct {
	storage adapter.ObjectStorage
	bucket  string
	uuids   *utils.UUIDGenerator

	logger *logger.Logger
}

// NewUploadService constructs an UploadService writing into the configured
// storage bucket.
func NewUploadService(storage adapter.ObjectStorage, cfg config.Supabase, logger *logger.Logger) UploadService {
	return &uploadService{
		storage: storage,
		bucket:  cfg.StorageBucket,
		uuids:   utils.NewUUIDGenerator(),
		logger:  logger,
	}
}

func (u *uploadService) UploadImage(ctx context.Context, owner models.Identity, upload models.ImageUpload) (models.UploadResult, error) {
	log := logger.FromContext(ctx)

	if _, ok := allowedImageTypes[upload.ContentType]; !ok {
		return models.UploadResult{}, fmt.Errorf("%w: %s", ErrInvalidContentType, upload.ContentType)
	}
	if len(upload.Data) > MaxUploadSize {
		return models.UploadResult{}, fmt.Errorf("%w: %d bytes", ErrFileTooLarge, len(upload.Data))
	}

	key := fmt.Sprintf("%s/%s.%s", owner.ID, u.uuids.Generate(), fileExtension(upload.Filename))

	// Upsert semantics: a key collision (astronomically unlikely with
	// generated suffixes) overwrites rather than fails.
	if err := u.storage.UploadObject(ctx, u.bucket, key, upload.Data, upload.ContentType); err != nil {
		log.Err(err).Str("key", key).Msg("object upload failed")
		return models.UploadResult{}, fmt.Errorf("%w: %s", ErrUploadFailed, err)
	}

	return models.UploadResult{
		URL:      u.storage.PublicURL(u.bucket, key),
		Filename: key,
	}, nil
}

// fileExtension returns the extension of the original filename, defaulting
// to "jpg" when none is present.
func fileExtension(filename string) string {
	if idx := strings.LastIndex(filename, "."); idx >= 0 && idx < len(filename)-1 {
		return filename[idx+1:]
	}
	return "jpg"
}
