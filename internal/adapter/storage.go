package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/aognev/go-notes-api/internal/config"
	"github.com/aognev/go-notes-api/internal/logger"
)

// objectStorage is the provider storage implementation of [ObjectStorage].
// Uploads go through the administrative handle so bucket row-level security
// does not apply; objects are served back through the bucket's public URL.
type objectStorage struct {
	admin *supabaseClient

	logger *logger.Logger
}

// NewObjectStorage constructs the provider [ObjectStorage] over the
// administrative handle.
func NewObjectStorage(cfg config.Supabase, logger *logger.Logger) (ObjectStorage, error) {
	admin, err := newSupabaseClient(cfg, cfg.ServiceKey)
	if err != nil {
		return nil, fmt.Errorf("admin client: %w", err)
	}

	return &objectStorage{admin: admin, logger: logger}, nil
}

func (o *objectStorage) UploadObject(ctx context.Context, bucket, key string, data []byte, contentType string) error {
	resp, err := o.admin.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetHeader("x-upsert", "true").
		SetBody(bytes.NewReader(data)).
		Post("/storage/v1/object/" + bucket + "/" + key)
	if err != nil {
		return fmt.Errorf("upload object request: %w", err)
	}
	if err = mapProviderError(resp); err != nil {
		return err
	}

	// A 2xx body can still carry an error field in some provider versions.
	var payload struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(resp.Body(), &payload); err == nil && len(payload.Error) > 0 && string(payload.Error) != "null" {
		return &ProviderError{
			StatusCode: resp.StatusCode(),
			Message:    extractProviderMessage(resp.Body(), resp.StatusCode()),
		}
	}

	return nil
}

func (o *objectStorage) PublicURL(bucket, key string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", o.admin.baseURL, bucket, key)
}
