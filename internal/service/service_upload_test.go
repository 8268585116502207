// SPDX-License-Identifier: Apache-2.0

package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aognev/go-notes-api/internal/config"
	"github.com/aognev/go-notes-api/internal/logger"
	"github.com/aognev/go-notes-api/models"
)

// ─────────────────────────────────────────────
// Mock: adapter.ObjectStorage
// ─────────────────────────────────────────────

type mockObjectStorage struct {
	uploadObjectFn func(ctx context.Context, bucket, key string, data []byte, contentType string) error
}

func (m *mockObjectStorage) UploadObject(ctx context.Context, bucket, key string, data []byte, contentType string) error {
	if m.uploadObjectFn != nil {
		return m.uploadObjectFn(ctx, bucket, key, data, contentType)
	}
	return nil
}

func (m *mockObjectStorage) PublicURL(bucket, key string) string {
	return fmt.Sprintf("https://xyz.supabase.co/storage/v1/object/public/%s/%s", bucket, key)
}

// ─────────────────────────────────────────────
// Helper
// ─────────────────────────────────────────────

func newTestUploadService(storage *mockObjectStorage) UploadService {
	cfg := config.Supabase{StorageBucket: "note-images"}
	return NewUploadService(storage, cfg, logger.Nop())
}

func pngUpload(size int) models.ImageUpload {
	return models.ImageUpload{
		Filename:    "photo.png",
		ContentType: "image/png",
		Data:        bytes.Repeat([]byte{0xAB}, size),
	}
}

// ─────────────────────────────────────────────
// Tests
// ─────────────────────────────────────────────

func TestUploadService_Success(t *testing.T) {
	var gotBucket, gotKey, gotContentType string
	storage := &mockObjectStorage{
		uploadObjectFn: func(_ context.Context, bucket, key string, data []byte, contentType string) error {
			gotBucket, gotKey, gotContentType = bucket, key, contentType
			assert.Len(t, data, 1024)
			return nil
		},
	}
	svc := newTestUploadService(storage)

	result, err := svc.UploadImage(context.Background(), testOwner, pngUpload(1024))

	require.NoError(t, err)
	assert.Equal(t, "note-images", gotBucket)
	assert.Equal(t, "image/png", gotContentType)

	// key: {user_id}/{generated}.{ext}
	assert.True(t, strings.HasPrefix(gotKey, "user-1/"), "key must be namespaced by owner, got: %s", gotKey)
	assert.True(t, strings.HasSuffix(gotKey, ".png"), "key must keep the original extension, got: %s", gotKey)

	assert.Equal(t, gotKey, result.Filename)
	assert.Equal(t,
		"https://xyz.supabase.co/storage/v1/object/public/note-images/"+gotKey,
		result.URL)
}

func TestUploadService_KeysAreUnique(t *testing.T) {
	var keys []string
	storage := &mockObjectStorage{
		uploadObjectFn: func(_ context.Context, _, key string, _ []byte, _ string) error {
			keys = append(keys, key)
			return nil
		},
	}
	svc := newTestUploadService(storage)

	for i := 0; i < 10; i++ {
		_, err := svc.UploadImage(context.Background(), testOwner, pngUpload(16))
		require.NoError(t, err)
	}

	seen := make(map[string]struct{})
	for _, key := range keys {
		seen[key] = struct{}{}
	}
	assert.Len(t, seen, 10, "same filename must never collide on the same key")
}

func TestUploadService_ExtensionDefaultsToJpg(t *testing.T) {
	var gotKey string
	storage := &mockObjectStorage{
		uploadObjectFn: func(_ context.Context, _, key string, _ []byte, _ string) error {
			gotKey = key
			return nil
		},
	}
	svc := newTestUploadService(storage)

	_, err := svc.UploadImage(context.Background(), testOwner, models.ImageUpload{
		Filename:    "photo-without-extension",
		ContentType: "image/jpeg",
		Data:        []byte{0xFF, 0xD8},
	})

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(gotKey, ".jpg"), "missing extension defaults to jpg, got: %s", gotKey)
}

func TestUploadService_ContentTypeWhitelist(t *testing.T) {
	tests := []struct {
		contentType string
		allowed     bool
	}{
		{contentType: "image/jpeg", allowed: true},
		{contentType: "image/jpg", allowed: true},
		{contentType: "image/png", allowed: true},
		{contentType: "image/gif", allowed: true},
		{contentType: "image/webp", allowed: true},
		{contentType: "image/svg+xml", allowed: false},
		{contentType: "text/plain", allowed: false},
		{contentType: "application/pdf", allowed: false},
		{contentType: "", allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			svc := newTestUploadService(&mockObjectStorage{})

			_, err := svc.UploadImage(context.Background(), testOwner, models.ImageUpload{
				Filename:    "file.bin",
				ContentType: tt.contentType,
				Data:        []byte{0x00},
			})

			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidContentType)
			}
		})
	}
}

func TestUploadService_RejectsDisallowedTypeRegardlessOfSize(t *testing.T) {
	uploadCalled := false
	storage := &mockObjectStorage{
		uploadObjectFn: func(context.Context, string, string, []byte, string) error {
			uploadCalled = true
			return nil
		},
	}
	svc := newTestUploadService(storage)

	// a tiny text file is still rejected; size never rescues a bad type
	_, err := svc.UploadImage(context.Background(), testOwner, models.ImageUpload{
		Filename:    "note.txt",
		ContentType: "text/plain",
		Data:        []byte("hi"),
	})

	assert.ErrorIs(t, err, ErrInvalidContentType)
	assert.False(t, uploadCalled)
}

func TestUploadService_SizeCap(t *testing.T) {
	t.Run("payload under the cap is accepted", func(t *testing.T) {
		svc := newTestUploadService(&mockObjectStorage{})

		_, err := svc.UploadImage(context.Background(), testOwner, pngUpload(4*1024*1024))
		assert.NoError(t, err)
	})

	t.Run("payload at the cap is accepted", func(t *testing.T) {
		svc := newTestUploadService(&mockObjectStorage{})

		_, err := svc.UploadImage(context.Background(), testOwner, pngUpload(MaxUploadSize))
		assert.NoError(t, err)
	})

	t.Run("payload over the cap is rejected", func(t *testing.T) {
		svc := newTestUploadService(&mockObjectStorage{})

		_, err := svc.UploadImage(context.Background(), testOwner, pngUpload(MaxUploadSize+1))
		assert.ErrorIs(t, err, ErrFileTooLarge)
	})
}

func TestUploadService_StorageFailure(t *testing.T) {
	storage := &mockObjectStorage{
		uploadObjectFn: func(context.Context, string, string, []byte, string) error {
			return fmt.Errorf("bucket not found")
		},
	}
	svc := newTestUploadService(storage)

	_, err := svc.UploadImage(context.Background(), testOwner, pngUpload(16))

	require.ErrorIs(t, err, ErrUploadFailed)
	assert.Contains(t, err.Error(), "bucket not found")
}
