// SPDX-License-Identifier: Apache-2.0

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aognev/go-notes-api/internal/logger"
	"github.com/aognev/go-notes-api/internal/service"
	"github.com/aognev/go-notes-api/models"
)

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerFn func(ctx context.Context, creds models.Credentials) (service.RegisterResult, error)
	loginFn    func(ctx context.Context, creds models.Credentials) (models.TokenResponse, error)
	confirmFn  func(ctx context.Context, tokenHash, otpType string) error
	identifyFn func(ctx context.Context, rawToken string) (models.Identity, error)
}

func (m *mockAuthService) Register(ctx context.Context, creds models.Credentials) (service.RegisterResult, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, creds)
	}
	return service.RegisterResult{}, nil
}

func (m *mockAuthService) Login(ctx context.Context, creds models.Credentials) (models.TokenResponse, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, creds)
	}
	return models.TokenResponse{}, nil
}

func (m *mockAuthService) Confirm(ctx context.Context, tokenHash, otpType string) error {
	if m.confirmFn != nil {
		return m.confirmFn(ctx, tokenHash, otpType)
	}
	return nil
}

func (m *mockAuthService) Identify(ctx context.Context, rawToken string) (models.Identity, error) {
	if m.identifyFn != nil {
		return m.identifyFn(ctx, rawToken)
	}
	return models.Identity{ID: "user-1", Email: "user@example.com", Token: rawToken}, nil
}

// ─────────────────────────────────────────────
// Mock: service.NoteService
// ─────────────────────────────────────────────

type mockNoteService struct {
	createFn    func(ctx context.Context, owner models.Identity, req models.NoteCreate) (models.Note, error)
	listFn      func(ctx context.Context, owner models.Identity) ([]models.Note, error)
	getFn       func(ctx context.Context, owner models.Identity, noteID int64) (models.Note, error)
	deleteFn    func(ctx context.Context, owner models.Identity, noteID int64) error
	summarizeFn func(ctx context.Context, owner models.Identity, noteID int64) (models.Note, error)
}

func (m *mockNoteService) Create(ctx context.Context, owner models.Identity, req models.NoteCreate) (models.Note, error) {
	if m.createFn != nil {
		return m.createFn(ctx, owner, req)
	}
	return models.Note{}, nil
}

func (m *mockNoteService) List(ctx context.Context, owner models.Identity) ([]models.Note, error) {
	if m.listFn != nil {
		return m.listFn(ctx, owner)
	}
	return []models.Note{}, nil
}

func (m *mockNoteService) Get(ctx context.Context, owner models.Identity, noteID int64) (models.Note, error) {
	if m.getFn != nil {
		return m.getFn(ctx, owner, noteID)
	}
	return models.Note{}, nil
}

func (m *mockNoteService) Delete(ctx context.Context, owner models.Identity, noteID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, owner, noteID)
	}
	return nil
}

func (m *mockNoteService) Summarize(ctx context.Context, owner models.Identity, noteID int64) (models.Note, error) {
	if m.summarizeFn != nil {
		return m.summarizeFn(ctx, owner, noteID)
	}
	return models.Note{}, nil
}

// ─────────────────────────────────────────────
// Mock: service.UploadService
// ─────────────────────────────────────────────

type mockUploadService struct {
	uploadImageFn func(ctx context.Context, owner models.Identity, upload models.ImageUpload) (models.UploadResult, error)
}

func (m *mockUploadService) UploadImage(ctx context.Context, owner models.Identity, upload models.ImageUpload) (models.UploadResult, error) {
	if m.uploadImageFn != nil {
		return m.uploadImageFn(ctx, owner, upload)
	}
	return models.UploadResult{}, nil
}

// ─────────────────────────────────────────────
// Mock: service.SummarizeService
// ─────────────────────────────────────────────

type mockSummarizeService struct {
	summarizeFn func(ctx context.Context, text string) (string, error)
}

func (m *mockSummarizeService) Summarize(ctx context.Context, text string) (string, error) {
	if m.summarizeFn != nil {
		return m.summarizeFn(ctx, text)
	}
	return "", service.ErrSummarizerNotConfigured
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestRouter builds the full route tree over mocked services; nil mocks
// are replaced with permissive defaults.
func newTestRouter(auth *mockAuthService, notes *mockNoteService, upload *mockUploadService) http.Handler {
	if auth == nil {
		auth = &mockAuthService{}
	}
	if notes == nil {
		notes = &mockNoteService{}
	}
	if upload == nil {
		upload = &mockUploadService{}
	}

	services := &service.Services{
		AuthService:      auth,
		NoteService:      notes,
		UploadService:    upload,
		SummarizeService: &mockSummarizeService{},
	}

	handler := NewHandler(services, logger.Nop())
	return handler.Init([]string{"*"})
}

// doJSON performs a request with an optional JSON string body and an
// optional bearer token.
func doJSON(t *testing.T, router http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// decodeBody unmarshals a recorded JSON response body into a map.
func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}
