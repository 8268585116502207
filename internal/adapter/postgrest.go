package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/aognev/go-notes-api/internal/config"
	"github.com/aognev/go-notes-api/internal/logger"
	"github.com/aognev/go-notes-api/models"
)

const notesTablePath = "/rest/v1/notes"

// noteStore is the PostgREST implementation of [NoteStore]. It uses the
// administrative handle: ownership is enforced by explicit user_id filters on
// every call, because the request has already been authenticated upstream and
// row-level security is bypassed by the service-role key.
type noteStore struct {
	admin *supabaseClient

	logger *logger.Logger
}

// NewNoteStore constructs the PostgREST [NoteStore] over the administrative
// handle.
func NewNoteStore(cfg config.Supabase, logger *logger.Logger) (NoteStore, error) {
	admin, err := newSupabaseClient(cfg, cfg.ServiceKey)
	if err != nil {
		return nil, fmt.Errorf("admin client: %w", err)
	}

	return &noteStore{admin: admin, logger: logger}, nil
}

func (s *noteStore) SelectNotes(ctx context.Context, userID string) ([]models.NoteRow, error) {
	resp, err := s.admin.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"select":  "*",
			"user_id": "eq." + userID,
			"order":   "created_at.desc",
		}).
		Get(notesTablePath)
	if err != nil {
		return nil, fmt.Errorf("select notes request: %w", err)
	}
	if err = mapProviderError(resp); err != nil {
		return nil, err
	}

	return decodeRows(resp.Body())
}

func (s *noteStore) SelectNote(ctx context.Context, noteID int64, userID string) ([]models.NoteRow, error) {
	resp, err := s.admin.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"select":  "*",
			"id":      "eq." + strconv.FormatInt(noteID, 10),
			"user_id": "eq." + userID,
		}).
		Get(notesTablePath)
	if err != nil {
		return nil, fmt.Errorf("select note request: %w", err)
	}
	if err = mapProviderError(resp); err != nil {
		return nil, err
	}

	return decodeRows(resp.Body())
}

func (s *noteStore) InsertNote(ctx context.Context, row models.NoteRow) ([]models.NoteRow, error) {
	resp, err := s.admin.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", "return=representation").
		SetBody(row).
		Post(notesTablePath)
	if err != nil {
		return nil, fmt.Errorf("insert note request: %w", err)
	}
	if err = mapProviderError(resp); err != nil {
		return nil, err
	}

	return decodeRows(resp.Body())
}

func (s *noteStore) UpdateNote(ctx context.Context, noteID int64, userID string, changes models.NoteRow) ([]models.NoteRow, error) {
	resp, err := s.admin.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", "return=representation").
		SetQueryParams(map[string]string{
			"id":      "eq." + strconv.FormatInt(noteID, 10),
			"user_id": "eq." + userID,
		}).
		SetBody(changes).
		Patch(notesTablePath)
	if err != nil {
		return nil, fmt.Errorf("update note request: %w", err)
	}
	if err = mapProviderError(resp); err != nil {
		return nil, err
	}

	return decodeRows(resp.Body())
}

func (s *noteStore) DeleteNote(ctx context.Context, noteID int64, userID string) error {
	resp, err := s.admin.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"id":      "eq." + strconv.FormatInt(noteID, 10),
			"user_id": "eq." + userID,
		}).
		Delete(notesTablePath)
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapProviderError(resp)
}

// decodeRows parses a PostgREST response body into raw rows. The table
// endpoints always answer with a JSON array, possibly empty.
func decodeRows(body []byte) ([]models.NoteRow, error) {
	var rows []models.NoteRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("rows decode: %w", err)
	}

	return rows, nil
}
