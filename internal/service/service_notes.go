package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aognev/go-notes-api/internal/adapter"
	"github.com/aognev/go-notes-api/internal/logger"
	"github.com/aognev/go-notes-api/models"
)

// noteService is the concrete implementation of NoteService. Persistence is
// a remote provider table; this service adds owner scoping, normalization of
// provider rows, and the synchronous best-effort summary on creation.
type noteService struct {
	store      adapter.NoteStore
	summarizer SummarizeService

	logger *logger.Logger
}

// NewNoteService constructs a NoteService over the given note store and
// summarizer.
func NewNoteService(store adapter.NoteStore, summarizer SummarizeService, logger *logger.Logger) NoteService {
	return &noteService{
		store:      store,
		summarizer: summarizer,
		logger:     logger,
	}
}

func (n *noteService) Create(ctx context.Context, owner models.Identity, req models.NoteCreate) (models.Note, error) {
	log := logger.FromContext(ctx)

	if req.Title == "" || req.Content == "" {
		return models.Note{}, ErrInvalidDataProvided
	}

	// The summary is best-effort on creation: a disabled or failing
	// summarizer degrades to a null summary, never a failed create.
	var summary *string
	if text, err := n.summarizer.Summarize(ctx, req.Content); err == nil {
		summary = &text
	} else if !errors.Is(err, ErrSummarizerNotConfigured) {
		log.Warn().Err(err).Msg("summarization failed, storing note without summary")
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	row := models.NoteRow{
		"title":      req.Title,
		"content":    req.Content,
		"image_url":  req.ImageURL,
		"summary":    summary,
		"user_id":    owner.ID,
		"created_at": now,
		"updated_at": now,
	}

	rows, err := n.store.InsertNote(ctx, row)
	if err != nil {
		log.Err(err).Msg("note insert failed")
		return models.Note{}, fmt.Errorf("note insert: %w", err)
	}
	if len(rows) == 0 {
		return models.Note{}, fmt.Errorf("note insert: %w", errEmptyRepresentation)
	}

	return models.NoteFromRow(rows[0])
}

func (n *noteService) List(ctx context.Context, owner models.Identity) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	rows, err := n.store.SelectNotes(ctx, owner.ID)
	if err != nil {
		log.Err(err).Msg("notes select failed")
		return nil, fmt.Errorf("notes select: %w", err)
	}

	notes := make([]models.Note, 0, len(rows))
	for _, row := range rows {
		note, err := models.NoteFromRow(row)
		if err != nil {
			log.Err(err).Any("id", row["id"]).Msg("note row failed normalization")
			return nil, fmt.Errorf("note normalization: %w", err)
		}
		notes = append(notes, note)
	}

	return notes, nil
}

func (n *noteService) Get(ctx context.Context, owner models.Identity, noteID int64) (models.Note, error) {
	rows, err := n.store.SelectNote(ctx, noteID, owner.ID)
	if err != nil {
		return models.Note{}, fmt.Errorf("note select: %w", err)
	}
	if len(rows) == 0 {
		return models.Note{}, ErrNoteNotFound
	}

	return models.NoteFromRow(rows[0])
}

func (n *noteService) Delete(ctx context.Context, owner models.Identity, noteID int64) error {
	rows, err := n.store.SelectNote(ctx, noteID, owner.ID)
	if err != nil {
		return fmt.Errorf("note select: %w", err)
	}
	if len(rows) == 0 {
		return ErrNoteNotFound
	}

	// The existence check and the delete are two provider calls with no
	// transaction between them; a note deleted concurrently in the gap makes
	// the second call a no-op.
	if err := n.store.DeleteNote(ctx, noteID, owner.ID); err != nil {
		return fmt.Errorf("note delete: %w", err)
	}

	return nil
}

func (n *noteService) Summarize(ctx context.Context, owner models.Identity, noteID int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	rows, err := n.store.SelectNote(ctx, noteID, owner.ID)
	if err != nil {
		return models.Note{}, fmt.Errorf("note select: %w", err)
	}
	if len(rows) == 0 {
		return models.Note{}, ErrNoteNotFound
	}

	content, _ := rows[0]["content"].(string)
	summary, err := n.summarizer.Summarize(ctx, content)
	if err != nil {
		log.Err(err).Int64("note_id", noteID).Msg("explicit summarization failed")
		return models.Note{}, err
	}

	updated, err := n.store.UpdateNote(ctx, noteID, owner.ID, models.NoteRow{
		"summary":    summary,
		"updated_at": time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return models.Note{}, fmt.Errorf("note update: %w", err)
	}
	if len(updated) == 0 {
		return models.Note{}, fmt.Errorf("note update: %w", errEmptyRepresentation)
	}

	return models.NoteFromRow(updated[0])
}

// errEmptyRepresentation indicates the provider accepted a write but
// returned no representation of the affected row.
var errEmptyRepresentation = errors.New("provider returned no rows")
