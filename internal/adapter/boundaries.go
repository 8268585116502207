package adapter

import (
	"fmt"

	"github.com/aognev/go-notes-api/internal/config"
	"github.com/aognev/go-notes-api/internal/logger"
)

// Boundaries bundles every outbound dependency of the service layer. All
// handles are constructed once at process start and injected explicitly;
// nothing in this package is a global.
type Boundaries struct {
	Auth    AuthProvider
	Notes   NoteStore
	Storage ObjectStorage

	// Completion is nil when no LLM API key is configured; summarization is
	// then disabled, which is not a startup error.
	Completion CompletionClient
}

// NewBoundaries constructs all provider clients from the configuration.
func NewBoundaries(cfg *config.Config, logger *logger.Logger) (Boundaries, error) {
	auth, err := NewAuthProvider(cfg.Supabase, logger)
	if err != nil {
		return Boundaries{}, fmt.Errorf("auth provider: %w", err)
	}
	notes, err := NewNoteStore(cfg.Supabase, logger)
	if err != nil {
		return Boundaries{}, fmt.Errorf("note store: %w", err)
	}
	storage, err := NewObjectStorage(cfg.Supabase, logger)
	if err != nil {
		return Boundaries{}, fmt.Errorf("object storage: %w", err)
	}

	boundaries := Boundaries{Auth: auth, Notes: notes, Storage: storage}
	if cfg.SummarizationEnabled() {
		boundaries.Completion = NewCompletionClient(cfg.OpenAI, logger)
	} else {
		logger.Info().Msg("no LLM API key configured, summarization disabled")
	}

	return boundaries, nil
}
