package service

import (
	"github.com/aognev/go-notes-api/internal/adapter"
	"github.com/aognev/go-notes-api/internal/config"
	"github.com/aognev/go-notes-api/internal/logger"
)

type Services struct {
	AuthService      AuthService
	NoteService      NoteService
	UploadService    UploadService
	SummarizeService SummarizeService
}

// NewServices wires every service to its outbound boundaries. The completion
// client may be nil, which constructs the summarizer in disabled mode.
func NewServices(boundaries adapter.Boundaries, cfg config.Config, logger *logger.Logger) *Services {
	summarizer := NewSummarizeService(boundaries.Completion, logger)

	return &Services{
		AuthService:      NewAuthService(boundaries.Auth, cfg.Supabase, logger),
		NoteService:      NewNoteService(boundaries.Notes, summarizer, logger),
		UploadService:    NewUploadService(boundaries.Storage, cfg.Supabase, logger),
		SummarizeService: summarizer,
	}
}
