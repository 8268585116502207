package adapter

import (
	"context"

	"github.com/aognev/go-notes-api/models"
)

// AuthProvider is the boundary to the remote auth provider (GoTrue).
//
// All methods are blocking network round-trips; failures carry the provider's
// message as a [*ProviderError] so callers can translate it without branching
// on response shapes.
type AuthProvider interface {
	// SignUp registers a new user. The returned result either carries a
	// session, or no session when the provider requires email confirmation
	// first (pending-confirmation sub-state).
	SignUp(ctx context.Context, email, password, redirectTo string) (models.SignUpResult, error)

	// SignInWithPassword exchanges credentials for a session.
	SignInWithPassword(ctx context.Context, email, password string) (models.Session, error)

	// VerifyOTP confirms an email-confirmation token hash.
	VerifyOTP(ctx context.Context, tokenHash, otpType string) (models.Session, error)

	// AdminGetUser looks a user up by identifier using the administrative
	// key, bypassing row-level security.
	AdminGetUser(ctx context.Context, userID string) (models.UserSummary, error)
}

// NoteStore is the boundary to the provider's notes table (PostgREST).
//
// Rows are returned raw; normalization into [models.Note] happens in the
// service layer via [models.NoteFromRow]. Every method that reads or writes
// an existing row filters by both note identifier and owner identifier.
type NoteStore interface {
	SelectNotes(ctx context.Context, userID string) ([]models.NoteRow, error)
	SelectNote(ctx context.Context, noteID int64, userID string) ([]models.NoteRow, error)
	InsertNote(ctx context.Context, row models.NoteRow) ([]models.NoteRow, error)
	UpdateNote(ctx context.Context, noteID int64, userID string, changes models.NoteRow) ([]models.NoteRow, error)
	DeleteNote(ctx context.Context, noteID int64, userID string) error
}

// ObjectStorage is the boundary to the provider's object storage.
type ObjectStorage interface {
	// UploadObject stores data under key in the given bucket with upsert
	// semantics (an existing object under the same key is overwritten).
	UploadObject(ctx context.Context, bucket, key string, data []byte, contentType string) error

	// PublicURL returns the public URL of the object stored under key.
	// It is derived deterministically from the provider base URL, so it is
	// valid even when the provider response did not echo a URL back.
	PublicURL(bucket, key string) string
}

// CompletionClient is the boundary to the LLM completion endpoint.
type CompletionClient interface {
	// Complete sends a system+user chat completion request and returns the
	// assistant's text, trimmed.
	Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error)
}
