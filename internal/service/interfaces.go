package service

import (
	"context"

	"github.com/aognev/go-notes-api/models"
)

// AuthService covers registration, login, the email-confirmation callback,
// and per-request identity derivation.
type AuthService interface {
	// Register creates a user at the auth provider. The result is either a
	// token response or a pending-confirmation body, both HTTP 200.
	Register(ctx context.Context, creds models.Credentials) (RegisterResult, error)

	// Login exchanges credentials for a provider session. Every failure is
	// reported as ErrLoginFailed regardless of cause.
	Login(ctx context.Context, creds models.Credentials) (models.TokenResponse, error)

	// Confirm verifies an email-confirmation token hash with the provider.
	Confirm(ctx context.Context, tokenHash, otpType string) error

	// Identify derives the caller's identity from a bearer token: decoded
	// claims (unverified by design) plus a best-effort administrative email
	// lookup whose failure is ignored.
	Identify(ctx context.Context, rawToken string) (models.Identity, error)
}

// RegisterResult is the outcome of a successful registration. Exactly one of
// the two fields is set.
type RegisterResult struct {
	// Token is set when the provider issued a session immediately.
	Token *models.TokenResponse

	// Pending is set when the provider requires email confirmation before a
	// session can be issued.
	Pending *models.PendingConfirmation
}

// NoteService covers all note operations. Every method is scoped to the
// owner: a note that exists but belongs to someone else behaves exactly like
// a note that does not exist.
type NoteService interface {
	Create(ctx context.Context, owner models.Identity, req models.NoteCreate) (models.Note, error)
	List(ctx context.Context, owner models.Identity) ([]models.Note, error)
	Get(ctx context.Context, owner models.Identity, noteID int64) (models.Note, error)
	Delete(ctx context.Context, owner models.Identity, noteID int64) error

	// Summarize regenerates the summary unconditionally, even when one
	// already exists, and refreshes the updated timestamp.
	Summarize(ctx context.Context, owner models.Identity, noteID int64) (models.Note, error)
}

// SummarizeService produces an AI summary for a piece of text.
type SummarizeService interface {
	// Summarize returns the summary text, ErrSummarizerNotConfigured when
	// the capability is not set up, or a wrapped provider error when the
	// call failed.
	Summarize(ctx context.Context, text string) (string, error)
}

// UploadService validates and stores image uploads.
type UploadService interface {
	UploadImage(ctx context.Context, owner models.Identity, upload models.ImageUpload) (models.UploadResult, error)
}
