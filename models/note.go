package models

import "time"

// Note is a single note owned by exactly one user. It mirrors the row shape
// of the provider's notes table after normalization: the identifier is always
// an integer and both timestamps are concrete UTC instants.
type Note struct {
	// ID is the provider-assigned identifier (BIGSERIAL, monotonically
	// increasing). Provider rows occasionally deliver it as a JSON string;
	// normalization coerces it to an integer in all cases.
	ID int64 `json:"id"`

	// Title is the note title. Required on creation.
	Title string `json:"title"`

	// Content is the note body. Required on creation and the input to
	// summarization.
	Content string `json:"content"`

	// ImageURL is an optional public URL of an image attached to the note,
	// typically produced by the upload endpoint.
	ImageURL *string `json:"image_url"`

	// Summary is the AI-generated summary of Content. Nil until a summary
	// has been generated; stays nil when summarization is not configured.
	Summary *string `json:"summary"`

	// UserID is the identifier of the owning user as issued by the auth
	// provider. Every read and write is scoped by this value.
	UserID string `json:"user_id"`

	// CreatedAt is set once when the note is created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed whenever content or summary changes.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the provider table holding notes.
func (n Note) TableName() string {
	return "notes"
}

// NoteCreate is the request body for creating a note.
type NoteCreate struct {
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	ImageURL *string `json:"image_url"`
}
