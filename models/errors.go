package models

import "errors"

// Normalization errors returned by [NoteFromRow] and its helpers. Callers can
// match against them with [errors.Is].
var (
	// ErrInvalidNoteID indicates a provider row whose identifier could not
	// be coerced to an integer (including UUID-shaped identifiers).
	ErrInvalidNoteID = errors.New("invalid note id")

	// ErrUnparseableTimestamp indicates a provider timestamp that matches
	// neither RFC 3339 nor offset-less ISO-8601.
	ErrUnparseableTimestamp = errors.New("unparseable timestamp")
)
