// SPDX-License-Identifier: Apache-2.0

package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// NoteRow is a raw, untyped notes-table row as decoded from the provider's
// JSON response. The provider is not consistent about representation details
// (identifier as number vs. string, timestamps with or without an offset), so
// rows pass through NoteFromRow before any handler sees them.
type NoteRow map[string]any

// isoNoOffsetLayout accepts ISO-8601 timestamps that carry no UTC offset at
// all. The original writer stores creation timestamps in this shape; the
// provider normally returns them back with an explicit offset, but not always.
const isoNoOffsetLayout = "2006-01-02T15:04:05.999999999"

// ParseProviderTime parses a timestamp value returned by the provider using
// one total rule: RFC 3339 (a trailing "Z" means UTC), then offset-less
// ISO-8601 interpreted as UTC. Anything else is a hard error; unparseable
// timestamps are never passed through as-is.
func ParseProviderTime(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t.UTC(), nil
	case string:
		if ts, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return ts.UTC(), nil
		}
		if ts, err := time.Parse(isoNoOffsetLayout, t); err == nil {
			return ts.UTC(), nil
		}
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseableTimestamp, t)
	default:
		return time.Time{}, fmt.Errorf("%w: unexpected type %T", ErrUnparseableTimestamp, v)
	}
}

// CoerceNoteID normalizes a provider-returned note identifier to int64.
//
// Identifiers are canonically integers (BIGSERIAL). A value containing a
// hyphen looks like a UUID and indicates the underlying table's identifier
// type diverged from what this service expects; that is reported as an error
// rather than passed through so a schema migration surfaces loudly.
func CoerceNoteID(v any) (int64, error) {
	switch id := v.(type) {
	case int64:
		return id, nil
	case float64:
		return int64(id), nil
	case string:
		if strings.Contains(id, "-") {
			return 0, fmt.Errorf("%w: %q looks like a UUID", ErrInvalidNoteID, id)
		}
		parsed, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidNoteID, id)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("%w: unexpected type %T", ErrInvalidNoteID, v)
	}
}

// NoteFromRow normalizes a raw provider row into a Note.
//
// It coerces the identifier to an integer, parses both timestamps with
// [ParseProviderTime], and maps absent or null optional columns to nil.
// Any field that cannot be normalized fails the whole row.
func NoteFromRow(row NoteRow) (Note, error) {
	id, err := CoerceNoteID(row["id"])
	if err != nil {
		return Note{}, err
	}

	createdAt, err := ParseProviderTime(row["created_at"])
	if err != nil {
		return Note{}, fmt.Errorf("created_at: %w", err)
	}
	updatedAt, err := ParseProviderTime(row["updated_at"])
	if err != nil {
		return Note{}, fmt.Errorf("updated_at: %w", err)
	}

	note := Note{
		ID:        id,
		Title:     stringField(row, "title"),
		Content:   stringField(row, "content"),
		ImageURL:  optionalStringField(row, "image_url"),
		Summary:   optionalStringField(row, "summary"),
		UserID:    stringField(row, "user_id"),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}

	return note, nil
}

func stringField(row NoteRow, key string) string {
	s, _ := row[key].(string)
	return s
}

func optionalStringField(row NoteRow, key string) *string {
	s, ok := row[key].(string)
	if !ok {
		return nil
	}
	return &s
}
