// SPDX-License-Identifier: Apache-2.0

package service

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the services. Handlers translate them into
// HTTP statuses via their error→status table and match with [errors.Is].
var (
	// ErrInvalidDataProvided indicates a request that fails basic validation
	// (e.g. empty title or content).
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrSignupDisabled indicates the provider rejected registration because
	// sign-up is disabled in its settings.
	ErrSignupDisabled = errors.New("signup disabled")

	// ErrAlreadyRegistered indicates an account with the email already exists.
	ErrAlreadyRegistered = errors.New("email already registered")

	// ErrInvalidEmail indicates the provider rejected the email format.
	ErrInvalidEmail = errors.New("invalid email")

	// ErrWeakPassword indicates the provider rejected the password as weak.
	ErrWeakPassword = errors.New("weak password")

	// ErrRegistrationFailed is the catch-all registration failure; the
	// provider's message is wrapped alongside it.
	ErrRegistrationFailed = errors.New("registration failed")

	// ErrLoginFailed covers every login failure, including responses missing
	// a session or user. The cause is not distinguished for the caller.
	ErrLoginFailed = errors.New("login failed")

	// ErrConfirmationFailed indicates the email-confirmation token could not
	// be verified. The confirm endpoint redirects on it, never errors.
	ErrConfirmationFailed = errors.New("email confirmation failed")

	// ErrNoteNotFound indicates the note is absent or owned by another user.
	ErrNoteNotFound = errors.New("note not found")

	// ErrSummarizerNotConfigured indicates the summarization capability is
	// not set up (no API key). Distinct from a failed summarization call.
	ErrSummarizerNotConfigured = errors.New("summarizer not configured")

	// ErrSummarizationFailed indicates the configured summarizer was called
	// and the call failed.
	ErrSummarizationFailed = errors.New("summarization failed")

	// ErrInvalidContentType indicates an upload with a content type outside
	// the image whitelist.
	ErrInvalidContentType = errors.New("invalid file type")

	// ErrFileTooLarge indicates an upload payload over the size cap.
	ErrFileTooLarge = errors.New("file too large")

	// ErrUploadFailed indicates the storage provider rejected the upload or
	// the call failed.
	ErrUploadFailed = errors.New("upload failed")
)

// RateLimitError indicates the provider throttled a sign-up attempt.
// WaitSeconds carries the wait time extracted from the provider's message,
// or is empty when none was found.
type RateLimitError struct {
	WaitSeconds string
}

func (e *RateLimitError) Error() string {
	if e.WaitSeconds == "" {
		return "rate limited"
	}
	return fmt.Sprintf("rate limited, retry in %s seconds", e.WaitSeconds)
}
