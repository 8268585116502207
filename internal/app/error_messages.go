// SPDX-License-Identifier: Apache-2.0

// Package app contains shared application-layer constants used across the
// notes API handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

// StorageBucketHint names the provider-side precondition for uploads; it is
// appended to upload failure messages so operators can fix the bucket setup.
const StorageBucketHint = "Make sure the 'note-images' bucket exists in the provider's storage and is set to public."

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgSignupDisabled is returned when the auth provider rejects sign-up
	// because registration is disabled in its settings.
	MsgSignupDisabled = "User registration is disabled in the auth provider settings."

	// MsgAlreadyRegistered is returned when a registration attempt is
	// rejected because an account with the email already exists.
	MsgAlreadyRegistered = "An account with this email already exists. Please log in instead."

	// MsgRateLimitedWithWait is the 429 body when the provider's rate-limit
	// message carried an extractable wait time. Fmt verb: seconds.
	MsgRateLimitedWithWait = "Too many sign-up attempts. Please wait %s seconds before trying again. This is a security feature to prevent spam."

	// MsgRateLimited is the generic 429 body when no wait time could be
	// extracted from the provider's message.
	MsgRateLimited = "Too many sign-up attempts. Please wait a minute before trying again. This is a security feature to prevent spam."

	// MsgInvalidEmail is returned when the provider rejects the email format.
	MsgInvalidEmail = "Please enter a valid email address."

	// MsgWeakPassword is returned when the provider rejects the password as
	// too weak.
	MsgWeakPassword = "Password is too weak. Please use a stronger password (at least 6 characters)."

	// MsgInvalidCredentials is returned for every login failure; the cause
	// is deliberately not disclosed to the caller.
	MsgInvalidCredentials = "Invalid email or password"

	// MsgNoteNotFound is returned when a note is absent or owned by a
	// different user. The two cases are indistinguishable to the caller.
	MsgNoteNotFound = "Note not found"

	// MsgSummaryNotConfigured is returned from an explicit summarize request
	// when the summarization capability is not set up.
	MsgSummaryNotConfigured = "Failed to generate summary. Check the LLM API key configuration."
)
