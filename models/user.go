package models

// Identity describes the authenticated caller of a protected request.
// It is derived once per request from the bearer token by the auth middleware
// and carried in the request context; it is never persisted locally.
type Identity struct {
	// ID is the "sub" claim of the provider-issued token: the opaque user
	// identifier assigned by the auth provider.
	ID string `json:"id"`

	// Email is the "email" claim, possibly refreshed by an administrative
	// lookup against the auth provider. May be empty.
	Email string `json:"email"`

	// Token is the raw bearer token the caller presented. It is kept so
	// user-scoped provider calls can be made on the caller's behalf.
	Token string `json:"-"`
}

// UserSummary is the public projection of a provider user returned from the
// auth endpoints.
type UserSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
