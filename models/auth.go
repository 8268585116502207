package models

// Credentials is the request body for register and login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is an authenticated provider session: the access token issued by
// the auth provider together with the user it belongs to.
type Session struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        UserSummary `json:"user"`
}

// SignUpResult is the normalized outcome of a provider sign-up call.
//
// When email confirmation is enabled on the provider, a user record is
// created but no session is issued; Session is nil in that case and the
// registration is in the pending-confirmation sub-state.
type SignUpResult struct {
	User    UserSummary
	Session *Session
}

// TokenResponse is the success body of register and login.
type TokenResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        UserSummary `json:"user"`
}

// PendingConfirmation is the 200 body returned from register when the
// provider requires the user to confirm their email before a session can be
// issued. It is a success sub-state, not an error.
type PendingConfirmation struct {
	Message              string `json:"message"`
	EmailConfirmed       bool   `json:"email_confirmed"`
	Email                string `json:"email"`
	RequiresConfirmation bool   `json:"requires_confirmation"`
}
