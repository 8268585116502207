package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aognev/go-notes-api/internal/config"
	"github.com/aognev/go-notes-api/internal/logger"
	"github.com/aognev/go-notes-api/models"
)

// authClient is the GoTrue implementation of [AuthProvider]. User-level
// calls go through the anonymous handle; AdminGetUser uses the service-role
// handle.
type authClient struct {
	anon  *supabaseClient
	admin *supabaseClient

	logger *logger.Logger
}

// NewAuthProvider constructs the GoTrue [AuthProvider] with both an
// anonymous and an administrative handle.
func NewAuthProvider(cfg config.Supabase, logger *logger.Logger) (AuthProvider, error) {
	anon, err := newSupabaseClient(cfg, cfg.Key)
	if err != nil {
		return nil, fmt.Errorf("anon client: %w", err)
	}
	admin, err := newSupabaseClient(cfg, cfg.ServiceKey)
	if err != nil {
		return nil, fmt.Errorf("admin client: %w", err)
	}

	return &authClient{anon: anon, admin: admin, logger: logger}, nil
}

// signUpPayload is the raw sign-up response. Depending on whether email
// confirmation is enabled, the provider returns either a bare user object or
// a full session, so both shapes are decoded from one envelope.
type signUpPayload struct {
	AccessToken string              `json:"access_token"`
	TokenType   string              `json:"token_type"`
	User        *models.UserSummary `json:"user"`

	// Bare-user shape: identity fields appear at the top level.
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (a *authClient) SignUp(ctx context.Context, email, password, redirectTo string) (models.SignUpResult, error) {
	resp, err := a.anon.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("redirect_to", redirectTo).
		SetBody(map[string]string{"email": email, "password": password}).
		Post("/auth/v1/signup")
	if err != nil {
		return models.SignUpResult{}, fmt.Errorf("sign up request: %w", err)
	}
	if err = mapProviderError(resp); err != nil {
		return models.SignUpResult{}, err
	}

	var payload signUpPayload
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		return models.SignUpResult{}, fmt.Errorf("sign up decode: %w", err)
	}

	result := models.SignUpResult{}
	switch {
	case payload.AccessToken != "" && payload.User != nil:
		result.User = *payload.User
		result.Session = &models.Session{
			AccessToken: payload.AccessToken,
			TokenType:   payload.TokenType,
			User:        *payload.User,
		}
	case payload.User != nil:
		result.User = *payload.User
	default:
		result.User = models.UserSummary{ID: payload.ID, Email: payload.Email}
	}

	if result.User.ID == "" {
		return models.SignUpResult{}, &ProviderError{StatusCode: resp.StatusCode(), Message: "Failed to create user"}
	}

	return result, nil
}

func (a *authClient) SignInWithPassword(ctx context.Context, email, password string) (models.Session, error) {
	resp, err := a.anon.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("grant_type", "password").
		SetBody(map[string]string{"email": email, "password": password}).
		Post("/auth/v1/token")
	if err != nil {
		return models.Session{}, fmt.Errorf("sign in request: %w", err)
	}
	if err = mapProviderError(resp); err != nil {
		return models.Session{}, err
	}

	return decodeSession(resp.Body(), resp.StatusCode())
}

func (a *authClient) VerifyOTP(ctx context.Context, tokenHash, otpType string) (models.Session, error) {
	resp, err := a.anon.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"token_hash": tokenHash, "type": otpType}).
		Post("/auth/v1/verify")
	if err != nil {
		return models.Session{}, fmt.Errorf("verify otp request: %w", err)
	}
	if err = mapProviderError(resp); err != nil {
		return models.Session{}, err
	}

	return decodeSession(resp.Body(), resp.StatusCode())
}

func (a *authClient) AdminGetUser(ctx context.Context, userID string) (models.UserSummary, error) {
	resp, err := a.admin.http.R().
		SetContext(ctx).
		Get("/auth/v1/admin/users/" + userID)
	if err != nil {
		return models.UserSummary{}, fmt.Errorf("admin get user request: %w", err)
	}
	if err = mapProviderError(resp); err != nil {
		return models.UserSummary{}, err
	}

	var user models.UserSummary
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.UserSummary{}, fmt.Errorf("admin get user decode: %w", err)
	}

	return user, nil
}

// decodeSession parses a session response; a body missing either the access
// token or the user is treated as a provider failure, not a success.
func decodeSession(body []byte, statusCode int) (models.Session, error) {
	var session models.Session
	if err := json.Unmarshal(body, &session); err != nil {
		return models.Session{}, fmt.Errorf("session decode: %w", err)
	}

	if session.AccessToken == "" || session.User.ID == "" {
		return models.Session{}, &ProviderError{StatusCode: statusCode, Message: "response has no session or user"}
	}
	if session.TokenType == "" {
		session.TokenType = "bearer"
	}

	return session, nil
}
