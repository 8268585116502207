package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/aognev/go-notes-api/internal/adapter"
	"github.com/aognev/go-notes-api/internal/config"
	"github.com/aognev/go-notes-api/internal/logger"
	"github.com/aognev/go-notes-api/internal/utils"
	"github.com/aognev/go-notes-api/models"
)

// authService is the concrete implementation of AuthService. Token issuance
// and verification are fully delegated to the auth provider; this service
// only translates between the HTTP contract and the provider's API.
type authService struct {
	// auth is the provider boundary used for sign-up, sign-in, OTP
	// verification, and administrative user lookups.
	auth adapter.AuthProvider

	// confirmRedirectURL is the email-confirmation callback embedded in
	// every sign-up request.
	confirmRedirectURL string

	logger *logger.Logger
}

// NewAuthService constructs an AuthService over the given provider boundary.
func NewAuthService(auth adapter.AuthProvider, cfg config.Supabase, logger *logger.Logger) AuthService {
	return &authService{
		auth:               auth,
		confirmRedirectURL: cfg.ConfirmRedirectURL,
		logger:             logger,
	}
}

// registerPattern maps a provider error message to a service error. The
// table is evaluated in declared order and the first match wins.
//
// Matching on message substrings is inherently fragile to upstream wording
// changes; it is the only signal the provider exposes consistently across
// versions, so the table is kept small and documented here in one place.
type registerPattern struct {
	matches   func(msg string) bool
	translate func(msg string) error
}

// waitSecondsPattern extracts the advised wait time from rate-limit messages
// such as "For security purposes, you can only request this after 42 seconds".
var waitSecondsPattern = regexp.MustCompile(`(\d+)\s+seconds?`)

var registerPatterns = []registerPattern{
	{
		matches:   func(msg string) bool { return strings.Contains(msg, "signup disabled") || strings.Contains(msg, "signup_disabled") },
		translate: func(string) error { return ErrSignupDisabled },
	},
	{
		matches:   func(msg string) bool { return strings.Contains(msg, "already registered") || strings.Contains(msg, "already exists") },
		translate: func(string) error { return ErrAlreadyRegistered },
	},
	{
		matches: func(msg string) bool { return strings.Contains(msg, "rate limit") || strings.Contains(msg, "security purposes") },
		translate: func(msg string) error {
			rateLimitErr := &RateLimitError{}
			if match := waitSecondsPattern.FindStringSubmatch(msg); match != nil {
				rateLimitErr.WaitSeconds = match[1]
			}
			return rateLimitErr
		},
	},
	{
		matches:   func(msg string) bool { return strings.Contains(msg, "invalid email") },
		translate: func(string) error { return ErrInvalidEmail },
	},
	{
		matches:   func(msg string) bool { return strings.Contains(msg, "password") && strings.Contains(msg, "weak") },
		translate: func(string) error { return ErrWeakPassword },
	},
}

// translateRegisterError picks the service error for a provider failure via
// the pattern table; unmatched messages fall through to a wrapped
// ErrRegistrationFailed carrying the raw provider message.
func translateRegisterError(providerMsg string) error {
	msg := strings.ToLower(providerMsg)
	for _, pattern := range registerPatterns {
		if pattern.matches(msg) {
			return pattern.translate(msg)
		}
	}

	return fmt.Errorf("%w: %s", ErrRegistrationFailed, providerMsg)
}

func (a *authService) Register(ctx context.Context, creds models.Credentials) (RegisterResult, error) {
	log := logger.FromContext(ctx)

	if creds.Email == "" || creds.Password == "" {
		return RegisterResult{}, ErrInvalidDataProvided
	}

	result, err := a.auth.SignUp(ctx, creds.Email, creds.Password, a.confirmRedirectURL)
	if err != nil {
		log.Err(err).Str("email", creds.Email).Msg("provider sign up failed")

		var providerErr *adapter.ProviderError
		if errors.As(err, &providerErr) {
			return RegisterResult{}, translateRegisterError(providerErr.Message)
		}
		return RegisterResult{}, fmt.Errorf("%w: %s", ErrRegistrationFailed, err)
	}

	if result.Session == nil {
		// User created, session withheld until the email is confirmed.
		return RegisterResult{
			Pending: &models.PendingConfirmation{
				Message:              "Registration successful! Please check your email to confirm your account before logging in.",
				EmailConfirmed:       false,
				Email:                result.User.Email,
				RequiresConfirmation: true,
			},
		}, nil
	}

	return RegisterResult{
		Token: &models.TokenResponse{
			AccessToken: result.Session.AccessToken,
			TokenType:   "bearer",
			User:        result.User,
		},
	}, nil
}

func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.TokenResponse, error) {
	log := logger.FromContext(ctx)

	session, err := a.auth.SignInWithPassword(ctx, creds.Email, creds.Password)
	if err != nil {
		log.Err(err).Str("email", creds.Email).Msg("provider sign in failed")
		return models.TokenResponse{}, fmt.Errorf("%w: %s", ErrLoginFailed, err)
	}

	return models.TokenResponse{
		AccessToken: session.AccessToken,
		TokenType:   "bearer",
		User:        session.User,
	}, nil
}

func (a *authService) Confirm(ctx context.Context, tokenHash, otpType string) error {
	log := logger.FromContext(ctx)

	if _, err := a.auth.VerifyOTP(ctx, tokenHash, otpType); err != nil {
		log.Err(err).Msg("otp verification failed")
		return fmt.Errorf("%w: %s", ErrConfirmationFailed, err)
	}

	return nil
}

func (a *authService) Identify(ctx context.Context, rawToken string) (models.Identity, error) {
	log := logger.FromContext(ctx)

	identity, err := utils.IdentityFromToken(rawToken)
	if err != nil {
		return models.Identity{}, err
	}

	// Best-effort email refresh from the provider's user record; a failed
	// lookup never fails the request.
	if user, err := a.auth.AdminGetUser(ctx, identity.ID); err == nil && user.Email != "" {
		identity.Email = user.Email
	} else if err != nil {
		log.Debug().Err(err).Str("user_id", identity.ID).Msg("admin user lookup failed, keeping token email")
	}

	return identity, nil
}
