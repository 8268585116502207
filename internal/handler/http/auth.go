package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/aognev/go-notes-api/internal/app"
	"github.com/aognev/go-notes-api/internal/logger"
	"github.com/aognev/go-notes-api/internal/service"
	"github.com/aognev/go-notes-api/internal/utils"
	"github.com/aognev/go-notes-api/models"
)

// defaultConfirmRedirect is where the email-confirmation callback sends the
// browser when the caller did not supply a redirect_to parameter.
const defaultConfirmRedirect = "http://localhost:5173/login"

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteErrorJSON(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	result, err := h.services.AuthService.Register(ctx, creds)
	if err != nil {
		log.Err(err).Msg("registration failed")
		utils.WriteErrorJSON(w, registerErrorDetail(err), statusFromError(err))
		return
	}

	if result.Pending != nil {
		utils.WriteJSON(w, result.Pending, http.StatusOK)
		return
	}

	utils.WriteJSON(w, result.Token, http.StatusOK)
}

// registerErrorDetail picks the user-facing message for a registration
// failure. Statuses come from the shared table; wording lives here.
func registerErrorDetail(err error) string {
	var rateLimitErr *service.RateLimitError
	if errors.As(err, &rateLimitErr) {
		if rateLimitErr.WaitSeconds != "" {
			return fmt.Sprintf(app.MsgRateLimitedWithWait, rateLimitErr.WaitSeconds)
		}
		return app.MsgRateLimited
	}

	switch {
	case errors.Is(err, service.ErrSignupDisabled):
		return app.MsgSignupDisabled
	case errors.Is(err, service.ErrAlreadyRegistered):
		return app.MsgAlreadyRegistered
	case errors.Is(err, service.ErrInvalidEmail):
		return app.MsgInvalidEmail
	case errors.Is(err, service.ErrWeakPassword):
		return app.MsgWeakPassword
	case errors.Is(err, service.ErrInvalidDataProvided):
		return app.MsgInvalidJSON
	default:
		// Catch-all carries the raw provider message, which the service
		// wrapped after the sentinel text.
		return fmt.Sprintf("Registration failed: %s",
			strings.TrimPrefix(err.Error(), service.ErrRegistrationFailed.Error()+": "))
	}
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteErrorJSON(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		log.Err(err).Msg("login failed")
		utils.WriteErrorJSON(w, app.MsgInvalidCredentials, http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, token, http.StatusOK)
}

// confirm is the browser-facing email-confirmation callback. It never
// returns a JSON error: every outcome is a redirect with a query parameter
// describing what happened.
func (h *Handler) confirm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	query := r.URL.Query()
	tokenHash := query.Get("token_hash")
	otpType := query.Get("type")
	redirectTo := query.Get("redirect_to")
	if redirectTo == "" {
		redirectTo = defaultConfirmRedirect
	}

	if tokenHash != "" && otpType != "" {
		if err := h.services.AuthService.Confirm(ctx, tokenHash, otpType); err != nil {
			log.Err(err).Msg("email confirmation failed")
			http.Redirect(w, r, redirectTo+"?error=confirmation_failed", http.StatusFound)
			return
		}

		http.Redirect(w, r, redirectTo+"?confirmed=true&success=true", http.StatusFound)
		return
	}

	// No token in the callback: the provider may have already confirmed the
	// address on its side, so the browser is sent on regardless.
	http.Redirect(w, r, redirectTo+"?confirmed=true", http.StatusFound)
}
