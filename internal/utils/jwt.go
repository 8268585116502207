package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/aognev/go-notes-api/models"
)

// ErrMissingSubject is returned when a decoded token carries no "sub" claim.
var ErrMissingSubject = errors.New("token has no subject claim")

// IdentityFromToken decodes the claims of a provider-issued JWT and derives
// the caller's identity from them.
//
// The token's cryptographic signature is deliberately NOT verified: any token
// of the expected format is trusted to have been issued by the paired auth
// provider, which performs its own signing and transport-level checks. This
// is an explicit trust boundary. If this service is ever pointed at an
// untrusted issuer, replace the unverified parse with full signature
// verification against the provider's published keys.
//
// The "sub" claim is required and becomes Identity.ID; the "email" claim is
// optional and defaults to empty.
func IdentityFromToken(tokenString string) (models.Identity, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return models.Identity{}, fmt.Errorf("invalid token format: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.Identity{}, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return models.Identity{}, ErrMissingSubject
	}

	email, _ := claims["email"].(string)

	return models.Identity{ID: sub, Email: email, Token: tokenString}, nil
}

// ParseBearerToken extracts the token string from a raw "Authorization"
// header value of the form "Bearer <token>".
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
