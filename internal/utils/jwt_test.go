package utils

import (
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

// signedToken builds a token with the given claims, signed with a throwaway
// key. IdentityFromToken never checks the signature, so the key is irrelevant.
func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("throwaway-key"))
	if err != nil {
		t.Fatalf("could not sign test token: %v", err)
	}
	return signed
}

func TestIdentityFromToken_Success(t *testing.T) {
	tokenString := signedToken(t, jwt.MapClaims{
		"sub":   "user-123",
		"email": "user@example.com",
	})

	identity, err := IdentityFromToken(tokenString)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if identity.ID != "user-123" {
		t.Errorf("expected ID 'user-123', got '%s'", identity.ID)
	}
	if identity.Email != "user@example.com" {
		t.Errorf("expected email 'user@example.com', got '%s'", identity.Email)
	}
	if identity.Token != tokenString {
		t.Error("expected original token string to be carried on the identity")
	}
}

func TestIdentityFromToken_MissingEmail(t *testing.T) {
	tokenString := signedToken(t, jwt.MapClaims{"sub": "user-123"})

	identity, err := IdentityFromToken(tokenString)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if identity.Email != "" {
		t.Errorf("expected empty email, got '%s'", identity.Email)
	}
}

func TestIdentityFromToken_MissingSubject(t *testing.T) {
	tokenString := signedToken(t, jwt.MapClaims{"email": "user@example.com"})

	_, err := IdentityFromToken(tokenString)

	if !errors.Is(err, ErrMissingSubject) {
		t.Fatalf("expected ErrMissingSubject, got: %v", err)
	}
}

func TestIdentityFromToken_EmptySubject(t *testing.T) {
	tokenString := signedToken(t, jwt.MapClaims{"sub": ""})

	_, err := IdentityFromToken(tokenString)

	if !errors.Is(err, ErrMissingSubject) {
		t.Fatalf("expected ErrMissingSubject, got: %v", err)
	}
}

func TestIdentityFromToken_SignatureNotVerified(t *testing.T) {
	// Tamper with the signature part; the parse must still succeed because
	// the provider is the trust boundary, not this service.
	tokenString := signedToken(t, jwt.MapClaims{"sub": "user-123"})
	tampered := tokenString[:len(tokenString)-4] + "AAAA"

	identity, err := IdentityFromToken(tampered)

	if err != nil {
		t.Fatalf("expected no error for tampered signature, got: %v", err)
	}
	if identity.ID != "user-123" {
		t.Errorf("expected ID 'user-123', got '%s'", identity.ID)
	}
}

func TestIdentityFromToken_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "empty string", token: ""},
		{name: "not a JWT at all", token: "not-a-jwt"},
		{name: "two segments only", token: "aaaa.bbbb"},
		{name: "non-base64 segments", token: "!!!.???.###"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := IdentityFromToken(tt.token)
			if err == nil {
				t.Fatal("expected error for malformed token, got nil")
			}
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "bearer token", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "surrounding whitespace", header: "  Bearer abc.def.ghi  ", want: "abc.def.ghi"},
		{name: "empty header", header: "", wantErr: true},
		{name: "scheme only", header: "Bearer", wantErr: true},
		{name: "scheme with empty token", header: "Bearer ", wantErr: true},
		{name: "too many parts", header: "Bearer abc def", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected token '%s', got '%s'", tt.want, got)
			}
		})
	}
}
