package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/csmblade/PANfm/models"
	"github.com/golang-jwt/jwt/v5"
)

func testSession(expiresAt time.Time) models.Session {
	return models.Session{ID: "sid-1", Username: "admin", ExpiresAt: expiresAt}
}

func TestGenerateSessionToken_Success(t *testing.T) {
	issuer := "test-issuer"
	expires := time.Now().Add(time.Hour).Truncate(time.Second)

	token, err := GenerateSessionToken(issuer, testSession(expires), "secret-key")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}
	if token.String() != token.SignedString {
		t.Error("String must return the signed form")
	}
	if token.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, token.Issuer)
	}
	if token.Subject != "admin" {
		t.Errorf("expected subject 'admin', got %s", token.Subject)
	}
	if token.ID != "sid-1" {
		t.Errorf("expected jti 'sid-1', got %s", token.ID)
	}
	if token.ExpiresAt == nil || !token.ExpiresAt.Time.Equal(expires) {
		t.Errorf("expected exp %v, got %v", expires, token.ExpiresAt)
	}
}

// TestGenerateSessionToken_NoExpiry verifies that a non-expiring session
// produces a token without the exp claim.
func TestGenerateSessionToken_NoExpiry(t *testing.T) {
	token, err := GenerateSessionToken("iss", testSession(time.Time{}), "key")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.ExpiresAt != nil {
		t.Errorf("expected no exp claim, got %v", token.ExpiresAt)
	}

	session, err := ValidateAndParseSessionToken(token.SignedString, "key", "iss")
	if err != nil {
		t.Fatalf("expected valid token, got: %v", err)
	}
	if session.Expires() {
		t.Error("expected a non-expiring session")
	}
}

func TestGenerateSessionToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name    string
		issuer  string
		session models.Session
		key     string
	}{
		{"empty issuer", "", testSession(time.Time{}), "key"},
		{"empty key", "iss", testSession(time.Time{}), ""},
		{"empty session id", "iss", models.Session{Username: "admin"}, "key"},
		{"empty username", "iss", models.Session{ID: "sid"}, "key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateSessionToken(tt.issuer, tt.session, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseSessionToken_Success(t *testing.T) {
	expires := time.Now().Add(5 * time.Minute).Truncate(time.Second)
	genToken, _ := GenerateSessionToken("test-issuer", testSession(expires), "secret-key")

	session, err := ValidateAndParseSessionToken(genToken.SignedString, "secret-key", "test-issuer")

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if session.ID != "sid-1" || session.Username != "admin" {
		t.Errorf("unexpected session %+v", session)
	}
	if !session.ExpiresAt.Equal(expires) {
		t.Errorf("expected expiry %v, got %v", expires, session.ExpiresAt)
	}
}

func TestValidateAndParseSessionToken_InvalidKey(t *testing.T) {
	genToken, _ := GenerateSessionToken("iss", testSession(time.Time{}), "correct-key")

	_, err := ValidateAndParseSessionToken(genToken.SignedString, "wrong-key", "iss")
	if err == nil {
		t.Error("expected error due to signature mismatch, got nil")
	}
}

func TestValidateAndParseSessionToken_Expired(t *testing.T) {
	genToken, _ := GenerateSessionToken("iss", testSession(time.Now().Add(-time.Minute)), "key")

	_, err := ValidateAndParseSessionToken(genToken.SignedString, "key", "iss")
	if err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidateAndParseSessionToken_WrongIssuer(t *testing.T) {
	genToken, _ := GenerateSessionToken("real-issuer", testSession(time.Time{}), "key")

	_, err := ValidateAndParseSessionToken(genToken.SignedString, "key", "fake-issuer")
	if err == nil {
		t.Error("expected error for issuer mismatch, got nil")
	}
}

// TestValidateAndParseSessionToken_RejectsOtherAlgorithms verifies that a
// token signed with another HMAC variant is refused.
func TestValidateAndParseSessionToken_RejectsOtherAlgorithms(t *testing.T) {
	claims := jwt.RegisteredClaims{Issuer: "iss", Subject: "admin", ID: "sid"}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("key"))
	if err != nil {
		t.Fatalf("signing: %v", err)
	}

	if _, err := ValidateAndParseSessionToken(raw, "key", "iss"); err == nil {
		t.Error("expected HS512 token to be rejected")
	}
}

func TestValidateAndParseSessionToken_MissingClaims(t *testing.T) {
	for name, claims := range map[string]jwt.RegisteredClaims{
		"no subject": {Issuer: "iss", ID: "sid"},
		"no jti":     {Issuer: "iss", Subject: "admin"},
	} {
		t.Run(name, func(t *testing.T) {
			raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))
			if err != nil {
				t.Fatalf("signing: %v", err)
			}
			if _, err := ValidateAndParseSessionToken(raw, "key", "iss"); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestValidateAndParseSessionToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseSessionToken("not.a.token", "key", "iss")
	if err == nil {
		t.Error("expected error for malformed token string, got nil")
	}
}
