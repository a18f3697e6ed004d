package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/csmblade/PANfm/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateSessionToken creates a signed HMAC-SHA256 JWT for session.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the username
//   - ID        (jti): the server-side session id
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): session.ExpiresAt, omitted when the session never expires
//
// Returns an error if issuer, signKey, session id or username are empty.
//
// Example usage:
//
//	token, err := utils.GenerateSessionToken("panfm", session, "secret")
func GenerateSessionToken(issuer string, session models.Session, signKey string) (models.SessionToken, error) {
	if issuer == "" || signKey == "" || session.ID == "" || session.Username == "" {
		return models.SessionToken{}, errors.New("invalid params for generating session token")
	}

	claims := jwt.RegisteredClaims{
		Issuer:   issuer,
		Subject:  session.Username,
		ID:       session.ID,
		IssuedAt: jwt.NewNumericDate(time.Now()),
	}
	if session.Expires() {
		claims.ExpiresAt = jwt.NewNumericDate(session.ExpiresAt)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error occurred during singing session token: %w", err)
	}

	return models.SessionToken{Token: token, RegisteredClaims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseSessionToken validates tokenString and extracts the
// session it describes.
//
// Validation includes:
//   - Signature verification (HS256 only) using the provided sign key
//   - Issuer (iss) claim check against tokenIssuer
//   - Expiration (exp) claim check when present
//   - Presence of the subject and jti claims
//
// Example usage:
//
//	session, err := utils.ValidateAndParseSessionToken(raw, "secret", "panfm")
func ValidateAndParseSessionToken(tokenString, tokenSignKey, tokenIssuer string) (models.Session, error) {
	claims := &models.SessionToken{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}
	claims.Token = token

	if claims.Subject == "" {
		return models.Session{}, errors.New("empty subject error")
	}
	if claims.ID == "" {
		return models.Session{}, errors.New("empty session id error")
	}

	session := models.Session{ID: claims.ID, Username: claims.Subject}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}
	return session, nil
}
