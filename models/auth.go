package models

import "time"

// Default credentials written when no auth record exists.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin"
)

// AuthRecord is the single stored dashboard account.
type AuthRecord struct {
	Username           string `json:"username"`
	PasswordHash       string `json:"password"`
	MustChangePassword bool   `json:"must_change_password"`
}

// Credentials is the body of a login request.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// PasswordChange is the body of a change-password request.
type PasswordChange struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// Session describes an authenticated dashboard session.
type Session struct {
	// ID is the session identifier carried as the token's jti claim.
	ID string

	// Username is the owner of the session.
	Username string

	// ExpiresAt is zero when the session never expires.
	ExpiresAt time.Time
}

// Expires reports whether the session has an expiry.
func (s Session) Expires() bool {
	return !s.ExpiresAt.IsZero()
}

// AuthStatus is returned by the auth status endpoint.
type AuthStatus struct {
	Username           string `json:"username"`
	MustChangePassword bool   `json:"must_change_password"`
	TonyMode           bool   `json:"tony_mode"`
}
