package domain

import "time"

// VerificationToken is a short-lived credential proving ownership of an
// email address. The OTP flow stores a 6-digit numeric code; the link flow
// stores an opaque high-entropy secret. A token is deleted on successful
// verification and becomes unusable once ExpiresAt passes.
type VerificationToken struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (t *VerificationToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
