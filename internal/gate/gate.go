package gate

import (
	"time"
)

// ReVerifyAfter is how long a verified email stays valid. Expiry is evaluated
// lazily on every read; nothing sweeps stale registrations in the background.
const ReVerifyAfter = 7 * 24 * time.Hour

// Registration is the persisted proof that a visitor passed email
// verification. It lives in the signed session cookie; a zero value means the
// visitor never verified.
type Registration struct {
	Email        string
	RegisteredAt time.Time
}

// Status is the authorization state for a page view. Modeling it as a tagged
// three-state value rules out the contradictory "checking and authorized"
// combination two booleans would allow.
type Status int

const (
	// StatusChecking is the transient state before the session store has been
	// consulted.
	StatusChecking Status = iota
	StatusUnauthorized
	StatusAuthorized
)

func (s Status) String() string {
	switch s {
	case StatusAuthorized:
		return "authorized"
	case StatusUnauthorized:
		return "unauthorized"
	default:
		return "checking"
	}
}

// NeedsReVerification reports whether the registration is absent or too old
// to count. The boundary is exclusive: elapsed time must strictly exceed the
// window, so a registration exactly ReVerifyAfter old is still valid and one
// millisecond later is not. A zero timestamp fails closed.
func (r Registration) NeedsReVerification(now time.Time) bool {
	if r.RegisteredAt.IsZero() {
		return true
	}
	return now.Sub(r.RegisteredAt) > ReVerifyAfter
}

// Authorized reports whether the visitor may view gated content right now.
func (r Registration) Authorized(now time.Time) bool {
	return r.Email != "" && !r.NeedsReVerification(now)
}

// Evaluate collapses the registration into a Status for the given instant.
func (r Registration) Evaluate(now time.Time) Status {
	if r.Authorized(now) {
		return StatusAuthorized
	}
	return StatusUnauthorized
}

// NewRegistration stamps email with the current instant. This is the only
// path from unauthorized to authorized; it unconditionally overwrites any
// prior registration.
func NewRegistration(email string, now time.Time) Registration {
	return Registration{Email: email, RegisteredAt: now}
}
