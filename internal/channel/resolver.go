package channel

import (
	"net/url"
)

// Store persists the visitor's selected channel between page loads. The web
// app backs it with the signed session cookie; tests use an in-memory value.
type Store interface {
	// Channel returns the persisted code, or ok=false when nothing valid is
	// stored.
	Channel() (Code, bool)
	// SetChannel overwrites the persisted code.
	SetChannel(Code)
	// ClearChannel removes the persisted code.
	ClearChannel()
}

// Resolve produces the authoritative channel for the current page load.
// Precedence, highest first: URL marker, persisted value, environment
// default, then channel A. A marker or environment hit is written back to the
// store; a plain store read is returned as-is.
func Resolve(query url.Values, store Store, envDefault string) Code {
	if c, ok := FromQuery(query); ok {
		store.SetChannel(c)
		return c
	}
	if c, ok := store.Channel(); ok {
		return c
	}
	if c, ok := Parse(envDefault); ok {
		store.SetChannel(c)
		return c
	}
	return Default
}

// SwitchURL rewrites target so its query carries exactly one channel marker,
// the one selecting c. Any previously present markers and the legacy
// parameter are dropped. The caller persists c and issues the redirect; the
// marker then wins the precedence on the next load.
func SwitchURL(target *url.URL, c Code) string {
	u := *target
	q := u.Query()
	StripMarkers(q)
	q.Set(c.Marker(), "")
	u.RawQuery = q.Encode()
	return u.String()
}
