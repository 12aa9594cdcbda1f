package middleware

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"axiselect.app/web/internal/channel"
	"axiselect.app/web/internal/gate"
)

const sessionCookieName = "AXISELECT_WEB_SESSION"

// SessionData is the signed per-visitor state: the resolved channel, the
// registration record gating the content pages, and the usual locale and
// CSRF bookkeeping. Everything lives in the cookie; there is no server-side
// session store.
type SessionData struct {
	ID                 string    `json:"id"`
	Email              string    `json:"email,omitempty"`
	RegisteredAtMillis int64     `json:"registeredAt,omitempty"`
	ChannelCode        string    `json:"channel,omitempty"`
	Locale             string    `json:"locale,omitempty"`
	CSRFToken          string    `json:"csrf,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
	// internal dirty flag; not serialized
	dirty bool `json:"-"`
}

var sessionSignKey []byte
var sessionSecure bool

// ConfigureSessions installs the cookie signing key. An empty key gets a
// process-ephemeral replacement so development keeps working; production
// deployments must supply one or every restart logs visitors out.
func ConfigureSessions(key string, secure bool) {
	if key == "" {
		sessionSignKey = make([]byte, 32)
		if _, err := rand.Read(sessionSignKey); err != nil {
			log.Printf("session: failed to generate signing key: %v", err)
			sessionSignKey = []byte("insecure-dev-key-set-AXISELECT_WEB_SESSION_SIGNING_KEY")
		}
		log.Printf("session: using ephemeral signing key (dev). Set AXISELECT_WEB_SESSION_SIGNING_KEY for production.")
	} else {
		sessionSignKey = []byte(key)
	}
	sessionSecure = secure
}

// Session loads or initializes a session and stores it in request context.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sd, fromCookie := readSessionCookie(r)
		if sd.ID == "" {
			sd.ID = randID()
			sd.CreatedAt = time.Now().UTC()
			sd.UpdatedAt = sd.CreatedAt
			sd.CSRFToken = newCSRFToken()
			sd.dirty = true
		}
		ctx := context.WithValue(r.Context(), ctxKeySession, sd)
		rw := NewResponseRecorder(w)
		// ensure cookie is set just before first write if needed
		rw.SetBeforeWrite(func(w http.ResponseWriter) {
			if sd.dirty || !fromCookie {
				writeSessionCookie(w, sd)
			}
		})
		next.ServeHTTP(rw, r.WithContext(ctx))
		// If nothing was written yet (e.g., HEAD), persist cookie now
		if !rw.wrote && (sd.dirty || !fromCookie) {
			writeSessionCookie(w, sd)
		}
	})
}

// GetSession returns session data from context
func GetSession(r *http.Request) *SessionData {
	if v := r.Context().Value(ctxKeySession); v != nil {
		if sd, ok := v.(*SessionData); ok {
			return sd
		}
	}
	return &SessionData{}
}

// MarkDirty flags the session for writing at end of request
func (s *SessionData) MarkDirty() { s.dirty = true; s.UpdatedAt = time.Now().UTC() }

// Channel implements the channel store read side.
func (s *SessionData) Channel() (channel.Code, bool) {
	c := channel.Code(s.ChannelCode)
	if !c.Valid() {
		return "", false
	}
	return c, true
}

// SetChannel persists the resolved channel.
func (s *SessionData) SetChannel(c channel.Code) {
	if s.ChannelCode == string(c) {
		return
	}
	s.ChannelCode = string(c)
	s.MarkDirty()
}

// ClearChannel drops the persisted channel.
func (s *SessionData) ClearChannel() {
	if s.ChannelCode == "" {
		return
	}
	s.ChannelCode = ""
	s.MarkDirty()
}

// Registration returns the stored registration record, if any.
func (s *SessionData) Registration() (gate.Registration, bool) {
	if s.Email == "" || s.RegisteredAtMillis == 0 {
		return gate.Registration{}, false
	}
	return gate.Registration{
		Email:        s.Email,
		RegisteredAt: time.UnixMilli(s.RegisteredAtMillis).UTC(),
	}, true
}

// SetRegistration stores reg and rotates the session ID so the pre-auth
// cookie cannot be replayed as an authorized one.
func (s *SessionData) SetRegistration(reg gate.Registration) {
	s.Email = reg.Email
	s.RegisteredAtMillis = reg.RegisteredAt.UnixMilli()
	s.RegenerateID()
}

// ClearRegistration removes the registration record, returning the visitor
// to the gate.
func (s *SessionData) ClearRegistration() {
	if s.Email == "" && s.RegisteredAtMillis == 0 {
		return
	}
	s.Email = ""
	s.RegisteredAtMillis = 0
	s.MarkDirty()
}

// readSessionCookie parses and verifies the session cookie
func readSessionCookie(r *http.Request) (*SessionData, bool) {
	c, err := r.Cookie(sessionCookieName)
	if err != nil || c.Value == "" {
		return &SessionData{}, false
	}
	parts := strings.Split(c.Value, ".")
	if len(parts) != 2 {
		return &SessionData{}, false
	}
	payloadB, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return &SessionData{}, false
	}
	sigB, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return &SessionData{}, false
	}
	mac := hmac.New(sha256.New, sessionSignKey)
	mac.Write(payloadB)
	if !hmac.Equal(sigB, mac.Sum(nil)) {
		return &SessionData{}, false
	}
	var sd SessionData
	if err := json.Unmarshal(payloadB, &sd); err != nil {
		return &SessionData{}, false
	}
	return &sd, true
}

func writeSessionCookie(w http.ResponseWriter, sd *SessionData) {
	b, _ := json.Marshal(sd)
	payload := base64.RawURLEncoding.EncodeToString(b)
	mac := hmac.New(sha256.New, sessionSignKey)
	mac.Write(b)
	sig := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
	val := payload + "." + sig
	// httpOnly to prevent JS access
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    val,
		Path:     "/",
		HttpOnly: true,
		Secure:   sessionSecure,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(30 * 24 * time.Hour),
	})
}

// RegenerateID assigns a new session ID and CSRF token to prevent fixation.
func (s *SessionData) RegenerateID() {
	s.ID = randID()
	s.CSRFToken = newCSRFToken()
	s.MarkDirty()
}

func randID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(b)
}
