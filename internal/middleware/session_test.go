package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"axiselect.app/web/internal/channel"
	"axiselect.app/web/internal/gate"
)

func init() {
	ConfigureSessions("test-signing-key", false)
}

func TestSessionCookieRoundTrip(t *testing.T) {
	var captured *SessionData
	h := Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := GetSession(r)
		s.SetChannel(channel.ChannelB)
		captured = s
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if captured == nil || captured.ID == "" {
		t.Fatal("expected a session with an ID")
	}
	cookies := rec.Result().Cookies()
	var sessionCookie *http.Cookie
	for _, c := range cookies {
		if c.Name == sessionCookieName {
			sessionCookie = c
		}
	}
	if sessionCookie == nil {
		t.Fatal("session cookie not set")
	}

	// Replay the cookie; the channel must survive.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(sessionCookie)
	var replayed *SessionData
	h2 := Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		replayed = GetSession(r)
	}))
	h2.ServeHTTP(httptest.NewRecorder(), req)
	if got, ok := replayed.Channel(); !ok || got != channel.ChannelB {
		t.Fatalf("expected channelB after replay, got %v (%v)", got, ok)
	}
	if replayed.ID != captured.ID {
		t.Fatalf("session ID changed across requests")
	}
}

func TestTamperedCookieIsDiscarded(t *testing.T) {
	h := Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := GetSession(r)
		s.SetChannel(channel.ChannelC)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	c := rec.Result().Cookies()[0]
	c.Value = c.Value[:len(c.Value)-2] + "xx"

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(c)
	var s *SessionData
	Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s = GetSession(r)
	})).ServeHTTP(httptest.NewRecorder(), req)
	if _, ok := s.Channel(); ok {
		t.Fatal("tampered cookie must not carry state over")
	}
}

func TestSetRegistrationRotatesID(t *testing.T) {
	s := &SessionData{ID: "before", CSRFToken: "tok"}
	s.SetRegistration(gate.NewRegistration("a@b.com", time.Now()))
	if s.ID == "before" {
		t.Fatal("session ID must rotate on registration")
	}
	if reg, ok := s.Registration(); !ok || reg.Email != "a@b.com" {
		t.Fatalf("registration not stored: %+v %v", reg, ok)
	}
}

func TestRequireRegistrationRedirectsAndClears(t *testing.T) {
	registry := gate.NewRegistry(0)
	guarded := RequireRegistration(registry)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	run := func(s *SessionData, htmx bool) *httptest.ResponseRecorder {
		h := Session(guarded)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/program", nil)
		if htmx {
			req = req.WithContext(WithHTMX(req.Context(), true))
		}
		if s != nil {
			// Seed the cookie by running a priming request first.
			prime := httptest.NewRecorder()
			Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				sd := GetSession(r)
				sd.Email = s.Email
				sd.RegisteredAtMillis = s.RegisteredAtMillis
				sd.MarkDirty()
			})).ServeHTTP(prime, httptest.NewRequest(http.MethodGet, "/", nil))
			for _, c := range prime.Result().Cookies() {
				if c.Name == sessionCookieName {
					req.AddCookie(c)
				}
			}
		}
		h.ServeHTTP(rec, req)
		return rec
	}

	// No registration: redirect home.
	rec := run(nil, false)
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/" {
		t.Fatalf("expected 303 to /, got %d %q", rec.Code, rec.Header().Get("Location"))
	}

	// Valid registration passes.
	rec = run(&SessionData{Email: "a@b.com", RegisteredAtMillis: time.Now().UnixMilli()}, false)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for live registration, got %d", rec.Code)
	}

	// Expired registration bounces.
	old := time.Now().Add(-gate.ReVerifyAfter - time.Minute).UnixMilli()
	rec = run(&SessionData{Email: "a@b.com", RegisteredAtMillis: old}, false)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 for expired registration, got %d", rec.Code)
	}

	// htmx requests get HX-Redirect instead of a 3xx.
	rec = run(nil, true)
	if rec.Header().Get("HX-Redirect") != "/" {
		t.Fatalf("expected HX-Redirect header, got %q", rec.Header().Get("HX-Redirect"))
	}
}

func TestCSRFBlocksMissingToken(t *testing.T) {
	h := Session(CSRF(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/register/send-code", nil))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 without token, got %d", rec.Code)
	}
}

func TestCSRFAcceptsHeaderToken(t *testing.T) {
	h := Session(CSRF(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	// First GET yields the token pair.
	prime := httptest.NewRecorder()
	h.ServeHTTP(prime, httptest.NewRequest(http.MethodGet, "/", nil))
	var session, csrf *http.Cookie
	for _, c := range prime.Result().Cookies() {
		switch c.Name {
		case sessionCookieName:
			session = c
		case csrfCookieName:
			csrf = c
		}
	}
	if session == nil || csrf == nil {
		t.Fatal("expected session and csrf cookies")
	}

	req := httptest.NewRequest(http.MethodPost, "/register/send-code", nil)
	req.AddCookie(session)
	req.AddCookie(csrf)
	req.Header.Set("X-CSRF-Token", csrf.Value)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with matching token, got %d", rec.Code)
	}
}
