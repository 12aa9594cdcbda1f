package middleware

import (
	"net/http"
	"time"

	"axiselect.app/web/internal/gate"
)

// Gate keeps the registration registry in sync with the session on every
// request, so the poller and any event subscribers see the cookie state.
func Gate(registry *gate.Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := GetSession(r)
			if reg, ok := s.Registration(); ok {
				registry.Observe(s.ID, reg)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireRegistration blocks content pages for visitors without a live
// registration. Expired records are cleared from the session on the way out
// so the next evaluation starts clean.
func RequireRegistration(registry *gate.Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := GetSession(r)
			reg, ok := s.Registration()
			if ok && reg.Authorized(time.Now()) {
				next.ServeHTTP(w, r)
				return
			}
			if ok {
				s.ClearRegistration()
			}
			if IsHTMX(r.Context()) {
				// htmx follows HX-Redirect instead of a plain 3xx.
				w.Header().Set("HX-Redirect", "/")
				w.WriteHeader(http.StatusOK)
				return
			}
			http.Redirect(w, r, "/", http.StatusSeeOther)
		})
	}
}
