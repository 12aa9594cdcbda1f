package main

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"axiselect.app/web/internal/backend"
	"axiselect.app/web/internal/channel"
	"axiselect.app/web/internal/gate"
	mw "axiselect.app/web/internal/middleware"
)

// resendCooldown matches the client-side countdown before another code may
// be requested.
const resendCooldown = 60 * time.Second

// RegisterFormView is the state of the registration gate fragment.
type RegisterFormView struct {
	Lang      string
	CSRFToken string
	Email     string
	CodeSent  bool
	// Message is the success copy after a code went out.
	Message string
	// DevCode is shown only when the backend disclosed the code (dev).
	DevCode string
	// Error is the user-facing failure for the last action.
	Error string
	// CooldownSeconds drives the resend countdown.
	CooldownSeconds int
}

// SendCodeHandler requests a verification code for the submitted email and
// re-renders the gate fragment.
func (a *app) SendCodeHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	email := strings.TrimSpace(r.FormValue("email"))
	view := RegisterFormView{
		Lang:      lang,
		CSRFToken: mw.GetSession(r).CSRFToken,
		Email:     email,
	}

	// Shape check happens before any network call.
	if !backend.ValidEmail(email) {
		view.Error = a.i18nOrDefault(lang, "register.invalidEmail", "请输入有效的邮箱地址")
		a.renderTemplate(w, r, "frag_register_form", view)
		return
	}

	s := mw.GetSession(r)
	ch := channel.Resolve(r.URL.Query(), s, a.cfg.DefaultChannel)
	delivery, err := a.backend.SendVerificationCode(r.Context(), email, ch)
	if err != nil {
		view.Error = backend.UserMessage(err)
		a.renderTemplate(w, r, "frag_register_form", view)
		return
	}

	view.CodeSent = true
	view.Message = delivery.Message
	view.DevCode = delivery.DevCode
	view.CooldownSeconds = int(resendCooldown.Seconds())
	a.renderTemplate(w, r, "frag_register_form", view)
}

// VerifyCodeHandler checks the submitted code; on success the registration is
// written to the session and the page reloads into the authorized state.
func (a *app) VerifyCodeHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	email := strings.TrimSpace(r.FormValue("email"))
	code := strings.TrimSpace(r.FormValue("code"))

	s := mw.GetSession(r)
	view := RegisterFormView{
		Lang:      lang,
		CSRFToken: s.CSRFToken,
		Email:     email,
		CodeSent:  true,
	}

	if !backend.ValidEmail(email) {
		view.Error = a.i18nOrDefault(lang, "register.invalidEmail", "请输入有效的邮箱地址")
		a.renderTemplate(w, r, "frag_register_form", view)
		return
	}
	if len(code) != 6 {
		view.Error = a.i18nOrDefault(lang, "register.codeLength", "请输入6位验证码")
		a.renderTemplate(w, r, "frag_register_form", view)
		return
	}

	if err := a.backend.VerifyCode(r.Context(), email, code); err != nil {
		view.Error = backend.UserMessage(err)
		a.renderTemplate(w, r, "frag_register_form", view)
		return
	}

	reg := gate.NewRegistration(email, time.Now())
	s.SetRegistration(reg)
	a.registry.Observe(s.ID, reg)

	ch := channel.Resolve(r.URL.Query(), s, a.cfg.DefaultChannel)
	a.stats.RecordRegistration(email, ch)
	a.log.Info("visitor registered", zap.String("channel", string(ch)))

	if mw.IsHTMX(r.Context()) {
		// Full reload so the layout picks up the authorized state.
		w.Header().Set("HX-Refresh", "true")
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// SessionEndHandler receives the page-close beacon and records the session
// end. Beacons carry the CSRF token in the form body.
func (a *app) SessionEndHandler(w http.ResponseWriter, r *http.Request) {
	s := mw.GetSession(r)
	if reg, ok := s.Registration(); ok {
		a.stats.EndSession(reg.Email)
	}
	w.WriteHeader(http.StatusNoContent)
}

// RegistrationEventsHandler streams authorization status transitions for the
// visitor's session as server-sent events, so other open tabs flip without a
// reload.
func (a *app) RegistrationEventsHandler(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	s := mw.GetSession(r)
	if s.ID == "" {
		http.Error(w, "no session", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	updates := a.registry.Subscribe(r.Context(), s.ID)
	heartbeat := time.NewTicker(25 * time.Second)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-heartbeat.C:
			// Comment line keeps proxies from closing the idle stream.
			fmt.Fprint(w, ": ping\n\n")
			flusher.Flush()
		case status, open := <-updates:
			if !open {
				return
			}
			fmt.Fprintf(w, "event: registration\ndata: %s\n\n", status)
			flusher.Flush()
		}
	}
}
