package main

import (
	"net/http"
	"time"

	"axiselect.app/web/internal/channel"
	handlersPkg "axiselect.app/web/internal/handlers"
	mw "axiselect.app/web/internal/middleware"
	"axiselect.app/web/internal/nav"
)

// pageData assembles the layout-level view model shared by every page:
// resolved channel, registration state, nav, and SEO defaults.
func (a *app) pageData(r *http.Request, title string) handlersPkg.PageData {
	lang := mw.Lang(r)
	s := mw.GetSession(r)
	ch := channel.Resolve(r.URL.Query(), s, a.cfg.DefaultChannel)

	authorized := false
	email := ""
	if reg, ok := s.Registration(); ok && reg.Authorized(time.Now()) {
		authorized = true
		email = reg.Email
	}

	vm := handlersPkg.PageData{
		Title:        title,
		Lang:         lang,
		Path:         r.URL.Path,
		Analytics:    handlersPkg.LoadAnalyticsFromEnv(),
		Channel:      ch,
		VersionLabel: channel.VersionLabel(ch),
		Authorized:   authorized,
		Email:        email,
		CSRFToken:    s.CSRFToken,
		SEO:          handlersPkg.DefaultSEO(title),
	}
	if authorized {
		vm.Nav = nav.Build(r.URL.Path)
	}
	vm.SEO.Canonical = absoluteURL(r)
	vm.SEO.OG.URL = vm.SEO.Canonical
	vm.SEO.OG.Title = title
	vm.SEO.OG.Description = vm.SEO.Description
	return vm
}
