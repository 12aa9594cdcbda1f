package main

import (
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"axiselect.app/web/internal/backend"
	"axiselect.app/web/internal/channel"
	mw "axiselect.app/web/internal/middleware"
)

// AssistantHandler renders the quick menu of external resources.
func (a *app) AssistantHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	vm := a.pageData(r, a.i18nOrDefault(lang, "assistant.title", "助手"))

	items, err := a.backend.MenuItems(r.Context())
	if err != nil {
		a.log.Warn("assistant load failed", zap.Error(err))
		vm.Error = backend.UserMessage(err)
	}
	vm.Page = buildAssistantView(items, vm.Channel)
	a.renderPage(w, r, "assistant", vm)
}

// ChannelOption is one selectable channel with its version label and
// account-opening link.
type ChannelOption struct {
	Code         channel.Code
	VersionLabel string
	JoinURL      string
}

// ChannelPickerHandler renders the channel selection page showing the
// current channel and the three versions.
func (a *app) ChannelPickerHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	vm := a.pageData(r, a.i18nOrDefault(lang, "channel.title", "渠道设置"))
	options := make([]ChannelOption, 0, 3)
	for _, c := range []channel.Code{channel.ChannelA, channel.ChannelB, channel.ChannelC} {
		options = append(options, ChannelOption{
			Code:         c,
			VersionLabel: channel.VersionLabel(c),
			JoinURL:      a.links.JoinURL(c),
		})
	}
	vm.Page = options
	a.renderPage(w, r, "channel", vm)
}

// ChannelSwitchHandler persists the chosen channel and redirects to the home
// page carrying exactly one channel marker.
func (a *app) ChannelSwitchHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	c, ok := channel.Parse(r.FormValue("channel"))
	if !ok {
		http.Error(w, "unknown channel", http.StatusBadRequest)
		return
	}
	s := mw.GetSession(r)
	s.SetChannel(c)

	target := &url.URL{Path: "/"}
	http.Redirect(w, r, channel.SwitchURL(target, c), http.StatusSeeOther)
}
