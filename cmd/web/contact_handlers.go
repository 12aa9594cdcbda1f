package main

import (
	"net/http"

	"go.uber.org/zap"

	"axiselect.app/web/internal/backend"
	mw "axiselect.app/web/internal/middleware"
)

// ContactHandler renders the support page: contact teams and extra notices
// filtered to the visitor's channel.
func (a *app) ContactHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	vm := a.pageData(r, a.i18nOrDefault(lang, "contact.title", "联系支持"))

	ctx := r.Context()
	teams, err := a.backend.SupportTeams(ctx)
	var tips []backend.MoreTip
	if err == nil {
		tips, err = a.backend.MoreTips(ctx)
	}
	if err != nil {
		a.log.Warn("contact load failed", zap.Error(err))
		vm.Error = backend.UserMessage(err)
	}
	vm.Page = buildContactView(teams, tips, vm.Channel)
	a.renderPage(w, r, "contact", vm)
}
