package main

import (
	"net/http"

	"go.uber.org/zap"

	"axiselect.app/web/internal/backend"
	mw "axiselect.app/web/internal/middleware"
)

// HomeHandler renders the landing page: the content blocks for everyone plus
// either the registration gate or the signed-in banner.
func (a *app) HomeHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	title := a.i18nOrDefault(lang, "home.title", "考核助手")
	vm := a.pageData(r, title)

	ctx := r.Context()
	var rows homeRows
	var loadErr error

	if rows.highlights, loadErr = a.backend.Highlights(ctx); loadErr == nil {
		if rows.caseStudies, loadErr = a.backend.CaseStudies(ctx); loadErr == nil {
			if rows.liveStreams, loadErr = a.backend.FinanceLiveStreams(ctx); loadErr == nil {
				rows.riskWarning, loadErr = a.backend.RiskWarning(ctx)
			}
		}
	}

	view := buildHomeView(rows)
	if loadErr != nil {
		a.log.Warn("home content load failed", zap.Error(loadErr))
		view.LoadError = backend.UserMessage(loadErr)
	}
	if !vm.Authorized {
		view.RegisterForm = RegisterFormView{Lang: lang, CSRFToken: vm.CSRFToken}
	}
	vm.Page = view

	if vm.Authorized {
		a.stats.StartSession(vm.Email)
	}
	a.renderPage(w, r, "home", vm)
}
