package main

import (
	"net/http"

	"go.uber.org/zap"

	"axiselect.app/web/internal/backend"
	mw "axiselect.app/web/internal/middleware"
)

// ProgramHandler renders the challenge program introduction.
func (a *app) ProgramHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	vm := a.pageData(r, a.i18nOrDefault(lang, "program.title", "计划介绍"))

	rows, err := a.backend.ProgramContent(r.Context())
	if err != nil {
		a.log.Warn("program content load failed", zap.Error(err))
		vm.Error = backend.UserMessage(err)
	}
	vm.Page = buildProgramView(rows)
	a.renderPage(w, r, "program", vm)
}

// GettingStartedHandler renders the onboarding walkthrough with the
// channel-specific account-opening link.
func (a *app) GettingStartedHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	vm := a.pageData(r, a.i18nOrDefault(lang, "gettingStarted.title", "启动流程"))

	rows, err := a.backend.GettingStartedSteps(r.Context())
	if err != nil {
		a.log.Warn("getting-started load failed", zap.Error(err))
		vm.Error = backend.UserMessage(err)
	}
	vm.Page = buildStepViews(rows, a.links.JoinURL(vm.Channel))
	a.renderPage(w, r, "getting_started", vm)
}

// RulesHandler renders the violation rules.
func (a *app) RulesHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	vm := a.pageData(r, a.i18nOrDefault(lang, "rules.title", "违规说明"))

	rows, err := a.backend.ViolationRules(r.Context())
	if err != nil {
		a.log.Warn("rules load failed", zap.Error(err))
		vm.Error = backend.UserMessage(err)
	}
	vm.Page = buildRuleViews(rows)
	a.renderPage(w, r, "rules", vm)
}

// FAQHandler renders the frequently asked questions.
func (a *app) FAQHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	vm := a.pageData(r, a.i18nOrDefault(lang, "faq.title", "常见问题"))

	rows, err := a.backend.FAQItems(r.Context())
	if err != nil {
		a.log.Warn("faq load failed", zap.Error(err))
		vm.Error = backend.UserMessage(err)
	}
	vm.Page = buildFAQViews(rows)
	a.renderPage(w, r, "faq", vm)
}
