package main

import (
	"html/template"

	"axiselect.app/web/internal/backend"
	"axiselect.app/web/internal/markdown"
)

// ProgramView groups the program page blocks by section type.
type ProgramView struct {
	Intros   []ProgramIntro
	Stages   []ProgramStage
	Glossary []ProgramTerm
}

type ProgramIntro struct {
	Title string
	Body  template.HTML
}

// ProgramStage is one tier of the challenge ladder. All figures are
// display-ready strings straight from the CMS.
type ProgramStage struct {
	Name           string
	MinEquity      string
	EdgeScore      string
	MaxMultiplier  string
	MaxCapital     string
	ProfitShare    string
	ProfitTarget   string
	Duration       string
	TradesPerStage string
	Leverage       string
	MaxLoss        string
}

type ProgramTerm struct {
	Keyword    string
	Definition string
}

func buildProgramView(rows []backend.ProgramContent) ProgramView {
	v := ProgramView{}
	for _, row := range rows {
		switch row.SectionType {
		case "intro":
			v.Intros = append(v.Intros, ProgramIntro{
				Title: deref(row.Title),
				Body:  markdown.Render(deref(row.Content)),
			})
		case "stage":
			v.Stages = append(v.Stages, ProgramStage{
				Name:           deref(row.StageName),
				MinEquity:      deref(row.MinEquity),
				EdgeScore:      deref(row.EdgeScore),
				MaxMultiplier:  deref(row.MaxMultiplier),
				MaxCapital:     deref(row.MaxCapital),
				ProfitShare:    deref(row.ProfitShare),
				ProfitTarget:   deref(row.ProfitTarget),
				Duration:       deref(row.StageDuration),
				TradesPerStage: deref(row.TradesPerStage),
				Leverage:       deref(row.Leverage),
				MaxLoss:        deref(row.MaxLoss),
			})
		case "glossary":
			v.Glossary = append(v.Glossary, ProgramTerm{
				Keyword:    deref(row.Keyword),
				Definition: deref(row.Definition),
			})
		}
	}
	return v
}

// StepView is one onboarding step; JoinURL is filled on the step that links
// to account opening.
type StepView struct {
	Number   int
	Title    string
	Detail   string
	Icon     string
	LinkText string
	JoinURL  string
}

func buildStepViews(rows []backend.GettingStartedStep, joinURL string) []StepView {
	out := make([]StepView, 0, len(rows))
	for i, row := range rows {
		s := StepView{
			Number: i + 1,
			Title:  row.Title,
			Detail: row.Detail,
			Icon:   deref(row.IconName),
		}
		if text := deref(row.Links); text != "" {
			s.LinkText = text
			s.JoinURL = joinURL
		}
		out = append(out, s)
	}
	return out
}

// RuleView is one violation rule row.
type RuleView struct {
	Title       string
	Definition  string
	Consequence string
}

func buildRuleViews(rows []backend.ViolationRule) []RuleView {
	out := make([]RuleView, 0, len(rows))
	for _, row := range rows {
		out = append(out, RuleView{
			Title:       row.Title,
			Definition:  row.Definition,
			Consequence: row.Consequence,
		})
	}
	return out
}

// FAQView is one rendered question.
type FAQView struct {
	Question string
	Answer   template.HTML
}

func buildFAQViews(rows []backend.FAQItem) []FAQView {
	out := make([]FAQView, 0, len(rows))
	for _, row := range rows {
		out = append(out, FAQView{
			Question: row.Question,
			Answer:   markdown.Render(row.Answer),
		})
	}
	return out
}
