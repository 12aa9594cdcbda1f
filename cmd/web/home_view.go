package main

import (
	"html/template"

	"axiselect.app/web/internal/backend"
	"axiselect.app/web/internal/markdown"
)

// HomeView aggregates the landing page content blocks.
type HomeView struct {
	Highlights  []HighlightView
	CaseStudies []CaseStudyView
	LiveStreams []LiveStreamView
	RiskWarning *RiskWarningView

	// RegisterForm is the gate fragment state, set for unauthorized visitors.
	RegisterForm RegisterFormView

	// LoadError is the user-facing message when the content fetch failed;
	// the gate and already-loaded blocks still render.
	LoadError string
}

type HighlightView struct {
	Title       string
	Description string
}

type CaseStudyView struct {
	Name     string
	VideoURL string
}

type LiveStreamView struct {
	Name      string
	StreamURL string
}

type RiskWarningView struct {
	Title string
	Body  template.HTML
}

func buildHomeView(rows homeRows) HomeView {
	v := HomeView{}
	for _, h := range rows.highlights {
		v.Highlights = append(v.Highlights, HighlightView{
			Title:       h.Title,
			Description: h.Description,
		})
	}
	for _, c := range rows.caseStudies {
		// Rows without a video are placeholders in the CMS; skip them.
		if deref(c.VideoURL) == "" {
			continue
		}
		v.CaseStudies = append(v.CaseStudies, CaseStudyView{
			Name:     deref(c.Name),
			VideoURL: deref(c.VideoURL),
		})
	}
	for _, s := range rows.liveStreams {
		if deref(s.StreamURL) == "" {
			continue
		}
		v.LiveStreams = append(v.LiveStreams, LiveStreamView{
			Name:      deref(s.Name),
			StreamURL: deref(s.StreamURL),
		})
	}
	if rows.riskWarning != nil {
		v.RiskWarning = &RiskWarningView{
			Title: rows.riskWarning.Title,
			Body:  markdown.Render(rows.riskWarning.Content),
		}
	}
	return v
}

type homeRows struct {
	highlights  []backend.Highlight
	caseStudies []backend.CaseStudy
	liveStreams []backend.FinanceLiveStream
	riskWarning *backend.RiskWarning
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
