package handlers

import (
	"axiselect.app/web/internal/channel"
	"axiselect.app/web/internal/nav"
)

// PageData is a generic view model for pages using the shared layout.
type PageData struct {
	Title     string
	Lang      string
	SEO       SEOData
	Analytics Analytics

	Path string
	Nav  []nav.RenderedItem

	// Visitor state rendered by the layout.
	Channel      channel.Code
	VersionLabel string
	Authorized   bool
	Email        string
	CSRFToken    string

	// Optional per-page view model payload
	Page any

	// Error carries a user-facing failure to render above the page body.
	Error string
}
