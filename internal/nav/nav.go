package nav

import (
    "strings"
)

// Item represents a top-level navigation item.
type Item struct {
    Path     string // e.g. "/program"
    LabelKey string // i18n key, e.g. "nav.program"
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
    Href     string
    LabelKey string
    Active   bool
}

// Main is the primary navigation definition. Everything past the home page
// sits behind the registration gate, so the bar is only rendered for
// authorized visitors.
var Main = []Item{
    {Path: "/", LabelKey: "nav.home"},
    {Path: "/program", LabelKey: "nav.program"},
    {Path: "/getting-started", LabelKey: "nav.gettingStarted"},
    {Path: "/rules", LabelKey: "nav.rules"},
    {Path: "/faq", LabelKey: "nav.faq"},
    {Path: "/contact", LabelKey: "nav.contact"},
}

// Build renders navigation items with active state given the current path.
func Build(currentPath string) []RenderedItem {
    if currentPath == "" {
        currentPath = "/"
    }
    items := make([]RenderedItem, 0, len(Main))
    for _, it := range Main {
        items = append(items, RenderedItem{
            Href:     it.Path,
            LabelKey: it.LabelKey,
            Active:   isActive(it.Path, currentPath),
        })
    }
    return items
}

func isActive(itemPath, currentPath string) bool {
    if itemPath == "/" {
        return currentPath == "/"
    }
    // match exact or prefix boundary: "/faq" or "/faq/..."
    if currentPath == itemPath {
        return true
    }
    return strings.HasPrefix(currentPath, itemPath+"/")
}
