package main

import (
	"html/template"

	"axiselect.app/web/internal/backend"
	"axiselect.app/web/internal/channel"
	"axiselect.app/web/internal/content"
	"axiselect.app/web/internal/markdown"
)

// ContactView carries the channel-filtered support contacts and notices.
type ContactView struct {
	Teams []SupportTeamView
	Tips  []TipView
}

type SupportTeamView struct {
	NameEN string
	NameCN string
	Email  string
}

type TipView struct {
	Type  string
	Title string
	Body  template.HTML
}

func buildContactView(teams []backend.SupportTeam, tips []backend.MoreTip, ch channel.Code) ContactView {
	v := ContactView{}
	for _, t := range content.Visible(teams, ch) {
		v.Teams = append(v.Teams, SupportTeamView{
			NameEN: t.TeamNameEN,
			NameCN: t.TeamNameCN,
			Email:  t.Email,
		})
	}
	for _, t := range content.Visible(tips, ch) {
		v.Tips = append(v.Tips, TipView{
			Type:  t.TipType,
			Title: t.Title,
			Body:  markdown.Render(t.Content),
		})
	}
	return v
}

// AssistantView carries the channel-filtered quick menu.
type AssistantView struct {
	Items []MenuItemView
}

type MenuItemView struct {
	Title string
	URL   string
	Icon  string
}

func buildAssistantView(items []backend.MenuItem, ch channel.Code) AssistantView {
	v := AssistantView{}
	for _, it := range content.Visible(items, ch) {
		v.Items = append(v.Items, MenuItemView{
			Title: it.Title,
			URL:   it.URL,
			Icon:  deref(it.Icon),
		})
	}
	return v
}
