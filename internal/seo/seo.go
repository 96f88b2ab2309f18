package seo

import (
	"strings"

	"github.com/sia816/my-3d-portfolio/internal/content"
)

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	SiteName    string
}

type Twitter struct {
	Card  string
	Image string
}

type Meta struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	OG          OpenGraph
	Twitter     Twitter
	JSONLD      []string
}

// ForProfile builds the head metadata of the portfolio page. baseURL may be
// empty, in which case canonical and absolute URLs are omitted.
func ForProfile(p content.Profile, baseURL string) Meta {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	title := p.Name + " – " + p.Tagline
	desc := strings.TrimSpace(p.Description)
	if desc == "" {
		desc = strings.TrimSpace(p.Hero.Intro)
	}
	m := Meta{
		Title:       title,
		Description: desc,
		Robots:      "index,follow",
		OG: OpenGraph{
			Title:       title,
			Description: desc,
			Type:        "profile",
			SiteName:    p.Name,
		},
		Twitter: Twitter{Card: "summary"},
	}
	if baseURL != "" {
		m.Canonical = baseURL + "/"
		m.OG.URL = m.Canonical
	}
	m.JSONLD = []string{
		JSON(Person(p.Owner, m.Canonical, p.Email(), p.SameAs())),
	}
	if m.Canonical != "" {
		m.JSONLD = append(m.JSONLD, JSON(WebSite(p.Name, m.Canonical)))
	}
	return m
}
