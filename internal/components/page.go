package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/sia816/my-3d-portfolio/internal/content"
	"github.com/sia816/my-3d-portfolio/internal/nav"
	"github.com/sia816/my-3d-portfolio/internal/seo"
	"github.com/sia816/my-3d-portfolio/internal/viewer"
)

// Static asset paths referenced by the page.
const (
	StylesheetPath   = "/static/css/site.css"
	ScrollScriptPath = "/static/js/scroll.js"
)

// HomeData is everything the portfolio page is rendered from.
type HomeData struct {
	Profile content.Profile
	Links   []nav.RenderedLink
	Viewer  viewer.Config
	Meta    seo.Meta
	Year    int
}

// NewHomeData assembles the page data from the profile and viewer
// configuration. baseURL may be empty.
func NewHomeData(p content.Profile, v viewer.Config, baseURL string, year int) HomeData {
	return HomeData{
		Profile: p,
		Links:   nav.Build(),
		Viewer:  v,
		Meta:    seo.ForProfile(p, baseURL),
		Year:    year,
	}
}

// Home renders the complete portfolio document.
func Home(d HomeData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.raw("<!DOCTYPE html>")
		h.open("html", "lang", d.Profile.Lang)
		h.component(head(d))
		h.open("body")
		h.component(Header(d.Profile, d.Links))
		h.open("main", "class", "container")
		h.component(hero(d.Profile, d.Viewer))
		h.component(Section(nav.AnchorAbout, d.Profile.About.Title, about(d.Profile.About)))
		h.component(Section(nav.AnchorExperience, d.Profile.Experience.Title, experience(d.Profile.Experience)))
		h.component(Section(nav.AnchorProjects, d.Profile.Projects.Title, projects(d.Profile.Projects)))
		h.component(Section(nav.AnchorContact, d.Profile.Contact.Title, ContactBlock(d.Profile.Contact)))
		h.close("main")
		h.component(Footer(d.Year, d.Profile.Owner))
		h.raw(`<script src="`, ScrollScriptPath, `" defer></script>`)
		h.close("body")
		h.close("html")
		return h.err
	})
}

func head(d HomeData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := d.Meta
		h := newWriter(ctx, w)
		h.open("head")
		h.raw(`<meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.open("title")
		h.text(m.Title)
		h.close("title")
		meta := func(attr, key, value string) {
			if value == "" {
				return
			}
			h.open("meta", attr, key, "content", value)
		}
		meta("name", "description", m.Description)
		meta("name", "robots", m.Robots)
		if m.Canonical != "" {
			h.open("link", "rel", "canonical", "href", m.Canonical)
		}
		meta("property", "og:title", m.OG.Title)
		meta("property", "og:description", m.OG.Description)
		meta("property", "og:type", m.OG.Type)
		meta("property", "og:url", m.OG.URL)
		meta("property", "og:site_name", m.OG.SiteName)
		meta("property", "og:image", m.OG.Image)
		meta("name", "twitter:card", m.Twitter.Card)
		meta("name", "twitter:image", m.Twitter.Image)
		h.open("link", "rel", "stylesheet", "href", StylesheetPath)
		h.component(ViewerScript(d.Viewer))
		for _, ld := range m.JSONLD {
			if ld == "" {
				continue
			}
			h.raw(`<script type="application/ld+json">`, ld, `</script>`)
		}
		h.close("head")
		return h.err
	})
}

func hero(p content.Profile, cfg viewer.Config) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.open("section", "class", "hero")

		h.open("div", "class", "hero__copy")
		h.open("h1", "class", "hero__title")
		h.text(p.Hero.Greeting)
		if p.Hero.Highlight != "" {
			h.raw("<br>")
			h.open("span", "class", "hero__highlight")
			h.text(p.Hero.Highlight)
			h.close("span")
		}
		h.close("h1")
		h.open("p", "class", "hero__intro")
		h.text(p.Hero.Intro)
		h.close("p")
		h.open("div", "class", "chips")
		for _, c := range p.Hero.Chips {
			h.component(Chip(c))
		}
		h.close("div")
		h.open("div", "class", "hero__actions")
		for i, a := range p.Hero.Actions {
			variant := "outline"
			if i == 0 {
				variant = "dark"
			}
			h.component(ScrollButton(a.Label, a.Target, variant))
		}
		h.close("div")
		h.close("div")

		h.open("div", "class", "card viewer-card")
		h.open("div", "class", "viewer-card__head")
		h.open("div", "class", "viewer-card__title")
		h.text(p.Viewer.Title)
		h.close("div")
		if p.Viewer.Badge != "" {
			h.open("span", "class", "tag")
			h.text(p.Viewer.Badge)
			h.close("span")
		}
		h.close("div")
		h.component(ModelViewer(cfg))
		if p.Viewer.Hint != "" {
			h.open("p", "class", "viewer-card__hint")
			h.text(p.Viewer.Hint)
			h.close("p")
		}
		h.close("div")

		h.close("section")
		return h.err
	})
}

func about(a content.About) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.open("div", "class", "grid grid--about")
		h.open("div", "class", "card")
		if a.SummaryHTML != "" {
			h.open("div", "class", "about__summary")
			h.component(templ.Raw(a.SummaryHTML))
			h.close("div")
		}
		h.open("div", "class", "metrics")
		for _, m := range a.Metrics {
			h.component(Metric(m.Label, m.Value))
		}
		h.close("div")
		h.close("div")
		if len(a.Facts) > 0 {
			h.open("div", "class", "card")
			h.open("div", "class", "facts__title")
			h.text(a.FactsTitle)
			h.close("div")
			h.open("ul", "class", "facts")
			for _, f := range a.Facts {
				h.open("li")
				h.text(f)
				h.close("li")
			}
			h.close("ul")
			h.close("div")
		}
		h.close("div")
		return h.err
	})
}

func experience(e content.Experience) templ.Component {
	cards := make([]templ.Component, 0, len(e.Items))
	for _, c := range e.Items {
		cards = append(cards, Card(CardProps{Title: c.Title, Subtitle: c.Subtitle, Bullets: c.Bullets}))
	}
	return grid("grid grid--two", cards)
}

func projects(p content.Projects) templ.Component {
	cards := make([]templ.Component, 0, len(p.Items))
	for _, pr := range p.Items {
		cards = append(cards, ProjectCard(ProjectCardProps{
			Title:           pr.Title,
			Tag:             pr.Tag,
			Description:     pr.Description,
			DescriptionHTML: pr.DescriptionHTML,
			LinkLabel:       p.LinkLabel,
		}))
	}
	return grid("grid grid--three", cards)
}

func grid(class string, children []templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.open("div", "class", class)
		h.component(group(children...))
		h.close("div")
		return h.err
	})
}
