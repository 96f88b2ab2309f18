package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Chip renders a pill-shaped label.
func Chip(text string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.open("span", "class", "chip", "data-chip", "")
		h.text(text)
		h.close("span")
		return h.err
	})
}

// CardProps are the fields of a display card. Subtitle is optional.
type CardProps struct {
	Title    string
	Subtitle string
	Bullets  []string
}

// Card renders a titled card with an ordered bullet list. The subtitle node
// is only emitted when a subtitle is given.
func Card(p CardProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.open("article", "class", "card card--hover", "data-card", "")
		h.open("div", "class", "card__head")
		h.open("h3", "class", "card__title")
		h.text(p.Title)
		h.close("h3")
		if p.Subtitle != "" {
			h.open("p", "class", "card__subtitle", "data-card-subtitle", "")
			h.text(p.Subtitle)
			h.close("p")
		}
		h.close("div")
		h.open("ul", "class", "card__bullets")
		for _, b := range p.Bullets {
			h.open("li", "class", "card__bullet", "data-card-bullet", "")
			h.raw(`<span class="dot" aria-hidden="true"></span>`)
			h.open("span")
			h.text(b)
			h.close("span")
			h.close("li")
		}
		h.close("ul")
		h.close("article")
		return h.err
	})
}

// Metric renders a labelled value tile.
func Metric(label, value string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.open("div", "class", "metric", "data-metric", "")
		h.open("div", "class", "metric__label")
		h.text(label)
		h.close("div")
		h.open("div", "class", "metric__value")
		h.text(value)
		h.close("div")
		h.close("div")
		return h.err
	})
}

// ProjectCardProps are the fields of a project card. DescriptionHTML must be
// sanitized; when empty, Description is rendered as text.
type ProjectCardProps struct {
	Title           string
	Tag             string
	Description     string
	DescriptionHTML string
	LinkLabel       string
}

// ProjectCard renders a project summary with a role tag.
func ProjectCard(p ProjectCardProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.open("article", "class", "card card--hover project", "data-project", "")
		h.open("div", "class", "project__head")
		h.open("h3", "class", "card__title")
		h.text(p.Title)
		h.close("h3")
		h.open("span", "class", "tag", "data-project-tag", "")
		h.text(p.Tag)
		h.close("span")
		h.close("div")
		h.open("div", "class", "project__desc")
		if p.DescriptionHTML != "" {
			h.component(templ.Raw(p.DescriptionHTML))
		} else {
			h.open("p")
			h.text(p.Description)
			h.close("p")
		}
		h.close("div")
		if p.LinkLabel != "" {
			h.open("div", "class", "project__more")
			h.text(p.LinkLabel)
			h.close("div")
		}
		h.close("article")
		return h.err
	})
}

// Section renders an anchored page section. The id is the scroll target of
// navigation entries.
func Section(id, title string, children templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.open("section", "id", id, "class", "section", "data-section", id)
		h.open("div", "class", "section__head")
		h.open("h2", "class", "section__title")
		h.text(title)
		h.close("h2")
		h.raw(`<div class="rule"></div>`)
		h.close("div")
		h.component(children)
		h.close("section")
		return h.err
	})
}
