package components

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/sia816/my-3d-portfolio/internal/content"
	"github.com/sia816/my-3d-portfolio/internal/nav"
)

// ScrollButton renders a trigger that smooth-scrolls to an in-page anchor.
// The href keeps the jump working when scripts are disabled. A blank target
// renders an inert button with neither href nor scroll target.
func ScrollButton(label, target, variant string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		class := "btn"
		if variant != "" {
			class += " btn--" + variant
		}
		if href := nav.Href(target); href != "" {
			h.open("a", "class", class, "href", href, "data-scroll-target", strings.TrimPrefix(href, "#"))
		} else {
			h.open("a", "class", class)
		}
		h.text(label)
		h.close("a")
		return h.err
	})
}

// NavBar renders the section navigation entries.
func NavBar(links []nav.RenderedLink) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.open("nav", "class", "nav", "aria-label", "Sections")
		for _, l := range links {
			h.open("a", "class", "nav__link", "href", l.Href, "data-scroll-target", l.Target, "data-nav", l.ID)
			h.text(l.Label)
			h.close("a")
		}
		h.close("nav")
		return h.err
	})
}

// Header renders the sticky top bar: brand, navigation and resume link.
func Header(p content.Profile, links []nav.RenderedLink) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.open("header", "class", "topbar")
		h.open("div", "class", "container topbar__inner")

		h.open("div", "class", "brand")
		h.open("div", "class", "brand__mark", "aria-hidden", "true")
		h.text(p.Monogram)
		h.close("div")
		h.open("div")
		h.open("div", "class", "brand__name")
		h.text(p.Name)
		h.close("div")
		h.open("div", "class", "brand__tagline")
		h.text(p.Tagline)
		h.close("div")
		h.close("div")
		h.close("div")

		h.component(NavBar(links))

		if p.Resume.URL != "" {
			h.open("a", "class", "btn btn--dark", "href", safeURL(p.Resume.URL), "data-resume", "")
			h.text(p.Resume.Label)
			h.close("a")
		}

		h.close("div")
		h.close("header")
		return h.err
	})
}

// ContactBlock renders the contact value and outbound links. External links
// open in a new tab.
func ContactBlock(c content.Contact) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.open("div", "class", "card contact")
		h.open("div")
		h.open("div", "class", "contact__label")
		h.text(c.Label)
		h.close("div")
		h.open("div", "class", "contact__value", "data-contact-value", "")
		h.text(c.Value)
		h.close("div")
		h.close("div")
		h.open("div", "class", "contact__links")
		for _, l := range c.Links {
			class := "btn btn--outline"
			if l.Primary {
				class = "btn btn--dark"
			}
			href := safeURL(l.URL)
			if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
				h.open("a", "class", class, "href", href, "target", "_blank", "rel", "noopener noreferrer", "data-contact-link", "")
			} else {
				h.open("a", "class", class, "href", href, "data-contact-link", "")
			}
			h.text(l.Label)
			h.close("a")
		}
		h.close("div")
		h.close("div")
		return h.err
	})
}

// Footer renders the copyright line.
func Footer(year int, owner string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.open("footer", "class", "footer")
		h.open("div", "class", "container")
		h.text("© " + strconv.Itoa(year) + " " + owner)
		h.close("div")
		h.close("footer")
		return h.err
	})
}
