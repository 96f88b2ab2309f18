package nav

import "strings"

// Link is a top-level navigation entry pointing at an in-page anchor.
type Link struct {
	ID    string // anchor id, e.g. "contact"
	Label string
}

// RenderedLink is the view model handed to templates.
type RenderedLink struct {
	ID     string
	Label  string
	Href   string
	Target string // value for data-scroll-target
}

// Anchor ids of the page sections.
const (
	AnchorAbout      = "about"
	AnchorExperience = "experience"
	AnchorProjects   = "projects"
	AnchorContact    = "contact"
)

// sections is the fixed navigation definition. It is never handed out directly.
var sections = []Link{
	{ID: AnchorAbout, Label: "About"},
	{ID: AnchorExperience, Label: "Experience"},
	{ID: AnchorProjects, Label: "Projects"},
	{ID: AnchorContact, Label: "Contact"},
}

// Links returns a copy of the navigation link set in display order.
func Links() []Link {
	out := make([]Link, len(sections))
	copy(out, sections)
	return out
}

// Lookup finds the link for an anchor id. Ids are matched after trimming
// whitespace and a leading '#'.
func Lookup(id string) (Link, bool) {
	id = normalizeID(id)
	if id == "" {
		return Link{}, false
	}
	for _, l := range sections {
		if l.ID == id {
			return l, true
		}
	}
	return Link{}, false
}

// Href returns the fragment URL for an anchor id. Browsers without script
// still jump to the section through it. A blank id yields "" so no link to
// the top of the page is produced.
func Href(id string) string {
	id = normalizeID(id)
	if id == "" {
		return ""
	}
	return "#" + id
}

// Build renders the navigation items.
func Build() []RenderedLink {
	items := make([]RenderedLink, 0, len(sections))
	for _, l := range sections {
		items = append(items, RenderedLink{
			ID:     l.ID,
			Label:  l.Label,
			Href:   Href(l.ID),
			Target: l.ID,
		})
	}
	return items
}

func normalizeID(id string) string {
	id = strings.TrimSpace(id)
	return strings.TrimPrefix(id, "#")
}
