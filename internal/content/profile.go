package content

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/sia816/my-3d-portfolio/internal/nav"
)

//go:embed profile.yaml
var defaultProfile []byte

// Profile is the literal display data of the portfolio page.
type Profile struct {
	Lang        string     `yaml:"lang"`
	Name        string     `yaml:"name"`
	Monogram    string     `yaml:"monogram"`
	Tagline     string     `yaml:"tagline"`
	Owner       string     `yaml:"owner"`
	Description string     `yaml:"description"`
	Resume      Link       `yaml:"resume"`
	Hero        Hero       `yaml:"hero"`
	Viewer      ViewerCard `yaml:"viewer"`
	About       About      `yaml:"about"`
	Experience  Experience `yaml:"experience"`
	Projects    Projects   `yaml:"projects"`
	Contact     Contact    `yaml:"contact"`
}

// Link is a labelled URL.
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Hero is the introduction block at the top of the page.
type Hero struct {
	Greeting  string   `yaml:"greeting"`
	Highlight string   `yaml:"highlight"`
	Intro     string   `yaml:"intro"`
	Chips     []string `yaml:"chips"`
	Actions   []Action `yaml:"actions"`
}

// Action is a call-to-action button that scrolls to a section.
type Action struct {
	Label  string `yaml:"label"`
	Target string `yaml:"target"`
}

// ViewerCard holds the copy around the 3D viewer.
type ViewerCard struct {
	Title string `yaml:"title"`
	Hint  string `yaml:"hint"`
	Badge string `yaml:"badge"`
}

// About is the biography section.
type About struct {
	Title      string   `yaml:"title"`
	Summary    string   `yaml:"summary"`
	Metrics    []Metric `yaml:"metrics"`
	FactsTitle string   `yaml:"facts_title"`
	Facts      []string `yaml:"facts"`

	SummaryHTML string `yaml:"-"`
}

// Metric is a labelled value tile.
type Metric struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// Experience is the work experience section.
type Experience struct {
	Title string `yaml:"title"`
	Items []Card `yaml:"items"`
}

// Card is a display card with an optional subtitle.
type Card struct {
	Title    string   `yaml:"title"`
	Subtitle string   `yaml:"subtitle"`
	Bullets  []string `yaml:"bullets"`
}

// Projects is the projects section.
type Projects struct {
	Title     string    `yaml:"title"`
	LinkLabel string    `yaml:"link_label"`
	Items     []Project `yaml:"items"`
}

// Project is a project card. Description is markdown.
type Project struct {
	Title       string `yaml:"title"`
	Tag         string `yaml:"tag"`
	Description string `yaml:"description"`

	DescriptionHTML string `yaml:"-"`
}

// Contact is the contact section.
type Contact struct {
	Title string        `yaml:"title"`
	Label string        `yaml:"label"`
	Value string        `yaml:"value"`
	Links []ContactLink `yaml:"links"`
}

// ContactLink is an outbound contact link.
type ContactLink struct {
	Label   string `yaml:"label"`
	URL     string `yaml:"url"`
	Primary bool   `yaml:"primary"`
}

// ValidationError is returned when display fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("content validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the offending field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Default returns the embedded profile, validated and with markdown rendered.
func Default() (Profile, error) {
	return Parse(defaultProfile)
}

// Load reads a profile from path. An empty path selects the embedded profile.
func Load(path string) (Profile, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Profile{}, fmt.Errorf("content: profile %s not found: %w", path, err)
		}
		return Profile{}, fmt.Errorf("content: read %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return Profile{}, fmt.Errorf("content: %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes, validates and prepares a YAML profile document.
func Parse(data []byte) (Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("parse profile: %w", err)
	}
	p.normalize()
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	if err := p.render(NewMarkdown()); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func (p *Profile) normalize() {
	if p.Lang == "" {
		p.Lang = "en"
	}
	if p.Monogram == "" && p.Name != "" {
		p.Monogram = string([]rune(p.Name)[:1])
	}
	if p.Owner == "" {
		p.Owner = p.Name
	}
	if p.About.Title == "" {
		p.About.Title = "About"
	}
	if p.Experience.Title == "" {
		p.Experience.Title = "Experience"
	}
	if p.Projects.Title == "" {
		p.Projects.Title = "Projects"
	}
	if p.Contact.Title == "" {
		p.Contact.Title = "Contact"
	}
	for i := range p.Hero.Actions {
		p.Hero.Actions[i].Target = strings.TrimPrefix(strings.TrimSpace(p.Hero.Actions[i].Target), "#")
	}
}

// Validate reports every display field that is empty or refers to an
// unknown anchor.
func (p Profile) Validate() error {
	var missing []string
	need := func(name, v string) {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}

	if _, err := language.Parse(p.Lang); err != nil {
		missing = append(missing, "Lang")
	}
	need("Name", p.Name)
	need("Tagline", p.Tagline)
	need("Hero.Greeting", p.Hero.Greeting)
	need("Hero.Intro", p.Hero.Intro)
	for i, c := range p.Hero.Chips {
		need(fmt.Sprintf("Hero.Chips[%d]", i), c)
	}
	for i, a := range p.Hero.Actions {
		need(fmt.Sprintf("Hero.Actions[%d].Label", i), a.Label)
		if _, ok := nav.Lookup(a.Target); !ok {
			missing = append(missing, fmt.Sprintf("Hero.Actions[%d].Target", i))
		}
	}
	if p.Resume.URL != "" {
		need("Resume.Label", p.Resume.Label)
	}
	for i, m := range p.About.Metrics {
		need(fmt.Sprintf("About.Metrics[%d].Label", i), m.Label)
		need(fmt.Sprintf("About.Metrics[%d].Value", i), m.Value)
	}
	for i, f := range p.About.Facts {
		need(fmt.Sprintf("About.Facts[%d]", i), f)
	}
	for i, c := range p.Experience.Items {
		need(fmt.Sprintf("Experience.Items[%d].Title", i), c.Title)
		for j, b := range c.Bullets {
			need(fmt.Sprintf("Experience.Items[%d].Bullets[%d]", i, j), b)
		}
	}
	for i, pr := range p.Projects.Items {
		need(fmt.Sprintf("Projects.Items[%d].Title", i), pr.Title)
		need(fmt.Sprintf("Projects.Items[%d].Tag", i), pr.Tag)
		need(fmt.Sprintf("Projects.Items[%d].Description", i), pr.Description)
	}
	need("Contact.Value", p.Contact.Value)
	for i, l := range p.Contact.Links {
		need(fmt.Sprintf("Contact.Links[%d].Label", i), l.Label)
		need(fmt.Sprintf("Contact.Links[%d].URL", i), l.URL)
	}

	if len(missing) > 0 {
		return &ValidationError{fields: missing}
	}
	return nil
}

func (p *Profile) render(md *Markdown) error {
	if p.About.Summary != "" {
		html, err := md.Render(p.About.Summary)
		if err != nil {
			return fmt.Errorf("render About.Summary: %w", err)
		}
		p.About.SummaryHTML = html
	}
	for i := range p.Projects.Items {
		html, err := md.Render(p.Projects.Items[i].Description)
		if err != nil {
			return fmt.Errorf("render Projects.Items[%d].Description: %w", i, err)
		}
		p.Projects.Items[i].DescriptionHTML = html
	}
	return nil
}

// SameAs returns the external profile URLs, used for structured data.
func (p Profile) SameAs() []string {
	var out []string
	for _, l := range p.Contact.Links {
		if strings.HasPrefix(l.URL, "https://") || strings.HasPrefix(l.URL, "http://") {
			out = append(out, l.URL)
		}
	}
	return out
}

// Email returns the first mailto address among the contact links.
func (p Profile) Email() string {
	for _, l := range p.Contact.Links {
		if addr, ok := strings.CutPrefix(l.URL, "mailto:"); ok {
			return addr
		}
	}
	return ""
}
