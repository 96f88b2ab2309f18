// Package viewer describes the embedded <model-viewer> custom element: its
// script source, the attribute set it is configured with and the fixed box it
// is displayed in. The element itself is treated as an opaque handle.
package viewer

import (
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"
)

// Tag is the custom element name registered by the remote script.
const Tag = "model-viewer"

const (
	DefaultScriptURL   = "https://unpkg.com/@google/model-viewer/dist/model-viewer.min.js"
	DefaultSourceURL   = "/models/portrait.glb"
	DefaultRotation    = "18deg"
	DefaultEnvironment = "neutral"
)

// Box is the fixed display region reserved for the element.
type Box struct {
	Width      string // CSS length, e.g. "100%"
	Height     string
	Radius     string
	Background string // CSS colour
}

// Config is the immutable configuration of the viewer element.
type Config struct {
	ScriptURL         string
	SourceURL         string
	CameraControls    bool
	AutoRotate        bool
	RotationSpeed     string // angle per second, e.g. "18deg"
	EnvironmentPreset string
	Alt               string
	Box               Box
}

// Attribute is a single element attribute. Boolean attributes have an empty
// Value and Boolean set.
type Attribute struct {
	Name    string
	Value   string
	Boolean bool
}

// Default returns the configuration used by the portfolio page.
func Default() Config {
	return Config{
		ScriptURL:         DefaultScriptURL,
		SourceURL:         DefaultSourceURL,
		CameraControls:    true,
		AutoRotate:        true,
		RotationSpeed:     DefaultRotation,
		EnvironmentPreset: DefaultEnvironment,
		Alt:               "3D portrait",
		Box: Box{
			Width:      "100%",
			Height:     "460px",
			Radius:     "18px",
			Background: "#f4f4f5",
		},
	}
}

// ValidationError lists the attributes that failed the schema check.
type ValidationError struct {
	Fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("viewer: invalid attributes [%s]", strings.Join(e.Fields, ", "))
}

var (
	angleRe  = regexp.MustCompile(`^-?\d+(\.\d+)?(deg|rad|grad|turn)$`)
	lengthRe = regexp.MustCompile(`^\d+(\.\d+)?(px|%|rem|em|vh|vw)$`)
	colorRe  = regexp.MustCompile(`^(#[0-9a-fA-F]{3,8}|[a-zA-Z]+|rgba?\([0-9.,\s%]+\))$`)
	presetRe = regexp.MustCompile(`^[a-zA-Z0-9._/:-]+$`)
)

// Validate checks the configuration against the attribute schema accepted at
// the integration boundary.
func (c Config) Validate() error {
	var bad []string
	if !validScriptURL(c.ScriptURL) {
		bad = append(bad, "script")
	}
	if !validModelSource(c.SourceURL) {
		bad = append(bad, "src")
	}
	if c.AutoRotate && !angleRe.MatchString(c.RotationSpeed) {
		bad = append(bad, "rotation-per-second")
	}
	if !presetRe.MatchString(c.EnvironmentPreset) {
		bad = append(bad, "environment-image")
	}
	if !validLength(c.Box.Width) {
		bad = append(bad, "width")
	}
	if !validLength(c.Box.Height) {
		bad = append(bad, "height")
	}
	if !validLength(c.Box.Radius) {
		bad = append(bad, "border-radius")
	}
	if !colorRe.MatchString(c.Box.Background) {
		bad = append(bad, "background")
	}
	if len(bad) > 0 {
		return &ValidationError{Fields: bad}
	}
	return nil
}

// Attributes returns the element attributes in a stable order.
func (c Config) Attributes() []Attribute {
	attrs := []Attribute{{Name: "src", Value: c.SourceURL}}
	if c.Alt != "" {
		attrs = append(attrs, Attribute{Name: "alt", Value: c.Alt})
	}
	if c.CameraControls {
		attrs = append(attrs, Attribute{Name: "camera-controls", Boolean: true})
	}
	if c.AutoRotate {
		attrs = append(attrs, Attribute{Name: "auto-rotate", Boolean: true})
		attrs = append(attrs, Attribute{Name: "rotation-per-second", Value: c.RotationSpeed})
	}
	if c.EnvironmentPreset != "" {
		attrs = append(attrs, Attribute{Name: "environment-image", Value: c.EnvironmentPreset})
	}
	return attrs
}

// BoxStyle returns the inline style that pins the display region size. The
// wrapper carries it so the region keeps its size before the element upgrades.
func (c Config) BoxStyle() string {
	return fmt.Sprintf("width:%s;height:%s;border-radius:%s;background:%s;overflow:hidden",
		c.Box.Width, c.Box.Height, c.Box.Radius, c.Box.Background)
}

// ElementStyle is the style given to the element so it fills the wrapper.
func (c Config) ElementStyle() string {
	return "width:100%;height:100%;border-radius:" + c.Box.Radius + ";background:" + c.Box.Background
}

func validScriptURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || raw == "" {
		return false
	}
	if u.Scheme == "" {
		return strings.HasPrefix(u.Path, "/")
	}
	return u.Scheme == "https" || u.Scheme == "http"
}

func validModelSource(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || raw == "" {
		return false
	}
	if u.Scheme != "" && u.Scheme != "https" && u.Scheme != "http" {
		return false
	}
	switch strings.ToLower(path.Ext(u.Path)) {
	case ".glb", ".gltf":
		return true
	default:
		return false
	}
}

func validLength(v string) bool {
	return v == "0" || lengthRe.MatchString(v)
}
