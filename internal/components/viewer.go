package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/sia816/my-3d-portfolio/internal/viewer"
)

// ViewerScript loads the custom element definition. Module scripts are
// deferred by the browser and async lets them run as soon as they arrive, so
// the fetch never blocks parsing and a failed fetch leaves the page intact.
func ViewerScript(cfg viewer.Config) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.raw(`<script type="module" async`)
		h.attr("src", safeURL(cfg.ScriptURL))
		h.attr("data-viewer-script", "")
		h.raw(`></script>`)
		return h.err
	})
}

// ModelViewer renders the fixed display box and the viewer element inside
// it. Until the element is upgraded the box shows only its background.
func ModelViewer(cfg viewer.Config) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.open("div", "class", "viewer", "style", cfg.BoxStyle(), "data-viewer-box", "")
		h.raw("<", viewer.Tag)
		for _, a := range cfg.Attributes() {
			if a.Boolean {
				h.raw(" ", a.Name)
				continue
			}
			if a.Name == "src" {
				h.attr(a.Name, safeURL(a.Value))
				continue
			}
			h.attr(a.Name, a.Value)
		}
		h.attr("style", cfg.ElementStyle())
		h.raw(">")
		h.close(viewer.Tag)
		h.close("div")
		return h.err
	})
}
