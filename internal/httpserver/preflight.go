package httpserver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/sia816/my-3d-portfolio/internal/components"
	"github.com/sia816/my-3d-portfolio/internal/nav"
	"github.com/sia816/my-3d-portfolio/internal/viewer"
)

// Preflight renders the page once and checks the pieces that only degrade
// it: every navigation anchor must exist exactly once and a locally served
// model must be a readable GLB. The returned error joins every finding.
func Preflight(ctx context.Context, cfg Config) error {
	cfg = cfg.withDefaults()
	var errs []error

	var buf bytes.Buffer
	data := components.NewHomeData(cfg.Profile, cfg.Viewer, cfg.BaseURL, cfg.Now().Year())
	if err := components.Home(data).Render(ctx, &buf); err != nil {
		errs = append(errs, fmt.Errorf("render home: %w", err))
	} else if err := nav.VerifyAnchors(&buf, nav.Links()); err != nil {
		errs = append(errs, err)
	}

	if file, ok := LocalModelPath(cfg.Viewer.SourceURL, cfg.ModelsDir); ok {
		if _, err := viewer.InspectGLBFile(file); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// LocalModelPath maps a /models/ source URL onto the models directory. It
// reports false for remote sources or when no directory is configured.
func LocalModelPath(src, modelsDir string) (string, bool) {
	modelsDir = strings.TrimSpace(modelsDir)
	rel, ok := strings.CutPrefix(strings.TrimSpace(src), "/models/")
	if !ok || modelsDir == "" {
		return "", false
	}
	rel = strings.TrimPrefix(path.Clean("/"+rel), "/")
	if rel == "" {
		return "", false
	}
	return filepath.Join(modelsDir, filepath.FromSlash(rel)), true
}
