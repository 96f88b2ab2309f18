// Package export writes the rendered portfolio and its assets into a
// directory that any static host can serve.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/sia816/my-3d-portfolio/internal/components"
	"github.com/sia816/my-3d-portfolio/internal/content"
	"github.com/sia816/my-3d-portfolio/internal/nav"
	"github.com/sia816/my-3d-portfolio/internal/viewer"
	"github.com/sia816/my-3d-portfolio/public"
)

// Options configures an export run.
type Options struct {
	OutDir     string
	Profile    content.Profile
	Viewer     viewer.Config
	BaseURL    string
	ModelsDir  string // copied to OutDir/models when present
	ResumeFile string // copied to OutDir/resume.pdf when present
	Year       int
	Clean      bool // remove OutDir before writing
	Logger     *zap.Logger
}

// Result lists the files written, relative to OutDir.
type Result struct {
	Files []string
}

// Run renders index.html and copies the static, model and resume assets.
func Run(ctx context.Context, opts Options) (Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	out := strings.TrimSpace(opts.OutDir)
	if out == "" {
		return Result{}, errors.New("export: output directory is required")
	}
	if err := opts.Viewer.Validate(); err != nil {
		return Result{}, fmt.Errorf("export: %w", err)
	}

	if opts.Clean {
		if err := os.RemoveAll(out); err != nil {
			return Result{}, fmt.Errorf("export: clean %s: %w", out, err)
		}
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return Result{}, fmt.Errorf("export: create %s: %w", out, err)
	}

	var res Result
	record := func(path string) {
		if rel, err := filepath.Rel(out, path); err == nil {
			res.Files = append(res.Files, filepath.ToSlash(rel))
		}
	}

	var page bytes.Buffer
	data := components.NewHomeData(opts.Profile, opts.Viewer, opts.BaseURL, opts.Year)
	if err := components.Home(data).Render(ctx, &page); err != nil {
		return Result{}, fmt.Errorf("export: render page: %w", err)
	}
	if err := nav.VerifyAnchors(bytes.NewReader(page.Bytes()), nav.Links()); err != nil {
		logger.Warn("navigation anchors mismatch", zap.Error(err))
	}
	index := filepath.Join(out, "index.html")
	if err := os.WriteFile(index, page.Bytes(), 0o644); err != nil {
		return Result{}, fmt.Errorf("export: write %s: %w", index, err)
	}
	record(index)

	static, err := public.StaticFS()
	if err != nil {
		return Result{}, fmt.Errorf("export: embed static: %w", err)
	}
	if err := copyFS(static, filepath.Join(out, "static"), record); err != nil {
		return Result{}, fmt.Errorf("export: copy static: %w", err)
	}

	if dir := strings.TrimSpace(opts.ModelsDir); dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			if err := copyFS(os.DirFS(dir), filepath.Join(out, "models"), record); err != nil {
				return Result{}, fmt.Errorf("export: copy models: %w", err)
			}
		} else {
			logger.Warn("models directory not found, skipping", zap.String("dir", dir))
		}
	}

	if file := strings.TrimSpace(opts.ResumeFile); file != "" {
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			dst := filepath.Join(out, "resume.pdf")
			if err := copyFile(file, dst); err != nil {
				return Result{}, fmt.Errorf("export: copy resume: %w", err)
			}
			record(dst)
		} else {
			logger.Warn("resume not found, skipping", zap.String("file", file))
		}
	}

	logger.Info("export complete", zap.String("dir", out), zap.Int("files", len(res.Files)))
	return res, nil
}

// copyFS copies every regular file of fsys below dst. Dot files are skipped.
func copyFS(fsys fs.FS, dst string, record func(string)) error {
	return fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != "." && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		target := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		src, err := fsys.Open(path)
		if err != nil {
			return err
		}
		defer src.Close()
		if err := writeFile(target, src); err != nil {
			return err
		}
		record(target)
		return nil
	})
}

func copyFile(src, dst string) error {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()
	return writeFile(dst, f)
}

func writeFile(dst string, r io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
