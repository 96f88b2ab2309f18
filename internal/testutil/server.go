package testutil

import (
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/sia816/my-3d-portfolio/internal/content"
	"github.com/sia816/my-3d-portfolio/internal/httpserver"
	"github.com/sia816/my-3d-portfolio/internal/viewer"
)

// ServerOption customises the HTTP server configuration for tests.
type ServerOption func(*httpserver.Config)

// WithViewer overrides the viewer element configuration.
func WithViewer(cfg viewer.Config) ServerOption {
	return func(c *httpserver.Config) {
		c.Viewer = cfg
	}
}

// WithModelsDir sets the directory served under /models/.
func WithModelsDir(dir string) ServerOption {
	return func(c *httpserver.Config) {
		c.ModelsDir = dir
	}
}

// WithResumeFile sets the file served at /resume.pdf.
func WithResumeFile(path string) ServerOption {
	return func(c *httpserver.Config) {
		c.ResumeFile = path
	}
}

// WithBaseURL sets the public site URL used for canonical metadata.
func WithBaseURL(url string) ServerOption {
	return func(c *httpserver.Config) {
		c.BaseURL = url
	}
}

// WithLogger wires a custom logger.
func WithLogger(logger *zap.Logger) ServerOption {
	return func(c *httpserver.Config) {
		c.Logger = logger
	}
}

// FixedNow is the clock used by test servers.
var FixedNow = time.Date(2025, time.November, 1, 12, 0, 0, 0, time.UTC)

// DefaultConfig returns the server configuration used by NewServer before options apply.
func DefaultConfig(t testing.TB) httpserver.Config {
	t.Helper()

	profile, err := content.Default()
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	return httpserver.Config{
		Address: ":0",
		Profile: profile,
		Viewer:  viewer.Default(),
		Logger:  zap.NewNop(),
		Now:     func() time.Time { return FixedNow },
	}
}

// NewServer constructs an httptest server running the portfolio HTTP stack with sensible defaults.
func NewServer(t testing.TB, opts ...ServerOption) *httptest.Server {
	t.Helper()

	cfg := DefaultConfig(t)
	for _, opt := range opts {
		opt(&cfg)
	}

	srv, err := httpserver.New(cfg)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)
	return ts
}
