package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sia816/my-3d-portfolio/internal/viewer"
)

func TestLoadWithDefaults(t *testing.T) {
	cfg, err := Load(WithEnvMap(map[string]string{}), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Server.Address() != ":8080" {
		t.Errorf("unexpected address %s", cfg.Server.Address())
	}
	if cfg.Server.ReadTimeout != defaultReadTimeout {
		t.Errorf("unexpected read timeout: %s", cfg.Server.ReadTimeout)
	}
	if cfg.Environment != "local" {
		t.Errorf("expected local environment, got %s", cfg.Environment)
	}
	if cfg.Content.File != "" {
		t.Errorf("expected embedded profile by default, got %s", cfg.Content.File)
	}
	if cfg.Assets.ModelsDir != "public/models" || cfg.Assets.ResumeFile != "public/resume.pdf" {
		t.Errorf("unexpected asset defaults: %+v", cfg.Assets)
	}
	v := cfg.ModelViewer()
	if v.ScriptURL != viewer.DefaultScriptURL || v.SourceURL != viewer.DefaultSourceURL {
		t.Errorf("unexpected viewer defaults: %+v", v)
	}
}

func TestLoadWithOverrides(t *testing.T) {
	env := map[string]string{
		"PORT":                        "3000",
		"PORTFOLIO_PORT":              "9090",
		"PORTFOLIO_ENV":               "prod",
		"PORTFOLIO_READ_TIMEOUT":      "5s",
		"PORTFOLIO_BASE_URL":          "https://sia.example.com/",
		"PORTFOLIO_VIEWER_MODEL_URL":  "https://cdn.example.com/me.glb",
		"PORTFOLIO_VIEWER_SCRIPT_URL": "/static/js/model-viewer.min.js",
		"LOG_LEVEL":                   "debug",
	}
	cfg, err := Load(WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("expected PORTFOLIO_PORT to win, got %s", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("unexpected read timeout: %s", cfg.Server.ReadTimeout)
	}
	if cfg.Content.BaseURL != "https://sia.example.com" {
		t.Errorf("expected trailing slash trimmed, got %s", cfg.Content.BaseURL)
	}
	if cfg.LogLevel != "debug" || cfg.Environment != "prod" {
		t.Errorf("unexpected env/log level: %s %s", cfg.Environment, cfg.LogLevel)
	}
	v := cfg.ModelViewer()
	if v.SourceURL != "https://cdn.example.com/me.glb" || v.ScriptURL != "/static/js/model-viewer.min.js" {
		t.Errorf("viewer overrides not applied: %+v", v)
	}
}

func TestLoadFallsBackToPlatformPort(t *testing.T) {
	cfg, err := Load(WithEnvMap(map[string]string{"PORT": "3000"}), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Port != "3000" {
		t.Errorf("expected PORT fallback, got %s", cfg.Server.Port)
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "# local\nexport PORTFOLIO_PORT=7070\nPORTFOLIO_MODELS_DIR='assets/models'\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env: %v", err)
	}

	cfg, err := Load(WithoutSystemEnv(), WithEnvFile(path), WithEnvMap(map[string]string{"PORTFOLIO_PORT": "6060"}))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Port != "6060" {
		t.Errorf("expected env map to override .env, got %s", cfg.Server.Port)
	}
	if cfg.Assets.ModelsDir != "assets/models" {
		t.Errorf("expected models dir from .env, got %s", cfg.Assets.ModelsDir)
	}
}

func TestLoadDotEnvQuotesAndComments(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := strings.Join([]string{
		`PORTFOLIO_VIEWER_SCRIPT_URL="https://cdn.example.com/mv.js" # pinned build`,
		`PORTFOLIO_RESUME_FILE=docs/cv.pdf # local copy`,
		`PORTFOLIO_CONTENT_FILE='content/it''s.yaml'`,
		`PORTFOLIO_MODELS_DIR="unterminated`,
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env: %v", err)
	}

	cfg, err := Load(WithoutSystemEnv(), WithEnvFile(path), WithEnvMap(map[string]string{}))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Viewer.ScriptURL != "https://cdn.example.com/mv.js" {
		t.Errorf("expected quoted value without comment, got %q", cfg.Viewer.ScriptURL)
	}
	if cfg.Assets.ResumeFile != "docs/cv.pdf" {
		t.Errorf("expected inline comment stripped, got %q", cfg.Assets.ResumeFile)
	}
	if cfg.Content.File != "content/it" {
		t.Errorf("expected value to end at the closing quote, got %q", cfg.Content.File)
	}
	if cfg.Assets.ModelsDir != `"unterminated` {
		t.Errorf("expected unterminated quote kept verbatim, got %q", cfg.Assets.ModelsDir)
	}
}

func TestLoadValidationError(t *testing.T) {
	env := map[string]string{
		"PORTFOLIO_PORT":             "http",
		"PORTFOLIO_BASE_URL":         "ftp://example.com",
		"PORTFOLIO_VIEWER_MODEL_URL": "/models/portrait.obj",
	}
	_, err := Load(WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	if err == nil {
		t.Fatal("expected validation error")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	want := []string{"Server.Port", "Content.BaseURL", "Viewer.ModelURL"}
	got := verr.Fields()
	if len(got) != len(want) {
		t.Fatalf("expected fields %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected fields %v, got %v", want, got)
		}
	}
}
