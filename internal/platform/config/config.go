package config

import (
	"bufio"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sia816/my-3d-portfolio/internal/viewer"
)

const (
	defaultEnvFile         = ".env"
	defaultPort            = "8080"
	defaultEnvironment     = "local"
	defaultModelsDir       = "public/models"
	defaultResumeFile      = "public/resume.pdf"
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 30 * time.Second
	defaultIdleTimeout     = 60 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultLogLevel        = "info"
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Environment string
	LogLevel    string
	Server      ServerConfig
	Content     ContentConfig
	Assets      AssetConfig
	Viewer      ViewerConfig
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Address returns the listen address for the configured port.
func (s ServerConfig) Address() string {
	return ":" + s.Port
}

// ContentConfig locates the profile document and the public site URL.
type ContentConfig struct {
	File    string // empty selects the embedded profile
	BaseURL string
}

// AssetConfig lists the on-disk files served next to the page.
type AssetConfig struct {
	ModelsDir  string
	ResumeFile string
}

// ViewerConfig overrides the 3D viewer sources.
type ViewerConfig struct {
	ScriptURL string
	ModelURL  string
}

// ValidationError is returned when required configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the missing/invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFile overrides the .env file path used for local overrides.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap injects an explicit key/value map for environment lookups. Values in the map
// take precedence over system environment variables.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv disables reading from os.LookupEnv, relying only on provided maps and .env files.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Load assembles the configuration from defaults, .env overrides and
// environment variables, in increasing precedence.
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	dotEnvValues, err := loadDotEnv(options.envFile)
	if err != nil {
		return Config{}, err
	}

	lookup := func(key string) (string, bool) {
		if options.envMap != nil {
			if value, ok := options.envMap[key]; ok {
				return value, true
			}
		}
		if options.useSystemEnv {
			if value, ok := os.LookupEnv(key); ok {
				return value, true
			}
		}
		if dotEnvValues != nil {
			if value, ok := dotEnvValues[key]; ok {
				return value, true
			}
		}
		return "", false
	}

	cfg := Config{
		Environment: stringWithDefault(lookup, "PORTFOLIO_ENV", defaultEnvironment),
		LogLevel:    stringWithDefault(lookup, "LOG_LEVEL", defaultLogLevel),
		Server: ServerConfig{
			Port:            stringWithDefault(lookup, "PORTFOLIO_PORT", stringWithDefault(lookup, "PORT", defaultPort)),
			ReadTimeout:     durationWithDefault(lookup, "PORTFOLIO_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout:    durationWithDefault(lookup, "PORTFOLIO_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:     durationWithDefault(lookup, "PORTFOLIO_IDLE_TIMEOUT", defaultIdleTimeout),
			ShutdownTimeout: durationWithDefault(lookup, "PORTFOLIO_SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		},
		Content: ContentConfig{
			File:    stringWithDefault(lookup, "PORTFOLIO_CONTENT_FILE", ""),
			BaseURL: strings.TrimRight(stringWithDefault(lookup, "PORTFOLIO_BASE_URL", ""), "/"),
		},
		Assets: AssetConfig{
			ModelsDir:  stringWithDefault(lookup, "PORTFOLIO_MODELS_DIR", defaultModelsDir),
			ResumeFile: stringWithDefault(lookup, "PORTFOLIO_RESUME_FILE", defaultResumeFile),
		},
		Viewer: ViewerConfig{
			ScriptURL: stringWithDefault(lookup, "PORTFOLIO_VIEWER_SCRIPT_URL", viewer.DefaultScriptURL),
			ModelURL:  stringWithDefault(lookup, "PORTFOLIO_VIEWER_MODEL_URL", viewer.DefaultSourceURL),
		},
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ModelViewer returns the viewer element configuration with the configured
// sources applied.
func (c Config) ModelViewer() viewer.Config {
	v := viewer.Default()
	if c.Viewer.ScriptURL != "" {
		v.ScriptURL = c.Viewer.ScriptURL
	}
	if c.Viewer.ModelURL != "" {
		v.SourceURL = c.Viewer.ModelURL
	}
	return v
}

func validateConfig(cfg Config) error {
	var missing []string

	if port, err := strconv.Atoi(cfg.Server.Port); err != nil || port < 0 || port > 65535 {
		missing = append(missing, "Server.Port")
	}
	if cfg.Server.ReadTimeout <= 0 {
		missing = append(missing, "Server.ReadTimeout")
	}
	if cfg.Server.WriteTimeout <= 0 {
		missing = append(missing, "Server.WriteTimeout")
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		missing = append(missing, "Server.ShutdownTimeout")
	}
	if cfg.Content.BaseURL != "" {
		u, err := url.Parse(cfg.Content.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			missing = append(missing, "Content.BaseURL")
		}
	}
	var verr *viewer.ValidationError
	if err := cfg.ModelViewer().Validate(); errors.As(err, &verr) {
		for _, f := range verr.Fields {
			switch f {
			case "script":
				missing = append(missing, "Viewer.ScriptURL")
			case "src":
				missing = append(missing, "Viewer.ModelURL")
			}
		}
	}

	if len(missing) > 0 {
		return &ValidationError{fields: missing}
	}
	return nil
}

func loadDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	file, err := os.Open(absPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: unable to read %s: %w", absPath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	values := make(map[string]string)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		values[key] = dotEnvValue(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("config: failed parsing %s: %w", absPath, err)
	}
	return values, nil
}

// dotEnvValue unquotes a value written as "v" or 'v'. Unquoted values end at
// the first " #" comment.
func dotEnvValue(raw string) string {
	raw = strings.TrimSpace(raw)
	if len(raw) >= 2 && (raw[0] == '"' || raw[0] == '\'') {
		if end := strings.IndexByte(raw[1:], raw[0]); end >= 0 {
			return raw[1 : end+1]
		}
	}
	if i := strings.Index(raw, " #"); i >= 0 {
		raw = raw[:i]
	}
	return strings.TrimSpace(raw)
}

func stringWithDefault(lookup func(string) (string, bool), key, fallback string) string {
	if value, ok := lookup(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func durationWithDefault(lookup func(string) (string, bool), key string, fallback time.Duration) time.Duration {
	if value, ok := lookup(key); ok && value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
