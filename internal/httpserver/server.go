package httpserver

import (
	"bytes"
	"fmt"
	"mime"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/sia816/my-3d-portfolio/internal/components"
	"github.com/sia816/my-3d-portfolio/internal/content"
	custommw "github.com/sia816/my-3d-portfolio/internal/middleware"
	"github.com/sia816/my-3d-portfolio/internal/platform/observability"
	"github.com/sia816/my-3d-portfolio/internal/viewer"
	"github.com/sia816/my-3d-portfolio/public"
)

// ResumePath is the URL the resume document is served at.
const ResumePath = "/resume.pdf"

func init() {
	_ = mime.AddExtensionType(".glb", "model/gltf-binary")
	_ = mime.AddExtensionType(".gltf", "model/gltf+json")
}

// Config holds runtime options for the portfolio HTTP server.
type Config struct {
	Address      string
	Profile      content.Profile
	Viewer       viewer.Config
	BaseURL      string
	ModelsDir    string // served under /models/; empty disables the route
	ResumeFile   string // served at /resume.pdf when present
	Logger       *zap.Logger
	Now          func() time.Time
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

func (c Config) withDefaults() Config {
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = 10 * time.Second
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = 30 * time.Second
	}
	if c.IdleTimeout <= 0 {
		c.IdleTimeout = 60 * time.Second
	}
	return c
}

// New constructs the HTTP server with middleware stack and embedded assets.
func New(cfg Config) (*http.Server, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Viewer.Validate(); err != nil {
		return nil, err
	}

	staticContent, err := public.StaticFS()
	if err != nil {
		return nil, fmt.Errorf("embed static: %w", err)
	}

	router := chi.NewRouter()
	router.Use(observability.RequestIDMiddleware)
	router.Use(chimw.RealIP)
	router.Use(observability.InjectLoggerMiddleware(cfg.Logger))
	router.Use(observability.TraceMiddleware())
	router.Use(observability.MetricsMiddleware(nil, cfg.Logger))
	router.Use(observability.RequestLoggerMiddleware())
	router.Use(chimw.Recoverer)
	router.Use(chimw.GetHead)
	router.Use(chimw.Timeout(30 * time.Second))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Handle("/static/*", http.StripPrefix("/static", custommw.NoDirListing(custommw.AssetsWithCache(staticContent))))
	if dir := strings.TrimSpace(cfg.ModelsDir); dir != "" {
		router.Handle("/models/*", http.StripPrefix("/models", custommw.NoDirListing(custommw.AssetsWithCache(os.DirFS(dir)))))
	}
	router.Get(ResumePath, resumeHandler(cfg.ResumeFile))

	router.With(custommw.NoCache()).Get("/", homeHandler(cfg))

	return &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}, nil
}

func homeHandler(cfg Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := components.NewHomeData(cfg.Profile, cfg.Viewer, cfg.BaseURL, cfg.Now().Year())
		// render fully before writing so a failure can still become a 500
		var buf bytes.Buffer
		if err := components.Home(data).Render(r.Context(), &buf); err != nil {
			observability.FromContext(r.Context()).Error("render home", zap.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = buf.WriteTo(w)
	}
}

func resumeHandler(path string) http.HandlerFunc {
	path = strings.TrimSpace(path)
	return func(w http.ResponseWriter, r *http.Request) {
		if path == "" {
			http.NotFound(w, r)
			return
		}
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		http.ServeFile(w, r, path)
	}
}
