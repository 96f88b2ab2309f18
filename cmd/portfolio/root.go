package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sia816/my-3d-portfolio/internal/content"
	"github.com/sia816/my-3d-portfolio/internal/platform/config"
	"github.com/sia816/my-3d-portfolio/internal/platform/observability"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Serve or export the 3D portfolio page",
	Long: `portfolio renders a single-page personal portfolio with an embedded
3D model viewer. It can serve the page over HTTP or export it, together with
its static assets, into a directory for static hosting.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file with local overrides (empty disables)")
}

// app bundles what both commands need before doing any work.
type app struct {
	cfg     config.Config
	logger  *zap.Logger
	profile content.Profile
}

func loadApp() (*app, error) {
	cfg, err := config.Load(config.WithEnvFile(envFile))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	logger = logger.With(zap.String("env", cfg.Environment))

	profile, err := content.Load(cfg.Content.File)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("loading content: %w", err)
	}
	return &app{cfg: cfg, logger: logger, profile: profile}, nil
}
