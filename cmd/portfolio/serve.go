package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sia816/my-3d-portfolio/internal/httpserver"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio over HTTP",
	Long: `Starts the HTTP server. The page is served at /, embedded assets under
/static/, the 3D model under /models/ and the resume at /resume.pdf.
SIGINT or SIGTERM trigger a graceful shutdown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := loadApp()
		if err != nil {
			return err
		}
		defer func() { _ = rt.logger.Sync() }()

		addr := rt.cfg.Server.Address()
		if strings.TrimSpace(serveAddr) != "" {
			addr = serveAddr
		}
		srvCfg := httpserver.Config{
			Address:      addr,
			Profile:      rt.profile,
			Viewer:       rt.cfg.ModelViewer(),
			BaseURL:      rt.cfg.Content.BaseURL,
			ModelsDir:    rt.cfg.Assets.ModelsDir,
			ResumeFile:   rt.cfg.Assets.ResumeFile,
			Logger:       rt.logger,
			ReadTimeout:  rt.cfg.Server.ReadTimeout,
			WriteTimeout: rt.cfg.Server.WriteTimeout,
			IdleTimeout:  rt.cfg.Server.IdleTimeout,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// the page still renders without these, so findings are only logged
		if err := httpserver.Preflight(ctx, srvCfg); err != nil {
			rt.logger.Warn("preflight check failed", zap.Error(err))
		}

		srv, err := httpserver.New(srvCfg)
		if err != nil {
			return err
		}

		errCh := make(chan error, 1)
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		rt.logger.Info("portfolio server listening", zap.String("addr", addr))

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), rt.cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		rt.logger.Info("portfolio server stopped")
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides PORTFOLIO_PORT)")
	rootCmd.AddCommand(serveCmd)
}
