package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sia816/my-3d-portfolio/internal/export"
)

var (
	exportOut   string
	exportClean bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the page and its assets into a directory",
	Long: `Renders index.html and copies the embedded stylesheet and scripts, the
3D model directory and the resume into the output directory. Missing model
or resume files are skipped with a warning.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := loadApp()
		if err != nil {
			return err
		}
		defer func() { _ = rt.logger.Sync() }()

		res, err := export.Run(cmd.Context(), export.Options{
			OutDir:     exportOut,
			Profile:    rt.profile,
			Viewer:     rt.cfg.ModelViewer(),
			BaseURL:    rt.cfg.Content.BaseURL,
			ModelsDir:  rt.cfg.Assets.ModelsDir,
			ResumeFile: rt.cfg.Assets.ResumeFile,
			Year:       time.Now().Year(),
			Clean:      exportClean,
			Logger:     rt.logger,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d files to %s\n", len(res.Files), exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "dist", "output directory")
	exportCmd.Flags().BoolVar(&exportClean, "clean", false, "remove the output directory first")
	rootCmd.AddCommand(exportCmd)
}
