package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/maruel/mddb-tools/internal/frontend"
)

var frontendDir string

var frontendCmd = &cobra.Command{
	Use:   "frontend",
	Short: "Build the web frontend for embedding in the backend binary",
	Long: `Frontend runs the pnpm production build that produces the dist/ assets the
backend embeds. Dependency installation uses the lockfile as-is and is
retried on transient failures.

Examples:
  mddb-tools frontend                 # Build in the configured directory
  mddb-tools frontend --dir ./webapp  # Build elsewhere`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := cfgManager.Get()
		dir := frontendDir
		if dir == "" {
			dir = cfg.Frontend.Dir
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
		if err := frontend.Build(cmd.Context(), dir, cfg.Frontend.InstallAttempts, logger); err != nil {
			return err
		}
		fmt.Println("Frontend build complete")
		return nil
	},
}

func init() {
	frontendCmd.Flags().StringVar(&frontendDir, "dir", "", "frontend directory (default from config)")

	rootCmd.AddCommand(frontendCmd)
}
