package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maruel/mddb-tools/internal/clean"
)

var cleanTarget string

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Reset the e2e scratch data directory",
	Long: `Clean removes the e2e scratch data directory and recreates it empty, so
each e2e run starts from a known state.

Examples:
  mddb-tools clean                     # Reset the configured directory
  mddb-tools clean --target ./tmp-e2e  # Reset a different directory`,
	RunE: func(cmd *cobra.Command, args []string) error {
		target := cleanTarget
		if target == "" {
			target = cfgManager.Get().Data.E2EDir
		}
		if err := clean.Reset(target); err != nil {
			return err
		}
		fmt.Printf("Reset %s\n", target)
		return nil
	},
}

func init() {
	cleanCmd.Flags().StringVar(&cleanTarget, "target", "", "directory to reset (default from config)")

	rootCmd.AddCommand(cleanCmd)
}
