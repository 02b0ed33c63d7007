package main

import (
	"github.com/spf13/cobra"

	"github.com/maruel/mddb-tools/internal/config"
	"github.com/maruel/mddb-tools/internal/report"
	"github.com/maruel/mddb-tools/version"
)

var (
	cfgFile      string
	outputFormat string
	cfgManager   *config.Manager
)

var rootCmd = &cobra.Command{
	Use:   "mddb-tools",
	Short: "Developer tooling for the mddb notes application",
	Long: `mddb-tools bundles the repository's auxiliary developer scripts:

  - verify    check e2e test data integrity after the suite runs
  - clean     reset the e2e scratch data directory
  - lint      reject binary files committed to the repository
  - frontend  build the web frontend for embedding in the backend binary`,
	Version:      version.GitRelease,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.mddb/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "text", "output format: text, yaml or json",
	)

	// Load config before any command runs
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		report.SetFormat(outputFormat)
		cm, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		cfgManager = cm
		return nil
	}

	rootCmd.AddCommand(versionCmd)
}
