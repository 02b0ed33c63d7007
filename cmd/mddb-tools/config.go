package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/maruel/mddb-tools/internal/config"
	"github.com/maruel/mddb-tools/internal/report"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage mddb-tools configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default config file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "config.yaml"
		if len(args) == 1 {
			path = args[0]
		}
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
		if err := config.WriteDefault(path); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		format := report.GetFormat()
		if format == report.FormatText {
			format = report.FormatYAML
		}
		return report.OutputTo(os.Stdout, format, cfgManager.Get())
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	rootCmd.AddCommand(configCmd)
}
