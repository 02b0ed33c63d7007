package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/maruel/mddb-tools/internal/lint"
	"github.com/maruel/mddb-tools/internal/report"
)

var lintRepoDir string

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Reject binary files committed to the repository",
	Long: `Lint lists every git-tracked file and fails if any of them is a binary
(NUL byte within the first kilobyte) whose extension is not on the
configured allow-list. Images and icons are allowed by default.

Examples:
  mddb-tools lint               # Lint the current repository
  mddb-tools lint --repo ../app # Lint another checkout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rep, err := lint.Run(cmd.Context(), lintRepoDir, cfgManager.Get().Lint.AllowedExtensions)
		if err != nil {
			return err
		}

		if report.IsStructured() {
			if err := report.Output(rep); err != nil {
				return err
			}
		} else {
			rep.WriteText(os.Stdout)
		}

		if len(rep.Binaries) > 0 {
			return fmt.Errorf("%d binary file(s) found", len(rep.Binaries))
		}
		return nil
	},
}

func init() {
	lintCmd.Flags().StringVar(&lintRepoDir, "repo", ".", "repository checkout to lint")

	rootCmd.AddCommand(lintCmd)
}
