package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/maruel/mddb-tools/internal/report"
	"github.com/maruel/mddb-tools/internal/verify"
)

var (
	verifyDataDir string
	verifyWatch   bool
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify e2e test data integrity after the suite runs",
	Long: `Verify scans the data directory the e2e suite ran against and checks that
every editor flow the suite exercises actually reached disk: renames flushed
on navigation, rapid renames, content edits, combined title+content edits,
and autosave.

The scan walks the two-level workspace/node tree, reading each node's
index.md. All checks run even when earlier ones fail, so a single run
surfaces every regression.

Examples:
  mddb-tools verify                    # Scan the configured data directory
  mddb-tools verify --data ./data-e2e  # Scan a different tree
  mddb-tools verify --watch            # Re-run on every data change
  mddb-tools verify -o json            # Structured report`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root := verifyDataDir
		if root == "" {
			root = cfgManager.Get().Data.Dir
		}

		if verifyWatch {
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}))
			return verify.Watch(cmd.Context(), root, os.Stdout, logger)
		}

		rep, err := verify.Run(root)
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

		if failed := rep.Failures(); len(failed) > 0 {
			return fmt.Errorf("%d of %d checks failed", len(failed), len(rep.Results))
		}
		return nil
	},
}

func init() {
	verifyCmd.Flags().StringVar(&verifyDataDir, "data", "", "data directory to scan (default from config)")
	verifyCmd.Flags().BoolVar(&verifyWatch, "watch", false, "re-run verification whenever the data tree changes")

	rootCmd.AddCommand(verifyCmd)
}
