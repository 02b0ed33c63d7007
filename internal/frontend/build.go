// Package frontend wraps the pnpm build that produces the web assets embedded
// in the mddb executable.
package frontend

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
)

// retryDelay is the pause between pnpm install attempts.
const retryDelay = 2 * time.Second

// Build installs frontend dependencies and runs the production build in dir.
// The install step is retried up to attempts times: registry hiccups are the
// usual cause of failures here, not the lockfile.
func Build(ctx context.Context, dir string, attempts uint, logger *slog.Logger) error {
	err := retry.Do(
		func() error {
			return run(ctx, dir, "pnpm", "install", "--frozen-lockfile", "--silent")
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(retryDelay),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn("pnpm install failed, retrying", "attempt", n+1, "error", err)
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to install frontend dependencies: %w", err)
	}

	if err := run(ctx, dir, "pnpm", "--silent", "build", "--logLevel", "silent"); err != nil {
		return fmt.Errorf("failed to build frontend: %w", err)
	}
	return nil
}

// run executes a command in dir and folds its combined output into the error.
func run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg == "" {
			return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
		}
		return fmt.Errorf("%s %s: %w: %s", name, strings.Join(args, " "), err, msg)
	}
	return nil
}
