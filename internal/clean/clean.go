// Package clean resets the scratch directory the e2e suite writes into.
package clean

import (
	"fmt"
	"os"
)

// Reset removes target and recreates it empty. A missing target is not an
// error; the result either way is an empty directory.
func Reset(target string) error {
	if err := os.RemoveAll(target); err != nil {
		return fmt.Errorf("failed to remove %s: %w", target, err)
	}
	if err := os.MkdirAll(target, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", target, err)
	}
	return nil
}
