package verify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
)

// settleDelay is how long the data tree must stay quiet before a re-run.
// The app writes title and body in separate syscalls, so a single save can
// produce a burst of events.
const settleDelay = 500 * time.Millisecond

// Watch runs verification once, then again every time the data tree changes,
// until ctx is cancelled. Each run is tagged with a fresh id in the logs so
// interleaved CI output can be correlated. The per-run report goes to w.
func Watch(ctx context.Context, root string, w io.Writer, logger *slog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watchTree(watcher, root); err != nil {
		return err
	}

	runOnce := func() {
		runID := uuid.NewString()
		logger.Info("running verification", "run_id", runID, "root", root)
		report, err := Run(root)
		if err != nil {
			logger.Error("verification failed", "run_id", runID, "error", err)
			return
		}
		report.WriteText(w)
		if !report.Passed() {
			logger.Warn("checks failed", "run_id", runID, "failed", len(report.Failures()))
		}
	}
	runOnce()

	timer := time.NewTimer(settleDelay)
	if !timer.Stop() {
		<-timer.C
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// New workspace or node directories need their own watch.
			if ev.Op.Has(fsnotify.Create) {
				if info, statErr := os.Stat(ev.Name); statErr == nil && info.IsDir() {
					_ = watcher.Add(ev.Name)
				}
			}
			timer.Reset(settleDelay)
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", "error", watchErr)
		case <-timer.C:
			runOnce()
		}
	}
}

// watchTree registers the root plus every visible workspace and node
// directory. fsnotify watches are not recursive.
func watchTree(watcher *fsnotify.Watcher, root string) error {
	if err := watcher.Add(root); err != nil {
		return fmt.Errorf("failed to watch %s: %w", root, err)
	}
	workspaces, err := os.ReadDir(root)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", root, err)
	}
	for _, ws := range workspaces {
		if !ws.IsDir() || strings.HasPrefix(ws.Name(), ".") {
			continue
		}
		wsPath := filepath.Join(root, ws.Name())
		if err := watcher.Add(wsPath); err != nil {
			return fmt.Errorf("failed to watch %s: %w", wsPath, err)
		}
		nodes, err := os.ReadDir(wsPath)
		if err != nil {
			return fmt.Errorf("failed to list %s: %w", wsPath, err)
		}
		for _, node := range nodes {
			if !node.IsDir() || strings.HasPrefix(node.Name(), ".") {
				continue
			}
			nodePath := filepath.Join(wsPath, node.Name())
			if err := watcher.Add(nodePath); err != nil {
				return fmt.Errorf("failed to watch %s: %w", nodePath, err)
			}
		}
	}
	return nil
}
