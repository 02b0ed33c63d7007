package pages

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writePage creates root/workspace/node/index.md with the given content.
func writePage(t *testing.T, root, workspace, node, content string) {
	t.Helper()
	dir := filepath.Join(root, workspace, node)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create %s: %v", dir, err)
	}
	if err := os.WriteFile(filepath.Join(dir, IndexFileName), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write index.md: %v", err)
	}
}

func TestScan(t *testing.T) {
	t.Run("missing root", func(t *testing.T) {
		_, err := Scan(filepath.Join(t.TempDir(), "does-not-exist"))
		if !errors.Is(err, ErrMissingRoot) {
			t.Fatalf("expected ErrMissingRoot, got %v", err)
		}
	})

	t.Run("empty root", func(t *testing.T) {
		found, err := Scan(t.TempDir())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(found) != 0 {
			t.Errorf("expected no pages, got %d", len(found))
		}
	})

	t.Run("parses title and trims body", func(t *testing.T) {
		root := t.TempDir()
		writePage(t, root, "w1", "n1", "---\ntitle: Hello\n---\n\n  body text  \n")

		found, err := Scan(root)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(found) != 1 {
			t.Fatalf("expected 1 page, got %d", len(found))
		}
		p := found[0]
		if p.Title != "Hello" {
			t.Errorf("expected title Hello, got %q", p.Title)
		}
		if p.Body != "body text" {
			t.Errorf("expected trimmed body, got %q", p.Body)
		}
		if p.Path != filepath.Join(root, "w1", "n1", IndexFileName) {
			t.Errorf("unexpected path %s", p.Path)
		}
	})

	t.Run("page without frontmatter has empty title", func(t *testing.T) {
		root := t.TempDir()
		writePage(t, root, "w1", "n1", "plain body only")

		found, err := Scan(root)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(found) != 1 {
			t.Fatalf("expected 1 page, got %d", len(found))
		}
		if found[0].Title != "" {
			t.Errorf("expected empty title, got %q", found[0].Title)
		}
		if found[0].Body != "plain body only" {
			t.Errorf("unexpected body %q", found[0].Body)
		}
	})

	t.Run("skips hidden workspaces and nodes", func(t *testing.T) {
		root := t.TempDir()
		writePage(t, root, ".git", "n1", "---\ntitle: Hidden\n---\nx")
		writePage(t, root, "w1", ".trash", "---\ntitle: Hidden\n---\nx")
		writePage(t, root, "w1", "n1", "---\ntitle: Visible\n---\nx")

		found, err := Scan(root)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(found) != 1 {
			t.Fatalf("expected 1 page, got %d", len(found))
		}
		if found[0].Title != "Visible" {
			t.Errorf("expected only visible page, got %q", found[0].Title)
		}
	})

	t.Run("skips nodes without index.md", func(t *testing.T) {
		root := t.TempDir()
		if err := os.MkdirAll(filepath.Join(root, "w1", "empty-node"), 0o755); err != nil {
			t.Fatalf("failed to create node dir: %v", err)
		}

		found, err := Scan(root)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(found) != 0 {
			t.Errorf("expected no pages, got %d", len(found))
		}
	})

	t.Run("skips plain files at both levels", func(t *testing.T) {
		root := t.TempDir()
		if err := os.WriteFile(filepath.Join(root, "stray.txt"), []byte("x"), 0o644); err != nil {
			t.Fatalf("failed to write stray file: %v", err)
		}
		writePage(t, root, "w1", "n1", "---\ntitle: T\n---\nx")
		if err := os.WriteFile(filepath.Join(root, "w1", "notes.txt"), []byte("x"), 0o644); err != nil {
			t.Fatalf("failed to write stray file: %v", err)
		}

		found, err := Scan(root)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(found) != 1 {
			t.Errorf("expected 1 page, got %d", len(found))
		}
	})
}
