// Package pages discovers the markdown pages the mddb app writes under its
// data directory.
//
// The tree is two levels deep: workspace directories at the top, node
// directories inside them, and one index.md per node.
package pages

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/maruel/mddb-tools/internal/frontmatter"
)

// IndexFileName is the content file each node directory is expected to hold.
const IndexFileName = "index.md"

// ErrMissingRoot indicates the data root directory does not exist.
var ErrMissingRoot = errors.New("data directory does not exist")

// Page is one node's index.md after frontmatter extraction.
type Page struct {
	Path  string `json:"path" yaml:"path"`
	Title string `json:"title" yaml:"title"`
	Body  string `json:"body" yaml:"body"`
}

// Scan walks the workspace/node tree under root and returns one Page per node
// that carries an index.md. Hidden directories (leading dot) are skipped at
// both levels, as are nodes without an index.md. Order follows the directory
// listing order.
func Scan(root string) ([]Page, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingRoot, root)
	}

	workspaces, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", root, err)
	}

	var found []Page
	for _, ws := range workspaces {
		if !ws.IsDir() || strings.HasPrefix(ws.Name(), ".") {
			continue
		}
		wsPath := filepath.Join(root, ws.Name())
		nodes, err := os.ReadDir(wsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", wsPath, err)
		}
		for _, node := range nodes {
			if !node.IsDir() || strings.HasPrefix(node.Name(), ".") {
				continue
			}
			indexPath := filepath.Join(wsPath, node.Name(), IndexFileName)
			raw, err := os.ReadFile(indexPath)
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					continue
				}
				return nil, fmt.Errorf("failed to read %s: %w", indexPath, err)
			}
			fm, body := frontmatter.Parse(string(raw))
			found = append(found, Page{
				Path:  indexPath,
				Title: fm["title"],
				Body:  strings.TrimSpace(body),
			})
		}
	}
	return found, nil
}
