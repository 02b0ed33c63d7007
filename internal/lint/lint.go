// Package lint rejects binary files committed to the repository.
package lint

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// probeSize is how much of a file is inspected for NUL bytes.
const probeSize = 1024

// DefaultAllowedExtensions lists binary formats that are fine to track,
// mostly icons and images under data/ and the frontend assets.
var DefaultAllowedExtensions = []string{".ico", ".jpg", ".gif", ".png", ".svg", ".webp"}

// Report lists the findings of one lint run.
type Report struct {
	Checked  int      `json:"checked" yaml:"checked"`
	Binaries []string `json:"binaries" yaml:"binaries"`
}

// TrackedFiles returns the paths git tracks under dir, relative to dir.
func TrackedFiles(ctx context.Context, dir string) ([]string, error) {
	cmd := exec.CommandContext(ctx, "git", "ls-files")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git ls-files failed: %w", err)
	}
	var files []string
	for _, line := range strings.Split(string(out), "\n") {
		if line != "" {
			files = append(files, line)
		}
	}
	return files, nil
}

// IsBinary reports whether the file's first kilobyte contains a NUL byte.
// Missing, unreadable, or non-regular paths count as non-binary.
func IsBinary(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	buf := make([]byte, probeSize)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return false
	}
	return bytes.IndexByte(buf[:n], 0) >= 0
}

// Check inspects the given files (relative to dir) and reports every binary
// whose extension is not on the allow-list.
func Check(dir string, files []string, allowed []string) *Report {
	allow := make(map[string]bool, len(allowed))
	for _, ext := range allowed {
		allow[strings.ToLower(ext)] = true
	}

	report := &Report{Checked: len(files)}
	for _, f := range files {
		if !IsBinary(filepath.Join(dir, f)) {
			continue
		}
		if allow[strings.ToLower(filepath.Ext(f))] {
			continue
		}
		report.Binaries = append(report.Binaries, f)
	}
	return report
}

// Run lints every git-tracked file under dir.
func Run(ctx context.Context, dir string, allowed []string) (*Report, error) {
	files, err := TrackedFiles(ctx, dir)
	if err != nil {
		return nil, err
	}
	return Check(dir, files, allowed), nil
}

// WriteText prints the findings the way the CI logs expect them.
func (r *Report) WriteText(w io.Writer) {
	if len(r.Binaries) == 0 {
		fmt.Fprintf(w, "Checked %d tracked files, no binaries found\n", r.Checked)
		return
	}
	fmt.Fprintln(w, "Error: Binary executables found in repository:")
	for _, b := range r.Binaries {
		fmt.Fprintln(w, b)
	}
}
