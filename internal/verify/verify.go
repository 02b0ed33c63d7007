// Package verify runs the post-e2e content checks against the pages the test
// suite left behind in the data directory.
//
// Each check covers one editor behavior the e2e suite exercises: flushing a
// rename on navigation, surviving rapid renames, flushing content edits,
// flushing combined title+content edits, and autosave. A failed check means
// the corresponding flow regressed.
package verify

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/maruel/mddb-tools/internal/pages"
)

// ErrNoPages indicates the scan returned an empty page set, so the checks
// would be meaningless.
var ErrNoPages = errors.New("no pages found")

// Result records the outcome of one content check.
type Result struct {
	Name    string `json:"name" yaml:"name"`
	Passed  bool   `json:"passed" yaml:"passed"`
	Message string `json:"message" yaml:"message"`
}

// Report is the outcome of one verification run.
type Report struct {
	Root    string   `json:"root" yaml:"root"`
	Pages   int      `json:"pages" yaml:"pages"`
	Results []Result `json:"results" yaml:"results"`
}

// Failures returns the results that did not pass.
func (r *Report) Failures() []Result {
	var failed []Result
	for _, res := range r.Results {
		if !res.Passed {
			failed = append(failed, res)
		}
	}
	return failed
}

// Passed reports whether every check passed.
func (r *Report) Passed() bool {
	return len(r.Failures()) == 0
}

// WriteText prints the report the way the CI logs expect it: one summary
// line, one ERROR line per failed check, and a closing line when clean.
func (r *Report) WriteText(w io.Writer) {
	fmt.Fprintf(w, "Scanned %d pages in %s\n", r.Pages, r.Root)
	failed := r.Failures()
	for _, res := range failed {
		fmt.Fprintf(w, "ERROR: %s\n", res.Message)
	}
	if len(failed) == 0 {
		fmt.Fprintln(w, "All e2e data verifications passed")
	}
}

// Run scans root and evaluates every check. It fails with ErrNoPages before
// any check runs when the scan comes back empty.
func Run(root string) (*Report, error) {
	found, err := pages.Scan(root)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoPages, root)
	}
	return &Report{
		Root:    root,
		Pages:   len(found),
		Results: Evaluate(found),
	}, nil
}

// Evaluate applies every content check to the scanned pages. All checks run
// even when earlier ones fail so a single run surfaces every regression.
func Evaluate(found []pages.Page) []Result {
	return []Result{
		titlePresent("rename_on_navigation", found, "RENAMED PAGE TITLE",
			"No 'RENAMED PAGE TITLE' pages - flush on navigation broken"),
		titleAbsent("stale_rename", found, "Page To Rename",
			"Found %d 'Page To Rename' pages - rename was lost"),
		titlePresent("rapid_rename", found, "FINAL RENAME",
			"No 'FINAL RENAME' pages - rapid rename broken"),
		bodyContains("content_flush", found, "MODIFIED CONTENT",
			"No pages with 'MODIFIED CONTENT' - content flush broken"),
		titlePresent("combined_flush", found, "NEW TITLE",
			"No 'NEW TITLE' pages - combined flush broken"),
		titlePresent("autosave", found, "Updated Title",
			"No 'Updated Title' pages - autosave broken"),
	}
}

func countTitle(found []pages.Page, title string) int {
	n := 0
	for _, p := range found {
		if p.Title == title {
			n++
		}
	}
	return n
}

// titlePresent passes when at least one page carries the exact title.
func titlePresent(name string, found []pages.Page, title, failMsg string) Result {
	n := countTitle(found, title)
	if n == 0 {
		return Result{Name: name, Passed: false, Message: failMsg}
	}
	return Result{
		Name:    name,
		Passed:  true,
		Message: fmt.Sprintf("%d page(s) titled %q", n, title),
	}
}

// titleAbsent passes when no page carries the exact title. The failure
// message receives the offending count.
func titleAbsent(name string, found []pages.Page, title, failMsg string) Result {
	n := countTitle(found, title)
	if n > 0 {
		return Result{Name: name, Passed: false, Message: fmt.Sprintf(failMsg, n)}
	}
	return Result{
		Name:    name,
		Passed:  true,
		Message: fmt.Sprintf("no pages titled %q", title),
	}
}

// bodyContains passes when at least one page body contains the substring.
func bodyContains(name string, found []pages.Page, substr, failMsg string) Result {
	n := 0
	for _, p := range found {
		if strings.Contains(p.Body, substr) {
			n++
		}
	}
	if n == 0 {
		return Result{Name: name, Passed: false, Message: failMsg}
	}
	return Result{
		Name:    name,
		Passed:  true,
		Message: fmt.Sprintf("%d page(s) containing %q", n, substr),
	}
}
