// Package frontmatter extracts the delimited key/value header block from the
// top of a markdown page.
package frontmatter

import "strings"

const (
	opening    = "---"
	terminator = "\n---\n"
)

// Parse splits raw markdown content into a frontmatter mapping and body.
//
// Content that does not open with the --- fence, or that never closes it, is
// treated as having no frontmatter: the mapping is empty and the body is the
// input unchanged. Header lines are split on their first colon; lines without
// a colon are ignored, and a duplicated key keeps its last value.
func Parse(content string) (map[string]string, string) {
	fm := map[string]string{}
	if !strings.HasPrefix(content, opening) {
		return fm, content
	}
	end := strings.Index(content[len(opening):], terminator)
	if end == -1 {
		return fm, content
	}
	end += len(opening)
	if end > len(opening)+1 {
		for _, line := range strings.Split(content[len(opening)+1:end], "\n") {
			key, value, ok := strings.Cut(line, ":")
			if !ok {
				continue
			}
			fm[strings.TrimSpace(key)] = strings.TrimSpace(value)
		}
	}
	return fm, content[end+len(terminator):]
}
