// Package display renders rename previews and summaries for the console.
package display

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tragoedia0722/batchrename/internal/term"
	"github.com/tragoedia0722/batchrename/pkg/batch"
	"github.com/tragoedia0722/batchrename/pkg/match"
)

// Highlight wraps every span of text in color. Spans must be sorted and
// non-overlapping; empty spans and an empty color leave text as is.
func Highlight(text string, spans []match.Span, color string) string {
	if color == "" || len(spans) == 0 {
		return text
	}

	var b strings.Builder
	prev := 0
	for _, s := range spans {
		if s.Length == 0 {
			continue
		}
		b.WriteString(text[prev:s.Offset])
		b.WriteString(color)
		b.WriteString(s.In(text))
		b.WriteString(term.NC)
		prev = s.End()
	}
	b.WriteString(text[prev:])
	return b.String()
}

// RelDir returns dir relative to root with a trailing separator, or "" for
// the root itself.
func RelDir(root, dir string) string {
	rel, err := filepath.Rel(root, dir)
	if err != nil || rel == "." {
		return ""
	}
	return rel + string(filepath.Separator)
}

// FormatDelta renders one preview line: the old name with its matches in
// red and the new name with the replacements in green, both prefixed by the
// directory relative to root.
func FormatDelta(root string, d batch.Delta) string {
	prefix := RelDir(root, d.Dir)
	return fmt.Sprintf("  %s%s  ->  %s%s",
		prefix, Highlight(d.OldName, d.OriginalSpans, term.Red),
		prefix, Highlight(d.NewName, d.ReplacementSpans, term.Green))
}

// FormatFailure renders a failed rename for the summary.
func FormatFailure(oldPath, newPath string, err error) string {
	return fmt.Sprintf("- %q to %q: %v", oldPath, newPath, err)
}

// Plural returns "1 file", "2 files" and so on.
func Plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// Kind names the entries a batch renames.
func Kind(folders bool) string {
	if folders {
		return "folder"
	}
	return "file"
}
