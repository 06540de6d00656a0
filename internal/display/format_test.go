package display

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/tragoedia0722/batchrename/internal/config"
	"github.com/tragoedia0722/batchrename/internal/term"
	"github.com/tragoedia0722/batchrename/pkg/batch"
	"github.com/tragoedia0722/batchrename/pkg/match"
)

func TestHighlight(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		spans []match.Span
		color string
		want  string
	}{
		{"no spans", "abc", nil, "<", "abc"},
		{"no color", "abc", []match.Span{{Offset: 0, Length: 1}}, "", "abc"},
		{"single span", "foo1", []match.Span{{Offset: 0, Length: 3}}, "<", "<foo>1"},
		{"several spans", "a-b-c", []match.Span{{Offset: 1, Length: 1}, {Offset: 3, Length: 1}}, "<", "a<->b<->c"},
		{"span at end", "item[42]", []match.Span{{Offset: 4, Length: 4}}, "<", "item<[42]>"},
		{"empty span skipped", "abc", []match.Span{{Offset: 1, Length: 0}}, "<", "abc"},
	}

	term.NC = ">"
	t.Cleanup(func() { term.Configure(config.ColorNever) })

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Highlight(tt.text, tt.spans, tt.color); got != tt.want {
				t.Errorf("Highlight = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatDelta(t *testing.T) {
	term.Configure(config.ColorNever)

	root := filepath.FromSlash("/r")
	d := batch.Delta{
		Dir:              filepath.Join(root, "sub"),
		OldName:          "foo1.txt",
		NewName:          "baz1.txt",
		OriginalSpans:    []match.Span{{Offset: 0, Length: 3}},
		ReplacementSpans: []match.Span{{Offset: 0, Length: 3}},
	}

	sep := string(filepath.Separator)
	want := "  sub" + sep + "foo1.txt  ->  sub" + sep + "baz1.txt"
	if got := FormatDelta(root, d); got != want {
		t.Errorf("FormatDelta = %q, want %q", got, want)
	}

	d.Dir = root
	if got := FormatDelta(root, d); got != "  foo1.txt  ->  baz1.txt" {
		t.Errorf("FormatDelta at root = %q", got)
	}
}

func TestFormatFailure(t *testing.T) {
	got := FormatFailure("a", "b", errors.New("destination already exists"))
	if want := `- "a" to "b": destination already exists`; got != want {
		t.Errorf("FormatFailure = %q, want %q", got, want)
	}
}

func TestPlural(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0 files"},
		{1, "1 file"},
		{2, "2 files"},
	}
	for _, tt := range tests {
		if got := Plural(tt.n, "file"); got != tt.want {
			t.Errorf("Plural(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
	if Kind(true) != "folder" || Kind(false) != "file" {
		t.Error("Kind mismatch")
	}
}
