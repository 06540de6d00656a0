// Package match finds the non-overlapping occurrences of a search pattern in
// a name. Patterns are either literal substrings or RE2 regular expressions.
package match

import (
	"regexp"
	"strings"
)

// Match is one occurrence of the pattern. Groups holds the submatch index
// pairs of a regex match, as returned by regexp.FindAllStringSubmatchIndex,
// and is nil in literal mode.
type Match struct {
	Span
	Groups []int
}

// Matcher is a compiled search pattern. It is safe for concurrent use.
type Matcher struct {
	pattern string
	re      *regexp.Regexp
}

// New compiles pattern. An empty pattern yields ErrEmptyPattern and a regex
// that does not compile yields a *PatternError.
func New(pattern string, isRegex bool) (*Matcher, error) {
	if pattern == "" {
		return nil, ErrEmptyPattern
	}

	m := &Matcher{pattern: pattern}
	if isRegex {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, &PatternError{Pattern: pattern, Err: err}
		}
		m.re = re
	}

	return m, nil
}

// IsRegex reports whether the matcher uses regular expression semantics.
func (m *Matcher) IsRegex() bool {
	return m.re != nil
}

// Regexp returns the compiled expression, or nil in literal mode.
func (m *Matcher) Regexp() *regexp.Regexp {
	return m.re
}

// Pattern returns the source pattern.
func (m *Matcher) Pattern() string {
	return m.pattern
}

// Match returns every occurrence of the pattern in name in ascending order.
func (m *Matcher) Match(name string) []Match {
	if m.re != nil {
		return m.matchRegex(name)
	}
	return m.matchLiteral(name)
}

func (m *Matcher) matchLiteral(name string) []Match {
	var matches []Match

	start := 0
	for start <= len(name) {
		idx := strings.Index(name[start:], m.pattern)
		if idx < 0 {
			break
		}
		offset := start + idx
		matches = append(matches, Match{Span: Span{Offset: offset, Length: len(m.pattern)}})
		start = offset + len(m.pattern)
	}

	return matches
}

func (m *Matcher) matchRegex(name string) []Match {
	all := m.re.FindAllStringSubmatchIndex(name, -1)
	if len(all) == 0 {
		return nil
	}

	matches := make([]Match, 0, len(all))
	for _, loc := range all {
		matches = append(matches, Match{
			Span:   Span{Offset: loc[0], Length: loc[1] - loc[0]},
			Groups: loc,
		})
	}

	return matches
}

// Spans strips the group information from matches.
func Spans(matches []Match) []Span {
	if len(matches) == 0 {
		return nil
	}

	spans := make([]Span, len(matches))
	for i, m := range matches {
		spans[i] = m.Span
	}
	return spans
}

// FindMatches returns the spans of every non-overlapping occurrence of
// pattern in name. An empty pattern or a regex that fails to compile
// yields no spans.
func FindMatches(name, pattern string, isRegex bool) []Span {
	m, err := New(pattern, isRegex)
	if err != nil {
		return nil
	}
	return Spans(m.Match(name))
}
