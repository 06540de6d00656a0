// Package replace computes the new name produced by substituting a
// replacement template into every match of a name, together with the spans
// the substitutions occupy in the new name.
package replace

import (
	"regexp"
	"strings"

	"github.com/tragoedia0722/batchrename/pkg/filename"
	"github.com/tragoedia0722/batchrename/pkg/match"
)

// wholeMatch supplies group names to ExpandString when the caller has spans
// but no compiled expression. Only $0 expands to something in that case.
var wholeMatch = regexp.MustCompile(``)

// Planner substitutes one replacement template. In literal mode the
// sanitised replacement is computed once when the planner is built; in
// regex mode it is computed once per match.
type Planner struct {
	template string
	re       *regexp.Regexp
	literal  string
}

// NewLiteral returns a planner that replaces every match with template,
// stripped of characters that are invalid in a name.
func NewLiteral(template string) *Planner {
	return &Planner{template: template, literal: filename.Strip(template)}
}

// NewRegex returns a planner that expands group references ($1, ${1},
// ${name}, $$) in template against each match of re. A numeric reference
// ends at the last digit, so $1_done is group 1 followed by "_done".
func NewRegex(template string, re *regexp.Regexp) *Planner {
	if re == nil {
		re = wholeMatch
	}
	return &Planner{template: braceNumbered(template), re: re}
}

// braceNumbered rewrites every unbraced $<digits> as ${<digits>}, leaving
// $$ escapes alone. ExpandString would otherwise read $1a as a group named
// "1a".
func braceNumbered(template string) string {
	if !strings.Contains(template, "$") {
		return template
	}

	var b strings.Builder
	b.Grow(len(template) + 8)
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '$' || i+1 >= len(template) {
			b.WriteByte(c)
			continue
		}

		next := template[i+1]
		if next == '$' {
			b.WriteString("$$")
			i++
			continue
		}
		if !isDigit(next) {
			b.WriteByte(c)
			continue
		}

		j := i + 1
		for j < len(template) && isDigit(template[j]) {
			j++
		}
		b.WriteString("${")
		b.WriteString(template[i+1 : j])
		b.WriteByte('}')
		i = j - 1
	}
	return b.String()
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// ForMatcher builds the planner that fits m.
func ForMatcher(template string, m *match.Matcher) *Planner {
	if m.IsRegex() {
		return NewRegex(template, m.Regexp())
	}
	return NewLiteral(template)
}

// Plan rewrites name. matches must be sorted and non-overlapping, as
// produced by a match.Matcher over the same name. The returned spans index
// the new name and correspond one to one with matches.
func (p *Planner) Plan(name string, matches []match.Match) (string, []match.Span) {
	if len(matches) == 0 {
		return name, nil
	}

	var b strings.Builder
	b.Grow(len(name))

	spans := make([]match.Span, 0, len(matches))
	shift := 0
	prev := 0
	for _, m := range matches {
		text := p.substitution(name, m)

		b.WriteString(name[prev:m.Offset])
		b.WriteString(text)
		prev = m.End()

		spans = append(spans, match.Span{Offset: m.Offset + shift, Length: len(text)})
		shift += len(text) - m.Length
	}
	b.WriteString(name[prev:])

	return b.String(), spans
}

// substitution returns the sanitised replacement for one match.
func (p *Planner) substitution(name string, m match.Match) string {
	if p.re == nil {
		return p.literal
	}

	groups := m.Groups
	if groups == nil {
		groups = []int{m.Offset, m.End()}
	}
	expanded := p.re.ExpandString(nil, p.template, name, groups)
	return filename.Strip(string(expanded))
}

// Plan is the span form of (*Planner).Plan for callers without a compiled
// expression. In regex mode only $0 references can be expanded.
func Plan(name string, spans []match.Span, template string, isRegex bool) (string, []match.Span) {
	matches := make([]match.Match, len(spans))
	for i, s := range spans {
		matches[i] = match.Match{Span: s}
	}

	p := NewLiteral(template)
	if isRegex {
		p = NewRegex(template, nil)
	}
	return p.Plan(name, matches)
}
