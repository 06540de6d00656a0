package match

import "fmt"

// Span is a half-open byte range [Offset, Offset+Length) within a string.
type Span struct {
	Offset int
	Length int
}

// End returns the offset just past the span.
func (s Span) End() int {
	return s.Offset + s.Length
}

// In returns the substring of text covered by the span.
func (s Span) In(text string) string {
	return text[s.Offset:s.End()]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d,%d)", s.Offset, s.Length)
}
