package batch

// Session recomputes the batch whenever the input changes and remembers the
// last result. It is not safe for concurrent use.
type Session struct {
	last []Delta
}

// Recompute builds the batch for in and keeps it as the last batch.
func (s *Session) Recompute(in Input) []Delta {
	s.last = Build(in)
	return s.last
}

// Last returns the most recently computed batch.
func (s *Session) Last() []Delta {
	return s.last
}

// Reset drops the last batch, typically after it has been applied.
func (s *Session) Reset() {
	s.last = nil
}
