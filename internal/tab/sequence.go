package tab

import "sync/atomic"

// Sequence hands out human-facing order numbers. It is owned by the session
// and shared across every tab so numbers stay unique for the whole dining
// room. Numbers start at 1001 and are never reused, cancelled or not.
type Sequence struct {
	n atomic.Int64
}

func NewSequence() *Sequence {
	s := &Sequence{}
	s.n.Store(1000)
	return s
}

func (s *Sequence) Next() int {
	return int(s.n.Add(1))
}
