package common

// Sequence hands out monotonically increasing integer identifiers for a
// single store. It deliberately carries no lock of its own: the owning
// store must call Next inside the same critical section that records the
// created entity, so no observer ever sees an advanced counter without a
// corresponding record.
type Sequence struct {
	next int
}

// NewSequence returns a Sequence whose first call to Next yields start.
// Starts below 1 are clamped to 1.
func NewSequence(start int) *Sequence {
	if start < 1 {
		start = 1
	}
	return &Sequence{next: start}
}

// Next returns the current identifier and advances the counter.
func (s *Sequence) Next() int {
	id := s.next
	s.next++
	return id
}

// Peek reports the identifier the next call to Next would return.
func (s *Sequence) Peek() int {
	return s.next
}
