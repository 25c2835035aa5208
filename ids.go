package quadtree

import "sync/atomic"

// ID is the process-unique identifier of an element. IDs are dense,
// strictly increasing 32-bit integers assigned once at element creation and
// never reused. Identity comparisons use only the ID, never geometry.
//
// The zero ID is reserved; a valid IDSource never produces it.
type ID uint32

// IDSource hands out element IDs. It is an atomic counter, safe for
// concurrent use, and is deliberately not ambient global state: every tree
// owns one, and callers that need a shared ID space across several trees
// pass the same source explicitly via WithIDSource.
type IDSource struct {
	last atomic.Uint32
}

// NewIDSource creates an IDSource whose first ID is 1.
func NewIDSource() *IDSource {
	return &IDSource{}
}

// Next returns the next ID. Safe for concurrent use.
func (s *IDSource) Next() ID {
	return ID(s.last.Add(1))
}
