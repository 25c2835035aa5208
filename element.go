package quadtree

import (
	"fmt"

	"github.com/Marco4413/QuadTree/geom"
)

// Kind identifies the geometry of an element.
type Kind int

const (
	// KindUnknown is the zero Kind. It carries no geometry and never
	// overlaps anything; it exists so the zero Element is inert rather
	// than accidentally a point at the origin.
	KindUnknown Kind = iota
	KindPoint
	KindCircle
	KindRect
)

func (k Kind) String() string {
	switch k {
	case KindUnknown:
		return "Unknown"
	case KindPoint:
		return "Point"
	case KindCircle:
		return "Circle"
	case KindRect:
		return "Rect"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Element is a shape stored in a tree: an immutable identity plus mutable
// geometry and an opaque payload the tree never interprets.
//
// Geometry fields may be mutated in place by the caller (move or resize),
// but the tree does not detect this on its own: after changing geometry the
// caller must run Update on every tree holding the element, or stored
// membership silently diverges from true geometric overlap.
//
// Which geometry fields are meaningful depends on the kind:
// Point uses X, Y; Circle uses X, Y, R; Rect uses X, Y, W, H.
type Element[T any] struct {
	id   ID
	kind Kind

	X, Y float64
	R    float64
	W, H float64

	// Payload is opaque caller data carried alongside the geometry.
	Payload T
}

// NewPoint creates a point element at (x, y), drawing its ID from ids.
func NewPoint[T any](ids *IDSource, x, y float64, payload T) *Element[T] {
	return &Element[T]{id: ids.Next(), kind: KindPoint, X: x, Y: y, Payload: payload}
}

// NewCircle creates a circle element centered at (x, y) with radius r.
func NewCircle[T any](ids *IDSource, x, y, r float64, payload T) *Element[T] {
	return &Element[T]{id: ids.Next(), kind: KindCircle, X: x, Y: y, R: r, Payload: payload}
}

// NewRect creates a rectangle element anchored at (x, y) with size w×h.
func NewRect[T any](ids *IDSource, x, y, w, h float64, payload T) *Element[T] {
	return &Element[T]{id: ids.Next(), kind: KindRect, X: x, Y: y, W: w, H: h, Payload: payload}
}

// ID returns the element's identity. It is assigned once at creation.
func (e *Element[T]) ID() ID {
	return e.id
}

// Kind returns the element's geometry kind.
func (e *Element[T]) Kind() Kind {
	return e.kind
}

// Overlaps reports whether the element's current geometry overlaps r,
// using the kind-specific predicate from the geom package. A KindUnknown
// element overlaps nothing.
func (e *Element[T]) Overlaps(r geom.Rect) bool {
	switch e.kind {
	case KindPoint:
		return r.ContainsPoint(e.X, e.Y)
	case KindCircle:
		return r.IntersectsCircle(e.X, e.Y, e.R)
	case KindRect:
		return r.Overlaps(geom.Rect{X: e.X, Y: e.Y, W: e.W, H: e.H})
	default:
		return false
	}
}

// String returns a debug representation of the element.
func (e *Element[T]) String() string {
	switch e.kind {
	case KindPoint:
		return fmt.Sprintf("Point#%d(%g,%g)", e.id, e.X, e.Y)
	case KindCircle:
		return fmt.Sprintf("Circle#%d(%g,%g r=%g)", e.id, e.X, e.Y, e.R)
	case KindRect:
		return fmt.Sprintf("Rect#%d(%g,%g %gx%g)", e.id, e.X, e.Y, e.W, e.H)
	default:
		return fmt.Sprintf("Unknown#%d", e.id)
	}
}
