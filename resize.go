package quadtree

import "slices"

type resizeConfig struct {
	x, y, w, h *float64
}

// ResizeOption overrides one bound of the rebuilt tree; bounds without an
// override keep their current value.
type ResizeOption func(*resizeConfig)

// ResizeX overrides the left edge of the rebuilt tree.
func ResizeX(x float64) ResizeOption {
	return func(c *resizeConfig) { c.x = &x }
}

// ResizeY overrides the top edge of the rebuilt tree.
func ResizeY(y float64) ResizeOption {
	return func(c *resizeConfig) { c.y = &y }
}

// ResizeWidth overrides the width of the rebuilt tree.
func ResizeWidth(w float64) ResizeOption {
	return func(c *resizeConfig) { c.w = &w }
}

// ResizeHeight overrides the height of the rebuilt tree.
func ResizeHeight(h float64) ResizeOption {
	return func(c *resizeConfig) { c.h = &h }
}

// Resized builds an entirely new tree covering this node's bounds with any
// given overrides applied, keeping the capacity, depth limit, ID source,
// logger and metrics collector. A snapshot of this node's current element
// list seeds the new tree; elements that do not overlap the new bounds are
// dropped on insertion. This is a full rebuild with fresh nodes and a
// fresh owner index, not an in-place resize.
func (n Node[T]) Resized(optFns ...ResizeOption) *Tree[T] {
	t := n.tree

	var c resizeConfig
	for _, fn := range optFns {
		if fn != nil {
			fn(&c)
		}
	}

	b := t.nodes[n.idx].bounds
	x, y, w, h := b.X, b.Y, b.W, b.H
	if c.x != nil {
		x = *c.x
	}
	if c.y != nil {
		y = *c.y
	}
	if c.w != nil {
		w = *c.w
	}
	if c.h != nil {
		h = *c.h
	}

	return New(x, y, w, h,
		WithMaxElements[T](t.maxElements),
		WithMaxDepth[T](t.maxDepth),
		WithIDSource[T](t.ids),
		WithLogger[T](t.logger),
		WithMetricsCollector[T](t.metrics),
		WithElements(slices.Clone(t.nodes[n.idx].elements)...),
	)
}
