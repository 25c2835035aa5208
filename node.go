package quadtree

import (
	"slices"

	"github.com/Marco4413/QuadTree/geom"
)

// Node is a lightweight handle to one node of a tree. Handles stay valid
// for the lifetime of the tree: nodes are never destroyed individually and
// a split never moves existing nodes.
//
// The zero Node is not attached to any tree; using it panics.
type Node[T any] struct {
	tree *Tree[T]
	idx  nodeIndex
}

// Tree returns the tree this node belongs to.
func (n Node[T]) Tree() *Tree[T] {
	return n.tree
}

// Bounds returns the node's bounding rectangle.
func (n Node[T]) Bounds() geom.Rect {
	return n.tree.nodes[n.idx].bounds
}

// X returns the node's left edge.
func (n Node[T]) X() float64 { return n.Bounds().X }

// Y returns the node's top edge.
func (n Node[T]) Y() float64 { return n.Bounds().Y }

// Width returns the node's width.
func (n Node[T]) Width() float64 { return n.Bounds().W }

// Height returns the node's height.
func (n Node[T]) Height() float64 { return n.Bounds().H }

// Depth returns the node's depth; the root has depth 0.
func (n Node[T]) Depth() int {
	return n.tree.nodes[n.idx].depth
}

// IsPointInBounds reports whether (x, y) lies within the node's bounds
// under the half-open point rule.
func (n Node[T]) IsPointInBounds(x, y float64) bool {
	return n.Bounds().ContainsPoint(x, y)
}

// IsRectInBounds reports whether the rectangle (x, y, w, h) strictly
// overlaps the node's bounds.
func (n Node[T]) IsRectInBounds(x, y, w, h float64) bool {
	return n.Bounds().Overlaps(geom.Rect{X: x, Y: y, W: w, H: h})
}

// IsSplit reports whether the node has subdivided into four children.
// Splitting is permanent.
func (n Node[T]) IsSplit() bool {
	return n.tree.nodes[n.idx].split
}

// IsRoot reports whether this node has no parent.
func (n Node[T]) IsRoot() bool {
	return n.tree.nodes[n.idx].parent == noNode
}

// Parent returns the node that created this one.
// ok is false at the root.
func (n Node[T]) Parent() (parent Node[T], ok bool) {
	p := n.tree.nodes[n.idx].parent
	if p == noNode {
		return Node[T]{}, false
	}
	return Node[T]{tree: n.tree, idx: p}, true
}

// Children returns the node's four children in top-left, top-right,
// bottom-left, bottom-right order, or nil for a leaf.
func (n Node[T]) Children() []Node[T] {
	nd := &n.tree.nodes[n.idx]
	if !nd.split {
		return nil
	}
	out := make([]Node[T], 4)
	for i, c := range nd.children {
		out[i] = Node[T]{tree: n.tree, idx: c}
	}
	return out
}

// Elements returns a copy of the node's tracked element list. For a split
// node this includes every element overlapping the node's bounds, not just
// the ones resting in its leaves.
func (n Node[T]) Elements() []*Element[T] {
	return slices.Clone(n.tree.nodes[n.idx].elements)
}

// Has reports whether this node is among el's current members.
func (n Node[T]) Has(el *Element[T]) bool {
	return slices.Contains(n.tree.owners[el.id], n.idx)
}

// ParentsOf returns a copy of el's current membership list in
// root-to-descendant insertion order, or nil if el is not a member of the
// tree. Use it to answer "which leaves currently hold el" without a
// geometric re-query.
func (n Node[T]) ParentsOf(el *Element[T]) []Node[T] {
	owned := n.tree.owners[el.id]
	if len(owned) == 0 {
		return nil
	}
	out := make([]Node[T], len(owned))
	for i, idx := range owned {
		out[i] = Node[T]{tree: n.tree, idx: idx}
	}
	return out
}

// ChildAt descends from this node to the leaf whose bounds contain (x, y).
// The half-open point rule guarantees at most one such leaf; ok is false
// when the point lies outside this node's bounds.
func (n Node[T]) ChildAt(x, y float64) (child Node[T], ok bool) {
	t := n.tree
	stack := []nodeIndex{n.idx}
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		nd := &t.nodes[idx]
		if !nd.bounds.ContainsPoint(x, y) {
			continue
		}
		if nd.split {
			stack = appendChildren(stack, nd.children)
			continue
		}
		return Node[T]{tree: t, idx: idx}, true
	}
	return Node[T]{}, false
}

// appendChildren pushes children in reverse so the worklist pops them in
// top-left, top-right, bottom-left, bottom-right order.
func appendChildren(stack []nodeIndex, children [4]nodeIndex) []nodeIndex {
	return append(stack, children[3], children[2], children[1], children[0])
}
