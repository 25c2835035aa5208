package quadtree

import (
	"context"
	"time"

	"github.com/Marco4413/QuadTree/geom"
)

// nodeIndex addresses a node within a tree's arena. Nodes reference their
// parent and children by index, not by pointer, so the arena has no
// reference cycles and stays valid across slice growth.
type nodeIndex int32

const noNode nodeIndex = -1

// node is the arena representation of a tree node. Bounds and depth are
// fixed for the node's lifetime; a node splits at most once and the tree
// never un-splits. The elements list is never pruned after a split: it
// keeps receiving every element that overlaps the node's bounds so queries
// can skip an entire subtree when the list is empty.
type node[T any] struct {
	bounds   geom.Rect
	depth    int
	parent   nodeIndex
	children [4]nodeIndex
	split    bool
	elements []*Element[T]
}

// Tree is a mutable 2D spatial index over point, circle and rectangle
// elements. It subdivides its bounds into equal quadrants whenever a leaf
// exceeds its capacity, tracks multi-leaf membership for shapes that
// straddle subdivision boundaries, and answers point and region queries by
// pruned traversal.
//
// Mutations (Insert, Remove, Update) must not run concurrently with each
// other or with queries; there is no internal locking. Read-only queries
// may safely run concurrently with each other.
type Tree[T any] struct {
	nodes       []node[T]
	owners      map[ID][]nodeIndex
	maxElements int
	maxDepth    int
	ids         *IDSource
	logger      *Logger
	metrics     MetricsCollector
}

// New builds a tree whose root covers the rectangle (x, y, w, h).
// Initial elements given via WithElements are inserted one by one.
func New[T any](x, y, w, h float64, optFns ...Option[T]) *Tree[T] {
	o := applyOptions(optFns)

	t := &Tree[T]{
		nodes:       make([]node[T], 0, 1),
		owners:      make(map[ID][]nodeIndex),
		maxElements: o.maxElements,
		maxDepth:    o.maxDepth,
		ids:         o.ids,
		logger:      o.logger,
		metrics:     o.metrics,
	}
	t.nodes = append(t.nodes, node[T]{
		bounds:   geom.Rect{X: x, Y: y, W: w, H: h},
		parent:   noNode,
		children: [4]nodeIndex{noNode, noNode, noNode, noNode},
	})

	for _, el := range o.elements {
		t.Root().Insert(el)
	}
	return t
}

// Root returns the handle of the tree's root node.
func (t *Tree[T]) Root() Node[T] {
	return Node[T]{tree: t, idx: 0}
}

// IDs returns the tree's ID source. Elements meant for this tree should
// draw their IDs from it (directly or via the NewPoint/NewCircle/NewRect
// tree methods) so IDs stay unique within the tree.
func (t *Tree[T]) IDs() *IDSource {
	return t.ids
}

// NewPoint creates a point element using the tree's ID source.
// The element is not inserted.
func (t *Tree[T]) NewPoint(x, y float64, payload T) *Element[T] {
	return NewPoint(t.ids, x, y, payload)
}

// NewCircle creates a circle element using the tree's ID source.
// The element is not inserted.
func (t *Tree[T]) NewCircle(x, y, r float64, payload T) *Element[T] {
	return NewCircle(t.ids, x, y, r, payload)
}

// NewRect creates a rectangle element using the tree's ID source.
// The element is not inserted.
func (t *Tree[T]) NewRect(x, y, w, h float64, payload T) *Element[T] {
	return NewRect(t.ids, x, y, w, h, payload)
}

// Insert adds el to the tree. It reports whether the element gained
// membership, i.e. it was not already indexed and overlaps the root
// bounds. See Node.Insert for the traversal semantics.
func (t *Tree[T]) Insert(el *Element[T]) bool {
	start := time.Now()
	added := t.Root().Insert(el)
	t.metrics.RecordInsert(time.Since(start), added)
	t.logger.LogInsert(el.id, el.kind, added)
	return added
}

// Remove removes el from every node that tracks it, in O(membership).
// It reports whether the element was a member at all.
func (t *Tree[T]) Remove(el *Element[T]) bool {
	start := time.Now()
	removed := t.Root().Remove(el)
	t.metrics.RecordRemove(time.Since(start), removed)
	t.logger.LogRemove(el.id, removed)
	return removed
}

// Update re-indexes el after its geometry changed. It is the only way to
// make the tree reflect a moved or resized element. It reports false if
// the element was not a member (no-op), otherwise the insert result.
func (t *Tree[T]) Update(el *Element[T]) bool {
	start := time.Now()
	updated := t.Root().Update(el)
	t.metrics.RecordUpdate(time.Since(start), updated)
	t.logger.LogUpdate(el.id, updated)
	return updated
}

// Elements returns a copy of the root node's tracked element list, which
// for a consistent tree is every indexed element.
func (t *Tree[T]) Elements() []*Element[T] {
	return t.Root().Elements()
}

// ElementsAt returns the elements tracked by the leaf whose bounds contain
// (x, y), or nil if the point is outside the tree.
func (t *Tree[T]) ElementsAt(x, y float64) []*Element[T] {
	start := time.Now()
	out := t.Root().ElementsAt(x, y)
	t.metrics.RecordQuery(len(out), time.Since(start))
	t.logger.LogQuery("elements_at", len(out))
	return out
}

// ElementsInRect returns the elements tracked by every leaf overlapping
// the query rectangle. With filterDuplicates, elements straddling several
// leaves are reported once, in first-encountered order.
func (t *Tree[T]) ElementsInRect(x, y, w, h float64, filterDuplicates bool) []*Element[T] {
	start := time.Now()
	out := t.Root().ElementsInRect(x, y, w, h, filterDuplicates)
	t.metrics.RecordQuery(len(out), time.Since(start))
	t.logger.LogQuery("elements_in_rect", len(out))
	return out
}

// ChildAt returns the leaf whose bounds contain (x, y).
// ok is false when the point lies outside the root bounds.
func (t *Tree[T]) ChildAt(x, y float64) (n Node[T], ok bool) {
	return t.Root().ChildAt(x, y)
}

// ParentsOf returns a copy of el's current membership list in
// root-to-descendant insertion order, or nil if el is not a member.
func (t *Tree[T]) ParentsOf(el *Element[T]) []Node[T] {
	return t.Root().ParentsOf(el)
}

// Has reports whether the root node tracks el, i.e. whether el is indexed
// anywhere in the tree.
func (t *Tree[T]) Has(el *Element[T]) bool {
	return t.Root().Has(el)
}

// Count returns the number of distinct elements currently indexed.
func (t *Tree[T]) Count() int {
	return len(t.owners)
}

// Resized builds a brand-new tree with the same capacity, depth limit, ID
// source, logger and metrics, covering the (possibly partially) overridden
// bounds, seeded with a snapshot of this tree's current elements.
// See Node.Resized.
func (t *Tree[T]) Resized(optFns ...ResizeOption) *Tree[T] {
	return t.Root().Resized(optFns...)
}

// BatchElementsInRect runs one region query per rectangle concurrently and
// returns the per-rectangle results in input order. Queries are read-only,
// so this must not run concurrently with mutations. The only error is a
// context cancellation.
func (t *Tree[T]) BatchElementsInRect(ctx context.Context, rects []geom.Rect, filterDuplicates bool) ([][]*Element[T], error) {
	return t.batchElementsInRect(ctx, rects, filterDuplicates)
}

// Stats is a read-only snapshot of the tree's shape.
type Stats struct {
	// Nodes is the total node count, split nodes included.
	Nodes int
	// SplitNodes is the number of nodes with four children.
	SplitNodes int
	// Elements is the number of distinct indexed elements.
	Elements int
	// MaxDepth is the deepest node depth present in the tree.
	MaxDepth int
}

// Stats walks the arena and returns a snapshot of the tree's shape.
// Useful for callers sizing render or scratch buffers.
func (t *Tree[T]) Stats() Stats {
	s := Stats{
		Nodes:    len(t.nodes),
		Elements: len(t.owners),
	}
	for i := range t.nodes {
		if t.nodes[i].split {
			s.SplitNodes++
		}
		if t.nodes[i].depth > s.MaxDepth {
			s.MaxDepth = t.nodes[i].depth
		}
	}
	return s
}
