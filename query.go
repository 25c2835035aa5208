package quadtree

import (
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/Marco4413/QuadTree/geom"
)

// ElementsAt descends from this node to the leaf containing (x, y) and
// returns a copy of that leaf's tracked elements. Any node with an empty
// element list prunes its whole subtree: split nodes keep receiving every
// overlapping element exactly for this early exit. Returns nil when the
// point is outside this node's bounds or the leaf holds nothing.
func (n Node[T]) ElementsAt(x, y float64) []*Element[T] {
	t := n.tree
	stack := []nodeIndex{n.idx}
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		nd := &t.nodes[idx]
		if len(nd.elements) == 0 || !nd.bounds.ContainsPoint(x, y) {
			continue
		}
		if nd.split {
			stack = appendChildren(stack, nd.children)
			continue
		}
		return slices.Clone(nd.elements)
	}
	return nil
}

// ElementsInRect collects the tracked elements of every leaf below this
// node whose bounds overlap the query rectangle. A shape straddling a
// subdivision boundary is a member of several leaves, so the raw result
// can repeat it; with filterDuplicates each element is reported once, in
// first-encountered order. Pass filterDuplicates=false to keep the
// repeats, e.g. for approximate per-leaf aggregation.
func (n Node[T]) ElementsInRect(x, y, w, h float64, filterDuplicates bool) []*Element[T] {
	t := n.tree
	query := geom.Rect{X: x, Y: y, W: w, H: h}

	var seen *roaring.Bitmap
	if filterDuplicates {
		seen = roaring.New()
	}

	var out []*Element[T]
	stack := []nodeIndex{n.idx}
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		nd := &t.nodes[idx]
		if len(nd.elements) == 0 || !nd.bounds.Overlaps(query) {
			continue
		}
		if nd.split {
			stack = appendChildren(stack, nd.children)
			continue
		}
		for _, el := range nd.elements {
			if seen != nil && !seen.CheckedAdd(uint32(el.id)) {
				continue
			}
			out = append(out, el)
		}
	}
	return out
}
