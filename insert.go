package quadtree

import "slices"

// Insert adds el to the subtree rooted at this node. Every node of the
// subtree whose bounds el overlaps records the element, leaves and split
// nodes alike; a leaf pushed past its capacity subdivides into four equal
// quadrants and migrates its occupants into them.
//
// Insert reports whether el's membership grew from zero to nonzero, i.e.
// the element was not already indexed and overlaps at least one node.
// Inserting an element that is already a member appends duplicate
// membership entries; use Update to re-index a moved element instead.
func (n Node[T]) Insert(el *Element[T]) bool {
	t := n.tree
	before := len(t.owners[el.id])

	t.insert(n.idx, el, true)

	after := len(t.owners[el.id])
	if after == 0 {
		// Nothing overlapped; drop the empty entry so the element does
		// not read as a member.
		delete(t.owners, el.id)
	}
	return before == 0 && after > 0
}

// insert runs the worklist descent from root, recording el on every node
// whose bounds it overlaps. The iterative traversal keeps stack usage flat
// regardless of depth. allowSplit is false during occupant migration: a
// fresh child may end up over capacity and stays a leaf until the next
// insertion that lands on it, so a split deepens the tree by at most one
// level per inserted element.
func (t *Tree[T]) insert(root nodeIndex, el *Element[T], allowSplit bool) {
	stack := []nodeIndex{root}
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		nd := &t.nodes[idx]
		if !el.Overlaps(nd.bounds) {
			continue
		}
		nd.elements = append(nd.elements, el)
		t.owners[el.id] = append(t.owners[el.id], idx)

		if nd.split {
			// Split nodes keep tracking overlap only for query pruning;
			// true membership lives in the descendants.
			stack = appendChildren(stack, nd.children)
			continue
		}
		if allowSplit && len(nd.elements) > t.maxElements && (t.maxDepth < 0 || nd.depth < t.maxDepth) {
			t.splitNode(idx)
		}
	}
}

// splitNode turns the leaf at idx into a split node: it creates the four
// quadrant children and re-inserts every current occupant, the overflowing
// element included, into each child subtree. The node's own element list
// is kept as-is for query pruning. Splitting is permanent; the tree never
// un-splits.
func (t *Tree[T]) splitNode(idx nodeIndex) {
	quads := t.nodes[idx].bounds.Quadrants()
	depth := t.nodes[idx].depth

	var children [4]nodeIndex
	for i, q := range quads {
		children[i] = nodeIndex(len(t.nodes))
		t.nodes = append(t.nodes, node[T]{
			bounds:   q,
			depth:    depth + 1,
			parent:   idx,
			children: [4]nodeIndex{noNode, noNode, noNode, noNode},
		})
	}
	t.nodes[idx].children = children
	t.nodes[idx].split = true

	// Snapshot before migrating: the appends above may have moved the
	// arena, and migration appends to node element lists.
	occupants := slices.Clone(t.nodes[idx].elements)
	for _, c := range children {
		for _, el := range occupants {
			t.insert(c, el, false)
		}
	}
}

// Remove removes el from every node that recorded it and clears its
// owner-index entry, in O(membership). It reports whether el was a member
// of the tree at all.
func (n Node[T]) Remove(el *Element[T]) bool {
	t := n.tree
	owned := t.owners[el.id]
	if len(owned) == 0 {
		return false
	}
	for _, idx := range owned {
		nd := &t.nodes[idx]
		if i := indexOfElement(nd.elements, el.id); i >= 0 {
			nd.elements = slices.Delete(nd.elements, i, i+1)
		}
	}
	delete(t.owners, el.id)
	return true
}

// Update removes and re-inserts el, reflecting any geometry change made
// since it was indexed. It reports false if el had no prior membership
// (no-op), otherwise the result of the re-insertion.
func (n Node[T]) Update(el *Element[T]) bool {
	if !n.Remove(el) {
		return false
	}
	return n.Insert(el)
}

// indexOfElement returns the position of the first element with the given
// id, or -1. One position per owner-index entry: an element recorded twice
// for a node is removed once per recorded entry.
func indexOfElement[T any](elements []*Element[T], id ID) int {
	return slices.IndexFunc(elements, func(e *Element[T]) bool {
		return e.id == id
	})
}
