// Package quadtree provides a mutable 2D spatial index over points,
// circles and axis-aligned rectangles.
//
// The tree covers a fixed bounding rectangle and subdivides a leaf into
// four equal quadrants whenever its element count exceeds the configured
// capacity (depth limit permitting). Non-point shapes that straddle a
// subdivision boundary become members of every leaf they overlap; a
// root-held owner index records each element's membership, making removal
// and update O(membership) instead of a full-tree scan.
//
// # Quick Start
//
//	tree := quadtree.New[string](0, 0, 100, 100,
//	    quadtree.WithMaxElements[string](2),
//	)
//
//	p := tree.NewPoint(10, 10, "a label")
//	tree.Insert(p)
//	tree.Insert(tree.NewCircle(50, 50, 60, "a wide circle"))
//
//	for _, el := range tree.ElementsAt(10, 10) {
//	    fmt.Println(el, el.Payload)
//	}
//
// Moving or resizing an element is done by mutating its geometry fields
// and re-indexing it:
//
//	p.X, p.Y = 80, 80
//	tree.Update(p)
//
// Region queries deduplicate multi-leaf members by default:
//
//	els := tree.ElementsInRect(0, 0, 100, 100, true)
//
// # Concurrency
//
// All operations are synchronous and run on the caller's goroutine. There
// is no internal locking: mutations (Insert, Remove, Update) must not run
// concurrently with anything else on the same tree. Read-only queries may
// run concurrently with each other; BatchElementsInRect exploits this to
// fan independent region queries out across goroutines.
//
// # Limits
//
// The tree never merges nodes back (a split is permanent), does not
// rebalance, and does not validate input geometry; callers must supply
// finite coordinates.
package quadtree
