package quadtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Marco4413/QuadTree/geom"
)

func newTestTree(maxElements, maxDepth int) *Tree[string] {
	return New(0, 0, 100, 100,
		WithMaxElements[string](maxElements),
		WithMaxDepth[string](maxDepth),
	)
}

func TestInsertSplitScenario(t *testing.T) {
	tree := newTestTree(2, -1)

	p1 := tree.NewPoint(10, 10, "p1")
	p2 := tree.NewPoint(20, 20, "p2")
	p3 := tree.NewPoint(30, 30, "p3")

	require.True(t, tree.Insert(p1))
	require.True(t, tree.Insert(p2))
	assert.False(t, tree.Root().IsSplit(), "capacity not exceeded yet")

	require.True(t, tree.Insert(p3))
	require.True(t, tree.Root().IsSplit(), "third element exceeds capacity")

	children := tree.Root().Children()
	require.Len(t, children, 4)
	assert.Equal(t, geom.Rect{X: 0, Y: 0, W: 50, H: 50}, children[0].Bounds())
	assert.Equal(t, geom.Rect{X: 50, Y: 0, W: 50, H: 50}, children[1].Bounds())
	assert.Equal(t, geom.Rect{X: 0, Y: 50, W: 50, H: 50}, children[2].Bounds())
	assert.Equal(t, geom.Rect{X: 50, Y: 50, W: 50, H: 50}, children[3].Bounds())
	for _, c := range children {
		assert.Equal(t, 1, c.Depth())
	}

	// All three points migrated into the top-left quadrant's leaf.
	at := tree.ElementsAt(10, 10)
	require.Len(t, at, 3)
	assert.ElementsMatch(t, []*Element[string]{p1, p2, p3}, at)
}

func TestInsertCapacityBoundary(t *testing.T) {
	t.Run("ExactlyCapacity", func(t *testing.T) {
		tree := newTestTree(3, -1)
		for i := 0; i < 3; i++ {
			require.True(t, tree.Insert(tree.NewPoint(float64(i*10), float64(i*10), "p")))
		}
		assert.False(t, tree.Root().IsSplit())
	})

	t.Run("CapacityPlusOne", func(t *testing.T) {
		tree := newTestTree(3, -1)
		for i := 0; i < 4; i++ {
			require.True(t, tree.Insert(tree.NewPoint(float64(i*10), float64(i*10), "p")))
		}
		assert.True(t, tree.Root().IsSplit())
	})
}

func TestInsertMaxDepthLimit(t *testing.T) {
	// With maxDepth=0 the root may never split.
	tree := newTestTree(1, 0)
	for i := 0; i < 10; i++ {
		require.True(t, tree.Insert(tree.NewPoint(float64(i), float64(i), "p")))
	}
	assert.False(t, tree.Root().IsSplit())
	assert.Len(t, tree.Elements(), 10)
}

func TestInsertCoincidentPoints(t *testing.T) {
	// Coincident points can never be separated by subdivision; insertion
	// must still terminate, deepening the tree at most one level per
	// insert.
	tree := newTestTree(2, -1)
	for i := 0; i < 10; i++ {
		require.True(t, tree.Insert(tree.NewPoint(10, 10, "p")))
	}
	assert.Equal(t, 10, tree.Count())
	assert.Len(t, tree.ElementsAt(10, 10), 10)
}

func TestInsertOutsideBounds(t *testing.T) {
	tree := newTestTree(2, -1)
	p := tree.NewPoint(200, 200, "outside")

	assert.False(t, tree.Insert(p))
	assert.False(t, tree.Has(p))
	assert.Nil(t, tree.ParentsOf(p))
	assert.Equal(t, 0, tree.Count())
}

func TestInsertAlreadyMember(t *testing.T) {
	tree := newTestTree(10, -1)
	p := tree.NewPoint(10, 10, "p")

	require.True(t, tree.Insert(p))
	assert.False(t, tree.Insert(p), "membership did not grow from zero")
}

func TestSplitKeepsAncestorLists(t *testing.T) {
	tree := newTestTree(2, -1)
	for i := 0; i < 5; i++ {
		tree.Insert(tree.NewPoint(float64(i*20), float64(i*20), "p"))
	}
	require.True(t, tree.Root().IsSplit())

	// The split node keeps tracking every overlapping element; its list
	// is never pruned.
	assert.Len(t, tree.Root().Elements(), 5)
}

func TestSplitNodeKeepsReceivingElements(t *testing.T) {
	tree := newTestTree(2, -1)
	for i := 0; i < 3; i++ {
		tree.Insert(tree.NewPoint(float64(i*10), float64(i*10), "p"))
	}
	require.True(t, tree.Root().IsSplit())

	// An element inserted after the split still lands on the split
	// node's list as well as on the leaves it overlaps.
	late := tree.NewPoint(80, 80, "late")
	require.True(t, tree.Insert(late))
	assert.Contains(t, tree.Root().Elements(), late)

	leaf, ok := tree.ChildAt(80, 80)
	require.True(t, ok)
	assert.Contains(t, leaf.Elements(), late)
}

func TestInsertOnSubtreeNode(t *testing.T) {
	tree := newTestTree(2, -1)
	for i := 0; i < 3; i++ {
		tree.Insert(tree.NewPoint(float64(i*10), float64(i*10), "p"))
	}
	require.True(t, tree.Root().IsSplit())

	// Inserting through a child node indexes only within that subtree.
	br := tree.Root().Children()[3]
	p := tree.NewPoint(75, 75, "sub")
	require.True(t, br.Insert(p))

	assert.True(t, br.Has(p))
	assert.False(t, tree.Root().Has(p), "root was not part of the traversal")
}
