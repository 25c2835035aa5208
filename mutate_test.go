package quadtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemove(t *testing.T) {
	tree := newTestTree(2, -1)

	p1 := tree.NewPoint(10, 10, "p1")
	p2 := tree.NewPoint(20, 20, "p2")
	p3 := tree.NewPoint(80, 80, "p3")
	for _, p := range []*Element[string]{p1, p2, p3} {
		require.True(t, tree.Insert(p))
	}
	require.True(t, tree.Root().IsSplit())

	require.True(t, tree.Remove(p1))
	assert.False(t, tree.Has(p1))
	assert.Nil(t, tree.ParentsOf(p1))
	assert.NotContains(t, tree.ElementsAt(10, 10), p1)
	assert.Equal(t, 2, tree.Count())

	// The other elements are untouched.
	assert.True(t, tree.Has(p2))
	assert.True(t, tree.Has(p3))
	assert.Contains(t, tree.ElementsAt(20, 20), p2)

	// Removing again is a no-op.
	assert.False(t, tree.Remove(p1))
}

func TestRemoveNotMember(t *testing.T) {
	tree := newTestTree(2, -1)
	p := tree.NewPoint(10, 10, "never inserted")
	assert.False(t, tree.Remove(p))
}

func TestRemoveMultiLeafMember(t *testing.T) {
	tree := newTestTree(2, -1)
	for i := 0; i < 3; i++ {
		tree.Insert(tree.NewPoint(float64(10+i*10), float64(10+i*10), "p"))
	}
	require.True(t, tree.Root().IsSplit())

	// The circle overlaps all four quadrants.
	c := tree.NewCircle(50, 50, 60, "wide")
	require.True(t, tree.Insert(c))
	require.Greater(t, len(tree.ParentsOf(c)), 1)

	require.True(t, tree.Remove(c))
	assert.False(t, tree.Has(c))
	for _, child := range tree.Root().Children() {
		assert.NotContains(t, child.Elements(), c)
	}
}

func TestUpdateMovesAcrossBoundary(t *testing.T) {
	tree := newTestTree(2, -1)
	for i := 0; i < 3; i++ {
		tree.Insert(tree.NewPoint(float64(10+i*10), float64(10+i*10), "filler"))
	}
	require.True(t, tree.Root().IsSplit())

	p := tree.NewPoint(40, 40, "mover")
	require.True(t, tree.Insert(p))
	require.Contains(t, tree.ElementsAt(40, 40), p)

	// Move across the subdivision boundary and re-index.
	p.X, p.Y = 60, 60
	require.True(t, tree.Update(p))

	assert.NotContains(t, tree.ElementsAt(40, 40), p)
	assert.Contains(t, tree.ElementsAt(60, 60), p)
}

func TestUpdateNotMember(t *testing.T) {
	tree := newTestTree(2, -1)
	p := tree.NewPoint(10, 10, "never inserted")
	assert.False(t, tree.Update(p))
	assert.False(t, tree.Has(p))
}

func TestUpdateMoveOutOfBounds(t *testing.T) {
	tree := newTestTree(2, -1)
	p := tree.NewPoint(10, 10, "p")
	require.True(t, tree.Insert(p))

	p.X, p.Y = 500, 500
	assert.False(t, tree.Update(p), "re-insertion gained no membership")
	assert.False(t, tree.Has(p))
	assert.Equal(t, 0, tree.Count())
}

func TestHasOnChildren(t *testing.T) {
	tree := newTestTree(2, -1)
	points := []*Element[string]{
		tree.NewPoint(10, 10, "tl"),
		tree.NewPoint(60, 10, "tr"),
		tree.NewPoint(10, 60, "bl"),
	}
	for _, p := range points {
		require.True(t, tree.Insert(p))
	}
	require.True(t, tree.Root().IsSplit())

	children := tree.Root().Children()
	assert.True(t, children[0].Has(points[0]))
	assert.False(t, children[1].Has(points[0]))
	assert.True(t, children[1].Has(points[1]))
	assert.True(t, children[2].Has(points[2]))
	assert.False(t, children[3].Has(points[0]))

	// The root tracks everything.
	for _, p := range points {
		assert.True(t, tree.Root().Has(p))
	}
}

func TestParentsOfOrder(t *testing.T) {
	tree := newTestTree(2, -1)
	for i := 0; i < 3; i++ {
		tree.Insert(tree.NewPoint(float64(10+i*10), float64(10+i*10), "filler"))
	}
	require.True(t, tree.Root().IsSplit())

	p := tree.NewPoint(80, 80, "p")
	require.True(t, tree.Insert(p))

	parents := tree.ParentsOf(p)
	require.Len(t, parents, 2)
	assert.True(t, parents[0].IsRoot(), "insertion order is root-to-descendant")
	assert.False(t, parents[1].IsRoot())
	assert.True(t, parents[1].IsPointInBounds(80, 80))

	// The returned slice is a copy.
	parents[0] = Node[string]{}
	again := tree.ParentsOf(p)
	assert.True(t, again[0].IsRoot())
}

func TestIsRootAndParent(t *testing.T) {
	tree := newTestTree(2, -1)
	for i := 0; i < 3; i++ {
		tree.Insert(tree.NewPoint(float64(i*10), float64(i*10), "p"))
	}
	require.True(t, tree.Root().IsSplit())

	root := tree.Root()
	assert.True(t, root.IsRoot())
	_, ok := root.Parent()
	assert.False(t, ok)

	for _, child := range root.Children() {
		assert.False(t, child.IsRoot())
		parent, ok := child.Parent()
		require.True(t, ok)
		assert.Equal(t, root, parent)
	}
}
