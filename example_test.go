package quadtree_test

import (
	"fmt"

	quadtree "github.com/Marco4413/QuadTree"
)

func Example() {
	tree := quadtree.New[string](0, 0, 100, 100,
		quadtree.WithMaxElements[string](2),
	)

	tree.Insert(tree.NewPoint(10, 10, "a"))
	tree.Insert(tree.NewPoint(20, 20, "b"))
	tree.Insert(tree.NewPoint(30, 30, "c"))

	fmt.Println("split:", tree.Root().IsSplit())
	for _, el := range tree.ElementsAt(10, 10) {
		fmt.Println(el.Payload)
	}

	// Output:
	// split: true
	// a
	// b
	// c
}

func ExampleTree_Update() {
	tree := quadtree.New[string](0, 0, 100, 100,
		quadtree.WithMaxElements[string](2),
	)

	tree.Insert(tree.NewPoint(10, 10, "a"))
	tree.Insert(tree.NewPoint(20, 20, "b"))
	p := tree.NewPoint(30, 30, "mover")
	tree.Insert(p)

	// Mutating geometry alone does not re-index the element; Update
	// moves it to the leaf matching its new position.
	p.X, p.Y = 80, 80
	tree.Update(p)

	fmt.Println(len(tree.ElementsAt(10, 10)))
	fmt.Println(len(tree.ElementsAt(80, 80)))
	// Output:
	// 2
	// 1
}

func ExampleTree_ElementsInRect() {
	tree := quadtree.New[string](0, 0, 100, 100,
		quadtree.WithMaxElements[string](1),
	)

	// The circle straddles every quadrant, yet a deduplicated region
	// query reports it once.
	tree.Insert(tree.NewPoint(10, 10, "point"))
	tree.Insert(tree.NewCircle(50, 50, 40, "circle"))

	for _, el := range tree.ElementsInRect(0, 0, 100, 100, true) {
		fmt.Println(el.Payload)
	}
	// Output:
	// point
	// circle
}