package quadtree

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/Marco4413/QuadTree/geom"
)

// batchElementsInRect fans the region queries out across goroutines.
// Queries never mutate the tree, so concurrent reads are safe as long as
// no mutation runs at the same time.
func (t *Tree[T]) batchElementsInRect(ctx context.Context, rects []geom.Rect, filterDuplicates bool) ([][]*Element[T], error) {
	results := make([][]*Element[T], len(rects))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	root := t.Root()
	for i, r := range rects {
		i, r := i, r
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = root.ElementsInRect(r.X, r.Y, r.W, r.H, filterDuplicates)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch region query: %w", err)
	}
	return results, nil
}
