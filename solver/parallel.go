package solver

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wordgrid/board"
	"github.com/katalvlaran/wordgrid/trie"
)

// solveParallel searches each start cell with its own walker on a bounded
// errgroup. The board and dictionary are only read, so no locking is
// needed; per-start word sets are merged by union once all walkers finish.
// The first error (usually cancellation) stops the remaining walkers.
func solveParallel(b *board.Board, d *trie.Dictionary, o Options, starts []int) (map[string]struct{}, int, error) {
	g, gctx := errgroup.WithContext(o.Ctx)
	g.SetLimit(o.Parallelism)

	root := d.Root()
	found := make([]map[string]struct{}, len(starts))
	nodes := make([]int, len(starts))

	for k, s := range starts {
		g.Go(func() error {
			w := newWalker(gctx, b, o)
			err := w.search(s, root)
			found[k] = w.found
			nodes[k] = w.nodes
			return err
		})
	}
	err := g.Wait()

	total := 0
	for _, n := range nodes {
		total += n
	}
	if err != nil {
		return nil, total, err
	}

	merged := make(map[string]struct{})
	for _, set := range found {
		for w := range set {
			merged[w] = struct{}{}
		}
	}
	return merged, total, nil
}
