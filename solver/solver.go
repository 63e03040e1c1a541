package solver

import (
	"context"
	"sort"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/wordgrid/board"
	"github.com/katalvlaran/wordgrid/trie"
)

const tracerName = "github.com/katalvlaran/wordgrid/solver"

// walker encapsulates the state of one depth-first search.
// It is owned by a single goroutine.
type walker struct {
	ctx     context.Context
	board   *board.Board
	tiles   []string
	mode    board.Mode
	minLen  int
	visited []bool              // cells on the current path
	skip    func(int) bool      // reads visited; built once per walker
	found   map[string]struct{} // accepted words
	nodes   int
}

// Solve returns every word in d that can be spelled on b, sorted and
// without duplicates. The board must be full.
func Solve(b *board.Board, d *trie.Dictionary, opts ...Option) (*Result, error) {
	// 1. Validate inputs
	if b == nil {
		return nil, ErrNilBoard
	}
	if d == nil {
		return nil, ErrNilDictionary
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.MinWordLength < 1 {
		solvesTotal.WithLabelValues(o.Mode.String(), resultInvalid).Inc()
		return nil, ErrInvalidMinWordLength
	}
	if !b.IsFull() {
		solvesTotal.WithLabelValues(o.Mode.String(), resultInvalid).Inc()
		return nil, ErrBoardNotFull
	}

	ctx, span := otel.Tracer(tracerName).Start(o.Ctx, "solver.Solve", trace.WithAttributes(
		attribute.Int("board.rows", b.Rows()),
		attribute.Int("board.columns", b.Columns()),
		attribute.String("mode", o.Mode.String()),
		attribute.Int("min_word_length", o.MinWordLength),
		attribute.Int("parallelism", o.Parallelism),
	))
	defer span.End()
	o.Ctx = ctx

	// 3. Search every permitted start cell
	start := time.Now()
	starts := startIndexes(b.Size(), o.ExcludeStart)
	var (
		found map[string]struct{}
		nodes int
		err   error
	)
	if o.Parallelism > 1 && len(starts) > 1 {
		found, nodes, err = solveParallel(b, d, o, starts)
	} else {
		found, nodes, err = solveSequential(b, d, o, starts)
	}
	dur := time.Since(start)
	observe(o.Mode, err, len(found), nodes, dur)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	// 4. Assemble the sorted result
	res := &Result{
		Words:    make([]string, 0, len(found)),
		Nodes:    nodes,
		Duration: dur,
	}
	for w := range found {
		res.Words = append(res.Words, w)
	}
	sort.Strings(res.Words)

	span.SetAttributes(attribute.Int("words", len(res.Words)), attribute.Int("nodes", nodes))
	if o.Logger != nil {
		o.Logger.Debug("board solved",
			"rows", b.Rows(),
			"columns", b.Columns(),
			"mode", o.Mode.String(),
			"words", len(res.Words),
			"nodes", nodes,
			"dur", dur,
		)
	}

	return res, nil
}

// startIndexes lists every cell of a size-cell board not in exclude.
func startIndexes(size int, exclude []int) []int {
	skip := make(map[int]struct{}, len(exclude))
	for _, e := range exclude {
		skip[e] = struct{}{}
	}
	out := make([]int, 0, size)
	for i := 0; i < size; i++ {
		if _, ok := skip[i]; !ok {
			out = append(out, i)
		}
	}
	return out
}

// solveSequential reuses one walker for every start cell.
func solveSequential(b *board.Board, d *trie.Dictionary, o Options, starts []int) (map[string]struct{}, int, error) {
	w := newWalker(o.Ctx, b, o)
	root := d.Root()
	for _, s := range starts {
		if err := w.search(s, root); err != nil {
			return nil, w.nodes, err
		}
	}
	return w.found, w.nodes, nil
}

func newWalker(ctx context.Context, b *board.Board, o Options) *walker {
	w := &walker{
		ctx:     ctx,
		board:   b,
		tiles:   b.Tiles(),
		mode:    o.Mode,
		minLen:  o.MinWordLength,
		visited: make([]bool, b.Size()),
		found:   make(map[string]struct{}),
	}
	w.skip = func(i int) bool { return w.visited[i] }
	return w
}

// search starts a path at cell start. A start tile that begins no
// dictionary word is abandoned without descending.
func (w *walker) search(start int, root *trie.Node) error {
	node := root.Advance(w.tiles[start])
	if node == nil {
		return nil
	}
	return w.traverse(start, node)
}

// traverse enters cell idx with node holding the prefix spelled so far.
// It honours cancellation, accepts the word at node if long enough, and
// recurses into every unvisited neighbour whose whole tile extends the
// prefix. The cell is released again before returning.
func (w *walker) traverse(idx int, node *trie.Node) error {
	// 1. Cancellation check
	select {
	case <-w.ctx.Done():
		return w.ctx.Err()
	default:
	}
	w.nodes++

	// 2. Accept the current prefix if it is a long enough word
	if node.IsTerminal() && utf8.RuneCountInString(node.Word()) >= w.minLen {
		w.found[node.Word()] = struct{}{}
	}

	// 3. Nothing in the dictionary extends this prefix
	if !node.HasChildren() {
		return nil
	}

	// 4. Extend through each unused neighbour
	w.visited[idx] = true
	var err error
	for n := range w.board.Neighbors(idx, w.mode, w.skip) {
		next := node.Advance(w.tiles[n])
		if next == nil {
			continue
		}
		if err = w.traverse(n, next); err != nil {
			break
		}
	}
	w.visited[idx] = false

	return err
}
