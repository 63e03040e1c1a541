// Package solver enumerates every dictionary word that can be spelled on a
// board.Board, pruning the search against a trie.Dictionary.
//
// What:
//
//   - Solve walks the board from every start cell, depth first. Each step
//     consumes a whole tile from the current trie node; a step whose tile
//     does not continue some dictionary word is abandoned immediately.
//   - A word is accepted at any node along a path (not only at leaves) once
//     it reaches the minimum length; descending stops only when the node has
//     no children.
//   - A cell is used at most once per path. Each walker keeps one visited
//     bitmap, set when a cell is entered and cleared when the search
//     backtracks out of it, so the same cell can begin or appear in any
//     number of other paths.
//   - Grid mode follows board adjacency; Bag mode treats the tiles as an
//     unordered rack and finds every word spelled by any arrangement.
//
// Options:
//
//   - WithContext(ctx)         cooperative cancellation, checked at every step.
//   - WithMinWordLength(n)     shortest accepted word in runes (default 3).
//   - WithMode(mode)           board.Grid (default) or board.Bag.
//   - WithExcludeStart(i...)   cells never used as a starting point.
//   - WithParallelism(n)       fan start cells out over n goroutines.
//   - WithLogger(l)            debug summary per solve.
//
// Complexity:
//
//	Worst case exponential in the board size; in practice bounded by the
//	number of dictionary prefixes that are spellable on the board.
//	Memory: O(rows×columns) per walker plus the result set.
//
// Errors:
//
//   - ErrNilBoard, ErrNilDictionary    missing inputs.
//   - ErrBoardNotFull                  the board has unset slots; nothing is searched.
//   - ErrInvalidMinWordLength          minimum below 1.
//   - context.Canceled / DeadlineExceeded when the context ends mid-search.
//
// Solve never returns a partial result: either the complete word list or an
// error.
package solver
