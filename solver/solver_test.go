package solver_test

import (
	"bytes"
	"context"
	"log/slog"
	"math/rand"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/wordgrid/board"
	"github.com/katalvlaran/wordgrid/solver"
	"github.com/katalvlaran/wordgrid/trie"
)

// dict builds a dictionary from words.
func dict(words ...string) *trie.Dictionary {
	d := trie.New()
	d.Load(words)
	return d
}

// alphabetBoard is the 4×4 board a..p in row-major order.
func alphabetBoard(t require.TestingT) *board.Board {
	b, err := board.Parse(4, 4, "a b c d e f g h i j k l m n o p")
	require.NoError(t, err)
	return b
}

// SolveSuite covers the documented solve scenarios.
type SolveSuite struct {
	suite.Suite
}

func TestSolveSuite(t *testing.T) {
	suite.Run(t, new(SolveSuite))
}

// TestWaterLine: a single line "w a t e r" with {water, wate, a} at the
// default minimum of 3 yields both long words and drops "a".
func (s *SolveSuite) TestWaterLine() {
	b, err := board.FromTiles(5, 1, []string{"w", "a", "t", "e", "r"})
	s.Require().NoError(err)

	res, err := solver.Solve(b, dict("water", "wate", "a"))
	s.Require().NoError(err)
	s.Equal([]string{"wate", "water"}, res.Words)
	s.Positive(res.Nodes)
}

// TestWaterLine_GridVersusBag: only bag mode can reorder the line.
func (s *SolveSuite) TestWaterLine_GridVersusBag() {
	b, err := board.FromTiles(1, 5, []string{"w", "a", "t", "e", "r"})
	s.Require().NoError(err)
	d := dict("wata", "wate", "a", "tear", "tea", "eat", "water")

	grid, err := solver.Solve(b, d, solver.WithMinWordLength(1))
	s.Require().NoError(err)
	s.Equal([]string{"a", "wate", "water"}, grid.Words)

	bag, err := solver.Solve(b, d, solver.WithMinWordLength(1), solver.WithMode(board.Bag))
	s.Require().NoError(err)
	s.Equal([]string{"a", "eat", "tea", "tear", "wate", "water"}, bag.Words)
	s.NotContains(bag.Words, "wata", "a single tile cannot be used twice")
}

// TestAlphabetPair: on a..p only the adjacent pair a/b spells both words.
func (s *SolveSuite) TestAlphabetPair() {
	res, err := solver.Solve(alphabetBoard(s.T()), dict("ab", "ba"), solver.WithMinWordLength(2))
	s.Require().NoError(err)
	s.Equal([]string{"ab", "ba"}, res.Words)
}

// TestAlphabetKnownWords: every word traceable on a..p is found.
func (s *SolveSuite) TestAlphabetKnownWords() {
	known := []string{
		"knife", "mino", "bein", "fink", "nife", "glop", "polk", "mink", "fino", "jink",
		"nief", "knop", "ink", "fin", "jin", "nim", "kop", "pol", "fab", "fie", "nie",
		"kon", "lop", "ab", "ef", "if", "mi", "be", "jo", "ch", "on", "lo", "ae", "ea",
		"in", "ba", "fa", "no", "ko", "op", "po",
	}
	// words needing non-adjacent cells or a reused cell
	unreachable := []string{"ap", "dam", "aba", "pop", "mop"}

	d := dict(append(slices.Clone(known), unreachable...)...)
	res, err := solver.Solve(alphabetBoard(s.T()), d, solver.WithMinWordLength(2))
	s.Require().NoError(err)

	want := slices.Clone(known)
	slices.Sort(want)
	s.Equal(want, res.Words)
}

// TestBagCat: bag mode ignores adjacency entirely.
func (s *SolveSuite) TestBagCat() {
	b, err := board.FromTiles(1, 3, []string{"c", "a", "t"})
	s.Require().NoError(err)

	res, err := solver.Solve(b, dict("cat", "act", "at"),
		solver.WithMinWordLength(2), solver.WithMode(board.Bag))
	s.Require().NoError(err)
	s.Equal([]string{"act", "at", "cat"}, res.Words)
}

// TestMultiLetterTiles: tiles are consumed whole, so "wat" cannot end
// inside the "ate" tile.
func (s *SolveSuite) TestMultiLetterTiles() {
	b, err := board.FromTiles(1, 7, []string{"w", "ate", "r", "bu", "rb", "li", "est"})
	s.Require().NoError(err)
	s.Require().True(b.IsFull())

	res, err := solver.Solve(b, dict("water", "burbliest", "wat", "rate", "bur", "blister"))
	s.Require().NoError(err)
	s.Equal([]string{"bur", "burbliest", "rate", "water"}, res.Words)
}

//----------------------------------------------------------------------------//
// Edge cases
//----------------------------------------------------------------------------//

func TestSolve_Errors(t *testing.T) {
	full := alphabetBoard(t)
	partial, err := board.New(4, 4)
	require.NoError(t, err)
	partial.Insert("a", 0)
	d := dict("ab")

	cases := []struct {
		name string
		b    *board.Board
		d    *trie.Dictionary
		opts []solver.Option
		err  error
	}{
		{"NilBoard", nil, d, nil, solver.ErrNilBoard},
		{"NilDictionary", full, nil, nil, solver.ErrNilDictionary},
		{"NotFull", partial, d, nil, solver.ErrBoardNotFull},
		{"ZeroMinLength", full, d, []solver.Option{solver.WithMinWordLength(0)}, solver.ErrInvalidMinWordLength},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := solver.Solve(tc.b, tc.d, tc.opts...)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestSolve_DuplicatePaths: a word spelled along many paths appears once.
func TestSolve_DuplicatePaths(t *testing.T) {
	b, err := board.FromTiles(2, 2, []string{"a", "a", "a", "a"})
	require.NoError(t, err)

	res, err := solver.Solve(b, dict("aaa", "aaaa", "aaaaa"))
	require.NoError(t, err)
	assert.Equal(t, []string{"aaa", "aaaa"}, res.Words, "five a's need a fifth cell")
}

// TestSolve_ExcludeStart: excluded cells are skipped as starts only.
func TestSolve_ExcludeStart(t *testing.T) {
	b, err := board.FromTiles(1, 3, []string{"c", "a", "t"})
	require.NoError(t, err)
	d := dict("cat", "at")
	opt := solver.WithMinWordLength(2)

	res, err := solver.Solve(b, d, opt, solver.WithExcludeStart(0))
	require.NoError(t, err)
	assert.Equal(t, []string{"at"}, res.Words)

	res, err = solver.Solve(b, d, opt, solver.WithExcludeStart(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"cat"}, res.Words, "cell 1 may still be used mid-path")

	res, err = solver.Solve(b, d, opt, solver.WithExcludeStart(0, 1, 2, 99))
	require.NoError(t, err)
	assert.Empty(t, res.Words)
}

// TestSolve_MinLengthCountsRunes: length is measured in letters, not bytes.
func TestSolve_MinLengthCountsRunes(t *testing.T) {
	b, err := board.FromTiles(1, 3, []string{"é", "t", "é"})
	require.NoError(t, err)

	res, err := solver.Solve(b, dict("été", "ét"), solver.WithMinWordLength(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"été"}, res.Words)
}

// TestSolve_CaseInsensitiveTiles: upper-case tiles match a lower-case dictionary.
func TestSolve_CaseInsensitiveTiles(t *testing.T) {
	b, err := board.FromTiles(1, 4, []string{"Q", "U", "I", "T"})
	require.NoError(t, err)

	res, err := solver.Solve(b, dict("QUIT", "quits"))
	require.NoError(t, err)
	assert.Equal(t, []string{"quit"}, res.Words)
}

func TestSolve_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, p := range []int{1, 4} {
		res, err := solver.Solve(alphabetBoard(t), dict("ab"),
			solver.WithContext(ctx), solver.WithParallelism(p))
		assert.Nil(t, res)
		assert.ErrorIs(t, err, context.Canceled, "parallelism %d", p)
	}
}

// TestSolve_Deadline runs a search that cannot finish in time: a 5×5 board
// of identical tiles against a dictionary of every run length explodes.
func TestSolve_Deadline(t *testing.T) {
	b, err := board.FromTiles(5, 5, slices.Repeat([]string{"a"}, 25))
	require.NoError(t, err)
	d := trie.New()
	for n := 1; n <= 25; n++ {
		d.AddWord(strings.Repeat("a", n))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	res, err := solver.Solve(b, d, solver.WithContext(ctx))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// TestSolve_ParallelMatchesSequential compares both strategies on seeded
// random boards whose dictionary mixes spellable and random words.
func TestSolve_ParallelMatchesSequential(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	corpus := []string{"stone", "notes", "tones", "onset", "seton", "steno", "rates", "tears", "stare", "aster"}

	for trial := 0; trial < 5; trial++ {
		b, err := board.Generate(4, 4, corpus, r)
		require.NoError(t, err)

		d := dict(corpus...)
		for i := 0; i < 500; i++ {
			n := 2 + r.Intn(5)
			w := make([]byte, n)
			for j := range w {
				w[j] = "aenorst"[r.Intn(7)]
			}
			d.AddWord(string(w))
		}

		for _, mode := range []board.Mode{board.Grid, board.Bag} {
			seq, err := solver.Solve(b, d, solver.WithMode(mode))
			require.NoError(t, err)
			par, err := solver.Solve(b, d, solver.WithMode(mode), solver.WithParallelism(4))
			require.NoError(t, err)

			assert.Equal(t, seq.Words, par.Words, "trial %d mode %s", trial, mode)
			assert.Equal(t, seq.Nodes, par.Nodes)
			assert.True(t, slices.IsSorted(par.Words))
			for _, w := range par.Words {
				assert.GreaterOrEqual(t, len([]rune(w)), solver.DefaultMinWordLength)
				assert.True(t, d.IsWord(w))
			}
		}
	}
}

// TestSolve_BagFindsSupersetOfGrid: bag adjacency only adds moves.
func TestSolve_BagFindsSupersetOfGrid(t *testing.T) {
	d := dict("abe", "bee", "feb", "fed", "bad", "cab", "dab", "ace", "pan", "nap", "ink", "kin", "lop", "pol")
	b := alphabetBoard(t)

	grid, err := solver.Solve(b, d)
	require.NoError(t, err)
	bag, err := solver.Solve(b, d, solver.WithMode(board.Bag))
	require.NoError(t, err)

	assert.Subset(t, bag.Words, grid.Words)
	assert.Contains(t, bag.Words, "cab")
	assert.NotContains(t, bag.Words, "bee", "only one e on the board")
}

func TestSolve_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := solver.Solve(alphabetBoard(t), dict("fin"), solver.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "board solved")
	assert.Contains(t, buf.String(), "words=1")
}

func TestDefaultOptions(t *testing.T) {
	o := solver.DefaultOptions()
	assert.NotNil(t, o.Ctx)
	assert.Equal(t, 3, o.MinWordLength)
	assert.Equal(t, board.Grid, o.Mode)
	assert.Equal(t, 1, o.Parallelism)
	assert.Empty(t, o.ExcludeStart)

	var nilCtx context.Context
	solver.WithContext(nilCtx)(&o)
	assert.NotNil(t, o.Ctx)
}
