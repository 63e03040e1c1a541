// Package solver defines options, results and sentinel errors for board
// word search.
package solver

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/katalvlaran/wordgrid/board"
)

// DefaultMinWordLength is the shortest word accepted unless overridden.
const DefaultMinWordLength = 3

var (
	// ErrNilBoard is returned when Solve receives a nil board.
	ErrNilBoard = errors.New("solver: board is nil")

	// ErrNilDictionary is returned when Solve receives a nil dictionary.
	ErrNilDictionary = errors.New("solver: dictionary is nil")

	// ErrBoardNotFull indicates the board still has unset slots.
	// Searching a partial board is refused outright.
	ErrBoardNotFull = errors.New("solver: board has not been filled")

	// ErrInvalidMinWordLength indicates a minimum word length below 1.
	ErrInvalidMinWordLength = errors.New("solver: minimum word length must be at least 1")
)

// Option configures optional behaviour of Solve.
type Option func(*Options)

// Options holds configurable parameters for a solve.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// MinWordLength is the shortest word, in runes, that is accepted.
	MinWordLength int

	// Mode selects grid adjacency or bag (any arrangement) search.
	Mode board.Mode

	// ExcludeStart lists cells skipped as starting points. They may still
	// appear later in a path.
	ExcludeStart []int

	// Parallelism is the number of goroutines start cells are spread over.
	// Values below 2 search sequentially.
	Parallelism int

	// Logger, if non-nil, receives a debug record per solve.
	Logger *slog.Logger
}

// DefaultOptions returns Options with:
//   - Background context
//   - MinWordLength = DefaultMinWordLength
//   - Grid mode
//   - No excluded starts
//   - Sequential search
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MinWordLength: DefaultMinWordLength,
		Mode:          board.Grid,
		Parallelism:   1,
	}
}

// WithContext sets the context checked at every search step.
// A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMinWordLength sets the shortest accepted word length in runes.
func WithMinWordLength(n int) Option {
	return func(o *Options) {
		o.MinWordLength = n
	}
}

// WithMode selects grid or bag adjacency.
func WithMode(m board.Mode) Option {
	return func(o *Options) {
		o.Mode = m
	}
}

// WithExcludeStart skips the given cells as starting points, e.g. when
// another process has already explored them.
func WithExcludeStart(indexes ...int) Option {
	return func(o *Options) {
		o.ExcludeStart = append(o.ExcludeStart, indexes...)
	}
}

// WithParallelism spreads start cells over n goroutines.
func WithParallelism(n int) Option {
	return func(o *Options) {
		o.Parallelism = n
	}
}

// WithLogger installs a logger for per-solve debug output.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// Result is the outcome of a completed solve.
type Result struct {
	// Words holds every accepted word once, sorted.
	Words []string

	// Nodes counts search steps (cells entered with a live trie prefix).
	Nodes int

	// Duration is the wall time of the search.
	Duration time.Duration
}
