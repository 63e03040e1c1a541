package board

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for board construction.
var (
	// ErrInvalidDimensions indicates rows or columns below 1.
	ErrInvalidDimensions = errors.New("board: rows and columns must be at least 1")
	// ErrEmptyCorpus indicates Generate had no letters to draw from.
	ErrEmptyCorpus = errors.New("board: corpus has no letters")
	// ErrTileCount indicates a parsed tile list does not fill the board exactly.
	ErrTileCount = errors.New("board: tile count does not match board size")
	// ErrUnknownMode indicates ParseMode received an unrecognised name.
	ErrUnknownMode = errors.New("board: unknown adjacency mode")
)

// Mode selects how neighbours are computed.
type Mode int

const (
	// Grid restricts moves to the eight surrounding cells.
	Grid Mode = iota
	// Bag ignores geometry: every other cell is a neighbour.
	Bag
)

// String returns the lower-case mode name.
func (m Mode) String() string {
	switch m {
	case Grid:
		return "grid"
	case Bag:
		return "bag"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode maps "grid"/"boggle" and "bag"/"scrabble" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "grid", "boggle", "":
		return Grid, nil
	case "bag", "scrabble":
		return Bag, nil
	default:
		return Grid, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// gridOffsets lists {dRow, dCol} in the fixed order neighbours are yielded:
// left, up-left, down-left, right, up-right, down-right, up, down.
var gridOffsets = [8][2]int{
	{0, -1}, {-1, -1}, {1, -1},
	{0, 1}, {-1, 1}, {1, 1},
	{-1, 0}, {1, 0},
}

// Board is a rows×columns grid of tile slots. An empty string is unset.
// Fill it once, then treat it as read-only while searching.
type Board struct {
	rows, columns int
	tiles         []string
}
