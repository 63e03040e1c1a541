package board

import (
	"fmt"
	"strings"
)

// New allocates a rows×columns board with every slot unset.
// Returns ErrInvalidDimensions if either dimension is below 1.
func New(rows, columns int) (*Board, error) {
	if rows < 1 || columns < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, columns)
	}
	return &Board{
		rows:    rows,
		columns: columns,
		tiles:   make([]string, rows*columns),
	}, nil
}

// FromTiles builds a board and bulk-assigns tiles with SetTiles.
// The result may still be non-full; check IsFull.
func FromTiles(rows, columns int, tiles []string) (*Board, error) {
	b, err := New(rows, columns)
	if err != nil {
		return nil, err
	}
	b.SetTiles(tiles)
	return b, nil
}

// Parse splits s on whitespace ("a b qu d ...") and fills a rows×columns
// board with the fields in row-major order. Tiles are lower-cased.
// Unlike SetTiles, the tile count must match the board size exactly.
func Parse(rows, columns int, s string) (*Board, error) {
	fields := strings.Fields(strings.ToLower(s))
	if rows >= 1 && columns >= 1 && len(fields) != rows*columns {
		return nil, fmt.Errorf("%w: got %d tiles for a %dx%d board", ErrTileCount, len(fields), rows, columns)
	}
	return FromTiles(rows, columns, fields)
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Columns returns the number of columns.
func (b *Board) Columns() int { return b.columns }

// Size returns rows×columns.
func (b *Board) Size() int { return b.rows * b.columns }

// Tile returns the tile at index, or "" if the index is out of range or unset.
func (b *Board) Tile(index int) string {
	if index < 0 || index >= len(b.tiles) {
		return ""
	}
	return b.tiles[index]
}

// Tiles returns a copy of the slot slice.
func (b *Board) Tiles() []string {
	out := make([]string, len(b.tiles))
	copy(out, b.tiles)
	return out
}

// Insert sets slot index to tile. Out-of-range indexes are ignored.
func (b *Board) Insert(tile string, index int) {
	if index < 0 || index >= len(b.tiles) {
		return
	}
	b.tiles[index] = tile
}

// SetTiles replaces every slot with a copy of tiles.
// The length is not checked here; a short or long slice leaves the board
// non-full, which IsFull reports.
func (b *Board) SetTiles(tiles []string) {
	b.tiles = make([]string, len(tiles))
	copy(b.tiles, tiles)
}

// IsFull reports whether the slot count equals rows×columns and every slot
// holds a tile.
func (b *Board) IsFull() bool {
	if len(b.tiles) != b.Size() {
		return false
	}
	for _, t := range b.tiles {
		if t == "" {
			return false
		}
	}
	return true
}

// InBounds reports whether (row, col) lies on the board.
// Complexity: O(1).
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.columns
}

// Index maps (row, col) to a row-major index.
func (b *Board) Index(row, col int) int {
	return row*b.columns + col
}

// Coordinate converts a row-major index back to (row, col).
func (b *Board) Coordinate(index int) (row, col int) {
	return index / b.columns, index % b.columns
}

// IsAdjacent reports whether i and j are at most one row and one column
// apart. An index is adjacent to itself.
func (b *Board) IsAdjacent(i, j int) bool {
	ri, ci := b.Coordinate(i)
	rj, cj := b.Coordinate(j)
	return abs(ri-rj) <= 1 && abs(ci-cj) <= 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
