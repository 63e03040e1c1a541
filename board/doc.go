// Package board models a rectangular word-search board whose cells hold
// tiles of one or more letters, and the adjacency relation a word path may
// follow across it.
//
// What:
//
//   - Board stores rows×columns tile slots in row-major order.
//   - Tiles are non-empty strings; multi-letter tiles such as "qu" are
//     consumed as a unit by the solver. An empty slot is unset.
//   - Two adjacency modes:
//   - Grid: the eight surrounding cells (left, up-left, down-left, right,
//     up-right, down-right, up, down), clipped at the edges, no wraparound.
//   - Bag:  every other cell, i.e. adjacency is ignored and any arrangement
//     of the tiles may be spelled.
//   - Rendering (String) and random generation from a word corpus (Generate).
//
// Why:
//
//   - Keeps geometry independent of the dictionary; the same Board can be
//     searched by several solvers, concurrently, once it is full.
//
// Index mapping:
//
//	row = index / columns
//	col = index % columns
//
// Complexity:
//
//   - Insert, IsAdjacent, Coordinate: O(1).
//   - IsFull:                         O(rows×columns).
//   - Neighbors (Grid):               O(1) per call, at most 8 yields.
//   - Neighbors (Bag):                O(rows×columns) per call.
//
// Errors:
//
//   - ErrInvalidDimensions: rows or columns below 1.
//   - ErrEmptyCorpus:       Generate called with no letters to draw from.
//   - ErrTileCount:         Parse received the wrong number of tiles.
//
// Out-of-range Insert calls are ignored rather than reported; IsFull is the
// single check callers rely on before searching.
package board
