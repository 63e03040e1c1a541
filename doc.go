// Package wordgrid finds every dictionary word that can be spelled on a
// Boggle-style letter grid or from a Scrabble-style rack of tiles.
//
// The module is split into small packages:
//
//	trie/    case-insensitive prefix tree holding the word list
//	board/   rows×columns tile board, adjacency and rendering
//	solver/  depth-first search pruned by the trie, sequential or parallel
//	config/  defaults, YAML file and WORDGRID_* environment settings
//	logging/ slog logger construction
//	cmd/wordgrid/  command-line front end
//
// Quick start:
//
//	d := trie.New()
//	d.Load([]string{"quit", "quits", "its"})
//	b, _ := board.Parse(2, 3, "qu i t s a b")
//	res, err := solver.Solve(b, d)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Words)
//
// Tiles may hold more than one letter ("qu"); a tile is consumed whole
// when walking the trie.
package wordgrid
