package board

import (
	"math/rand"
	"strings"
	"unicode"
)

// Generate fills a new rows×columns board with single-letter tiles drawn
// uniformly from the letters of corpus, so letter frequencies follow the
// word list. rng supplies randomness; pass a seeded source for
// reproducible boards.
func Generate(rows, columns int, corpus []string, rng *rand.Rand) (*Board, error) {
	b, err := New(rows, columns)
	if err != nil {
		return nil, err
	}

	letters := make([]rune, 0, len(corpus)*6)
	for _, w := range corpus {
		for _, r := range strings.ToLower(w) {
			if unicode.IsLetter(r) {
				letters = append(letters, r)
			}
		}
	}
	if len(letters) == 0 {
		return nil, ErrEmptyCorpus
	}

	for i := range b.tiles {
		b.tiles[i] = string(letters[rng.Intn(len(letters))])
	}
	return b, nil
}
