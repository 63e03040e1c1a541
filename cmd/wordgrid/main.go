// Command wordgrid solves Boggle-style letter grids and Scrabble-style
// tile racks against a word list.
//
//	wordgrid --dict words.txt solve a b c d e f g h i j k l m n o p
//	wordgrid --dict words.txt words c a t
//	wordgrid --dict words.txt play --time 2m
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
