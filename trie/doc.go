// Package trie implements the prefix dictionary used by the wordgrid solver.
//
// What:
//
//   - Dictionary owns a rune-keyed prefix tree of lower-cased words.
//   - Whole-word lookup (IsWord) and prefix-validity lookup (NodeFor,
//     IsStillPotentiallyValid) fail closed: an unknown prefix is simply
//     "not found", never an error.
//   - Node.Advance consumes a multi-rune tile in one call, which is the
//     incremental primitive the solver prunes with.
//   - Bulk loading from a slice (Load) or a newline-separated word list
//     (LoadReader, LoadFile).
//
// Why:
//
//   - Insertion and lookup cost is proportional to the word length, not to
//     the dictionary size, so a board search can abandon a path the moment
//     no word starts with the letters consumed so far.
//
// Case handling:
//
//	All input is folded with unicode.ToLower at insertion and lookup time.
//	"ThEoDoRe", "theodore" and "THEODORE" are the same word.
//
// Complexity:
//
//   - AddWord, IsWord, NodeFor: O(L) time, L = rune length of the input.
//   - Words(node):              O(N log N) for N words below node (sorted output).
//   - Memory:                   O(total runes of distinct prefixes).
//
// Concurrency:
//
//	A Dictionary is not synchronised. Populate it first; once loading is
//	finished it may be read from any number of goroutines.
//
// Errors:
//
//   - LoadReader / LoadFile wrap I/O failures with a "trie:" prefix.
package trie
