package trie

import (
	"sort"
	"strings"
	"unicode"
)

// New returns an empty Dictionary.
func New() *Dictionary {
	return &Dictionary{root: newNode()}
}

// Root returns the root node. The empty prefix always resolves to it.
func (d *Dictionary) Root() *Node {
	return d.root
}

// Len reports how many distinct words have been added.
func (d *Dictionary) Len() int {
	return d.count
}

// AddWord inserts word, lower-cased, creating one child per rune.
// Adding a word twice leaves the dictionary unchanged after the first call.
// The empty string marks the root terminal; callers enforce a minimum
// length before accepting it.
func (d *Dictionary) AddWord(word string) {
	word = normalize(word)
	node := d.root
	for _, r := range word {
		next, ok := node.children[r]
		if !ok {
			next = newNode()
			node.children[r] = next
		}
		node = next
	}
	if !node.terminal {
		node.terminal = true
		node.word = word
		d.count++
	}
}

// NodeFor walks prefix from the root and returns the node it lands on.
// ok is false as soon as a rune has no matching edge.
func (d *Dictionary) NodeFor(prefix string) (*Node, bool) {
	node := d.root
	for _, r := range prefix {
		node = node.children[unicode.ToLower(r)]
		if node == nil {
			return nil, false
		}
	}
	return node, true
}

// IsWord reports whether s is a complete word in the dictionary.
func (d *Dictionary) IsWord(s string) bool {
	node, ok := d.NodeFor(s)
	return ok && node.terminal
}

// IsStillPotentiallyValid reports whether some word starts with prefix.
func (d *Dictionary) IsStillPotentiallyValid(prefix string) bool {
	_, ok := d.NodeFor(prefix)
	return ok
}

// IsValidPath reports whether node has an edge for letter.
// A nil node (a prefix that was already not found) is never valid.
func (d *Dictionary) IsValidPath(node *Node, letter rune) bool {
	if node == nil {
		return false
	}
	_, ok := node.children[unicode.ToLower(letter)]
	return ok
}

// Words returns every word stored at or below node, sorted.
// Children are collected depth-first before the node's own word.
func (d *Dictionary) Words(node *Node) []string {
	if node == nil {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	var collect func(n *Node)
	collect = func(n *Node) {
		for _, child := range n.children {
			collect(child)
		}
		if !n.terminal {
			return
		}
		if _, dup := seen[n.word]; dup {
			return
		}
		seen[n.word] = struct{}{}
		out = append(out, n.word)
	}
	collect(node)
	sort.Strings(out)

	return out
}

// AllWords returns every word in the dictionary, sorted.
func (d *Dictionary) AllWords() []string {
	return d.Words(d.root)
}

// Advance consumes every rune of tile starting at n.
// It returns nil if n is nil or any rune has no edge, so a multi-rune tile
// such as "qu" either matches as a whole or not at all.
func (n *Node) Advance(tile string) *Node {
	node := n
	for _, r := range tile {
		if node == nil {
			return nil
		}
		node = node.children[unicode.ToLower(r)]
	}
	return node
}

// Child returns the child for letter, if any.
func (n *Node) Child(letter rune) (*Node, bool) {
	if n == nil {
		return nil, false
	}
	c, ok := n.children[unicode.ToLower(letter)]
	return c, ok
}

// IsTerminal reports whether n ends a complete word.
func (n *Node) IsTerminal() bool {
	return n != nil && n.terminal
}

// Word returns the normalised word stored at a terminal node, or "".
func (n *Node) Word() string {
	if n == nil {
		return ""
	}
	return n.word
}

// HasChildren reports whether any word extends the prefix n represents.
func (n *Node) HasChildren() bool {
	return n != nil && len(n.children) > 0
}

// normalize folds s rune by rune, the same way lookups fold their input.
func normalize(s string) string {
	return strings.Map(unicode.ToLower, s)
}
