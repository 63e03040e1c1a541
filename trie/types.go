package trie

// Node is one prefix in the dictionary tree.
// The node reached by consuming runes l1..lk from the root represents
// exactly the prefix l1..lk. Only terminal nodes carry a word.
type Node struct {
	children map[rune]*Node
	terminal bool
	word     string
}

// Dictionary owns the root of the prefix tree.
type Dictionary struct {
	root  *Node
	count int
}

// newNode allocates an empty, non-terminal node.
func newNode() *Node {
	return &Node{children: make(map[rune]*Node)}
}
