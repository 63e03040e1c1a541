package trie

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// commentPrefix marks a line of a word list file that carries no word.
const commentPrefix = "#"

// Load adds every word in words and returns how many were new.
func (d *Dictionary) Load(words []string) int {
	before := d.count
	for _, w := range words {
		d.AddWord(w)
	}
	return d.count - before
}

// LoadReader reads one word per line from r.
// Surrounding whitespace is trimmed; blank lines and lines starting with
// "#" are skipped. It returns the number of new words added before any
// read error.
func (d *Dictionary) LoadReader(r io.Reader) (int, error) {
	before := d.count
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		d.AddWord(line)
	}
	if err := sc.Err(); err != nil {
		return d.count - before, fmt.Errorf("trie: read word list: %w", err)
	}

	return d.count - before, nil
}

// LoadFile opens path and loads it with LoadReader.
func (d *Dictionary) LoadFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("trie: open word list %q: %w", path, err)
	}
	defer f.Close()

	return d.LoadReader(f)
}
