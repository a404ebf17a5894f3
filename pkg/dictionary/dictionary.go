/*
Package dictionary loads and queries the reference word list.

A dictionary is a line-oriented text file with one word per line. Words are
trimmed on load and kept in file order; the line number (1-based) doubles as
the word's rank, so earlier entries outrank later ones when suggestions are
generated. Membership lookups come in two flavors: exact (the filter
contract) and case-folded (the spellcheck contract).

Compiled dictionaries can be saved as msgpack snapshots and reloaded without
re-parsing, see snapshot.go.
*/
package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Dict is an in-memory reference dictionary.
type Dict struct {
	words  []string
	set    map[string]struct{}
	ranks  map[string]int
	trie   *patricia.Trie
	source string
}

// Stats provides basic information about a loaded dictionary
type Stats struct {
	WordCount int
	MaxRank   int
	Source    string
}

// New creates an empty dictionary.
func New() *Dict {
	return &Dict{
		set:   make(map[string]struct{}),
		ranks: make(map[string]int),
		trie:  patricia.NewTrie(),
	}
}

// Add inserts a word at the next rank. Blank words are ignored and
// duplicates are harmless: the first occurrence keeps its rank.
func (d *Dict) Add(word string) {
	word = strings.TrimSpace(word)
	if word == "" {
		return
	}
	if _, dup := d.set[word]; dup {
		return
	}
	d.words = append(d.words, word)
	rank := len(d.words)
	d.set[word] = struct{}{}
	d.ranks[word] = rank
	d.trie.Insert(patricia.Prefix(strings.ToLower(word)), rank)
}

// LoadFile reads a text dictionary, one word per line, trimming each line.
func LoadFile(path string) (*Dict, error) {
	return LoadFileLimit(path, 0)
}

// LoadFileLimit reads at most maxWords words from a text dictionary.
// maxWords 0 means no cap.
func LoadFileLimit(path string, maxWords int) (*Dict, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary %s: %w", path, err)
	}
	defer file.Close()

	d := New()
	d.source = path

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if maxWords > 0 && d.Len() >= maxWords {
			log.Debugf("Word cap reached (%d), skipping the rest of %s", maxWords, path)
			break
		}
		d.Add(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dictionary %s: %w", path, err)
	}

	log.Debugf("Loaded %d words from %s", d.Len(), path)
	return d, nil
}

// Contains reports exact membership, the lookup the suggestion filter uses.
func (d *Dict) Contains(word string) bool {
	_, ok := d.set[word]
	return ok
}

// ContainsFold reports case-insensitive membership, the lookup the
// spellchecker uses. The dictionary side is matched lowercased via the trie
// so "BaNAna" finds "banana".
func (d *Dict) ContainsFold(word string) bool {
	if d.Contains(word) {
		return true
	}
	return d.trie.Get(patricia.Prefix(strings.ToLower(word))) != nil
}

// Rank returns the 1-based load order of a word, or 0 if absent.
func (d *Dict) Rank(word string) int {
	return d.ranks[word]
}

// Len returns the number of distinct words.
func (d *Dict) Len() int {
	return len(d.words)
}

// Words returns the words in load order. The returned slice is a copy.
func (d *Dict) Words() []string {
	out := make([]string, len(d.words))
	copy(out, d.words)
	return out
}

// Trie exposes the lowercased prefix trie for suggestion generation.
func (d *Dict) Trie() *patricia.Trie {
	return d.trie
}

// Source returns the path the dictionary was loaded from, if any.
func (d *Dict) Source() string {
	return d.source
}

// GetStats returns current dictionary statistics
func (d *Dict) GetStats() Stats {
	return Stats{
		WordCount: len(d.words),
		MaxRank:   len(d.words),
		Source:    d.source,
	}
}
