/*
Package dictionary loads word lists and exposes them as an immutable
word set with fast prefix queries.

A Dict pairs a plain membership set with a Patricia trie over the same
words. The trie answers "does any word start with this string" in one
subtree probe, which is what the solver's pruning needs; membership
stays a map lookup. Both structures are built once at load time and
never mutated afterwards, so a single Dict is safe to share across
concurrent searches.
*/
package dictionary

import (
	"sort"
	"strings"

	"github.com/tchap/go-patricia/v2/patricia"
)

// Dict is an immutable word set with prefix lookups.
type Dict struct {
	words  map[string]struct{}
	trie   *patricia.Trie
	source string
}

// New builds a Dict from raw words. Words are uppercased and
// deduplicated; empty strings are dropped.
func New(words []string) *Dict {
	d := &Dict{
		words: make(map[string]struct{}, len(words)),
		trie:  patricia.NewTrie(),
	}
	for _, w := range words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, dup := d.words[w]; dup {
			continue
		}
		d.words[w] = struct{}{}
		d.trie.Insert(patricia.Prefix(w), true)
	}
	return d
}

// Contains reports whether word is in the dictionary.
// The word must already be uppercase.
func (d *Dict) Contains(word string) bool {
	_, ok := d.words[word]
	return ok
}

// HasPrefix reports whether any dictionary word starts with p.
// Equivalent to membership in the set of all word prefixes, without
// ever materializing that set.
func (d *Dict) HasPrefix(p string) bool {
	return d.trie.MatchSubtree(patricia.Prefix(p))
}

// Len returns the number of words.
func (d *Dict) Len() int {
	return len(d.words)
}

// Source returns the path the dictionary was loaded from, or a label
// like "builtin" for the fallback sample set.
func (d *Dict) Source() string {
	return d.source
}

// Words returns all words in ascending order. Intended for diagnostics
// and serialization, not the solving hot path.
func (d *Dict) Words() []string {
	out := make([]string, 0, len(d.words))
	for w := range d.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
