// Package spelling provides a local, dependency-free spell checker: a
// frequency-ordered word dictionary plus Levenshtein-based correction lookup.
// It flags lowercased words longer than three characters that are neither
// stopwords nor dictionary entries, and pairs each with a best-guess
// correction (the word itself when nothing close is found).
package spelling

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
)

// baseDictionary is the built-in word list, one word per line, ordered by
// approximate frequency (earlier lines win correction ties).
//
//go:embed words.txt
var baseDictionary string

// stopwords are very common words excluded from spell checking to avoid
// noise on short function words.
var stopwords = buildStopwords(`the be to of and a in that have i it for not on with he as you do at this
but his by from they we say her she or an will my one all would there their`)

func buildStopwords(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(s) {
		set[w] = struct{}{}
	}
	return set
}

// Dictionary is an ordered word list with constant-time membership checks.
// Rank (insertion order) stands in for corpus frequency when ranking
// correction candidates.
type Dictionary struct {
	words []string
	rank  map[string]int
}

// NewDictionary builds the base dictionary from the embedded word list.
func NewDictionary() *Dictionary {
	d := &Dictionary{rank: make(map[string]int)}
	d.addList(baseDictionary)
	return d
}

// LoadExtra merges an additional word list file (one word per line, '#'
// comments allowed) into the dictionary. Extra words rank after the base
// list.
func (d *Dictionary) LoadExtra(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read dictionary %s: %w", path, err)
	}
	d.addList(string(data))
	return nil
}

func (d *Dictionary) addList(data string) {
	for _, line := range strings.Split(data, "\n") {
		w := strings.ToLower(strings.TrimSpace(line))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if _, ok := d.rank[w]; ok {
			continue
		}
		d.rank[w] = len(d.words)
		d.words = append(d.words, w)
	}
}

// suffixes checked when a word is not an exact dictionary entry; covers the
// regular inflections the base list leaves out.
var inflections = []string{"s", "es", "ed", "ing", "ly", "er", "est"}

// Contains reports whether word is a known word: an exact entry, or a regular
// inflection of one. word must already be lowercase.
func (d *Dictionary) Contains(word string) bool {
	if _, ok := d.rank[word]; ok {
		return true
	}
	for _, suf := range inflections {
		if len(word) <= len(suf)+2 || !strings.HasSuffix(word, suf) {
			continue
		}
		stem := strings.TrimSuffix(word, suf)
		if _, ok := d.rank[stem]; ok {
			return true
		}
		if len(stem) >= 2 && stem[len(stem)-1] == stem[len(stem)-2] {
			if _, ok := d.rank[stem[:len(stem)-1]]; ok {
				return true
			}
		}
		if _, ok := d.rank[stem+"e"]; ok {
			return true
		}
	}
	return false
}

// Rank returns the frequency rank of an exact entry (lower is more common),
// or -1 when absent.
func (d *Dictionary) Rank(word string) int {
	if r, ok := d.rank[word]; ok {
		return r
	}
	return -1
}

// Words returns the dictionary entries in rank order. The returned slice is
// shared; callers must not modify it.
func (d *Dictionary) Words() []string {
	return d.words
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	return len(d.words)
}
