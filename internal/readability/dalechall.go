package readability

import (
	_ "embed"
	"strings"
	"sync"
)

// familiarWordsData is an abridged version of the Dale-Chall familiar word
// list: words a typical fourth grader is expected to know. Words not on the
// list (after basic suffix stripping) count as "difficult" in the Dale-Chall
// formula.
//
//go:embed dalechall_words.txt
var familiarWordsData string

var (
	familiarOnce sync.Once
	familiarSet  map[string]struct{}
)

func familiarWords() map[string]struct{} {
	familiarOnce.Do(func() {
		familiarSet = make(map[string]struct{})
		for _, line := range strings.Split(familiarWordsData, "\n") {
			w := strings.TrimSpace(line)
			if w == "" || strings.HasPrefix(w, "#") {
				continue
			}
			familiarSet[strings.ToLower(w)] = struct{}{}
		}
	})
	return familiarSet
}

var familiarSuffixes = []string{"s", "es", "ed", "ing", "ly", "er", "est"}

// isFamiliar reports whether word (or its stem after stripping a common
// suffix) is on the familiar word list. Comparison is lowercase.
func isFamiliar(word string) bool {
	set := familiarWords()
	w := strings.ToLower(word)
	if _, ok := set[w]; ok {
		return true
	}
	for _, suf := range familiarSuffixes {
		if len(w) > len(suf)+2 && strings.HasSuffix(w, suf) {
			stem := strings.TrimSuffix(w, suf)
			if _, ok := set[stem]; ok {
				return true
			}
			// doubled final consonant, e.g. "stopped" -> "stop"
			if len(stem) >= 2 && stem[len(stem)-1] == stem[len(stem)-2] {
				if _, ok := set[stem[:len(stem)-1]]; ok {
					return true
				}
			}
			// dropped final "e", e.g. "making" -> "make"
			if _, ok := set[stem+"e"]; ok {
				return true
			}
		}
	}
	return false
}
