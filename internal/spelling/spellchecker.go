package spelling

import (
	"sort"
	"strings"

	"github.com/hyperjump/kousei/internal/models"
	"github.com/hyperjump/kousei/internal/tokenize"
)

const (
	// minCheckLen is the minimum word length (exclusive) worth checking;
	// anything of 3 characters or fewer is skipped as too noisy.
	minCheckLen = 3
	// maxDistance is the Levenshtein radius searched for corrections.
	maxDistance = 2
)

// Checker spell-checks document text against a Dictionary.
type Checker struct {
	dict *Dictionary
}

// NewChecker returns a Checker over dict.
func NewChecker(dict *Dictionary) *Checker {
	return &Checker{dict: dict}
}

// Unknown returns the deduplicated lowercased tokens longer than three
// characters that are neither stopwords nor known dictionary words,
// preserving first-seen order.
func (c *Checker) Unknown(tokens []string) []string {
	seen := make(map[string]struct{})
	var unknown []string
	for _, tok := range tokens {
		w := strings.ToLower(tok)
		if len(w) <= minCheckLen {
			continue
		}
		if _, ok := stopwords[w]; ok {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		if !c.dict.Contains(w) {
			unknown = append(unknown, w)
		}
	}
	return unknown
}

// Correction returns the closest dictionary word within edit distance 2:
// distance 1 candidates beat distance 2, and ties go to the more common
// (lower-ranked) entry. When nothing is within range, the input is returned
// unchanged.
func (c *Checker) Correction(word string) string {
	best := word
	bestDistance := maxDistance + 1
	bestRank := -1
	for _, entry := range c.dict.Words() {
		// Length prefilter: strings differing in length by more than
		// maxDistance cannot be within maxDistance edits.
		lenDiff := len(entry) - len(word)
		if lenDiff < 0 {
			lenDiff = -lenDiff
		}
		if lenDiff > maxDistance {
			continue
		}
		dist := Levenshtein(word, entry)
		if dist > maxDistance {
			continue
		}
		rank := c.dict.Rank(entry)
		if dist < bestDistance || (dist == bestDistance && rank < bestRank) {
			best = entry
			bestDistance = dist
			bestRank = rank
		}
	}
	return best
}

// Suggestions runs the full spelling pass over text: tokenize, drop short
// words and stopwords, collect unknown words, sort them alphabetically, cap
// at maxItems, and pair each with its best correction.
func (c *Checker) Suggestions(text string, maxItems int) []models.SpellingPair {
	unknown := c.Unknown(tokenize.Words(text))
	sort.Strings(unknown)
	if maxItems > 0 && len(unknown) > maxItems {
		unknown = unknown[:maxItems]
	}
	pairs := make([]models.SpellingPair, 0, len(unknown))
	for _, w := range unknown {
		pairs = append(pairs, models.SpellingPair{Word: w, Correction: c.Correction(w)})
	}
	return pairs
}
