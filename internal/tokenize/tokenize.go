// Package tokenize provides the lightweight sentence and word tokenizers the
// heuristic checks are built on. Both are deliberately simple regex
// approximations: there is no abbreviation handling, no quote awareness, and
// no Unicode word support beyond ASCII letters and apostrophes. The analysis
// thresholds are calibrated against exactly this behavior, so the tokenizers
// must stay cheap and naive.
package tokenize

import (
	"math"
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	wordRe       = regexp.MustCompile(`[A-Za-z']+`)
)

// SplitSentences splits text into trimmed, non-empty sentences. Whitespace
// runs are collapsed to single spaces first, then the text is split
// immediately after a '.', '!', or '?' that is followed by whitespace.
func SplitSentences(text string) []string {
	normalized := whitespaceRe.ReplaceAllString(text, " ")
	var sentences []string
	start := 0
	for i := 0; i < len(normalized); i++ {
		c := normalized[i]
		if (c == '.' || c == '!' || c == '?') && i+1 < len(normalized) && normalized[i+1] == ' ' {
			if s := strings.TrimSpace(normalized[start : i+1]); s != "" {
				sentences = append(sentences, s)
			}
			start = i + 1
		}
	}
	if s := strings.TrimSpace(normalized[start:]); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// Words returns the maximal runs of ASCII letters and apostrophes in text.
// Any other character (including hyphens and digits) separates tokens.
func Words(text string) []string {
	return wordRe.FindAllString(text, -1)
}

// WordCount returns the number of word tokens in text.
func WordCount(text string) int {
	return len(wordRe.FindAllStringIndex(text, -1))
}

// AvgWordsPerSentence returns the mean word count across sentences,
// or 0.0 for an empty slice.
func AvgWordsPerSentence(sentences []string) float64 {
	if len(sentences) == 0 {
		return 0.0
	}
	total := 0
	for _, s := range sentences {
		total += WordCount(s)
	}
	return float64(total) / float64(len(sentences))
}

// Round2 rounds x to 2 decimal places. Used for the user-facing average.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
