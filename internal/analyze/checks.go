// Package analyze implements the heuristic writing-quality checks and the
// Analyzer that runs them over an extracted document.
//
// Every check is a pure function: it takes text or a sentence list plus its
// thresholds and returns a fresh issue list. The heuristics are knowingly
// rough (the passive-voice scan misfires on "-ed" adjectives, the adverb scan
// is a plain "-ly" suffix count); they stay that way on purpose, because the
// suggestion thresholds are tuned against these exact patterns.
package analyze

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/hyperjump/kousei/internal/models"
	"github.com/hyperjump/kousei/internal/tokenize"
)

const duplicateContextBytes = 40

var (
	passiveRe = regexp.MustCompile(`(?i)\b(is|are|was|were|be|been|being)\s+(\w+ed)\b`)
	bulletRe  = regexp.MustCompile(`^\s*[-*•]\s+`)
	tokenRe   = regexp.MustCompile(`\w+`)
)

// LongSentences flags sentences whose word count exceeds threshold.
// Indexes are 1-based; Count carries the word count.
func LongSentences(sentences []string, threshold int) []models.SentenceIssue {
	var issues []models.SentenceIssue
	for i, s := range sentences {
		wc := tokenize.WordCount(s)
		if wc > threshold {
			issues = append(issues, models.SentenceIssue{Index: i + 1, Count: wc, Sentence: s})
		}
	}
	return issues
}

// PassiveVoice flags sentences containing a be-verb followed by a token ending
// in "ed", case-insensitive. This is a cheap guess, not a parser: adjectives
// like "is red-faced" or "was tired" match too.
func PassiveVoice(sentences []string) []models.SentenceIssue {
	var issues []models.SentenceIssue
	for i, s := range sentences {
		if passiveRe.MatchString(s) {
			issues = append(issues, models.SentenceIssue{Index: i + 1, Sentence: s})
		}
	}
	return issues
}

// AdverbHeavy flags sentences with at least threshold words ending in "ly"
// (lowercased comparison). Count carries the adverb count.
func AdverbHeavy(sentences []string, threshold int) []models.SentenceIssue {
	var issues []models.SentenceIssue
	for i, s := range sentences {
		count := 0
		for _, w := range tokenize.Words(s) {
			if strings.HasSuffix(strings.ToLower(w), "ly") {
				count++
			}
		}
		if count >= threshold {
			issues = append(issues, models.SentenceIssue{Index: i + 1, Count: count, Sentence: s})
		}
	}
	return issues
}

// DuplicateWords finds a word immediately followed by itself
// (case-insensitive, only whitespace in between). Matches are non-overlapping,
// scanning left to right: in "cat cat cat" the first pair consumes both
// tokens, so only one issue is reported. Each issue carries up to 40 bytes of
// context on either side, with newlines flattened to spaces.
func DuplicateWords(text string) []models.DuplicateWordIssue {
	tokens := tokenRe.FindAllStringIndex(text, -1)
	var issues []models.DuplicateWordIssue
	for i := 0; i+1 < len(tokens); i++ {
		a, b := tokens[i], tokens[i+1]
		if !onlyWhitespace(text[a[1]:b[0]]) {
			continue
		}
		first := text[a[0]:a[1]]
		second := text[b[0]:b[1]]
		if !strings.EqualFold(first, second) {
			continue
		}
		start := a[0] - duplicateContextBytes
		if start < 0 {
			start = 0
		}
		end := b[1] + duplicateContextBytes
		if end > len(text) {
			end = len(text)
		}
		context := strings.ReplaceAll(text[start:end], "\n", " ")
		issues = append(issues, models.DuplicateWordIssue{Word: first, Context: context})
		i++ // consume the second token so triples report once
	}
	return issues
}

func onlyWhitespace(s string) bool {
	if s == "" {
		return false
	}
	return strings.TrimSpace(s) == ""
}

// AllCapsWords counts words of at least minLen uppercase ASCII letters and
// returns the top 20 by frequency. Ties are broken by first appearance in the
// text, so the order is deterministic.
func AllCapsWords(text string, minLen int) []models.CapsWordCount {
	re := capsRegexp(minLen)
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for _, w := range re.FindAllString(text, -1) {
		if _, ok := counts[w]; !ok {
			firstSeen[w] = len(firstSeen)
		}
		counts[w]++
	}
	results := make([]models.CapsWordCount, 0, len(counts))
	for w, c := range counts {
		results = append(results, models.CapsWordCount{Word: w, Count: c})
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Count != results[j].Count {
			return results[i].Count > results[j].Count
		}
		return firstSeen[results[i].Word] < firstSeen[results[j].Word]
	})
	if len(results) > 20 {
		results = results[:20]
	}
	return results
}

func capsRegexp(minLen int) *regexp.Regexp {
	if minLen < 1 {
		minLen = 1
	}
	return regexp.MustCompile(`\b[A-Z]{` + strconv.Itoa(minLen) + `,}\b`)
}

// LongBullets flags bullet lines (starting with '-', '*', or '•' plus
// whitespace) whose word count exceeds maxWords.
func LongBullets(text string, maxWords int) []models.BulletIssue {
	var issues []models.BulletIssue
	for _, line := range strings.Split(text, "\n") {
		if !bulletRe.MatchString(line) {
			continue
		}
		wc := tokenize.WordCount(line)
		if wc > maxWords {
			issues = append(issues, models.BulletIssue{WordCount: wc, Line: strings.TrimSpace(line)})
		}
	}
	return issues
}
