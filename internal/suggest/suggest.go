// Package suggest turns readability scores and issue counts into the ordered
// list of human-readable suggestions shown to the user.
package suggest

import (
	"fmt"

	"github.com/hyperjump/kousei/internal/models"
)

// fallback is the single suggestion emitted when no rule fires.
const fallback = "Looks good! No major issues detected by the basic checks."

// Input carries everything the rule table inspects. Readability is nil when
// scoring was unavailable; rules that reference it are then skipped.
type Input struct {
	Readability         *models.ReadabilityReport
	AvgWordsPerSentence float64
	LongSentences       int
	PassiveVoice        int
	AdverbHeavy         int
	Misspellings        int
	LongBullets         int

	// Thresholds echoed into the suggestion text.
	LongSentenceThreshold int
	BulletMaxWords        int
}

// Build applies the fixed rule table to in and returns the matching
// suggestions in table order. Rules are independent: every matching rule
// emits. When none match, the single fallback suggestion is returned.
func Build(in Input) []string {
	var suggestions []string

	if in.Readability != nil && in.Readability.FleschReadingEase < 60 {
		suggestions = append(suggestions,
			"Improve readability: use shorter sentences and simpler words (Flesch score < 60).")
	}
	if in.AvgWordsPerSentence > 20 {
		suggestions = append(suggestions,
			"Shorten sentences: aim for ~14–20 words per sentence on average.")
	}
	if in.LongSentences >= 3 {
		suggestions = append(suggestions,
			fmt.Sprintf("Break up long sentences: found %d sentences over %d words.",
				in.LongSentences, in.LongSentenceThreshold))
	}
	if in.PassiveVoice >= 3 {
		suggestions = append(suggestions,
			fmt.Sprintf("Reduce passive voice: found %d likely cases.", in.PassiveVoice))
	}
	if in.AdverbHeavy >= 3 {
		suggestions = append(suggestions,
			fmt.Sprintf("Trim adverbs (-ly): %d sentences have many adverbs.", in.AdverbHeavy))
	}
	if in.Misspellings >= 5 {
		suggestions = append(suggestions,
			fmt.Sprintf("Fix spelling: at least %d possible misspellings.", in.Misspellings))
	}
	if in.LongBullets >= 1 {
		suggestions = append(suggestions,
			fmt.Sprintf("Tighten bullet points: %d bullets exceed %d words.",
				in.LongBullets, in.BulletMaxWords))
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, fallback)
	}
	return suggestions
}
