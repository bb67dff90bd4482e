// Package readability computes the standard readability formulas (Flesch
// Reading Ease, Flesch-Kincaid Grade, SMOG, Dale-Chall) from raw text.
// Scoring is best-effort: text that cannot be scored (nothing extractable,
// no sentences) yields ok=false rather than an error, so callers can simply
// omit the report.
package readability

import (
	"math"

	"github.com/hyperjump/kousei/internal/models"
	"github.com/hyperjump/kousei/internal/tokenize"
)

// Score computes the six readability metrics for text. ok is false when the
// text has no words or sentences; the zero report is returned in that case.
func Score(text string) (models.ReadabilityReport, bool) {
	words := tokenize.Words(text)
	sentences := tokenize.SplitSentences(text)
	if len(words) == 0 || len(sentences) == 0 {
		return models.ReadabilityReport{}, false
	}

	totalSyllables := 0
	polysyllables := 0
	difficult := 0
	for _, w := range words {
		syl := SyllableCount(w)
		totalSyllables += syl
		if syl >= 3 {
			polysyllables++
		}
		if !isFamiliar(w) {
			difficult++
		}
	}

	wc := float64(len(words))
	sc := float64(len(sentences))
	asl := wc / sc                      // average sentence length
	asw := float64(totalSyllables) / wc // average syllables per word

	return models.ReadabilityReport{
		FleschReadingEase:  round1(206.835 - 1.015*asl - 84.6*asw),
		FleschKincaidGrade: round1(0.39*asl + 11.8*asw - 15.59),
		SMOGIndex:          round1(smog(polysyllables, len(sentences))),
		DaleChallScore:     round2(daleChall(difficult, len(words), asl)),
		Words:              len(words),
		Sentences:          len(sentences),
	}, true
}

// smog returns the SMOG index, or 0 when there are fewer than 3 sentences
// (the formula is not defined for very short texts).
func smog(polysyllables, sentences int) float64 {
	if sentences < 3 {
		return 0.0
	}
	return 1.0430*math.Sqrt(float64(polysyllables)*30.0/float64(sentences)) + 3.1291
}

// daleChall returns the Dale-Chall readability score. The 3.6365 adjustment
// applies when more than 5% of the words are difficult.
func daleChall(difficult, words int, asl float64) float64 {
	pct := float64(difficult) / float64(words) * 100.0
	score := 0.1579*pct + 0.0496*asl
	if pct > 5.0 {
		score += 3.6365
	}
	return score
}

func round1(x float64) float64 { return math.Round(x*10) / 10 }
func round2(x float64) float64 { return math.Round(x*100) / 100 }
