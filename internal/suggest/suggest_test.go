package suggest

import (
	"strings"
	"testing"

	"github.com/hyperjump/kousei/internal/models"
)

func TestBuild_fallbackWhenNothingFires(t *testing.T) {
	got := Build(Input{LongSentenceThreshold: 25, BulletMaxWords: 20})
	if len(got) != 1 {
		t.Fatalf("got %d suggestions, want exactly 1", len(got))
	}
	if !strings.Contains(got[0], "No major issues") {
		t.Errorf("got %q, want the fallback", got[0])
	}
}

func TestBuild_readabilityOnly(t *testing.T) {
	// Flesch 55 trips the readability rule; avg 15 does not trip the
	// shorten-sentences rule.
	got := Build(Input{
		Readability:           &models.ReadabilityReport{FleschReadingEase: 55},
		AvgWordsPerSentence:   15,
		LongSentenceThreshold: 25,
		BulletMaxWords:        20,
	})
	if len(got) != 1 {
		t.Fatalf("got %v, want exactly one suggestion", got)
	}
	if !strings.Contains(got[0], "Improve readability") {
		t.Errorf("got %q, want the readability suggestion", got[0])
	}
	if strings.Contains(got[0], "Shorten sentences") {
		t.Errorf("shorten-sentences rule fired at avg 15")
	}
}

func TestBuild_missingReadabilitySkipsRule(t *testing.T) {
	got := Build(Input{
		Readability:           nil,
		AvgWordsPerSentence:   25,
		LongSentenceThreshold: 25,
		BulletMaxWords:        20,
	})
	if len(got) != 1 || !strings.Contains(got[0], "Shorten sentences") {
		t.Errorf("got %v, want only the shorten-sentences suggestion", got)
	}
}

func TestBuild_thresholds(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want string
	}{
		{"long sentences at 3", Input{LongSentences: 3, LongSentenceThreshold: 25}, "Break up long sentences: found 3 sentences over 25 words."},
		{"passive at 3", Input{PassiveVoice: 3}, "Reduce passive voice: found 3 likely cases."},
		{"adverbs at 3", Input{AdverbHeavy: 3}, "Trim adverbs (-ly): 3 sentences have many adverbs."},
		{"spelling at 5", Input{Misspellings: 5}, "Fix spelling: at least 5 possible misspellings."},
		{"bullets at 1", Input{LongBullets: 1, BulletMaxWords: 20}, "Tighten bullet points: 1 bullets exceed 20 words."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build(tt.in)
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("Build = %v, want [%q]", got, tt.want)
			}
		})
	}
}

func TestBuild_belowThresholdsDoNotFire(t *testing.T) {
	got := Build(Input{
		LongSentences:         2,
		PassiveVoice:          2,
		AdverbHeavy:           2,
		Misspellings:          4,
		LongBullets:           0,
		LongSentenceThreshold: 25,
		BulletMaxWords:        20,
	})
	if len(got) != 1 || !strings.Contains(got[0], "No major issues") {
		t.Errorf("got %v, want only the fallback", got)
	}
}

func TestBuild_allRulesFireInOrder(t *testing.T) {
	got := Build(Input{
		Readability:           &models.ReadabilityReport{FleschReadingEase: 30},
		AvgWordsPerSentence:   28,
		LongSentences:         4,
		PassiveVoice:          5,
		AdverbHeavy:           3,
		Misspellings:          9,
		LongBullets:           2,
		LongSentenceThreshold: 25,
		BulletMaxWords:        20,
	})
	if len(got) != 7 {
		t.Fatalf("got %d suggestions, want 7", len(got))
	}
	prefixes := []string{
		"Improve readability",
		"Shorten sentences",
		"Break up long sentences",
		"Reduce passive voice",
		"Trim adverbs",
		"Fix spelling",
		"Tighten bullet points",
	}
	for i, p := range prefixes {
		if !strings.HasPrefix(got[i], p) {
			t.Errorf("suggestion %d = %q, want prefix %q", i, got[i], p)
		}
	}
}

func TestBuild_fleschAt60DoesNotFire(t *testing.T) {
	got := Build(Input{
		Readability: &models.ReadabilityReport{FleschReadingEase: 60},
	})
	if len(got) != 1 || !strings.Contains(got[0], "No major issues") {
		t.Errorf("got %v, want only the fallback (60 is not < 60)", got)
	}
}
