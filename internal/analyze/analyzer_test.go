package analyze

import (
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/hyperjump/kousei/internal/config"
	"github.com/hyperjump/kousei/internal/models"
	"github.com/hyperjump/kousei/internal/spelling"
)

func newTestAnalyzer(t *testing.T, cfg config.AnalyzerConfig) *Analyzer {
	t.Helper()
	checker := spelling.NewChecker(spelling.NewDictionary())
	return NewAnalyzer(cfg, checker, zap.NewNop())
}

func defaultAnalyzerConfig() config.AnalyzerConfig {
	return config.Default().Analyzer
}

func TestAnalyzer_shortTextWarning(t *testing.T) {
	a := newTestAnalyzer(t, defaultAnalyzerConfig())
	result := a.Analyze("too short", models.AnalyzeOptions{})

	if result.Analyzed() {
		t.Error("short text should not be analyzed")
	}
	if result.Warning == "" {
		t.Error("expected a warning")
	}
	if result.Suggestions != nil || result.Readability != nil || result.Detailed != nil {
		t.Error("short text must yield a warning-only result, no partial analysis")
	}
	if result.ID == "" {
		t.Error("result should still carry an ID")
	}
}

func TestAnalyzer_cleanTextGetsFallbackSuggestion(t *testing.T) {
	// Simple, correctly spelled text with no long sentences, passives,
	// adverbs, duplicates, caps, or bullets.
	text := strings.Repeat("The cat sat on the mat. ", 10)
	if len(text) < 200 {
		t.Fatalf("fixture too short: %d chars", len(text))
	}

	a := newTestAnalyzer(t, defaultAnalyzerConfig())
	result := a.Analyze(text, models.AnalyzeOptions{})

	if !result.Analyzed() {
		t.Fatalf("unexpected warning: %q", result.Warning)
	}
	if result.Summary.Sentences != 10 {
		t.Errorf("sentences = %d, want 10", result.Summary.Sentences)
	}
	if result.Summary.Words != 60 {
		t.Errorf("words = %d, want 60", result.Summary.Words)
	}
	if result.Summary.AvgWordsPerSentence != 6.0 {
		t.Errorf("avg words/sentence = %v, want 6.0", result.Summary.AvgWordsPerSentence)
	}
	if result.Readability == nil {
		t.Error("expected a readability report")
	}
	if len(result.Suggestions) != 1 {
		t.Fatalf("suggestions = %v, want exactly the fallback", result.Suggestions)
	}
	if !strings.Contains(result.Suggestions[0], "No major issues") {
		t.Errorf("suggestion = %q, want the fallback", result.Suggestions[0])
	}
	if result.Detailed != nil {
		t.Error("detailed lists present without being requested")
	}
}

func TestAnalyzer_detailedListsCapped(t *testing.T) {
	longSentence := strings.Repeat("word ", 30)
	var b strings.Builder
	for i := 0; i < 5; i++ {
		b.WriteString(strings.TrimSpace(longSentence))
		b.WriteString(". ")
	}
	text := b.String()

	cfg := defaultAnalyzerConfig()
	cfg.MaxDetailedIssues = 2
	a := newTestAnalyzer(t, cfg)
	result := a.Analyze(text, models.AnalyzeOptions{Detailed: true})

	if result.Detailed == nil {
		t.Fatal("expected detailed lists")
	}
	if len(result.Detailed.LongSentences) != 2 {
		t.Errorf("long sentences list = %d entries, want capped at 2", len(result.Detailed.LongSentences))
	}
}

func TestAnalyzer_issuesProduceSuggestions(t *testing.T) {
	// Five 30-word sentences trip both the long-sentence rule (>=3) and the
	// average-length rule (>20).
	longSentence := strings.TrimSpace(strings.Repeat("word ", 30)) + ". "
	text := strings.Repeat(longSentence, 5)

	a := newTestAnalyzer(t, defaultAnalyzerConfig())
	result := a.Analyze(text, models.AnalyzeOptions{})

	if !result.Analyzed() {
		t.Fatalf("unexpected warning: %q", result.Warning)
	}
	var foundLong, foundShorten bool
	for _, s := range result.Suggestions {
		if strings.Contains(s, "Break up long sentences") {
			foundLong = true
		}
		if strings.Contains(s, "Shorten sentences") {
			foundShorten = true
		}
	}
	if !foundLong {
		t.Errorf("missing long-sentence suggestion in %v", result.Suggestions)
	}
	if !foundShorten {
		t.Errorf("missing shorten-sentences suggestion in %v", result.Suggestions)
	}
}

func TestAnalyzer_uniqueIDs(t *testing.T) {
	text := strings.Repeat("The cat sat on the mat. ", 10)
	a := newTestAnalyzer(t, defaultAnalyzerConfig())
	first := a.Analyze(text, models.AnalyzeOptions{})
	second := a.Analyze(text, models.AnalyzeOptions{})
	if first.ID == second.ID {
		t.Error("analysis IDs should be unique per run")
	}
}
