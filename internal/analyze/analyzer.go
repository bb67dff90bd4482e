package analyze

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hyperjump/kousei/internal/config"
	"github.com/hyperjump/kousei/internal/models"
	"github.com/hyperjump/kousei/internal/readability"
	"github.com/hyperjump/kousei/internal/spelling"
	"github.com/hyperjump/kousei/internal/suggest"
	"github.com/hyperjump/kousei/internal/tokenize"
)

// shortTextWarning is shown when too little text was extracted to analyze,
// typically a scanned PDF without an embedded text layer.
const shortTextWarning = "Couldn't extract much text. If your PDF is a scanned image, run OCR first (e.g., free Tesseract) and try again."

// Analyzer runs every heuristic check plus readability scoring over extracted
// document text. It holds no per-document state: each Analyze call is a pure
// function of its input, so a single Analyzer is safe for concurrent use.
type Analyzer struct {
	cfg     config.AnalyzerConfig
	speller *spelling.Checker
	logger  *zap.Logger
}

// NewAnalyzer creates an Analyzer with the given thresholds and spell checker.
func NewAnalyzer(cfg config.AnalyzerConfig, speller *spelling.Checker, logger *zap.Logger) *Analyzer {
	return &Analyzer{cfg: cfg, speller: speller, logger: logger}
}

// Analyze runs the full analysis over text. Text below the configured minimum
// length yields a warning-only result; nothing here returns an error, every
// degraded input just produces fewer results.
func (a *Analyzer) Analyze(text string, opts models.AnalyzeOptions) *models.AnalysisResult {
	result := &models.AnalysisResult{ID: uuid.NewString()}

	if len(text) < a.cfg.MinTextLength {
		a.logger.Debug("text too short to analyze", zap.Int("length", len(text)))
		result.Warning = shortTextWarning
		return result
	}

	sentences := tokenize.SplitSentences(text)
	avgWPS := tokenize.AvgWordsPerSentence(sentences)
	result.Summary = models.Summary{
		Words:               tokenize.WordCount(text),
		Sentences:           len(sentences),
		AvgWordsPerSentence: tokenize.Round2(avgWPS),
	}

	longSents := LongSentences(sentences, a.cfg.LongSentenceThreshold)
	passive := PassiveVoice(sentences)
	adverbs := AdverbHeavy(sentences, a.cfg.AdverbThreshold)
	dupes := DuplicateWords(text)
	caps := AllCapsWords(text, a.cfg.AllCapsMinLen)
	bullets := LongBullets(text, a.cfg.BulletMaxWords)
	spell := a.speller.Suggestions(text, a.cfg.MaxSpellingItems)

	if report, ok := readability.Score(text); ok {
		result.Readability = &report
	} else {
		a.logger.Debug("readability scoring unavailable")
	}

	result.Suggestions = suggest.Build(suggest.Input{
		Readability:           result.Readability,
		AvgWordsPerSentence:   result.Summary.AvgWordsPerSentence,
		LongSentences:         len(longSents),
		PassiveVoice:          len(passive),
		AdverbHeavy:           len(adverbs),
		Misspellings:          len(spell),
		LongBullets:           len(bullets),
		LongSentenceThreshold: a.cfg.LongSentenceThreshold,
		BulletMaxWords:        a.cfg.BulletMaxWords,
	})

	a.logger.Debug("analysis complete",
		zap.String("id", result.ID),
		zap.Int("words", result.Summary.Words),
		zap.Int("sentences", result.Summary.Sentences),
		zap.Int("suggestions", len(result.Suggestions)),
	)

	if opts.Detailed {
		limit := a.cfg.MaxDetailedIssues
		result.Detailed = &models.IssueDetail{
			LongSentences:  capSentenceIssues(longSents, limit),
			PassiveVoice:   capSentenceIssues(passive, limit),
			AdverbHeavy:    capSentenceIssues(adverbs, limit),
			DuplicateWords: capDuplicates(dupes, limit),
			AllCapsWords:   caps,
			LongBullets:    capBullets(bullets, limit),
			Spelling:       spell,
		}
	}
	return result
}

func capSentenceIssues(issues []models.SentenceIssue, n int) []models.SentenceIssue {
	if n > 0 && len(issues) > n {
		return issues[:n]
	}
	return issues
}

func capDuplicates(issues []models.DuplicateWordIssue, n int) []models.DuplicateWordIssue {
	if n > 0 && len(issues) > n {
		return issues[:n]
	}
	return issues
}

func capBullets(issues []models.BulletIssue, n int) []models.BulletIssue {
	if n > 0 && len(issues) > n {
		return issues[:n]
	}
	return issues
}
