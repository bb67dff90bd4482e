// Package models defines core data structures for analysis results, issues, and reports.
package models

// Summary holds the quick per-document counts shown before any detailed output.
type Summary struct {
	Words                int     `json:"words"`
	Sentences            int     `json:"sentences"`
	AvgWordsPerSentence  float64 `json:"avg_words_per_sentence"` // rounded to 2 decimals
}

// ReadabilityReport holds the six readability metrics for a document.
// Flesch Reading Ease, Flesch-Kincaid Grade, and SMOG are rounded to 1 decimal;
// Dale-Chall to 2. Words and Sentences are raw counts.
type ReadabilityReport struct {
	FleschReadingEase  float64 `json:"flesch_reading_ease"`
	FleschKincaidGrade float64 `json:"flesch_kincaid_grade"`
	SMOGIndex          float64 `json:"smog_index"`
	DaleChallScore     float64 `json:"dale_chall_score"`
	Words              int     `json:"words"`
	Sentences          int     `json:"sentences"`
}

// AnalysisResult is the full outcome of analyzing one document.
// Readability is nil when scoring was not possible (empty or unsentenced text).
// Detailed is nil unless detailed issue lists were requested.
// Warning is set (and everything else left zero) when the text was too short
// to analyze, e.g. a scanned PDF with no embedded text.
type AnalysisResult struct {
	ID          string             `json:"id"`
	Summary     Summary            `json:"summary"`
	Readability *ReadabilityReport `json:"readability,omitempty"`
	Suggestions []string           `json:"suggestions,omitempty"`
	Warning     string             `json:"warning,omitempty"`
	Detailed    *IssueDetail       `json:"detailed,omitempty"`
}

// Analyzed reports whether the document was actually analyzed
// (as opposed to rejected with a warning).
func (r *AnalysisResult) Analyzed() bool {
	return r.Warning == ""
}

// AnalyzeOptions controls optional parts of an analysis request.
type AnalyzeOptions struct {
	Detailed bool `json:"detailed,omitempty"`
}
