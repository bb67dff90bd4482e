package models

// SentenceIssue flags one sentence, with the 1-based sentence index and the
// evidence count (words for long sentences, -ly words for adverb-heavy ones;
// zero for passive voice, where the match itself is the evidence).
type SentenceIssue struct {
	Index    int    `json:"index"`
	Count    int    `json:"count,omitempty"`
	Sentence string `json:"sentence"`
}

// DuplicateWordIssue is one adjacent repeated word with surrounding context.
type DuplicateWordIssue struct {
	Word    string `json:"word"`
	Context string `json:"context"`
}

// CapsWordCount is an all-caps word and how many times it appeared.
type CapsWordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// BulletIssue is a bullet line whose word count exceeds the limit.
type BulletIssue struct {
	WordCount int    `json:"word_count"`
	Line      string `json:"line"`
}

// SpellingPair is a possible misspelling with the best-guess correction.
// Correction equals Word when no nearby dictionary word was found.
type SpellingPair struct {
	Word       string `json:"word"`
	Correction string `json:"correction"`
}

// IssueDetail carries the raw issue lists for detailed mode.
// Each list is capped at the configured display limit by the analyzer.
type IssueDetail struct {
	LongSentences  []SentenceIssue      `json:"long_sentences"`
	PassiveVoice   []SentenceIssue      `json:"passive_voice"`
	AdverbHeavy    []SentenceIssue      `json:"adverb_heavy"`
	DuplicateWords []DuplicateWordIssue `json:"duplicate_words"`
	AllCapsWords   []CapsWordCount      `json:"all_caps_words"`
	LongBullets    []BulletIssue        `json:"long_bullets"`
	Spelling       []SpellingPair       `json:"spelling"`
}
