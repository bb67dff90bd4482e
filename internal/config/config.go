// Package config provides configuration loading and structs for the kousei server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Debug    bool           `yaml:"debug"`
	Server   ServerConfig   `yaml:"server"`
	Analyzer AnalyzerConfig `yaml:"analyzer"`
	Spelling SpellingConfig `yaml:"spelling"`
	Watch    WatchConfig    `yaml:"watch"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes"`
}

// AnalyzerConfig holds the heuristic-check thresholds. Every field has a
// documented default applied by ApplyDefaults; the checks themselves take
// these values explicitly so they stay pure and unit-testable.
type AnalyzerConfig struct {
	// LongSentenceThreshold: sentences with more words than this are flagged.
	LongSentenceThreshold int `yaml:"long_sentence_threshold"`
	// AdverbThreshold: sentences with at least this many "-ly" words are flagged.
	AdverbThreshold int `yaml:"adverb_threshold"`
	// BulletMaxWords: bullet lines with more words than this are flagged.
	BulletMaxWords int `yaml:"bullet_max_words"`
	// AllCapsMinLen: minimum run of uppercase letters to count as all-caps.
	AllCapsMinLen int `yaml:"all_caps_min_len"`
	// MinTextLength: extracted text shorter than this is rejected with an
	// OCR warning instead of being analyzed.
	MinTextLength int `yaml:"min_text_length"`
	// MaxSpellingItems: cap on reported misspellings.
	MaxSpellingItems int `yaml:"max_spelling_items"`
	// MaxDetailedIssues: per-list cap in detailed output.
	MaxDetailedIssues int `yaml:"max_detailed_issues"`
}

// SpellingConfig holds spell-checker settings.
type SpellingConfig struct {
	// DictionaryPath optionally points at an extra word list merged into the
	// built-in dictionary.
	DictionaryPath string `yaml:"dictionary_path"`
}

// WatchConfig holds directory watch settings for watch mode.
type WatchConfig struct {
	Directories []string `yaml:"directories"`
	Extensions  []string `yaml:"extensions"`
	Recursive   *bool    `yaml:"recursive"`
}

// RecursiveOrDefault returns whether to watch recursively; defaults to true when unset.
func (w *WatchConfig) RecursiveOrDefault() bool {
	if w.Recursive != nil {
		return *w.Recursive
	}
	return true
}

// Load reads and parses the config file at path, expands paths, and applies defaults.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	configDir := filepath.Dir(path)
	if cfg.Spelling.DictionaryPath != "" {
		cfg.Spelling.DictionaryPath = expandPath(cfg.Spelling.DictionaryPath, configDir)
	}
	for i := range cfg.Watch.Directories {
		cfg.Watch.Directories[i] = expandPath(cfg.Watch.Directories[i], configDir)
	}

	return &cfg, nil
}

// Save writes the config to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// expandPath converts a path to absolute. Paths starting with "./" are relative to configDir;
// other relative paths are relative to the home directory.
func expandPath(path string, configDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}
