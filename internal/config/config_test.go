package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	if cfg.Server.Host != "localhost" || cfg.Server.Port != 8080 {
		t.Errorf("server defaults = %s:%d", cfg.Server.Host, cfg.Server.Port)
	}
	if cfg.Server.MaxUploadBytes != 32<<20 {
		t.Errorf("max upload bytes = %d", cfg.Server.MaxUploadBytes)
	}
	if cfg.Analyzer.LongSentenceThreshold != 25 {
		t.Errorf("long sentence threshold = %d, want 25", cfg.Analyzer.LongSentenceThreshold)
	}
	if cfg.Analyzer.AdverbThreshold != 3 {
		t.Errorf("adverb threshold = %d, want 3", cfg.Analyzer.AdverbThreshold)
	}
	if cfg.Analyzer.BulletMaxWords != 20 {
		t.Errorf("bullet max words = %d, want 20", cfg.Analyzer.BulletMaxWords)
	}
	if cfg.Analyzer.AllCapsMinLen != 5 {
		t.Errorf("all caps min len = %d, want 5", cfg.Analyzer.AllCapsMinLen)
	}
	if cfg.Analyzer.MinTextLength != 200 {
		t.Errorf("min text length = %d, want 200", cfg.Analyzer.MinTextLength)
	}
	if cfg.Analyzer.MaxSpellingItems != 30 {
		t.Errorf("max spelling items = %d, want 30", cfg.Analyzer.MaxSpellingItems)
	}
	if cfg.Analyzer.MaxDetailedIssues != 50 {
		t.Errorf("max detailed issues = %d, want 50", cfg.Analyzer.MaxDetailedIssues)
	}
	if len(cfg.Watch.Extensions) == 0 {
		t.Error("watch extensions default missing")
	}
}

func TestApplyDefaults_preservesExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Analyzer.LongSentenceThreshold = 30
	cfg.Server.Port = 9999
	ApplyDefaults(cfg)
	if cfg.Analyzer.LongSentenceThreshold != 30 {
		t.Errorf("threshold overwritten: %d", cfg.Analyzer.LongSentenceThreshold)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("port overwritten: %d", cfg.Server.Port)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
debug: true
server:
  port: 9090
analyzer:
  long_sentence_threshold: 30
spelling:
  dictionary_path: ./terms.txt
watch:
  directories:
    - ./docs
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Debug {
		t.Error("debug not loaded")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.Host != "localhost" {
		t.Errorf("host default not applied: %q", cfg.Server.Host)
	}
	if cfg.Analyzer.LongSentenceThreshold != 30 {
		t.Errorf("threshold = %d, want 30", cfg.Analyzer.LongSentenceThreshold)
	}
	if cfg.Analyzer.AdverbThreshold != 3 {
		t.Errorf("adverb default not applied: %d", cfg.Analyzer.AdverbThreshold)
	}
	// "./" paths are resolved relative to the config directory.
	if cfg.Spelling.DictionaryPath != filepath.Join(dir, "terms.txt") {
		t.Errorf("dictionary path = %q", cfg.Spelling.DictionaryPath)
	}
	if len(cfg.Watch.Directories) != 1 || cfg.Watch.Directories[0] != filepath.Join(dir, "docs") {
		t.Errorf("watch directories = %v", cfg.Watch.Directories)
	}
	if !cfg.Watch.RecursiveOrDefault() {
		t.Error("recursive should default to true")
	}
}

func TestLoad_missingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for missing config")
	}
}

func TestLoad_invalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("server: [not a map"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	cfg := Default()
	cfg.Server.Port = 7070
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Server.Port != 7070 {
		t.Errorf("port = %d, want 7070", loaded.Server.Port)
	}
}
