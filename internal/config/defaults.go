package config

// Default establishes a config with every default applied, for callers that
// run without a config file (the check subcommand, tests).
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.MaxUploadBytes == 0 {
		cfg.Server.MaxUploadBytes = 32 << 20 // 32 MiB
	}
	if cfg.Analyzer.LongSentenceThreshold == 0 {
		cfg.Analyzer.LongSentenceThreshold = 25
	}
	if cfg.Analyzer.AdverbThreshold == 0 {
		cfg.Analyzer.AdverbThreshold = 3
	}
	if cfg.Analyzer.BulletMaxWords == 0 {
		cfg.Analyzer.BulletMaxWords = 20
	}
	if cfg.Analyzer.AllCapsMinLen == 0 {
		cfg.Analyzer.AllCapsMinLen = 5
	}
	if cfg.Analyzer.MinTextLength == 0 {
		cfg.Analyzer.MinTextLength = 200
	}
	if cfg.Analyzer.MaxSpellingItems == 0 {
		cfg.Analyzer.MaxSpellingItems = 30
	}
	if cfg.Analyzer.MaxDetailedIssues == 0 {
		cfg.Analyzer.MaxDetailedIssues = 50
	}
	if cfg.Watch.Extensions == nil {
		cfg.Watch.Extensions = []string{".pdf", ".txt", ".md", ".rst", ".docx"}
	}
	// Recursive defaults to true when unset (nil).
	if len(cfg.Watch.Directories) > 0 && cfg.Watch.Recursive == nil {
		t := true
		cfg.Watch.Recursive = &t
	}
}
