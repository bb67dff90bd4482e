// Package main is the kousei CLI entry point.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/hyperjump/kousei/internal/analyze"
	"github.com/hyperjump/kousei/internal/config"
	"github.com/hyperjump/kousei/internal/extract"
	"github.com/hyperjump/kousei/internal/models"
	"github.com/hyperjump/kousei/internal/report"
	"github.com/hyperjump/kousei/internal/server"
	"github.com/hyperjump/kousei/internal/spelling"
	"github.com/hyperjump/kousei/internal/watcher"
	"github.com/hyperjump/kousei/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/kousei/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks
// for config.yaml in the current directory (for development); if that exists
// it is used. When neither exists, built-in defaults apply.
func loadConfig(path string) (*config.Config, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				return config.Load(fallback)
			}
		}
		if _, statErr := os.Stat(path); statErr != nil {
			return config.Default(), nil
		}
	}
	return config.Load(path)
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "server":
		runServer()
	case "check":
		runCheck()
	case "watch":
		runWatch()
	case "version", "--version", "-v":
		fmt.Printf("kousei version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

// buildAnalyzer wires the dictionary, spell checker, and analyzer from config.
func buildAnalyzer(cfg *config.Config, logger *zap.Logger) (*analyze.Analyzer, error) {
	dict := spelling.NewDictionary()
	if cfg.Spelling.DictionaryPath != "" {
		if err := dict.LoadExtra(cfg.Spelling.DictionaryPath); err != nil {
			return nil, err
		}
	}
	checker := spelling.NewChecker(dict)
	return analyze.NewAnalyzer(cfg.Analyzer, checker, logger), nil
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	analyzer, err := buildAnalyzer(cfg, logger)
	if err != nil {
		logger.Fatal("failed to build analyzer", zap.Error(err))
	}
	srv := server.NewServer(analyzer, extract.NewExtractor(), &cfg.Server, logger, version)

	// Graceful shutdown on SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Stop(ctx); err != nil {
			logger.Error("shutdown failed", zap.Error(err))
		}
	}()

	if err := srv.Start(); err != nil {
		logger.Info("server stopped", zap.Error(err))
	}
}

func runCheck() {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	detailed := fs.Bool("detailed", false, "print detailed issue lists")
	asJSON := fs.Bool("json", false, "print the result as JSON")
	reportOut := fs.String("report", "", "write the Markdown report to this path")
	pdfOut := fs.String("pdf", "", "write a PDF report to this path")
	xlsxOut := fs.String("xlsx", "", "write the detailed issues workbook to this path")
	_ = fs.Parse(os.Args[2:])

	if fs.NArg() != 1 {
		fmt.Println("Usage: kousei check [flags] <file>")
		os.Exit(1)
	}
	path := fs.Arg(0)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	analyzer, err := buildAnalyzer(cfg, zap.NewNop())
	if err != nil {
		fmt.Printf("Failed to build analyzer: %v\n", err)
		os.Exit(1)
	}

	text, err := extract.NewExtractor().Extract(path)
	if err != nil {
		// Best-effort: a broken file analyzes as empty and gets the warning.
		text = ""
	}
	// The workbook needs the detailed lists even when they are not printed.
	opts := models.AnalyzeOptions{Detailed: *detailed || *xlsxOut != ""}
	result := analyzer.Analyze(text, opts)

	if *asJSON {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			fmt.Printf("Failed to encode result: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
	} else {
		printResult(result, *detailed)
	}

	if result.Analyzed() {
		writeArtifacts(result, *reportOut, *pdfOut, *xlsxOut)
	}
}

func writeArtifacts(result *models.AnalysisResult, reportOut, pdfOut, xlsxOut string) {
	if reportOut != "" {
		md := report.Markdown(result.Suggestions)
		if err := os.WriteFile(reportOut, []byte(md+"\n"), 0644); err != nil {
			fmt.Printf("Failed to write report: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Report written to %s\n", reportOut)
	}
	if pdfOut != "" {
		data, err := report.PDF(result)
		if err == nil {
			err = os.WriteFile(pdfOut, data, 0644)
		}
		if err != nil {
			fmt.Printf("Failed to write PDF report: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("PDF report written to %s\n", pdfOut)
	}
	if xlsxOut != "" {
		data, err := report.Workbook(result)
		if err == nil {
			err = os.WriteFile(xlsxOut, data, 0644)
		}
		if err != nil {
			fmt.Printf("Failed to write workbook: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Issues workbook written to %s\n", xlsxOut)
	}
}

func printResult(result *models.AnalysisResult, detailed bool) {
	if !result.Analyzed() {
		fmt.Println("Warning:", result.Warning)
		return
	}
	fmt.Println("Quick Summary")
	fmt.Printf("  Words: %d\n", result.Summary.Words)
	fmt.Printf("  Sentences: %d\n", result.Summary.Sentences)
	fmt.Printf("  Avg words / sentence: %.2f\n", result.Summary.AvgWordsPerSentence)

	if r := result.Readability; r != nil {
		fmt.Println("Readability")
		fmt.Printf("  Flesch Reading Ease (higher is easier): %.1f\n", r.FleschReadingEase)
		fmt.Printf("  Flesch-Kincaid Grade (US school grade): %.1f\n", r.FleschKincaidGrade)
		fmt.Printf("  SMOG Index: %.1f\n", r.SMOGIndex)
		fmt.Printf("  Dale-Chall Score: %.2f\n", r.DaleChallScore)
		fmt.Printf("  Words: %d\n", r.Words)
		fmt.Printf("  Sentences: %d\n", r.Sentences)
	}

	fmt.Println("Top Suggestions")
	for _, s := range result.Suggestions {
		fmt.Println("  • " + s)
	}

	if detailed && result.Detailed != nil {
		printDetailed(result.Detailed)
	}
}

func printDetailed(d *models.IssueDetail) {
	const lineWidth = 120

	fmt.Println("Detailed Issues")
	fmt.Println("  Long sentences:")
	for _, i := range d.LongSentences {
		fmt.Printf("    #%d (%d words): %s\n", i.Index, i.Count, utils.Truncate(i.Sentence, lineWidth))
	}
	fmt.Println("  Likely passive voice:")
	for _, i := range d.PassiveVoice {
		fmt.Printf("    #%d: %s\n", i.Index, utils.Truncate(i.Sentence, lineWidth))
	}
	fmt.Println("  Adverb-heavy sentences (-ly):")
	for _, i := range d.AdverbHeavy {
		fmt.Printf("    #%d (%d adverbs): %s\n", i.Index, i.Count, utils.Truncate(i.Sentence, lineWidth))
	}
	fmt.Println("  Consecutive duplicate words:")
	for _, i := range d.DuplicateWords {
		fmt.Printf("    '%s %s' ... context: %s\n", i.Word, i.Word, utils.Truncate(i.Context, lineWidth))
	}
	fmt.Println("  All-CAPS words:")
	for _, c := range d.AllCapsWords {
		fmt.Printf("    %s x %d\n", c.Word, c.Count)
	}
	fmt.Println("  Long bullet points:")
	for _, b := range d.LongBullets {
		fmt.Printf("    (%d words) %s\n", b.WordCount, utils.Truncate(b.Line, lineWidth))
	}
	fmt.Println("  Possible misspellings (suggestions):")
	for _, p := range d.Spelling {
		fmt.Printf("    %s -> %s\n", p.Word, p.Correction)
	}
}

func runWatch() {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if len(cfg.Watch.Directories) == 0 && fs.NArg() > 0 {
		cfg.Watch.Directories = fs.Args()
	}
	if len(cfg.Watch.Directories) == 0 {
		fmt.Println("Usage: kousei watch [flags] <dir> [dir...] (or set watch.directories in config)")
		os.Exit(1)
	}

	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	analyzer, err := buildAnalyzer(cfg, logger)
	if err != nil {
		logger.Fatal("failed to build analyzer", zap.Error(err))
	}
	extractor := extract.NewExtractor()

	onAnalyze := func(path string) {
		text, err := extractor.Extract(path)
		if err != nil {
			logger.Debug("extraction failed, treating as empty text", zap.String("path", path), zap.Error(err))
			text = ""
		}
		result := analyzer.Analyze(text, models.AnalyzeOptions{})
		if !result.Analyzed() {
			logger.Info("skipped (too little text)", zap.String("path", path))
			return
		}
		out := watcher.ReportPath(path)
		md := report.Markdown(result.Suggestions)
		if err := os.WriteFile(out, []byte(md+"\n"), 0644); err != nil {
			logger.Error("failed to write report", zap.String("path", out), zap.Error(err))
			return
		}
		logger.Info("report written",
			zap.String("source", path),
			zap.String("report", out),
			zap.Int("suggestions", len(result.Suggestions)),
		)
	}

	w := watcher.NewWatcher(cfg.Watch.Directories, cfg.Watch.Extensions, cfg.Watch.RecursiveOrDefault(), onAnalyze, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	if err := w.Start(ctx); err != nil {
		logger.Fatal("failed to start watcher", zap.Error(err))
	}
	logger.Info("watching", zap.Strings("directories", cfg.Watch.Directories))
	<-sigCh
	w.Stop()
}

func printUsage() {
	fmt.Println(`kousei - PDF writing-quality suggestions

Usage:
  kousei server [-config path] [-debug]          Start the HTTP API
  kousei check [flags] <file>                    Analyze a document
      -detailed        print detailed issue lists
      -json            print the result as JSON
      -report out.md   write the Markdown report
      -pdf out.pdf     write a PDF report
      -xlsx out.xlsx   write the detailed issues workbook
  kousei watch [-config path] [-debug] [dir...]  Analyze documents as they appear
  kousei version                                 Print version
  kousei help                                    Show this help`)
}
