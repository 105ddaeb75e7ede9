// Package main is the Labsense CLI entry point.
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

	"github.com/medletter/labsense/internal/acquire"
	"github.com/medletter/labsense/internal/cli"
	"github.com/medletter/labsense/internal/config"
	"github.com/medletter/labsense/internal/models"
	"github.com/medletter/labsense/internal/pipeline"
	"github.com/medletter/labsense/internal/server"
	"github.com/medletter/labsense/internal/watcher"
	"github.com/medletter/labsense/pkg/utils"
	"go.uber.org/zap"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/labsense/config.yaml"

// loadConfig loads config from path. When path is the default, it first
// looks for config.yaml in the current directory (for development); a
// missing default file falls back to built-in defaults so the tool runs
// without any config at all.
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
	case "analyze":
		runAnalyze()
	case "watch":
		runWatch()
	case "version", "--version", "-v":
		fmt.Printf("labsense version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

// buildPipeline wires the acquirer and pipeline from config.
func buildPipeline(cfg *config.Config, logger *zap.Logger) *pipeline.Pipeline {
	opts := []acquire.AcquirerOption{
		acquire.WithLogger(logger),
		acquire.WithMinTextLength(cfg.Pipeline.MinTextLength),
		acquire.WithDPI(cfg.OCR.DPI),
		acquire.WithWorkers(cfg.OCR.Workers),
		acquire.WithOCRTimeout(time.Duration(cfg.OCR.TimeoutSeconds) * time.Second),
	}
	if cfg.OCR.EnabledOrDefault() {
		opts = append(opts, acquire.WithRecognizer(&acquire.TesseractRecognizer{Languages: cfg.OCR.Languages}))
	}
	acquirer := acquire.NewAcquirer(opts...)
	return pipeline.New(acquirer, pipeline.WithLogger(logger))
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

	p := buildPipeline(cfg, logger)
	srv := server.NewServer(p, &cfg.Server, logger)
	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

func runAnalyze() {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	symptoms := fs.String("symptoms", "", "optional symptom description to correlate")
	outputFormat := fs.String("output", "text", "output format: text (human-readable) or json (parseable)")
	_ = fs.Parse(os.Args[2:])

	if fs.NArg() < 1 {
		fmt.Println("Usage: labsense analyze [flags] <report-file>")
		os.Exit(1)
	}
	path := fs.Arg(0)

	format := cli.OutputText
	switch *outputFormat {
	case "json":
		format = cli.OutputJSON
	case "text":
		format = cli.OutputText
	default:
		fmt.Printf("Unknown output format %q; use text or json\n", *outputFormat)
		os.Exit(1)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	p := buildPipeline(cfg, logger)
	bundle, err := p.AnalyzeFile(context.Background(), path, *symptoms)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Analysis failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteBundle(os.Stdout, bundle, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runWatch() {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	scanExisting := fs.Bool("scan-existing", false, "also analyze report files already present in watched directories")
	_ = fs.Parse(os.Args[2:])

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if len(cfg.Watch.Directories) == 0 {
		fmt.Println("No watch directories configured; set watch.directories in the config file.")
		os.Exit(1)
	}
	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	p := buildPipeline(cfg, logger)
	watchOpts := []watcher.Option{}
	if cfg.Debug {
		watchOpts = append(watchOpts, watcher.WithLogger(logger))
	}
	w := watcher.New(
		cfg.Watch.Directories,
		cfg.Watch.Extensions,
		cfg.Watch.RecursiveOrDefault(),
		func(path string) {
			bundle, err := p.AnalyzeFile(context.Background(), path, "")
			if err != nil {
				logger.Warn("watch analyze failed", zap.String("path", path), zap.Error(err))
				return
			}
			if err := writeGuidance(path, bundle); err != nil {
				logger.Warn("watch write guidance failed", zap.String("path", path), zap.Error(err))
				return
			}
			logger.Info("report analyzed",
				zap.String("path", path),
				zap.String("extraction_method", string(bundle.Report.ExtractionMethod)))
		},
		watchOpts...,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		logger.Fatal("Failed to start watcher", zap.Error(err))
	}
	if *scanExisting {
		w.ScanExisting()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	logger.Info("Shutting down...")
	w.Stop()
}

// writeGuidance writes the guidance bundle as a JSON sidecar next to the
// report file.
func writeGuidance(reportPath string, bundle *models.GuidanceBundle) error {
	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(reportPath+watcher.GuidanceSuffix, data, 0600)
}

func printUsage() {
	fmt.Println(`labsense - Lab report extraction and educational guidance

Usage:
  labsense server [flags]            Start the HTTP API server
  labsense analyze [flags] <file>    Analyze a report file and print guidance
  labsense watch [flags]             Watch directories for new report files
  labsense version                   Show version
  labsense help                      Show this help

Server Flags:
  --config string     Config file path (default: /usr/local/etc/labsense/config.yaml)
  --debug             Enable debug logging

Analyze Flags:
  --config string     Config file path
  --symptoms string   Optional symptom description to correlate with the labs
  --output string     Output format: text or json (default: text)

Watch Flags:
  --config string     Config file path (watch.directories must be set)
  --scan-existing     Also analyze files already present when the watch starts

Examples:
  labsense server
  labsense analyze report.pdf
  labsense analyze --symptoms "I feel tired and weak" --output json report.pdf
  labsense watch --scan-existing`)
}
