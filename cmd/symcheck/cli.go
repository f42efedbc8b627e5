package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/symcheck"
	"github.com/fwojciec/symcheck/checker"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Reference *symcheck.Reference
	History   symcheck.HistoryService
	Analyzer  symcheck.RemoteAnalyzer
	Checker   *checker.Checker
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB       string        `name:"db" env:"SYMCHECK_DB" help:"History database path (default ~/.symcheck/symcheck.db)"`
	Data     string        `env:"SYMCHECK_DATA" default:"data" help:"Reference data directory or http(s) base URL"`
	Endpoint string        `env:"SYMCHECK_ENDPOINT" help:"Base URL of a remote analysis service"`
	Timeout  time.Duration `env:"SYMCHECK_TIMEOUT" default:"30s" help:"Remote analysis timeout"`
	Verbose  bool          `short:"v" env:"SYMCHECK_VERBOSE" help:"Enable debug logging"`

	Check    CheckCmd    `cmd:"" help:"Check symptoms against reference data"`
	History  HistoryCmd  `cmd:"" help:"Show or clear recent checks"`
	Diseases DiseasesCmd `cmd:"" help:"List diseases in the reference data"`
	Serve    ServeCmd    `cmd:"" help:"Serve the remote analysis endpoint"`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	Symptoms []string `short:"s" name:"symptom" help:"Selected symptom (repeatable)"`
	Text     string   `arg:"" optional:"" help:"Free-text symptom description"`
	JSON     bool     `name:"json" help:"Print the analysis as JSON"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Clear bool `help:"Remove all recent checks"`
}

// DiseasesCmd is the "diseases" subcommand.
type DiseasesCmd struct {
	Symptoms bool `short:"s" help:"Show symptoms for each disease"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	APIKey string `name:"gemini-api-key" env:"GEMINI_API_KEY" help:"Gemini API key"`

	Addr  string  `default:":8080" help:"Listen address"`
	Rate  float64 `default:"1" help:"Sustained analysis requests per second per client"`
	Burst int     `default:"5" help:"Maximum burst of analysis requests"`
}
