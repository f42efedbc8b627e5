package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/symcheck"
	"github.com/fwojciec/symcheck/checker"
	"github.com/fwojciec/symcheck/fs"
	"github.com/fwojciec/symcheck/gemini"
	symhttp "github.com/fwojciec/symcheck/http"
	symslog "github.com/fwojciec/symcheck/slog"
	"github.com/fwojciec/symcheck/sqlite"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path used when --db is not given. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing. When set, Run uses them instead of
	// building its own.
	ReferenceSource symcheck.ReferenceSource
	History         symcheck.HistoryService
	Analyzer        symcheck.RemoteAnalyzer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("symcheck"),
		kong.Description("Preliminary symptom checker. Not a substitute for medical advice."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'symcheck --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if cmd == "check" || cmd == "history" {
		if cli.DB != "" {
			m.DBPath = cli.DB
		}
		if m.History == nil {
			m.DB = sqlite.NewDB(m.DBPath)
			if err := m.DB.Open(); err != nil {
				fmt.Fprintf(stderr, "Hint: Set SYMCHECK_DB or --db to use a different database path\n")
				return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
			}
			defer m.Close()
			m.History = sqlite.NewHistoryService(m.DB)
		}
		deps.History = symslog.NewLoggingHistoryService(m.History, deps.Logger)
	}

	if cmd == "check" || cmd == "diseases" {
		src := m.ReferenceSource
		if src == nil {
			src = referenceSource(cli.Data)
		}
		ref, err := checker.LoadReference(ctx, symslog.NewLoggingReferenceSource(src, deps.Logger), checker.LoadOptions{
			Logger: deps.Logger,
		})
		if err != nil {
			return fmt.Errorf("failed to load reference data: %w", err)
		}
		deps.Reference = ref
	}

	if cmd == "check" {
		analyzer := m.Analyzer
		if analyzer == nil && cli.Endpoint != "" {
			analyzer = symhttp.NewAnalyzer(cli.Endpoint, &http.Client{Timeout: cli.Timeout})
		}
		if analyzer != nil {
			deps.Analyzer = symslog.NewLoggingAnalyzer(analyzer, deps.Logger)
		}
		deps.Checker = &checker.Checker{
			Reference: deps.Reference,
			Remote:    deps.Analyzer,
			History:   deps.History,
			Logger:    deps.Logger,
			Timeout:   cli.Timeout,
		}
	}

	if cmd == "serve" {
		analyzer := m.Analyzer
		if analyzer == nil {
			apiKey := cli.Serve.APIKey
			if apiKey == "" {
				fmt.Fprintln(stderr, "Set GEMINI_API_KEY or --gemini-api-key. Get an API key at https://aistudio.google.com/apikey")
				return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
			}

			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  apiKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
				return fmt.Errorf("failed to connect to Gemini API: %w", err)
			}
			analyzer = gemini.NewAnalyzer(client, gemini.DefaultModel)
		}
		deps.Analyzer = symslog.NewLoggingAnalyzer(analyzer, deps.Logger)
	}

	return kongCtx.Run(deps)
}

// referenceSource returns an HTTP source for http(s) locations and a
// directory source otherwise.
func referenceSource(location string) symcheck.ReferenceSource {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return symhttp.NewReferenceSource(location)
	}
	return fs.NewReferenceSource(location)
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "symcheck.db"
	}
	dir := filepath.Join(home, ".symcheck")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "symcheck.db")
}
