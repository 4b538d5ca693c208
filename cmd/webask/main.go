package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/webask"
	"github.com/fwojciec/webask/gemini"
	"github.com/fwojciec/webask/goquery"
	webaskhttp "github.com/fwojciec/webask/http"
	"github.com/fwojciec/webask/readability"
	"github.com/fwojciec/webask/scrape"
	webaskslog "github.com/fwojciec/webask/slog"
	"github.com/fwojciec/webask/trafilatura"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, FormatError(err))
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Dotenv files loaded into the environment before parsing. Missing
	// files are ignored and variables already set are never overridden.
	EnvFiles []string

	// Getenv looks up environment variables. Defaults to os.Getenv.
	Getenv func(string) string

	// Stdin is read when the URL file is "-".
	Stdin io.Reader
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		EnvFiles: []string{".env"},
		Getenv:   os.Getenv,
		Stdin:    os.Stdin,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if err := loadEnvFiles(m.EnvFiles); err != nil {
		return err
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Stdin:  m.Stdin,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("webask"),
		kong.Description("Answer questions using only the text of the given web pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Vars{"default_model": gemini.DefaultModel},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'webask --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// The answerer is configured before any input is read so a missing
	// key fails fast.
	if strings.HasPrefix(kongCtx.Command(), "ask") {
		client, err := gemini.NewClient(ctx, m.Getenv(gemini.APIKeyEnv))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: set GEMINI_API_KEY in the environment or in a .env file")
			return err
		}
		deps.Answerer = webaskslog.NewLoggingAnswerer(gemini.NewAnswerer(client.Models, cli.Ask.Model), deps.Logger)
	}

	textExtractor, err := newTextExtractor(cli.Extractor)
	if err != nil {
		return err
	}
	fetcher := webaskslog.NewLoggingFetcher(webaskhttp.NewFetcher(webaskhttp.WithTimeout(cli.Timeout)), deps.Logger)
	deps.Extractor = webaskslog.NewLoggingContentExtractor(scrape.NewScraper(fetcher, textExtractor), deps.Logger)

	return kongCtx.Run(deps)
}

// FormatError returns the text printed for an error returned by Run.
// Application errors print their user-facing message.
func FormatError(err error) string {
	var e *webask.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// newTextExtractor returns the extraction strategy registered under name.
func newTextExtractor(name string) (webask.TextExtractor, error) {
	switch name {
	case "", "heuristic":
		return goquery.NewTextExtractor(), nil
	case "readability":
		return readability.NewTextExtractor(), nil
	case "trafilatura":
		return trafilatura.NewTextExtractor(), nil
	default:
		return nil, webask.Errorf(webask.EINVALID, "unknown extractor %q", name)
	}
}

func loadEnvFiles(files []string) error {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", file, err)
		}
	}
	return nil
}
