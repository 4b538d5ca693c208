package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/webask"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Stdin     io.Reader
	Logger    *slog.Logger
	Extractor webask.ContentExtractor
	Answerer  webask.Answerer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose   bool          `short:"v" help:"Log every fetch"`
	Timeout   time.Duration `short:"t" default:"20s" help:"Fetch timeout per URL"`
	Extractor string        `short:"e" enum:"heuristic,readability,trafilatura" default:"heuristic" help:"Text extraction strategy (heuristic, readability, trafilatura)"`

	Ask     AskCmd     `cmd:"" help:"Answer a question using the text of the given URLs"`
	Extract ExtractCmd `cmd:"" help:"Show the text extracted from URLs"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	URLs     []string `short:"u" name:"url" sep:"none" help:"URL to read (repeatable)"`
	URLsFile string   `short:"f" name:"urls-file" help:"File with one URL per line, - for stdin"`
	Model    string   `env:"GEMINI_MODEL" default:"${default_model}" help:"Gemini model name"`
	Question string   `arg:"" help:"Question to answer"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URLs []string `arg:"" help:"URLs to extract"`
	Full bool     `help:"Print the full text instead of a preview"`
}
