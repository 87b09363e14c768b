package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/jobrag/answer"
	"github.com/fwojciec/jobrag/htmltomarkdown"
	jrslog "github.com/fwojciec/jobrag/slog"
	jryaml "github.com/fwojciec/jobrag/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin is read for answers given as "-" or when no file is given.
	Stdin io.Reader

	// YAML configuration files, applied in order. Missing files are skipped.
	ConfigPaths []string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Stdin:       os.Stdin,
		ConfigPaths: defaultConfigPaths(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("jobrag"),
		kong.Description("Extract a summary and job suggestions from assistant answers"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Configuration(jryaml.Loader, m.ConfigPaths...),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'jobrag --help' to see available commands")
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

	logger := newLogger(stderr, cli.Verbose)
	deps.Parser = jrslog.NewLoggingParser(&answer.Parser{StrictMarker: cli.StrictMarker}, logger)
	if cli.HTML {
		deps.Converter = jrslog.NewLoggingConverter(htmltomarkdown.NewConverter(), logger)
	}

	return kongCtx.Run(deps)
}

// newLogger returns a text logger on w. Parse logs are emitted at info
// level, so they only show up in verbose mode.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func defaultConfigPaths() []string {
	if path := os.Getenv("JOBRAG_CONFIG"); path != "" {
		return []string{path}
	}
	return []string{"~/.jobrag.yaml", ".jobrag.yaml"}
}
