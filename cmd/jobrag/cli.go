package main

import (
	"context"
	"io"

	"github.com/fwojciec/jobrag"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Parser    jobrag.AnswerParser
	Converter jobrag.Converter // nil unless --html is set
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose      bool `short:"v" env:"JOBRAG_VERBOSE" help:"Log parse details to stderr"`
	HTML         bool `name:"html" help:"Convert HTML answers to Markdown before parsing"`
	StrictMarker bool `help:"Do not fall back to bullet parsing when a JOBS: marker is present"`

	Parse       ParseCmd       `cmd:"" help:"Parse answers into a summary and job suggestions"`
	Summary     SummaryCmd     `cmd:"" help:"Print the summary of an answer"`
	Suggestions SuggestionsCmd `cmd:"" help:"Print the job suggestions of an answer"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	Files       []string `arg:"" optional:"" help:"Answer files; '-' or none reads stdin"`
	Format      string   `short:"f" enum:"text,json,yaml" default:"text" env:"JOBRAG_FORMAT" help:"Output format (text, json, yaml)"`
	Concurrency int      `short:"c" default:"4" env:"JOBRAG_CONCURRENCY" help:"Concurrent parse limit"`
}

// SummaryCmd is the "summary" subcommand.
type SummaryCmd struct {
	File string `arg:"" optional:"" help:"Answer file; '-' or none reads stdin"`
}

// SuggestionsCmd is the "suggestions" subcommand.
type SuggestionsCmd struct {
	File   string `arg:"" optional:"" help:"Answer file; '-' or none reads stdin"`
	Format string `short:"f" enum:"text,json,yaml" default:"text" env:"JOBRAG_FORMAT" help:"Output format (text, json, yaml)"`
}
