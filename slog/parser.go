package slog

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/jobrag"
)

// Ensure LoggingParser implements jobrag.AnswerParser.
var _ jobrag.AnswerParser = (*LoggingParser)(nil)

// LoggingParser wraps an AnswerParser with logging. The answer text itself
// is never logged; a hash identifies it instead.
type LoggingParser struct {
	next   jobrag.AnswerParser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next jobrag.AnswerParser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the outcome.
func (p *LoggingParser) Parse(text string) (a *jobrag.Answer) {
	defer func(begin time.Time) {
		format := "(none)"
		var suggestions, summaryChars int
		if a != nil {
			if a.Format != jobrag.FormatNone {
				format = string(a.Format)
			}
			suggestions = len(a.Suggestions)
			summaryChars = len(a.Summary)
		}
		p.logger.Info("parse answer",
			"hash", TextHash(text),
			"bytes", len(text),
			"format", format,
			"suggestions", suggestions,
			"summary_chars", summaryChars,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return p.next.Parse(text)
}

// TextHash returns the hex xxhash of text, used to correlate log lines with
// an answer without logging its content.
func TextHash(text string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(text))
}
