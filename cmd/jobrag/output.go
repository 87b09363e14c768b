package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/jobrag"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// answerOutput is the structured form of a parsed answer.
type answerOutput struct {
	Source      string              `json:"source" yaml:"source"`
	Summary     string              `json:"summary" yaml:"summary"`
	Format      jobrag.Format       `json:"format" yaml:"format"`
	Suggestions []jobrag.Suggestion `json:"suggestions" yaml:"suggestions"`
}

func newAnswerOutput(p parsed) answerOutput {
	out := answerOutput{Source: p.Source, Suggestions: []jobrag.Suggestion{}}
	if p.Answer == nil {
		return out
	}
	out.Summary = p.Answer.Summary
	out.Format = p.Answer.Format
	if len(p.Answer.Suggestions) > 0 {
		out.Suggestions = p.Answer.Suggestions
	}
	return out
}

// writeAnswers renders results in format. Structured formats emit a single
// object for one input and a list otherwise.
func writeAnswers(w io.Writer, format string, results []parsed) error {
	if format == formatJSON || format == formatYAML {
		var v any
		if len(results) == 1 {
			v = newAnswerOutput(results[0])
		} else {
			outs := make([]answerOutput, len(results))
			for i, r := range results {
				outs[i] = newAnswerOutput(r)
			}
			v = outs
		}
		if format == formatJSON {
			return writeJSON(w, v)
		}
		return writeYAML(w, v)
	}

	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if len(results) > 1 {
			fmt.Fprintf(w, "==> %s <==\n", r.Source)
		}
		if text := jobrag.FormatAnswer(r.Answer); text != "" {
			fmt.Fprintln(w, text)
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
