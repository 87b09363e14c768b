package main

import (
	"fmt"

	"github.com/fwojciec/jobrag"
)

// Run executes the suggestions command.
func (c *SuggestionsCmd) Run(deps *Dependencies) error {
	text, err := readAnswer(deps, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobrag.ErrorMessage(err))
		return err
	}

	suggestions := deps.Parser.Parse(text).Suggestions
	if suggestions == nil {
		suggestions = []jobrag.Suggestion{}
	}

	switch c.Format {
	case formatJSON:
		return writeJSON(deps.Stdout, suggestions)
	case formatYAML:
		return writeYAML(deps.Stdout, suggestions)
	}

	if len(suggestions) > 0 {
		fmt.Fprintln(deps.Stdout, jobrag.FormatSuggestions(suggestions))
	}
	return nil
}
