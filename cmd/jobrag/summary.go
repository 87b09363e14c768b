package main

import (
	"fmt"

	"github.com/fwojciec/jobrag"
)

// Run executes the summary command.
func (c *SummaryCmd) Run(deps *Dependencies) error {
	text, err := readAnswer(deps, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobrag.ErrorMessage(err))
		return err
	}

	if summary := deps.Parser.Parse(text).Summary; summary != "" {
		fmt.Fprintln(deps.Stdout, summary)
	}
	return nil
}
