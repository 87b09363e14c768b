package main

import (
	"fmt"
	"slices"

	"github.com/fwojciec/jobrag"
	"golang.org/x/sync/errgroup"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	files := c.Files
	if len(files) == 0 {
		files = []string{"-"}
	}

	results, err := parseAll(deps, files, c.Concurrency)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobrag.ErrorMessage(err))
		return err
	}

	return writeAnswers(deps.Stdout, c.Format, results)
}

// parsed pairs an answer with the input it came from.
type parsed struct {
	Source string
	Answer *jobrag.Answer
}

// parseAll reads and parses files with at most concurrency in flight.
// Results keep the order of files. Stdin is read once, before the fan-out,
// and every stdin entry gets the same text.
func parseAll(deps *Dependencies, files []string, concurrency int) ([]parsed, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	var stdin string
	if slices.ContainsFunc(files, isStdin) {
		text, err := readAnswer(deps, "-")
		if err != nil {
			return nil, err
		}
		stdin = text
	}

	results := make([]parsed, len(files))
	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(concurrency)

	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			text := stdin
			if !isStdin(path) {
				var err error
				if text, err = readAnswer(deps, path); err != nil {
					return err
				}
			}
			results[i] = parsed{Source: sourceName(path), Answer: deps.Parser.Parse(text)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
