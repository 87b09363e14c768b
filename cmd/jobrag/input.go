package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/fwojciec/jobrag"
)

// readAnswer reads the answer at path ("" or "-" for stdin) and converts it
// from HTML when a converter is configured.
func readAnswer(deps *Dependencies, path string) (string, error) {
	var b []byte
	var err error
	if isStdin(path) {
		b, err = io.ReadAll(deps.Stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if errors.Is(err, fs.ErrNotExist) {
		return "", jobrag.Errorf(jobrag.ENOTFOUND, "answer file %q not found", path)
	} else if err != nil {
		return "", fmt.Errorf("read answer %s: %w", sourceName(path), err)
	}

	text := string(b)
	if deps.Converter == nil || strings.TrimSpace(text) == "" {
		return text, nil
	}
	md, err := deps.Converter.Convert(text)
	if err != nil {
		return "", fmt.Errorf("convert answer %s: %w", sourceName(path), err)
	}
	return md, nil
}

func isStdin(path string) bool {
	return path == "" || path == "-"
}

func sourceName(path string) string {
	if isStdin(path) {
		return "stdin"
	}
	return path
}
