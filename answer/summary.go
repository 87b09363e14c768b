package answer

import (
	"strings"
	"unicode"
)

const (
	summaryMarker = "SUMMARY:"
	topJobsMarker = "top jobs:"
)

// ExtractSummary returns the prose part of an answer. The first rule that
// applies wins:
//
//  1. text after "SUMMARY:" up to the next "JOBS:" or the end;
//  2. text before "top jobs:";
//  3. lines up to the first line that opens a bold bullet ("- **", "* **",
//     "• **", "1. **", "1) **"), or the whole text if there is none.
//
// Markers are matched case-insensitively. The result is trimmed.
func ExtractSummary(text string) string {
	if text == "" {
		return ""
	}
	text = normalize(text)

	if i := indexFold(text, summaryMarker); i >= 0 {
		rest := text[i+len(summaryMarker):]
		if j := indexFold(rest, jobsMarker); j >= 0 {
			rest = rest[:j]
		}
		return strings.TrimSpace(rest)
	}

	if i := indexFold(text, topJobsMarker); i >= 0 {
		return strings.TrimSpace(text[:i])
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if opensBoldBullet(strings.TrimSpace(line)) {
			return strings.TrimSpace(strings.Join(lines[:i], "\n"))
		}
	}
	return strings.TrimSpace(text)
}

// opensBoldBullet reports whether line starts with a list marker followed by
// optional whitespace and "**".
func opensBoldBullet(line string) bool {
	rest, ok := cutListMarker(line)
	if !ok {
		return false
	}
	return strings.HasPrefix(strings.TrimLeftFunc(rest, unicode.IsSpace), "**")
}

// cutListMarker strips a leading "-", "*", "•", or digits followed by "." or
// ")". ok is false if line has no list marker.
func cutListMarker(line string) (rest string, ok bool) {
	for _, glyph := range []string{"-", "*", "•"} {
		if strings.HasPrefix(line, glyph) {
			return line[len(glyph):], true
		}
	}

	digits := 0
	for digits < len(line) && line[digits] >= '0' && line[digits] <= '9' {
		digits++
	}
	if digits > 0 && digits < len(line) && (line[digits] == '.' || line[digits] == ')') {
		return line[digits+1:], true
	}
	return "", false
}
