package jobrag

import (
	"strconv"
	"strings"
)

// FormatSuggestions formats suggestions for terminal display.
// Each suggestion is a numbered role line, an indented line with the
// non-empty company and location, and the indented description.
// Suggestions are separated by blank lines.
func FormatSuggestions(suggestions []Suggestion) string {
	if len(suggestions) == 0 {
		return ""
	}

	parts := make([]string, 0, len(suggestions))
	for i, s := range suggestions {
		var sb strings.Builder
		sb.WriteString(strconv.Itoa(i + 1))
		sb.WriteString(". ")
		sb.WriteString(s.Role)

		meta := make([]string, 0, 2)
		if s.Company != "" {
			meta = append(meta, s.Company)
		}
		if s.Location != "" {
			meta = append(meta, s.Location)
		}
		if len(meta) > 0 {
			sb.WriteString("\n   ")
			sb.WriteString(strings.Join(meta, " · "))
		}
		if s.Description != "" {
			sb.WriteString("\n   ")
			sb.WriteString(s.Description)
		}
		parts = append(parts, sb.String())
	}

	return strings.Join(parts, "\n\n")
}

// FormatAnswer formats an answer for terminal display: the display text
// followed by a "Suggested Roles" section when suggestions were found.
func FormatAnswer(a *Answer) string {
	if a == nil {
		return ""
	}

	parts := make([]string, 0, 2)
	if text := strings.TrimSpace(a.DisplayText()); text != "" {
		parts = append(parts, text)
	}
	if len(a.Suggestions) > 0 {
		parts = append(parts, "## Suggested Roles\n\n"+FormatSuggestions(a.Suggestions))
	}

	return strings.Join(parts, "\n\n")
}
