// Package answer extracts a summary and job suggestions from the free-form
// text of an assistant answer.
//
// Two layouts are recognized, tried in a fixed order: a strict "JOBS:" block
// of pipe-delimited lines, then a lenient list of markdown bullets with bold
// titles. All functions are pure and safe for concurrent use.
package answer

import "github.com/fwojciec/jobrag"

// Ensure Parser implements jobrag.AnswerParser at compile time.
var _ jobrag.AnswerParser = (*Parser)(nil)

// Parser implements jobrag.AnswerParser. The zero value is ready to use.
type Parser struct {
	// StrictMarker disables the bullet fallback once a "JOBS:" marker has
	// been located, even if the block yields no suggestions.
	StrictMarker bool
}

// Parse extracts the summary and suggestions from text.
func (p *Parser) Parse(text string) *jobrag.Answer {
	suggestions, format := p.extract(text)
	return &jobrag.Answer{
		Text:        text,
		Summary:     ExtractSummary(text),
		Suggestions: suggestions,
		Format:      format,
	}
}

func (p *Parser) extract(text string) ([]jobrag.Suggestion, jobrag.Format) {
	if text == "" {
		return nil, jobrag.FormatNone
	}

	delimited, found := ParseDelimited(text)
	if len(delimited) > 0 {
		return delimited, jobrag.FormatDelimited
	}
	if found && p.StrictMarker {
		return nil, jobrag.FormatNone
	}

	if bullets := ParseBullets(text); len(bullets) > 0 {
		return bullets, jobrag.FormatBullets
	}
	return nil, jobrag.FormatNone
}

// ExtractSuggestions returns the suggestions found in text, trying the
// delimited layout first and the bullet layout second. Returns nil when
// neither layout yields a suggestion.
func ExtractSuggestions(text string) []jobrag.Suggestion {
	suggestions, _ := (&Parser{}).extract(text)
	return suggestions
}
