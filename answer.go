package jobrag

// Format identifies the answer layout that suggestions were extracted from.
type Format string

// Format constants for Answer.
const (
	// FormatNone means no suggestions were found.
	FormatNone Format = ""
	// FormatDelimited is the "JOBS:" block of "- role | company | location | reason" lines.
	FormatDelimited Format = "delimited"
	// FormatBullets is the "- **Role, Company, Location**: details" markdown bullet list.
	FormatBullets Format = "bullets"
)

// Answer is the structured form of an assistant answer.
type Answer struct {
	// Text is the raw answer. It is never modified by parsing.
	Text string `json:"-" yaml:"-"`

	Summary     string       `json:"summary" yaml:"summary"`
	Suggestions []Suggestion `json:"suggestions" yaml:"suggestions"`
	Format      Format       `json:"format" yaml:"format"`
}

// DisplayText returns the text to show above the suggestions: the extracted
// summary when suggestions were found, otherwise the raw answer.
func (a *Answer) DisplayText() string {
	if a == nil {
		return ""
	}
	if len(a.Suggestions) > 0 {
		return a.Summary
	}
	return a.Text
}

// AnswerParser converts raw answer text into an Answer.
type AnswerParser interface {
	// Parse extracts the summary and suggestions from text.
	// It never fails; unrecognized input yields an Answer without suggestions.
	Parse(text string) *Answer
}
