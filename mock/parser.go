package mock

import "github.com/fwojciec/jobrag"

var _ jobrag.AnswerParser = (*AnswerParser)(nil)

// AnswerParser is a mock implementation of jobrag.AnswerParser.
type AnswerParser struct {
	ParseFn func(text string) *jobrag.Answer
}

func (p *AnswerParser) Parse(text string) *jobrag.Answer {
	return p.ParseFn(text)
}
