package mock

import "github.com/fwojciec/jobrag"

var _ jobrag.Converter = (*Converter)(nil)

// Converter is a mock implementation of jobrag.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
