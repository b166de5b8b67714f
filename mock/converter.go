package mock

import "github.com/fwojciec/luminary"

var _ luminary.Converter = (*Converter)(nil)

// Converter is a mock implementation of luminary.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
