package main

import (
	"fmt"

	"github.com/fwojciec/luminary"
)

// Run executes the quotes command.
func (c *QuotesCmd) Run(deps *Dependencies) error {
	quotes, err := deps.Quotes.Quotes(deps.Ctx, c.Name, c.Max)
	if err != nil {
		return errorMessage(deps, err)
	}

	if len(quotes) == 0 {
		fmt.Fprintln(deps.Stdout, "No quotes found.")
		return nil
	}

	fmt.Fprintln(deps.Stdout, luminary.FormatQuotes(quotes))
	return nil
}
