package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/luminary"
)

// Run executes the daily command.
func (c *DailyCmd) Run(deps *Dependencies) error {
	name := luminary.PickDaily(luminary.DailyNames, time.Now())

	quotes, err := deps.Quotes.Quotes(deps.Ctx, name, 1)
	if err != nil || len(quotes) == 0 {
		fmt.Fprintf(deps.Stdout, "Quote of the day by %s is unavailable.\n", name)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "%q\n    - %s\n", quotes[0], name)
	return nil
}
