package main

import (
	"fmt"

	"github.com/fwojciec/luminary"
)

// Run executes the works command.
func (c *WorksCmd) Run(deps *Dependencies) error {
	bio, err := deps.Biographies.FindBiography(deps.Ctx, c.Name)
	if err != nil {
		return errorMessage(deps, err)
	}

	works := luminary.CollectWorks(bio.Sections, nil, 0)
	if len(works.Sections) == 0 {
		fmt.Fprintln(deps.Stdout, "No works sections found.")
		return nil
	}

	fmt.Fprintln(deps.Stdout, luminary.FormatWorks(works))
	return nil
}
