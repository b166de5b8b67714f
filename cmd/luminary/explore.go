package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/luminary"
)

// Run executes the explore command.
func (c *ExploreCmd) Run(deps *Dependencies) error {
	if c.Field == "" {
		fmt.Fprintf(deps.Stdout, "Fields: %s\n", strings.Join(luminary.Fields(), ", "))
		return nil
	}

	people, err := deps.Knowledge.PeopleByField(deps.Ctx, c.Field, c.Limit)
	if err != nil {
		return errorMessage(deps, err)
	}

	if len(people) == 0 {
		fmt.Fprintf(deps.Stdout, "No people found for %q.\n", c.Field)
		return nil
	}

	for _, p := range people {
		if p.Description != "" {
			fmt.Fprintf(deps.Stdout, "%s (%s)\n", p.Name, p.Description)
			continue
		}
		fmt.Fprintln(deps.Stdout, p.Name)
	}

	return nil
}
