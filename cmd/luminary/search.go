package main

import "fmt"

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	summary, err := deps.Biographies.FindSummary(deps.Ctx, c.Name)
	if err != nil {
		return errorMessage(deps, err)
	}

	fmt.Fprintln(deps.Stdout, summary.Title)
	if summary.Extract != "" {
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, summary.Extract)
	}
	if summary.URL != "" {
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, summary.URL)
	}

	return nil
}
