package main

import "fmt"

// Run executes the lessons command. The person's summary is fetched first
// so the generator has biographical grounding to work from.
func (c *LessonsCmd) Run(deps *Dependencies) error {
	var summary string
	if s, err := deps.Biographies.FindSummary(deps.Ctx, c.Name); err == nil {
		summary = s.Extract
	}

	lessons, err := deps.Lessons.Lessons(deps.Ctx, c.Name, summary)
	if err != nil {
		return errorMessage(deps, err)
	}

	fmt.Fprintln(deps.Stdout, lessons)
	return nil
}
