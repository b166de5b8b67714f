package main

import (
	"fmt"

	"github.com/fwojciec/luminary"
)

// Run executes the profile command.
func (c *ProfileCmd) Run(deps *Dependencies) error {
	profile, err := deps.Profiles.BuildProfile(deps.Ctx, c.Name)
	if err != nil {
		return errorMessage(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "# %s\n", profile.Biography.Title)
	if profile.Biography.Summary != "" {
		fmt.Fprintf(deps.Stdout, "\n%s\n", profile.Biography.Summary)
	}

	if timeline := luminary.FormatTimeline(profile.Timeline); timeline != "" {
		fmt.Fprintf(deps.Stdout, "\n## Timeline\n%s\n", timeline)
	}
	if works := luminary.FormatWorks(profile.Works); works != "" {
		fmt.Fprintf(deps.Stdout, "\n## Notable Works\n%s\n", works)
	}
	if quotes := luminary.FormatQuotes(profile.Quotes); quotes != "" {
		fmt.Fprintf(deps.Stdout, "\n## Quotes\n%s\n", quotes)
	}
	if profile.Biography.URL != "" {
		fmt.Fprintf(deps.Stdout, "\n%s\n", profile.Biography.URL)
	}

	return nil
}
