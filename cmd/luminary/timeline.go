package main

import (
	"fmt"

	"github.com/fwojciec/luminary"
)

// Run executes the timeline command.
func (c *TimelineCmd) Run(deps *Dependencies) error {
	bio, err := deps.Biographies.FindBiography(deps.Ctx, c.Name)
	if err != nil {
		return errorMessage(deps, err)
	}

	timeline := luminary.ExtractTimeline(bio.Content, c.Max)
	if len(timeline.Events) == 0 {
		fmt.Fprintln(deps.Stdout, "No dated events found.")
		return nil
	}

	fmt.Fprintln(deps.Stdout, luminary.FormatTimeline(timeline))
	return nil
}
