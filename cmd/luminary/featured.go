package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/luminary"
)

// Run executes the featured command. With --describe each person's
// summary is fetched; fetch failures degrade to the bare name.
func (c *FeaturedCmd) Run(deps *Dependencies) error {
	for _, name := range luminary.FeaturedNames {
		if !c.Describe {
			fmt.Fprintln(deps.Stdout, name)
			continue
		}
		if summary, err := deps.Biographies.FindSummary(deps.Ctx, name); err == nil && summary.Extract != "" {
			fmt.Fprintf(deps.Stdout, "%s: %s\n", name, firstSentence(summary.Extract))
			continue
		}
		fmt.Fprintln(deps.Stdout, name)
	}
	return nil
}

// firstSentence trims an extract down to its opening sentence.
func firstSentence(text string) string {
	if idx := strings.IndexAny(text, ".?!"); idx >= 0 {
		return text[:idx+1]
	}
	return text
}
