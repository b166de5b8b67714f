package luminary

import (
	"fmt"
	"strings"
)

// FormatTimeline formats a timeline for display or LLM context, one
// "year: sentence" line per event.
func FormatTimeline(t Timeline) string {
	if len(t.Events) == 0 {
		return ""
	}

	lines := make([]string, 0, len(t.Events))
	for _, e := range t.Events {
		lines = append(lines, fmt.Sprintf("%d: %s", e.Year, e.Text))
	}
	return strings.Join(lines, "\n")
}

// FormatWorks formats a works collection for display or LLM context.
// Sections are separated by blank lines; an empty body renders as a bare
// heading.
func FormatWorks(w WorksCollection) string {
	if len(w.Sections) == 0 {
		return ""
	}

	parts := make([]string, 0, len(w.Sections))
	for _, s := range w.Sections {
		if s.Content == "" {
			parts = append(parts, "## "+s.Heading)
			continue
		}
		parts = append(parts, "## "+s.Heading+"\n"+s.Content)
	}
	return strings.Join(parts, "\n\n")
}

// FormatQuotes formats quotes as a markdown blockquote list.
func FormatQuotes(quotes []string) string {
	if len(quotes) == 0 {
		return ""
	}

	lines := make([]string, 0, len(quotes))
	for _, q := range quotes {
		lines = append(lines, "> "+q)
	}
	return strings.Join(lines, "\n")
}
