package wikipedia

import (
	"strings"

	"github.com/fwojciec/luminary"
)

// ParseExtract parses a plain-text extract into its lead paragraph and
// section tree. Headings appear as "== Title ==" lines; the number of
// equals signs is the nesting level, with level 2 at the top.
//
// Parsing is all-or-nothing: a malformed heading fails the whole call
// with EINTERNAL and no partial sections are returned.
func ParseExtract(extract string) (lead string, sections []luminary.Section, err error) {
	type node struct {
		level    int
		title    string
		body     []string
		children []*node
	}

	var roots []*node
	var stack []*node
	var leadLines []string

	for _, line := range strings.Split(extract, "\n") {
		level, title, isHeading, err := parseHeading(line)
		if err != nil {
			return "", nil, err
		}
		if !isHeading {
			if len(stack) == 0 {
				leadLines = append(leadLines, line)
			} else {
				top := stack[len(stack)-1]
				top.body = append(top.body, line)
			}
			continue
		}

		n := &node{level: level, title: title}
		for len(stack) > 0 && stack[len(stack)-1].level >= level {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			roots = append(roots, n)
		} else {
			parent := stack[len(stack)-1]
			parent.children = append(parent.children, n)
		}
		stack = append(stack, n)
	}

	var convert func(n *node) luminary.Section
	convert = func(n *node) luminary.Section {
		s := luminary.Section{
			Title: n.title,
			Body:  strings.TrimSpace(strings.Join(n.body, "\n")),
		}
		for _, child := range n.children {
			s.Subsections = append(s.Subsections, convert(child))
		}
		return s
	}

	for _, root := range roots {
		sections = append(sections, convert(root))
	}
	return strings.TrimSpace(strings.Join(leadLines, "\n")), sections, nil
}

// parseHeading reports whether a line is a section heading and, if so,
// its level and title. Lines that look like headings but are malformed
// (mismatched markers, empty titles, impossible depth) yield an error.
func parseHeading(line string) (level int, title string, isHeading bool, err error) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "==") {
		return 0, "", false, nil
	}

	open := 0
	for open < len(trimmed) && trimmed[open] == '=' {
		open++
	}
	closing := 0
	for closing < len(trimmed)-open && trimmed[len(trimmed)-1-closing] == '=' {
		closing++
	}

	if open+closing >= len(trimmed) {
		return 0, "", false, luminary.Errorf(luminary.EINTERNAL, "malformed section heading %q", trimmed)
	}
	if open != closing || open > 6 {
		return 0, "", false, luminary.Errorf(luminary.EINTERNAL, "malformed section heading %q", trimmed)
	}

	title = strings.TrimSpace(trimmed[open : len(trimmed)-closing])
	if title == "" {
		return 0, "", false, luminary.Errorf(luminary.EINTERNAL, "malformed section heading %q", trimmed)
	}
	return open, title, true, nil
}
