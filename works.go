package luminary

import "strings"

// DefaultWorkKeywords identify works-related section titles in a
// biography document. Matching is case-insensitive substring, not
// whole-word.
var DefaultWorkKeywords = []string{
	"works",
	"books",
	"bibliography",
	"publications",
	"selected works",
}

// Section is a titled span of a biography document with body text and
// zero or more nested subsections.
type Section struct {
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Subsections []Section `json:"subsections,omitempty"`
}

// WorkSection is a flattened works-related section. Heading is either a
// bare section title or "Parent → Child" for a nested subsection.
type WorkSection struct {
	Heading string `json:"heading"`
	Content string `json:"content"`
}

// WorksCollection holds works-related sections in document traversal order.
type WorksCollection struct {
	Sections []WorkSection `json:"sections"`
}

// CollectWorks walks top-level sections in document order and flattens
// works-related ones into a WorksCollection.
//
// A section matches when its title contains any keyword, case-insensitively.
// A matched section emits itself and then every direct child subsection,
// regardless of the child's own title: a matched works heading implies its
// subsections are all work-related. Grandchildren are not traversed, and
// the subsections of an unmatched section are never inspected.
//
// A nil or empty keywords slice falls back to DefaultWorkKeywords.
// maxSections caps output size for untrusted documents; zero or less means
// unlimited.
func CollectWorks(sections []Section, keywords []string, maxSections int) WorksCollection {
	if len(keywords) == 0 {
		keywords = DefaultWorkKeywords
	}

	var out []WorkSection
	for _, s := range sections {
		if !titleMatches(s.Title, keywords) {
			continue
		}
		out = append(out, WorkSection{
			Heading: s.Title,
			Content: strings.TrimSpace(s.Body),
		})
		if maxSections > 0 && len(out) >= maxSections {
			return WorksCollection{Sections: out}
		}
		for _, sub := range s.Subsections {
			out = append(out, WorkSection{
				Heading: s.Title + " → " + sub.Title,
				Content: strings.TrimSpace(sub.Body),
			})
			if maxSections > 0 && len(out) >= maxSections {
				return WorksCollection{Sections: out}
			}
		}
	}
	return WorksCollection{Sections: out}
}

// titleMatches reports whether title contains any keyword, ignoring case.
func titleMatches(title string, keywords []string) bool {
	lower := strings.ToLower(title)
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
