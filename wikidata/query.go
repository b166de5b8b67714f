package wikidata

import (
	"fmt"
	"strings"
)

// PeopleByFieldQuery builds a SPARQL query for humans whose occupation
// labels contain any of the keywords, returning label, description, and
// image where available.
func PeopleByFieldQuery(keywords []string, limit int) string {
	filters := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		filters = append(filters, fmt.Sprintf(`CONTAINS(LCASE(STR(?occLabel)), "%s")`, escapeLiteral(strings.ToLower(kw))))
	}
	filterClause := strings.Join(filters, " || ")

	return fmt.Sprintf(`SELECT DISTINCT ?person ?personLabel ?description ?image WHERE {
  ?person wdt:P31 wd:Q5;
          wdt:P106 ?occ.
  ?occ rdfs:label ?occLabel FILTER(LANG(?occLabel) = "en").
  FILTER(%s)
  OPTIONAL { ?person wdt:P18 ?image. }
  OPTIONAL { ?person schema:description ?description FILTER(LANG(?description) = "en") . }
  SERVICE wikibase:label { bd:serviceParam wikibase:language "en". }
}
LIMIT %d`, filterClause, limit)
}

// ImageQuery builds a SPARQL query for the image of the person with the
// given English label.
func ImageQuery(name string) string {
	return fmt.Sprintf(`SELECT ?image WHERE {
  ?person rdfs:label "%s"@en.
  ?person wdt:P18 ?image.
}
LIMIT 1`, escapeLiteral(name))
}

// escapeLiteral escapes a string for embedding in a SPARQL literal.
func escapeLiteral(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
