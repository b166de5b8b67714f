package luminary

import (
	"context"
	"time"
)

// DefaultMaxQuotes bounds quote lists when the caller has no preference.
const DefaultMaxQuotes = 12

// QuoteService fetches quotations attributed to people.
type QuoteService interface {
	// Quotes returns up to max quotes attributed to the named person.
	// Returns ENOTFOUND if the person has no quote page.
	Quotes(ctx context.Context, name string, max int) ([]string, error)
}

// DailyQuote is the quote of the day together with its author.
type DailyQuote struct {
	Name  string `json:"name"`
	Quote string `json:"quote"`
}

// DailyNames is the default rotation for the daily quote.
var DailyNames = []string{
	"Nelson Mandela", "Marie Curie", "Mahatma Gandhi", "Albert Einstein",
	"Ada Lovelace", "Steve Jobs", "Malala Yousafzai", "Simone de Beauvoir",
	"Sundar Pichai", "Ada Yonath", "Tim Berners-Lee", "Angela Merkel",
}

// PickDaily returns the item rotated to on the given date. The same date
// always yields the same item, so "daily" picks are stable within a day.
// Returns the empty string for an empty list.
func PickDaily(items []string, date time.Time) string {
	if len(items) == 0 {
		return ""
	}
	idx := (date.Year()*366 + date.YearDay()) % len(items)
	return items[idx]
}
