package luminary

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// DefaultMaxEvents bounds timeline length when the caller has no preference.
const DefaultMaxEvents = 8

// TimelineEvent is a single dated event extracted from biography text.
// An event is identified by its sentence text; the year records which
// match produced it.
type TimelineEvent struct {
	Year int    `json:"year"`
	Text string `json:"text"`
}

// Timeline is an ordered sequence of events, ascending by year, with no
// two events sharing the same text.
type Timeline struct {
	Events []TimelineEvent `json:"events"`
}

// YearSentence pairs a matched year with the sentence it was found in.
// A sentence mentioning several years produces one pair per year; the
// pairs are raw output and deduplication happens in BuildTimeline.
type YearSentence struct {
	Year     int
	Sentence string
}

// sentenceBoundaryRe marks the split point between sentences: terminal
// punctuation followed by a run of whitespace. The punctuation stays with
// the preceding sentence and the whitespace is consumed as the separator.
var sentenceBoundaryRe = regexp.MustCompile(`[.?!]\s+`)

// yearRe matches plausible 4-digit years (1800-2099) on word boundaries.
var yearRe = regexp.MustCompile(`\b(1[89]\d{2}|20\d{2})\b`)

// ExtractYearSentences splits biography text into sentences and emits one
// (year, sentence) pair per year match per sentence. Empty input yields nil.
func ExtractYearSentences(text string) []YearSentence {
	if text == "" {
		return nil
	}

	var pairs []YearSentence
	for _, sentence := range splitSentences(text) {
		years := yearRe.FindAllString(sentence, -1)
		if len(years) == 0 {
			continue
		}
		trimmed := strings.TrimSpace(sentence)
		if trimmed == "" {
			continue
		}
		for _, y := range years {
			year, err := strconv.Atoi(y)
			if err != nil {
				continue
			}
			pairs = append(pairs, YearSentence{Year: year, Sentence: trimmed})
		}
	}
	return pairs
}

// splitSentences splits text on sentence-terminal punctuation (. ? !)
// followed by whitespace.
func splitSentences(text string) []string {
	var sentences []string
	prev := 0
	for _, loc := range sentenceBoundaryRe.FindAllStringIndex(text, -1) {
		// loc[0] is the punctuation byte; keep it with the sentence.
		sentences = append(sentences, text[prev:loc[0]+1])
		prev = loc[1]
	}
	if prev < len(text) {
		sentences = append(sentences, text[prev:])
	}
	return sentences
}

// BuildTimeline sorts pairs by year ascending (stable, so ties keep input
// order), deduplicates by sentence text with the first-sorted occurrence
// winning, and truncates to maxEvents. A maxEvents of zero or less yields
// an empty timeline.
func BuildTimeline(pairs []YearSentence, maxEvents int) Timeline {
	if maxEvents <= 0 || len(pairs) == 0 {
		return Timeline{}
	}

	sorted := make([]YearSentence, len(pairs))
	copy(sorted, pairs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Year < sorted[j].Year
	})

	seen := make(map[string]struct{}, len(sorted))
	events := make([]TimelineEvent, 0, maxEvents)
	for _, p := range sorted {
		if _, ok := seen[p.Sentence]; ok {
			continue
		}
		seen[p.Sentence] = struct{}{}
		events = append(events, TimelineEvent{Year: p.Year, Text: p.Sentence})
		if len(events) >= maxEvents {
			break
		}
	}
	return Timeline{Events: events}
}

// ExtractTimeline is the convenience composition of ExtractYearSentences
// and BuildTimeline.
func ExtractTimeline(text string, maxEvents int) Timeline {
	return BuildTimeline(ExtractYearSentences(text), maxEvents)
}
