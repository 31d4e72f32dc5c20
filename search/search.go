// Package search filters jar entries by free text and by several renderings
// of their date, and splits text into highlight spans.
package search

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Rshep3087/happyjar/ledger"
	"golang.org/x/text/cases"
	"golang.org/x/text/width"
)

// DateLayouts are the renderings an entry's timestamp is matched against:
// 2025/03/07, 2025年3月7日, 3月7日 and 3/7.
var DateLayouts = []string{
	"2006/01/02",
	"2006年1月2日",
	"1月2日",
	"1/2",
}

// Span is a contiguous byte range of a string, marked as matching the query
// or not.
type Span struct {
	Start   int
	End     int
	Matched bool
}

// Text returns the part of s covered by the span.
func (s Span) Text(str string) string {
	return str[s.Start:s.End]
}

// Index matches entries against queries. The zero value renders dates in
// the local time zone.
type Index struct {
	loc *time.Location
}

// NewIndex returns an Index that renders dates in loc. A nil loc means
// time.Local.
func NewIndex(loc *time.Location) Index {
	return Index{loc: loc}
}

// Location returns the time zone dates are rendered in.
func (ix Index) Location() *time.Location {
	if ix.loc == nil {
		return time.Local
	}
	return ix.loc
}

// Filter returns the entries whose text or date contains query. An empty
// query returns entries unchanged.
func (ix Index) Filter(entries []ledger.Entry, query string) []ledger.Entry {
	query = strings.TrimSpace(query)
	if query == "" {
		return entries
	}

	needle := normalize(query)
	matched := make([]ledger.Entry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(normalize(e.Text), needle) || ix.matchesDate(e.Timestamp, needle) {
			matched = append(matched, e)
		}
	}

	return matched
}

// Matches reports whether a single entry would pass Filter for query.
func (ix Index) Matches(e ledger.Entry, query string) bool {
	return len(ix.Filter([]ledger.Entry{e}, query)) == 1
}

func (ix Index) matchesDate(ts time.Time, needle string) bool {
	ts = ts.In(ix.Location())
	for _, layout := range DateLayouts {
		if strings.Contains(normalize(ts.Format(layout)), needle) {
			return true
		}
	}
	return false
}

// normalize folds case and narrows full-width forms so "３月" and "3月",
// or "MIA" and "mia", compare equal.
func normalize(s string) string {
	return cases.Fold().String(width.Narrow.String(s))
}

// Filter uses an Index in the local time zone.
func Filter(entries []ledger.Entry, query string) []ledger.Entry {
	return Index{}.Filter(entries, query)
}

// HighlightSpans splits text into alternating unmatched and matched spans.
// Occurrences of query are found with the same folding Filter uses, left to
// right, without overlap. The spans always cover the whole of text.
func HighlightSpans(text, query string) []Span {
	whole := []Span{{Start: 0, End: len(text)}}
	needle := normalize(strings.TrimSpace(query))
	if needle == "" {
		return whole
	}

	folded, starts, ends := normalizeWithOffsets(text)
	var spans []Span
	last := 0

	for i := 0; i < len(folded); {
		if !strings.HasPrefix(folded[i:], needle) {
			i++
			continue
		}

		start, end := starts[i], ends[i+len(needle)-1]
		if start > last {
			spans = append(spans, Span{Start: last, End: start})
		}
		spans = append(spans, Span{Start: start, End: end, Matched: true})
		last = end

		// a match may end inside the expansion of one rune, as "s" in "ß"
		for i < len(folded) && starts[i] < end {
			i++
		}
	}

	if spans == nil {
		return whole
	}
	if last < len(text) {
		spans = append(spans, Span{Start: last, End: len(text)})
	}

	return spans
}

// normalizeWithOffsets normalizes text one rune at a time. Byte i of the
// result came from text[starts[i]:ends[i]].
func normalizeWithOffsets(text string) (string, []int, []int) {
	var b strings.Builder
	starts := make([]int, 0, len(text))
	ends := make([]int, 0, len(text))

	for i := 0; i < len(text); {
		_, size := utf8.DecodeRuneInString(text[i:])
		part := normalize(text[i : i+size])
		b.WriteString(part)
		for range len(part) {
			starts = append(starts, i)
			ends = append(ends, i+size)
		}
		i += size
	}

	return b.String(), starts, ends
}
