// internal/aggregate/aggregate.go
package aggregate

import (
	"strings"
	"unicode/utf8"

	"mutscan/internal/matcher"
	"mutscan/internal/motif"
)

// Row is one line of the count table.
type Row struct {
	Left       string
	Variant    string
	Right      string
	Annotation string
	Count      int
}

type key struct {
	left, variant, right, annotation string
}

// Filter reports whether a read contains at least one right pattern of the
// catalog as a plain substring.
//
// The test spans the whole catalog, not just the right pattern paired with the
// left match. Published count tables were produced this way; narrowing it to
// the paired pattern needs sign-off from the lab.
type Filter struct {
	rights []string
}

// NewFilter builds a Filter over the distinct right patterns.
func NewFilter(rights []string) *Filter {
	f := &Filter{}
	seen := make(map[string]struct{}, len(rights))
	for _, r := range rights {
		if r == "" {
			// "" is a substring of everything; one empty column qualifies every read.
			f.rights = []string{""}
			return f
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		f.rights = append(f.rights, r)
	}
	return f
}

// Match reports whether seq contains any of the filter's right patterns.
func (f *Filter) Match(seq string) bool {
	for _, r := range f.rights {
		if strings.Contains(seq, r) {
			return true
		}
	}
	return false
}

// Variant is the first character of the right bases, or "" when there are none.
func Variant(right string) string {
	if right == "" {
		return ""
	}
	_, n := utf8.DecodeRuneInString(right)
	return right[:n]
}

// Count joins raw matches against the catalog and counts every
// (left, variant, right, annotation) combination. A raw match whose pattern
// occurs on several catalog rows counts once per row. Rows are sorted by
// (left, variant, right, annotation).
func Count(raw []matcher.RawMatch, cat *motif.Catalog) []Row {
	f := NewFilter(cat.Rights())
	counts := make(map[key]int)
	for _, m := range raw {
		idx := cat.Indices(m.Pattern)
		if len(idx) == 0 || !f.Match(m.Sequence) {
			continue
		}
		for _, i := range idx {
			e := cat.Entry(i)
			counts[key{m.Pattern, Variant(e.Right), e.Right, e.Annotation}]++
		}
	}

	rows := make([]Row, 0, len(counts))
	for k, n := range counts {
		rows = append(rows, Row{Left: k.left, Variant: k.variant, Right: k.right, Annotation: k.annotation, Count: n})
	}
	SortRows(rows)
	return rows
}

// Total sums the counts of rows.
func Total(rows []Row) int {
	n := 0
	for _, r := range rows {
		n += r.Count
	}
	return n
}
