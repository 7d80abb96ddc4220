// internal/output/rows.go
package output

import (
	"strconv"

	"mutscan/internal/aggregate"
	"mutscan/internal/matcher"
)

// RawRecord returns the raw-table columns of m.
func RawRecord(m matcher.RawMatch) []string {
	return []string{m.Pattern, m.Sequence}
}

// CountRecord returns the count-table columns of r.
func CountRecord(r aggregate.Row) []string {
	return []string{r.Left, r.Variant, r.Right, r.Annotation, strconv.Itoa(r.Count)}
}
