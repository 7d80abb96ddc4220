// internal/aggregate/sort.go
package aggregate

import "sort"

// LessRow defines a stable order for count rows: Left, Variant, Right, Annotation.
func LessRow(a, b Row) bool {
	if a.Left != b.Left {
		return a.Left < b.Left
	}
	if a.Variant != b.Variant {
		return a.Variant < b.Variant
	}
	if a.Right != b.Right {
		return a.Right < b.Right
	}
	return a.Annotation < b.Annotation
}

func SortRows(rs []Row) {
	sort.Slice(rs, func(i, j int) bool { return LessRow(rs[i], rs[j]) })
}
