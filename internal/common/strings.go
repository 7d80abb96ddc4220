package common

import "strings"

// CutPrefixToken returns s up to (not including) the first sep, or s itself.
func CutPrefixToken(s, sep string) string {
	before, _, _ := strings.Cut(s, sep)
	return before
}
