// internal/matcher/match.go
package matcher

import (
	"context"
	"regexp"
)

// RawMatch is one (read, left pattern) hit: the pattern matched and a base
// follows the match.
type RawMatch struct {
	Pattern  string // left pattern source, as in the motif table
	Sequence string // the whole read
	Matched  string // text matched by the pattern
	Next     byte   // base immediately after the match
}

// First returns the first non-overlapping leftmost match of re in read whose end
// lies strictly inside read. Matches are scanned left to right with the scan
// position advanced past each match, so once the first match ends at len(read)
// no later match can end earlier; only the leftmost match needs checking.
func First(re *regexp.Regexp, read string) (RawMatch, bool) {
	loc := re.FindStringIndex(read)
	if loc == nil || loc[1] >= len(read) {
		return RawMatch{}, false
	}
	return RawMatch{
		Pattern:  re.String(),
		Sequence: read,
		Matched:  read[loc[0]:loc[1]],
		Next:     read[loc[1]],
	}, true
}

// cancelEvery is how many reads are scanned between context checks.
const cancelEvery = 4096

// Scan runs one pattern against every read, in read order, keeping at most one
// match per read.
func Scan(ctx context.Context, re *regexp.Regexp, reads []string) ([]RawMatch, error) {
	var out []RawMatch
	for i, r := range reads {
		if i%cancelEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if m, ok := First(re, r); ok {
			out = append(out, m)
		}
	}
	return out, nil
}
