// internal/fastq/loader.go
package fastq

import "context"

// Reads is the deduplicated read set of one file pair.
type Reads []string

// Stats describes one LoadReads call.
type Stats struct {
	Lines      int // lines read across both files
	Candidates int // sequence lines seen
	Unique     int // len(Reads)
}

// LoadReads extracts the sequence lines of a and b and keeps each distinct
// (case-sensitive) sequence once: a's reads in first-seen order, then the reads
// of b that did not already occur in either file.
func LoadReads(ctx context.Context, a, b string) (Reads, Stats, error) {
	var (
		st   Stats
		out  Reads
		seen = make(map[string]struct{}, 1<<16)
	)
	add := func(seq string) error {
		st.Candidates++
		if _, dup := seen[seq]; dup {
			return nil
		}
		seen[seq] = struct{}{}
		out = append(out, seq)
		return nil
	}
	for _, path := range [...]string{a, b} {
		n, err := ForEachSequence(ctx, path, add)
		st.Lines += n
		if err != nil {
			return nil, st, err
		}
	}
	st.Unique = len(out)
	return out, st, nil
}
