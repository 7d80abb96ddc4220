// internal/fastq/reader.go
package fastq

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"mutscan/internal/common"
)

// LinesPerRecord is the FASTQ record size; the sequence is line 1 (0-based) of each record.
const LinesPerRecord = 4

// ForEachSequence opens path, and calls fn with the trimmed sequence line of every
// record (0-based line index % 4 == 1). It returns the number of lines read.
//
// Cancellation via ctx is honored between lines. Return a non-nil error from fn to
// stop early.
func ForEachSequence(ctx context.Context, path string, fn func(seq string) error) (int, error) {
	rc, err := Open(path)
	if err != nil {
		return 0, err
	}
	defer rc.Close()

	sc := bufio.NewScanner(rc)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	n := 0
	for sc.Scan() {
		select {
		case <-ctx.Done():
			return n, ctx.Err()
		default:
		}
		line := sc.Bytes()
		idx := n
		n++
		if !isText(line) {
			return n, fmt.Errorf("%w: %s:%d: binary data in read file", common.ErrFormat, path, n)
		}
		if idx%LinesPerRecord != 1 {
			continue
		}
		if err := fn(string(bytes.TrimSpace(line))); err != nil {
			return n, err
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return n, fmt.Errorf("%w: %s:%d: line too long", common.ErrFormat, path, n+1)
		}
		return n, fmt.Errorf("%w: %s: %w", common.ErrIO, path, err)
	}
	return n, nil
}

func isText(line []byte) bool {
	return bytes.IndexByte(line, 0) < 0 && utf8.Valid(line)
}
