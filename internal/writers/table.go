// internal/writers/table.go
package writers

import (
	"bufio"
	"io"

	"mutscan/internal/aggregate"
	"mutscan/internal/matcher"
	"mutscan/internal/output"
)

// StartRawWriter spins up a writer goroutine for raw matches. The header is
// written even when no match arrives. Close the returned channel, then read
// the error channel exactly once.
func StartRawWriter(out io.Writer, f Format, bufSize int) (chan<- matcher.RawMatch, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan matcher.RawMatch, bufSize)
	errCh := make(chan error, 1)

	go func() {
		bw := bufio.NewWriterSize(out, 64<<10)
		cw := f.NewWriter(bw)
		err := cw.Write(output.RawHeader)
		for m := range in {
			if err != nil {
				continue // drain so senders never block
			}
			err = cw.Write(output.RawRecord(m))
		}
		if err == nil {
			cw.Flush()
			err = cw.Error()
		}
		if err == nil {
			err = bw.Flush()
		}
		errCh <- err
	}()

	return in, errCh
}

// WriteCounts writes the count table: header, then one line per row in order.
func WriteCounts(out io.Writer, f Format, rows []aggregate.Row) error {
	bw := bufio.NewWriter(out)
	cw := f.NewWriter(bw)
	if err := cw.Write(output.CountHeader); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(output.CountRecord(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return bw.Flush()
}
