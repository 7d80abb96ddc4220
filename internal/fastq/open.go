// internal/fastq/open.go
package fastq

import (
	"bufio"
	"fmt"
	"io"
	"os"

	gzip "github.com/klauspost/pgzip"

	"mutscan/internal/common"
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open returns a reader over the decompressed contents of path, which must be
// gzip-compressed regardless of its name. "-" reads stdin.
func Open(path string) (io.ReadCloser, error) {
	var (
		src    io.Reader
		closer io.Closer
	)
	if path == "-" {
		src, closer = os.Stdin, io.NopCloser(nil)
	} else {
		fh, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", common.ErrIO, err)
		}
		src, closer = fh, fh
	}

	br := bufio.NewReaderSize(src, 1<<20)
	sig, _ := br.Peek(2)
	if len(sig) < 2 || sig[0] != 0x1f || sig[1] != 0x8b {
		_ = closer.Close()
		return nil, fmt.Errorf("%w: %s: not gzip", common.ErrIO, path)
	}

	gr, err := gzip.NewReader(br)
	if err != nil {
		_ = closer.Close()
		return nil, fmt.Errorf("%w: %s: not a valid gzip stream: %w", common.ErrIO, path, err)
	}
	return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, closer}}, nil
}
