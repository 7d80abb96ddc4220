// internal/pairs/loader.go
package pairs

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"mutscan/internal/common"
)

// Pair is one paired-end sample: the two read files processed together.
type Pair struct {
	A, B string
}

// Load reads a CSV list of file pairs. Each row holds fileA,fileB; further
// columns are ignored. There is no header row.
func Load(path string) ([]Pair, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: pair list: %w", common.ErrConfig, err)
	}
	defer func() { _ = fh.Close() }()
	return Parse(fh, path)
}

// Parse reads pairs from r. name is used in error messages only.
func Parse(r io.Reader, name string) ([]Pair, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var list []Pair
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", common.ErrConfig, name, err)
		}
		line, _ := cr.FieldPos(0)
		if len(rec) < 2 {
			return nil, fmt.Errorf("%w: %s:%d: want fileA,fileB", common.ErrConfig, name, line)
		}
		p := Pair{A: strings.TrimSpace(rec[0]), B: strings.TrimSpace(rec[1])}
		if p.A == "" || p.B == "" {
			return nil, fmt.Errorf("%w: %s:%d: empty file name", common.ErrConfig, name, line)
		}
		list = append(list, p)
	}
	return list, nil
}
