// internal/motif/loader.go
package motif

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"mutscan/internal/common"
)

// Column layout of the motif table. Column 1 is carried by the lab sheet but unused.
const (
	colLeft       = 0
	colRight      = 2
	colAnnotation = 3
	minColumns    = 4
)

// Load reads a motif table with a header row. Comma-separated unless the file
// ends in .tsv.
func Load(path string) ([]Entry, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: motif table: %w", common.ErrConfig, err)
	}
	defer func() { _ = fh.Close() }()
	return Parse(fh, path, Delimiter(path))
}

// Delimiter picks the field separator from the file extension.
func Delimiter(path string) rune {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv":
		return '\t'
	default:
		return ','
	}
}

// Parse reads motif entries from r. name is used in error messages only.
func Parse(r io.Reader, name string, comma rune) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	var list []Entry
	header := true
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", common.ErrConfig, name, err)
		}
		line, _ := cr.FieldPos(0)
		if header {
			header = false
			continue
		}
		if len(rec) < minColumns {
			return nil, fmt.Errorf("%w: %s:%d: want at least %d columns, got %d", common.ErrConfig, name, line, minColumns, len(rec))
		}
		// Cells are kept as written; surrounding spaces are part of the pattern.
		e := Entry{Left: rec[colLeft], Right: rec[colRight], Annotation: rec[colAnnotation]}
		if strings.TrimSpace(e.Left) == "" {
			return nil, fmt.Errorf("%w: %s:%d: empty left pattern", common.ErrConfig, name, line)
		}
		list = append(list, e)
	}
	if header {
		return nil, fmt.Errorf("%w: %s: missing header row", common.ErrConfig, name)
	}
	return list, nil
}
