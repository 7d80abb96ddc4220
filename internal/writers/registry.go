// internal/writers/registry.go
package writers

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"mutscan/internal/output"
)

// Format describes one table encoding.
type Format struct {
	Name  string
	Ext   string // file extension without the dot
	Comma rune
}

// NewWriter returns a csv.Writer configured for f.
func (f Format) NewWriter(w io.Writer) *csv.Writer {
	cw := csv.NewWriter(w)
	cw.Comma = f.Comma
	return cw
}

// Formats is the format registry (name → format).
var Formats = map[string]Format{}

// Register adds f to the registry (idempotent last-wins).
func Register(f Format) { Formats[f.Name] = f }

func init() {
	Register(Format{Name: output.FormatCSV, Ext: "csv", Comma: ','})
	Register(Format{Name: output.FormatTSV, Ext: "tsv", Comma: '\t'})
}

// Lookup returns the registered format called name.
func Lookup(name string) (Format, error) {
	f, ok := Formats[name]
	if !ok {
		return Format{}, fmt.Errorf("unknown table format %q (no writer registered)", name)
	}
	return f, nil
}

// Names lists registered formats, sorted.
func Names() []string {
	out := make([]string, 0, len(Formats))
	for n := range Formats {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
