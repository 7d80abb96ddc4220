// internal/output/paths.go
package output

import (
	"fmt"
	"os"
	"path/filepath"

	"mutscan/internal/common"
)

// Layout names the output location of one file pair.
type Layout struct {
	Dir  string // <root>/<token>_output
	Stem string // file name stem inside Dir
}

// ForPair derives the layout from the first read file of a pair: the token is
// the base name up to the first '-', the directory is "<token>_output" and the
// stem is that name cut at its first '.'.
//
//	sample7-L001_R1.fastq.gz  ->  sample7_output/sample7_output_{raw,count}.csv
func ForPair(root, fileA string) Layout {
	name := common.CutPrefixToken(filepath.Base(fileA), "-") + "_output"
	return Layout{
		Dir:  filepath.Join(root, name),
		Stem: common.CutPrefixToken(name, "."),
	}
}

// RawPath is the raw match table for the given format extension.
func (l Layout) RawPath(ext string) string {
	return filepath.Join(l.Dir, fmt.Sprintf("%s_raw.%s", l.Stem, ext))
}

// CountPath is the aggregated count table for the given format extension.
func (l Layout) CountPath(ext string) string {
	return filepath.Join(l.Dir, fmt.Sprintf("%s_count.%s", l.Stem, ext))
}

// Ensure creates the output directory if it does not exist.
func (l Layout) Ensure() error {
	if err := os.MkdirAll(l.Dir, 0o755); err != nil {
		return fmt.Errorf("%w: output dir: %w", common.ErrIO, err)
	}
	return nil
}
