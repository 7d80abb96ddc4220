// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"mutscan/internal/aggregate"
	"mutscan/internal/cmdutil"
	"mutscan/internal/common"
	"mutscan/internal/fastq"
	"mutscan/internal/matcher"
	"mutscan/internal/motif"
	"mutscan/internal/output"
	"mutscan/internal/pairs"
	"mutscan/internal/runutil"
	"mutscan/internal/writers"
)

// Config controls one pair run.
type Config struct {
	Threads     int            // pattern workers (0 = all CPUs)
	OutDir      string         // root under which <token>_output directories are made
	Format      writers.Format // table encoding
	Progress    bool           // draw a progress bar for the matching phase
	ProgressOut io.Writer      // where the bar goes (stderr)
	Log         *log.Logger
}

// Summary describes a finished pair.
type Summary struct {
	Reads     fastq.Stats
	Raw       int // raw matches written
	Rows      int // count rows written
	Counted   int // sum of Count over rows
	RawPath   string
	CountPath string
	Elapsed   time.Duration
}

// RunPair processes one file pair and writes its two tables.
func RunPair(ctx context.Context, cfg Config, cat *motif.Catalog, p pairs.Pair) (Summary, error) {
	var sum Summary
	start := time.Now()
	if cfg.Log == nil {
		cfg.Log = log.New(io.Discard)
	}
	lg := cfg.Log.With("pair", filepath.Base(p.A))

	reads, st, err := fastq.LoadReads(ctx, p.A, p.B)
	if err != nil {
		return sum, err
	}
	sum.Reads = st
	lg.Info("Sequences extracted",
		"reads", humanize.Comma(int64(st.Unique)),
		"duplicates", humanize.Comma(int64(st.Candidates-st.Unique)))

	layout := output.ForPair(cfg.OutDir, p.A)
	if err := matchAndWrite(ctx, cfg, cat, reads, layout, lg, &sum); err != nil {
		return sum, err
	}

	sum.Elapsed = time.Since(start)
	lg.Info("Matching complete",
		"matches", humanize.Comma(int64(sum.Raw)),
		"rows", sum.Rows,
		"counted", humanize.Comma(int64(sum.Counted)))
	lg.Info(layout.Stem+" complete", "dir", layout.Dir, "elapsed", sum.Elapsed.Round(time.Millisecond))
	return sum, nil
}

// matchAndWrite scans reads with every catalog pattern and writes both tables
// under layout. Nothing is created on disk when matching fails.
func matchAndWrite(ctx context.Context, cfg Config, cat *motif.Catalog, reads fastq.Reads, layout output.Layout, lg *log.Logger, sum *Summary) error {
	thr := runutil.EffectiveThreads(cfg.Threads, len(cat.Lefts()))
	lg.Info("Beginning matching", "patterns", len(cat.Lefts()), "threads", thr)
	bar := cmdutil.NewProgress(cfg.ProgressOut, len(cat.Lefts()), cfg.Progress)
	raw, err := Match(ctx, thr, cat, reads, bar.Increment)
	bar.Finish()
	if err != nil {
		return err
	}
	sum.Raw = len(raw)

	// The directory appears only once there is something to put in it.
	if err := layout.Ensure(); err != nil {
		return err
	}
	sum.RawPath = layout.RawPath(cfg.Format.Ext)
	if err := writeFile(sum.RawPath, func(w io.Writer) error {
		return writeRaw(w, cfg.Format, raw, runutil.WriterBuffer(thr))
	}); err != nil {
		return err
	}
	lg.Debug("raw table written", "path", sum.RawPath, "matches", humanize.Comma(int64(sum.Raw)))

	rows := aggregate.Count(raw, cat)
	sum.Rows, sum.Counted = len(rows), aggregate.Total(rows)
	sum.CountPath = layout.CountPath(cfg.Format.Ext)
	return writeFile(sum.CountPath, func(w io.Writer) error {
		return writers.WriteCounts(w, cfg.Format, rows)
	})
}

func writeRaw(w io.Writer, f writers.Format, raw []matcher.RawMatch, bufSize int) error {
	in, done := writers.StartRawWriter(w, f, bufSize)
	for _, m := range raw {
		in <- m
	}
	close(in)
	return <-done
}

// writeFile creates path, hands it to fill, and closes it. Failures are ErrIO.
func writeFile(path string, fill func(io.Writer) error) error {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrIO, err)
	}
	if err := fill(fh); err != nil {
		_ = fh.Close()
		return fmt.Errorf("%w: write %s: %w", common.ErrIO, path, err)
	}
	if err := fh.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", common.ErrIO, path, err)
	}
	return nil
}
