// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"

	"mutscan/internal/cli"
	"mutscan/internal/cmdutil"
	"mutscan/internal/common"
	"mutscan/internal/config"
	"mutscan/internal/motif"
	"mutscan/internal/pairs"
	"mutscan/internal/pipeline"
	"mutscan/internal/version"
	"mutscan/internal/writers"
)

const name = "mutscan"

// Exit codes.
const (
	exitOK       = 0
	exitUsage    = 2 // bad flags, config, motif table or pair list
	exitFailed   = 3 // at least one pair failed, or output could not be written
	exitCanceled = 130
)

// printUsage writes the help text to stdout and returns code, or exitFailed
// if stdout cannot be written.
func printUsage(fs *flag.FlagSet, stdout, stderr io.Writer, code int) int {
	outw := bufio.NewWriter(stdout)
	fs.SetOutput(outw)
	cli.Usage(fs, name)
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return code
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return exitFailed
	}
	return code
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return printUsage(fs, stdout, stderr, exitOK)
		}
		_, _ = fmt.Fprintln(stderr, err)
		return printUsage(fs, stdout, stderr, exitUsage)
	}
	if opts.Version {
		if _, err := fmt.Fprintf(stdout, "%s version %s\n", name, version.Version); err != nil && !writers.IsBrokenPipe(err) {
			return exitFailed
		}
		return exitOK
	}

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return exitUsage
	}
	opts.ApplyConfig(cfg)
	if err := opts.Validate(); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return printUsage(fs, stdout, stderr, exitUsage)
	}

	logger, err := cmdutil.NewLogger(stderr, opts.LogLevel, opts.Quiet)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return exitUsage
	}
	format, err := writers.Lookup(opts.Format)
	if err != nil {
		logger.Error(err)
		return exitUsage
	}

	cat, err := motif.LoadCatalog(opts.MotifFile)
	if err != nil {
		logger.Error("cannot load motif table", "err", err)
		return exitUsage
	}
	logger.Info("motif table loaded", "path", opts.MotifFile, "entries", cat.Len(), "patterns", len(cat.Lefts()))

	var list []pairs.Pair
	if opts.PairsFile != "" {
		list, err = pairs.Load(opts.PairsFile)
		if err != nil {
			logger.Error("cannot load pair list", "err", err)
			return exitUsage
		}
	} else {
		list = []pairs.Pair{{A: opts.R1, B: opts.R2}}
	}

	pcfg := pipeline.Config{
		Threads:     opts.Threads,
		OutDir:      opts.OutDir,
		Format:      format,
		Progress:    opts.Progress,
		ProgressOut: stderr,
		Log:         logger,
	}
	failed, err := cmdutil.RunEach(parent, list,
		func(ctx context.Context, p pairs.Pair) error {
			_, err := pipeline.RunPair(ctx, pcfg, cat, p)
			return err
		},
		func(p pairs.Pair, err error) {
			logger.Error("pair failed", "pair", filepath.Base(p.A), "err", err)
		},
	)
	switch {
	case parent.Err() != nil:
		logger.Warn("interrupted; in-flight pair discarded")
		return exitCanceled
	case err != nil:
		logger.Error(err)
		if common.Fatal(err) {
			return exitUsage
		}
		return exitFailed
	}

	logger.Info("All files processed", "pairs", len(list), "failed", failed)
	if failed > 0 {
		return exitFailed
	}
	return exitOK
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
