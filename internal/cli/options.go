// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"mutscan/internal/config"
	"mutscan/internal/version"
	"mutscan/internal/writers"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Inputs
	ConfigFile string
	MotifFile  string
	PairsFile  string
	R1, R2     string

	// Output
	OutDir string
	Format string

	// Performance
	Threads int

	// Reporting
	Progress bool
	LogLevel string
	Quiet    bool

	Version bool

	set map[string]bool // flags given explicitly
}

// Usage prints the help text of fs.
func Usage(fs *flag.FlagSet, name string) {
	fmt.Fprintf(fs.Output(),
		`%s: count left/right motif variants in paired FASTQ reads

Version: %s

Usage of %s:
`, name, version.Version, name)
	fs.PrintDefaults()
}

// ParseArgs registers and parses all flags. It does not validate inputs; call
// ApplyConfig then Validate.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.ConfigFile, "config", "", "JSON config file (default ./"+config.DefaultPath+" when present)")
	fs.StringVar(&opt.MotifFile, "motifs", "", "motif table: left,<unused>,right,annotation with header row [*]")
	fs.StringVar(&opt.PairsFile, "pairs", "", "CSV list of FASTQ file pairs (fileA,fileB per row) [*]")
	fs.StringVar(&opt.R1, "r1", "", "first FASTQ file of a single pair [*]")
	fs.StringVar(&opt.R2, "r2", "", "second FASTQ file of a single pair [*]")

	fs.StringVar(&opt.OutDir, "out-dir", ".", "directory receiving <sample>_output folders [.]")
	fs.StringVar(&opt.Format, "format", "csv", "table format: "+strings.Join(writers.Names(), " | ")+" [csv]")

	fs.IntVar(&opt.Threads, "threads", 0, "number of matching workers (0 = all CPUs) [0]")

	fs.BoolVar(&opt.Progress, "progress", false, "show a progress bar while matching [false]")
	fs.StringVar(&opt.LogLevel, "log-level", "info", "log level: debug | info | warn | error [info]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "only log warnings and errors [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if fs.NArg() > 0 {
		return opt, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	opt.set = map[string]bool{}
	fs.Visit(func(f *flag.Flag) { opt.set[f.Name] = true })
	return opt, nil
}

// ApplyConfig fills every option not given on the command line from c.
func (o *Options) ApplyConfig(c *config.Config) {
	if c == nil {
		return
	}
	pick := func(name string, dst *string, v string) {
		if v != "" && !o.set[name] {
			*dst = v
		}
	}
	pick("motifs", &o.MotifFile, c.Motifs)
	if !o.set["r1"] && !o.set["r2"] {
		pick("pairs", &o.PairsFile, c.Pairs)
	}
	pick("out-dir", &o.OutDir, c.OutDir)
	pick("format", &o.Format, c.Format)
	pick("log-level", &o.LogLevel, c.LogLevel)
	if c.Threads != 0 && !o.set["threads"] {
		o.Threads = c.Threads
	}
}

// Validate checks the merged options.
func (o Options) Validate() error {
	usingList := o.PairsFile != ""
	usingInline := o.R1 != "" || o.R2 != ""
	switch {
	case o.MotifFile == "":
		return errors.New("--motifs is required")
	case usingList && usingInline:
		return errors.New("--pairs conflicts with --r1/--r2")
	case usingInline && (o.R1 == "" || o.R2 == ""):
		return errors.New("--r1 and --r2 must be supplied together")
	case !usingList && !usingInline:
		return errors.New("provide --pairs or --r1/--r2")
	}
	if o.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if _, err := writers.Lookup(o.Format); err != nil {
		return fmt.Errorf("invalid --format %q", o.Format)
	}
	return nil
}
