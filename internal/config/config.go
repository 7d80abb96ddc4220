package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"mutscan/internal/common"
)

// Config mirrors the command-line flags that are worth pinning per lab setup.
// Flags given on the command line take precedence.
type Config struct {
	Motifs   string `json:"motifs"`
	Pairs    string `json:"pairs"`
	OutDir   string `json:"out_dir"`
	Format   string `json:"format"`
	Threads  int    `json:"threads"`
	LogLevel string `json:"log_level"`
}

// DefaultPath is read when no --config is given. Its absence is not an error.
const DefaultPath = "mutscan.json"

// Load reads a JSON config. With path == "" it looks for DefaultPath and
// returns an empty Config if that is missing; an explicit path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("%w: %w", common.ErrConfig, err)
	}
	defer f.Close()

	var c Config
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", common.ErrConfig, path, err)
	}
	return &c, nil
}
