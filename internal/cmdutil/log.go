// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// NewLogger returns the leveled stderr logger shared by every command.
// level is one of debug, info, warn, error ("" means info); quiet raises the
// floor to warn so progress lines are suppressed.
func NewLogger(w io.Writer, level string, quiet bool) (*log.Logger, error) {
	lv := log.InfoLevel
	if s := strings.TrimSpace(level); s != "" {
		parsed, err := log.ParseLevel(strings.ToLower(s))
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q", level)
		}
		lv = parsed
	}
	if quiet && lv < log.WarnLevel {
		lv = log.WarnLevel
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "mutscan",
	})
	logger.SetLevel(lv)
	return logger, nil
}
