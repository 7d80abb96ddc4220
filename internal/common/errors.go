// internal/common/errors.go
package common

import "errors"

// Error kinds. Call sites wrap one of these together with the cause, e.g.
//
//	fmt.Errorf("%w: open %s: %w", common.ErrIO, path, err)
//
// and callers classify with errors.Is.
var (
	// ErrConfig: motif table or file-pair list missing or malformed. Fatal for the run.
	ErrConfig = errors.New("config error")
	// ErrPattern: a left pattern does not compile. Fatal for the run.
	ErrPattern = errors.New("pattern error")
	// ErrIO: a read file cannot be opened or decompressed. Fatal for that pair.
	ErrIO = errors.New("io error")
	// ErrFormat: decompression yielded something that is not text. Fatal for that pair.
	ErrFormat = errors.New("format error")
)

// Fatal reports whether err must abort the whole run rather than one pair.
func Fatal(err error) bool {
	return errors.Is(err, ErrConfig) || errors.Is(err, ErrPattern)
}
