// internal/cmdutil/progress.go
package cmdutil

import (
	"io"

	"github.com/cheggaaa/pb/v3"
)

// Progress is ticked once per finished unit of work. Increment must be safe
// for concurrent use.
type Progress interface {
	Increment()
	Finish()
}

type noProgress struct{}

func (noProgress) Increment() {}
func (noProgress) Finish()    {}

type barProgress struct{ bar *pb.ProgressBar }

func (p barProgress) Increment() { p.bar.Increment() }
func (p barProgress) Finish()    { p.bar.Finish() }

// NewProgress returns a progress bar on w, or a no-op when disabled.
func NewProgress(w io.Writer, total int, enabled bool) Progress {
	if !enabled || total <= 0 {
		return noProgress{}
	}
	bar := pb.Full.New(total)
	bar.SetWriter(w)
	return barProgress{bar: bar.Start()}
}
