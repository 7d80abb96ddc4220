// internal/runutil/runutil.go
package runutil

import "runtime"

// EffectiveThreads returns the worker count for a pool running tasks units of
// work: threads <= 0 means all CPUs, and there is never more than one worker
// per task (but always at least one).
func EffectiveThreads(threads, tasks int) int {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	if tasks > 0 && threads > tasks {
		threads = tasks
	}
	if threads < 1 {
		threads = 1
	}
	return threads
}

// WriterBuffer sizes the channel in front of a streaming writer.
func WriterBuffer(threads int) int {
	if threads < 1 {
		threads = 1
	}
	return threads * 64
}
