package cmdutil

import (
	"context"

	"mutscan/internal/common"
)

// RunEach calls fn for every item in order, one at a time. A failing item is
// reported through onErr and the loop moves on, unless the error is fatal
// (common.Fatal) or ctx is done, in which case RunEach stops and returns it.
// It returns the number of failed items.
func RunEach[T any](
	ctx context.Context,
	items []T,
	fn func(context.Context, T) error,
	onErr func(T, error),
) (int, error) {
	failed := 0
	for _, it := range items {
		if err := ctx.Err(); err != nil {
			return failed, err
		}
		err := fn(ctx, it)
		if err == nil {
			continue
		}
		if ctx.Err() != nil {
			return failed, ctx.Err()
		}
		if common.Fatal(err) {
			return failed, err
		}
		failed++
		if onErr != nil {
			onErr(it, err)
		}
	}
	return failed, nil
}
