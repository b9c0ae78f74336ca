// Package fanout runs one task per index concurrently and collects the
// results in index order.
package fanout

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

var ErrPartial = errors.New("fan-out branch failed")

// All runs n tasks and waits for every one of them. If any failed, the
// first failure observed is returned wrapped in ErrPartial and the
// results are discarded.
func All[T any](ctx context.Context, n int, task func(ctx context.Context, i int) (T, error)) ([]T, error) {
	results := make([]T, n)
	var g errgroup.Group
	for i := 0; i < n; i++ {
		g.Go(func() error {
			v, err := task(ctx, i)
			if err != nil {
				return err
			}
			results[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPartial, err)
	}
	return results, nil
}

// FailFast runs n tasks and returns as soon as one fails, without waiting
// for the others. The context passed to the remaining tasks is cancelled,
// they keep running in the background until they notice. The error is
// returned as is.
func FailFast[T any](ctx context.Context, n int, task func(ctx context.Context, i int) (T, error)) ([]T, error) {
	results := make([]T, n)
	g, gctx := errgroup.WithContext(ctx)
	failed := make(chan error, 1)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			v, err := task(gctx, i)
			if err != nil {
				select {
				case failed <- err:
				default:
				}
				return err
			}
			results[i] = v
			return nil
		})
	}

	done := make(chan error, 1)
	go func() {
		done <- g.Wait()
	}()

	select {
	case err := <-failed:
		return nil, err
	case err := <-done:
		if err != nil {
			return nil, err
		}
		return results, nil
	}
}
