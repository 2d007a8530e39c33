// Package workerpool runs bounded concurrent work over a slice.
package workerpool

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// Process runs process for every item on at most workerCount goroutines. The
// first failure cancels the context seen by the remaining calls and is returned.
func Process[T any](ctx context.Context, workerCount int, items []T, process func(context.Context, T) error) error {
	errs := run(ctx, workerCount, items, process, true)
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return ctx.Err()
}

// ProcessAll runs process for every item on at most workerCount goroutines and
// keeps going past failures. The failures come back joined in item order.
func ProcessAll[T any](ctx context.Context, workerCount int, items []T, process func(context.Context, T) error) error {
	if err := errors.Join(run(ctx, workerCount, items, process, false)...); err != nil {
		return err
	}
	return ctx.Err()
}

func run[T any](ctx context.Context, workerCount int, items []T, process func(context.Context, T) error, stopOnError bool) []error {
	if len(items) == 0 {
		return nil
	}
	workerCount = min(max(workerCount, 1), len(items))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errs := make([]error, len(items))
	var (
		next atomic.Int64
		wg   sync.WaitGroup
	)
	for range workerCount {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ctx.Err() == nil {
				i := int(next.Add(1) - 1)
				if i >= len(items) {
					return
				}
				if err := process(ctx, items[i]); err != nil {
					errs[i] = err
					if stopOnError {
						cancel()
						return
					}
				}
			}
		}()
	}
	wg.Wait()
	return errs
}
