package runner

import (
	"context"
	"fmt"
	"sync"

	"digital.vasic.paramcheck/pkg/bank"
)

// parallelResult pairs a result with its original index so
// results can be returned in submission order.
type parallelResult struct {
	index  int
	result *Result
	err    error
}

// runParallel verifies contracts concurrently with a semaphore
// limiting maxConcurrency goroutines. Each verification is
// independent, so the only shared state is the registries,
// which are safe for concurrent reads. Contracts not started
// before ctx is cancelled are returned as skipped, so every
// contract has a result.
func runParallel(
	ctx context.Context,
	r *Runner,
	contracts []*bank.Contract,
	maxConcurrency int,
) ([]*Result, error) {
	if maxConcurrency <= 0 {
		maxConcurrency = 1
	}

	sem := make(chan struct{}, maxConcurrency)
	resultsCh := make(chan parallelResult, len(contracts))

	var wg sync.WaitGroup

	for i, c := range contracts {
		wg.Add(1)
		go func(idx int, c *bank.Contract) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				// Run reports the contract as skipped.
				resultsCh <- parallelResult{
					index:  idx,
					result: r.Run(ctx, c),
					err:    fmt.Errorf("run cancelled: %w", ctx.Err()),
				}
				return
			}

			resultsCh <- parallelResult{
				index:  idx,
				result: r.Run(ctx, c),
			}
		}(i, c)
	}

	go func() {
		wg.Wait()
		close(resultsCh)
	}()

	ordered := make([]*Result, len(contracts))
	var firstErr error

	for pr := range resultsCh {
		if pr.err != nil && firstErr == nil {
			firstErr = pr.err
		}
		ordered[pr.index] = pr.result
	}

	if firstErr == nil && ctx.Err() != nil {
		firstErr = fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return ordered, firstErr
}
