package service

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/semaphore"
)

// HashPool bounds how many password hashes run at once. Each job runs on its
// own goroutine and the caller waits for it, so slow hashing only ever
// queues other hashing and never the request-serving goroutines.
type HashPool struct {
	sem *semaphore.Weighted
}

// NewHashPool returns a pool admitting workers concurrent jobs
// (GOMAXPROCS when workers < 1).
func NewHashPool(workers int) *HashPool {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &HashPool{sem: semaphore.NewWeighted(int64(workers))}
}

// Do runs fn on a pool slot and returns its error. If ctx ends first, Do
// returns ctx.Err(); an already started fn still finishes and frees its slot.
func (p *HashPool) Do(ctx context.Context, fn func() error) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		defer p.sem.Release(1)
		defer func() {
			if r := recover(); r != nil {
				done <- fmt.Errorf("hash job panicked: %v", r)
			}
		}()
		done <- fn()
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
