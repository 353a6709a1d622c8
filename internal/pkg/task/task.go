// Package task runs background work whose outcome the caller may await or ignore.
package task

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/brainmon-api/internal/errors"
)

// Result is the eventual outcome of a background task
type Result struct {
	done chan struct{}
	err  error
}

// Completed returns a Result that has already finished with err
func Completed(err error) *Result {
	r := &Result{done: make(chan struct{}), err: err}
	close(r.done)
	return r
}

// Done is closed once the task has finished
func (r *Result) Done() <-chan struct{} {
	return r.done
}

// Wait blocks until the task finishes or ctx is done
func (r *Result) Wait(ctx context.Context) error {
	select {
	case <-r.done:
		return r.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Runner starts background tasks and tracks them so shutdown can drain them
type Runner struct {
	wg sync.WaitGroup
}

// NewRunner creates a new runner
func NewRunner() *Runner {
	return &Runner{}
}

// Go runs fn on its own goroutine. The task context is detached from ctx's
// cancellation but keeps its values; a panic in fn becomes an internal error.
func (r *Runner) Go(ctx context.Context, name string, fn func(ctx context.Context) error) *Result {
	res := &Result{done: make(chan struct{})}
	taskCtx := context.WithoutCancel(ctx)

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer close(res.done)
		defer func() {
			if p := recover(); p != nil {
				res.err = errors.Internalf("task %s panicked: %v", name, p)
				slog.Error("Background task panicked", "task", name, "panic", fmt.Sprint(p))
			}
		}()

		res.err = fn(taskCtx)
		if res.err != nil {
			slog.Warn("Background task failed", "task", name, "error", res.err)
		}
	}()

	return res
}

// Wait blocks until every started task has finished or ctx is done
func (r *Runner) Wait(ctx context.Context) error {
	finished := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
