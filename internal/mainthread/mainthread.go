// Package mainthread funnels work onto a single goroutine. AppKit objects
// must only be touched from the main thread, so the goroutine calling Run
// should be the one locked to it in package main's init.
package mainthread

import (
	"context"

	"gitlab.com/tozd/go/errors"
)

// ErrStopped is returned by Do once Run has returned.
var ErrStopped = errors.Base("mainthread: runner stopped")

type call struct {
	fn   func()
	done chan error
}

// Runner executes functions on the goroutine running Run.
type Runner struct {
	calls   chan call
	stopped chan struct{}
}

// New returns a Runner. Nothing executes until Run is called.
func New() *Runner {
	return &Runner{
		calls:   make(chan call),
		stopped: make(chan struct{}),
	}
}

// Run executes queued functions until ctx is done. It must be called once.
func (r *Runner) Run(ctx context.Context) error {
	defer close(r.stopped)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case c := <-r.calls:
			c.done <- invoke(c.fn)
		}
	}
}

func invoke(fn func()) (err error) {
	defer func() {
		if p := recover(); p != nil {
			if e, ok := p.(error); ok {
				err = errors.WithMessage(e, "mainthread: panic")
				return
			}
			err = errors.Errorf("mainthread: panic: %v", p)
		}
	}()
	fn()
	return nil
}

// Do runs fn on the Run goroutine and waits for it. A panic in fn is
// returned as an error. If ctx ends before fn starts, fn is not run.
func (r *Runner) Do(ctx context.Context, fn func()) error {
	c := call{fn: fn, done: make(chan error, 1)}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-r.stopped:
		return errors.WithStack(ErrStopped)
	case r.calls <- c:
	}
	return <-c.done
}
