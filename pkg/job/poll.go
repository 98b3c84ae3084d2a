package job

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

var ErrAttemptsExhausted = errors.New("attempts exhausted")

// AttemptFunc performs one attempt. It returns true when polling should stop.
// A returned error is logged and counted as a failed attempt.
type AttemptFunc func(ctx context.Context, attempt int) (bool, error)

// Task is a handle to a scheduled poll. The zero value is not usable.
type Task struct {
	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

// Cancel stops the task and waits until an attempt in flight has returned, so nothing
// the attempt does can happen after Cancel returns. It must not be called from fn.
func (t *Task) Cancel() {
	t.cancel()
	<-t.done
}

func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task finishes and returns nil when an attempt stopped the poll,
// ErrAttemptsExhausted when the budget ran out, or the context error after cancellation.
func (t *Task) Wait() error {
	<-t.done
	return t.err
}

// Completed returns a task that has already finished with err.
func Completed(err error) *Task {
	t := &Task{
		cancel: func() {},
		done:   make(chan struct{}),
		err:    err,
	}

	close(t.done)

	return t
}

// Poll runs fn at most attempts times, the first time immediately and then every interval.
// Attempts never overlap: the next one is scheduled only after the previous returned.
func Poll(ctx context.Context, interval time.Duration, attempts int, fn AttemptFunc) *Task {
	ctx, cancel := context.WithCancel(ctx)

	t := &Task{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(t.done)
		defer cancel()

		t.err = poll(ctx, interval, attempts, fn)
	}()

	return t
}

func poll(ctx context.Context, interval time.Duration, attempts int, fn AttemptFunc) error {
	l := slog.Default().With("task", "poll")

	for attempt := 1; attempt <= attempts; attempt++ {
		err := ctx.Err()
		if err != nil {
			return err
		}

		var done bool

		err = withRecover(l, func() error {
			var err error

			done, err = fn(ctx, attempt)

			return err
		})
		if err != nil {
			l.DebugContext(ctx, "attempt failed", "attempt", attempt, "error", err)
		}

		if done {
			return nil
		}

		if attempt == attempts {
			break
		}

		timer := time.NewTimer(interval)

		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	return fmt.Errorf("%w: %d attempts", ErrAttemptsExhausted, attempts)
}
