package job_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/musicschool/payments/pkg/job"
)

func TestPoll_StopsWhenDone(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	task := job.Poll(context.Background(), time.Millisecond, 10, func(_ context.Context, attempt int) (bool, error) {
		calls.Add(1)
		return attempt == 3, nil
	})

	require.NoError(t, task.Wait())
	require.Equal(t, int32(3), calls.Load())
}

func TestPoll_ErrorsCountAsAttempts(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	task := job.Poll(context.Background(), time.Millisecond, 5, func(_ context.Context, _ int) (bool, error) {
		calls.Add(1)
		return false, errors.New("network down")
	})

	err := task.Wait()
	require.ErrorIs(t, err, job.ErrAttemptsExhausted)
	require.Equal(t, int32(5), calls.Load())
}

func TestPoll_PanicCountsAsAttempt(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	task := job.Poll(context.Background(), time.Millisecond, 3, func(_ context.Context, attempt int) (bool, error) {
		calls.Add(1)

		if attempt == 1 {
			panic("boom")
		}

		return true, nil
	})

	require.NoError(t, task.Wait())
	require.Equal(t, int32(2), calls.Load())
}

func TestPoll_Cancel(t *testing.T) {
	t.Parallel()

	var (
		calls    atomic.Int32
		returned atomic.Bool
	)

	reached := make(chan struct{})

	task := job.Poll(context.Background(), time.Millisecond, 20, func(ctx context.Context, attempt int) (bool, error) {
		calls.Add(1)

		if attempt == 2 {
			close(reached)
			<-ctx.Done()
			time.Sleep(10 * time.Millisecond)
			returned.Store(true)
		}

		return false, nil
	})

	<-reached
	task.Cancel()

	require.True(t, returned.Load(), "Cancel returned before the attempt in flight")

	err := task.Wait()
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, int32(2), calls.Load())

	select {
	case <-task.Done():
	default:
		t.Fatal("task is not done after Cancel")
	}
}

func TestPoll_ParentContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32

	task := job.Poll(ctx, time.Millisecond, 20, func(_ context.Context, _ int) (bool, error) {
		calls.Add(1)
		return false, nil
	})

	require.ErrorIs(t, task.Wait(), context.Canceled)
	require.Zero(t, calls.Load())
}

func TestCompleted(t *testing.T) {
	t.Parallel()

	task := job.Completed(nil)
	task.Cancel()
	require.NoError(t, task.Wait())
}
