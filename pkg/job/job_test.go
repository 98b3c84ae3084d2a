package job_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/musicschool/payments/pkg/job"
)

func TestService_RunsJobsUntilCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	var runs, disabled atomic.Int32

	s := job.NewService().
		RegisterJob("count", time.Millisecond, func(context.Context) error {
			if runs.Add(1) == 3 {
				cancel()
			}

			return nil
		}).
		TryRegisterJob(false, "disabled", time.Millisecond, func(context.Context) error {
			disabled.Add(1)
			return nil
		}).
		Start(ctx)

	s.Stop()

	require.GreaterOrEqual(t, runs.Load(), int32(3))
	require.Zero(t, disabled.Load())
}
