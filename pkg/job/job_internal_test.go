package job

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithRecover(t *testing.T) {
	t.Parallel()

	l := slog.New(slog.NewTextHandler(io.Discard, nil))

	err := withRecover(l, func() error { panic("boom") })
	require.EqualError(t, err, "panic: boom")

	want := errors.New("failed")
	require.ErrorIs(t, withRecover(l, func() error { return want }), want)
	require.NoError(t, withRecover(l, func() error { return nil }))
}
