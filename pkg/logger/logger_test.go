package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/musicschool/payments/pkg/logger"
)

//nolint:paralleltest
func TestHandler_ContextAttributes(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	buf := new(bytes.Buffer)

	l, err := logger.NewWithWriter(buf, "info", "json")
	require.NoError(t, err)

	ctx := logger.WithRequestID(context.Background(), "req-1")
	ctx = logger.WithUserID(ctx, "user-1")
	ctx = logger.WithPaymentID(ctx, "anon:1700000000000")

	l.With("job", "test").InfoContext(ctx, "hello")

	var record map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	require.Equal(t, "hello", record["msg"])
	require.Equal(t, "req-1", record["request_id"])
	require.Equal(t, "user-1", record["user_id"])
	require.Equal(t, "anon:1700000000000", record["payment_id"])
	require.Equal(t, "test", record["job"])
}

func TestNew_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := logger.NewWithWriter(new(bytes.Buffer), "loud", "json")
	require.Error(t, err)

	_, err = logger.NewWithWriter(new(bytes.Buffer), "info", "xml")
	require.Error(t, err)
}
