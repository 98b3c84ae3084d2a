package transport_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/musicschool/payments/pkg/logger"
	"github.com/musicschool/payments/pkg/transport"
)

//nolint:paralleltest
func TestRoundTripper_RoundTrip(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	buf := new(bytes.Buffer)

	slog.SetDefault(slog.New(slog.NewJSONHandler(buf, nil)))

	var gotRequestID string

	mux := http.NewServeMux()
	mux.HandleFunc("/payments/p_1", func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get("X-Request-Id")
		_, _ = fmt.Fprintf(w, `{"id": "p_1"}`)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := &http.Client{
		Timeout:   time.Second * 10,
		Transport: transport.NewRoundTripper(nil),
	}

	ctx := logger.WithRequestID(context.Background(), "req-42")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/payments/p_1", strings.NewReader(""))
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, "req-42", gotRequestID)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var outgoing, incoming map[string]any

	require.NoError(t, json.Unmarshal([]byte(lines[0]), &outgoing))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &incoming))

	require.Equal(t, "outgoing request", outgoing["msg"])
	require.Equal(t, "GET "+server.URL+"/payments/p_1", outgoing["request"])
	require.Equal(t, "incoming response", incoming["msg"])
	require.Equal(t, float64(http.StatusOK), incoming["status"])
}
