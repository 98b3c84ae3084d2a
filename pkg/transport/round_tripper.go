package transport

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/musicschool/payments/pkg/logger"
)

// RoundTripper logs outgoing requests and forwards the request id of the incoming request.
type RoundTripper struct {
	Transport http.RoundTripper
}

func NewRoundTripper(transport http.RoundTripper) *RoundTripper {
	if transport == nil {
		transport = http.DefaultTransport
	}

	return &RoundTripper{Transport: transport}
}

func (rt *RoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()

	reqID := logger.RequestIDFromCtx(ctx)
	if reqID != "" {
		r.Header.Set("X-Request-Id", reqID)
	}

	slog.InfoContext(ctx, "outgoing request", "request", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()))

	start := time.Now()

	resp, err := rt.Transport.RoundTrip(r)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}

	slog.InfoContext(ctx, "incoming response",
		"response", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()),
		"status", resp.StatusCode,
		"duration", time.Since(start).Round(time.Millisecond).String(),
	)

	return resp, nil
}
