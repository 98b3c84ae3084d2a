package documents_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/musicschool/payments/internal/clients/documents"
	"github.com/musicschool/payments/internal/entity"
	"github.com/musicschool/payments/pkg/config"
)

func newClient(url string) *documents.Client {
	return documents.NewClient(config.Documents{
		URL:           url,
		RetryAttempts: 2,
		RetryWaitMin:  time.Millisecond,
		Timeout:       time.Second,
	})
}

func TestClient_RenderInvoice(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/private/v1/invoices" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		var req documents.RenderInvoiceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if req.InvoiceID != "inv_1" || req.Number != "FV/1/2026" || req.Email != "parent@example.com" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.WriteHeader(http.StatusAccepted)
	}))
	t.Cleanup(srv.Close)

	err := newClient(srv.URL).RenderInvoice(context.Background(),
		entity.Invoice{ID: "inv_1", Number: "FV/1/2026", AmountGross: decimal.NewFromInt(150), PaymentID: "p_1"},
		entity.Payment{ID: "p_1", Email: "parent@example.com", Description: "Piano"},
	)
	require.NoError(t, err)
	require.Equal(t, int32(2), calls.Load())
}

func TestClient_RenderInvoice_NoRetryOnClientError(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	t.Cleanup(srv.Close)

	err := newClient(srv.URL).RenderInvoice(context.Background(), entity.Invoice{ID: "inv_1"}, entity.Payment{ID: "p_1"})
	require.ErrorContains(t, err, "unexpected status code: 422")
	require.Equal(t, int32(1), calls.Load())
}
