package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/musicschool/payments/internal/entity"
	"github.com/musicschool/payments/internal/mocks"
	"github.com/musicschool/payments/internal/reconciler"
)

func newSession(t *testing.T, input string) (*session, *mocks.MockFetcher, *bytes.Buffer) {
	t.Helper()

	fetcher := mocks.NewMockFetcher(gomock.NewController(t))
	out := &bytes.Buffer{}

	return &session{
		fetcher: fetcher,
		in:      strings.NewReader(input),
		out:     out,
		homeURL: "https://school.example.com/",
		opts:    []reconciler.Option{reconciler.WithInterval(time.Millisecond)},
	}, fetcher, out
}

var invoice = entity.Invoice{
	ID:          "i_1",
	Number:      "FV/7/2026",
	AmountGross: decimal.NewFromInt(150),
	PaymentID:   "inv_42",
	PDFURL:      "https://files.example.com/i_1.pdf",
}

func TestSession_Confirmed(t *testing.T) {
	t.Parallel()

	s, fetcher, out := newSession(t, "")

	fetcher.EXPECT().Invoice(gomock.Any(), "i_1").Return(invoice, nil)

	err := s.run(context.Background(), reconciler.Params{InvoiceID: "i_1"})
	require.NoError(t, err)
	require.Equal(t, "Checking payment status...\n"+
		"Payment confirmed.\n"+
		"Payment: inv_42\n"+
		"Invoice: FV/7/2026 (i_1)\n"+
		"Amount: 150.00\n"+
		"Download invoice: https://files.example.com/i_1.pdf\n", out.String())
}

func TestSession_RetryAfterRejection(t *testing.T) {
	t.Parallel()

	s, fetcher, out := newSession(t, "x\nr\n")

	gomock.InOrder(
		fetcher.EXPECT().Payment(gomock.Any(), "inv_42").
			Return(entity.Payment{ID: "inv_42", Status: entity.PaymentStatusFailed}, nil),
		fetcher.EXPECT().Payment(gomock.Any(), "inv_42").
			Return(entity.Payment{ID: "inv_42", Status: entity.PaymentStatusPaid, InvoiceID: "i_1"}, nil),
		fetcher.EXPECT().Invoice(gomock.Any(), "i_1").Return(invoice, nil),
	)

	err := s.run(context.Background(), reconciler.Params{PaymentID: "inv_42"})
	require.NoError(t, err)

	got := out.String()
	require.Contains(t, got, "Payment failed: "+reconciler.ReasonRejected+"\n")
	require.Contains(t, got, "Press r to retry or h to return home\n")
	require.True(t, strings.HasSuffix(got, "Download invoice: https://files.example.com/i_1.pdf\n"), got)
}

func TestSession_ReturnHome(t *testing.T) {
	t.Parallel()

	s, _, out := newSession(t, "h\n")

	err := s.run(context.Background(), reconciler.Params{PaymentID: "inv_42", Failed: true})
	require.NoError(t, err)
	require.Equal(t, "Payment failed: "+reconciler.ReasonNotCompleted+"\n"+
		"[r] retry verification  [h] return home\n"+
		"Returning to https://school.example.com/\n", out.String())
}

func TestSession_InputClosed(t *testing.T) {
	t.Parallel()

	s, _, out := newSession(t, "")

	err := s.run(context.Background(), reconciler.Params{})
	require.NoError(t, err)
	require.Contains(t, out.String(), reconciler.ReasonMissingIdentifier)
}
