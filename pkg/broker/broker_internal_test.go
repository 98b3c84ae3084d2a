package broker

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/musicschool/payments/internal/entity"
)

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return w.err
}

func (w *fakeWriter) Close() error {
	return nil
}

func TestProducer_SendPaymentStatusChanged(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{}
	p := &Producer{l: slog.Default(), w: w, paymentStatusChangedTopic: "payment-status-changed"}

	changedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	p.SendPaymentStatusChanged(context.Background(), entity.Payment{
		ID:        "inv_1",
		Status:    entity.PaymentStatusPaid,
		Amount:    decimal.RequireFromString("150.00"),
		Email:     "parent@example.com",
		TPayID:    "TR-1",
		UpdatedAt: changedAt,
	})

	require.Len(t, w.msgs, 1)
	require.Equal(t, "payment-status-changed", w.msgs[0].Topic)
	require.Equal(t, []byte("inv_1"), w.msgs[0].Key)

	var event PaymentStatusChangedEvent

	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &event))
	require.Equal(t, "inv_1", event.PaymentID)
	require.Equal(t, entity.PaymentStatusPaid, event.Status)
	require.Equal(t, "150", event.Amount.String())
	require.True(t, changedAt.Equal(event.ChangedAt))

	// Write errors are logged, not returned.
	w.err = errors.New("broker down")
	p.SendPaymentStatusChanged(context.Background(), entity.Payment{ID: "inv_2"})
	require.Len(t, w.msgs, 2)
}

type fakeReader struct {
	mu   sync.Mutex
	msgs []kafka.Message
}

func (r *fakeReader) ReadMessage(context.Context) (kafka.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.msgs) == 0 {
		return kafka.Message{}, io.EOF
	}

	m := r.msgs[0]
	r.msgs = r.msgs[1:]

	return m, nil
}

func (r *fakeReader) Close() error {
	return nil
}

func TestConsumer_Consume(t *testing.T) {
	t.Parallel()

	r := &fakeReader{msgs: []kafka.Message{
		{Topic: "payments", Value: []byte("1")},
		{Topic: "unknown", Value: []byte("2")},
		{Topic: "payments", Value: []byte("3")},
	}}

	var got []string

	c := newConsumer(slog.Default(), r).
		Handle("payments", func(_ context.Context, m kafka.Message) error {
			got = append(got, string(m.Value))
			return errors.New("handler errors do not stop consuming")
		}).
		Consume(context.Background())

	c.Close()

	require.Equal(t, []string{"1", "3"}, got)
}
