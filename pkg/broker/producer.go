package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/musicschool/payments/internal/entity"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Producer struct {
	l                         *slog.Logger
	w                         messageWriter
	paymentStatusChangedTopic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		Async:                  true,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:                         l,
		w:                         w,
		paymentStatusChangedTopic: topic,
	}
}

type PaymentStatusChangedEvent struct {
	PaymentID string               `json:"payment_id"`
	Status    entity.PaymentStatus `json:"status"`
	Amount    decimal.Decimal      `json:"amount"`
	Email     string               `json:"email,omitempty"`
	TPayID    string               `json:"tpay_id,omitempty"`
	ChangedAt time.Time            `json:"changed_at"`
}

// SendPaymentStatusChanged publishes the new payment status keyed by payment id,
// so events of one payment stay ordered within a partition.
func (p *Producer) SendPaymentStatusChanged(ctx context.Context, payment entity.Payment) {
	event := PaymentStatusChangedEvent{
		PaymentID: payment.ID,
		Status:    payment.Status,
		Amount:    payment.Amount,
		Email:     payment.Email,
		TPayID:    payment.TPayID,
		ChangedAt: payment.UpdatedAt,
	}

	b, err := json.Marshal(event)
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payment.ID),
		Value: b,
		Topic: p.paymentStatusChangedTopic,
	})
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}
