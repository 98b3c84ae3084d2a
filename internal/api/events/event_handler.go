package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/musicschool/payments/internal/entity"
	"github.com/musicschool/payments/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=event_handler.go -destination=../../mocks/events.go -package=mocks -mock_names Service=MockEventService

type Service interface {
	GenerateInvoice(ctx context.Context, paymentID string) (entity.Invoice, error)
}

type EventHandler struct {
	s Service
}

func NewEventHandler(s Service) *EventHandler {
	return &EventHandler{s: s}
}

type OnPaymentStatusChangedEvent struct {
	PaymentID string               `json:"payment_id"`
	Status    entity.PaymentStatus `json:"status"`
}

// OnPaymentStatusChanged generates the invoice of a paid payment.
func (h *EventHandler) OnPaymentStatusChanged(ctx context.Context, msg kafka.Message) error {
	var event OnPaymentStatusChangedEvent

	err := json.Unmarshal(msg.Value, &event)
	if err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}

	if event.Status != entity.PaymentStatusPaid {
		return nil
	}

	ctx = logger.WithPaymentID(ctx, event.PaymentID)

	_, err = h.s.GenerateInvoice(ctx, event.PaymentID)
	if err != nil {
		return fmt.Errorf("generate invoice: %w", err)
	}

	return nil
}
