package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed:
		return true
	}

	return false
}

// IsFinal reports whether the status can no longer change.
func (s PaymentStatus) IsFinal() bool {
	return s == PaymentStatusPaid || s == PaymentStatusFailed
}

// CanTransitionTo allows only pending -> paid and pending -> failed.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) error {
	if s != PaymentStatusPending {
		return fmt.Errorf("%w: payment is already %q", ErrAlreadyFinal, s)
	}

	if !next.IsFinal() {
		return fmt.Errorf("%w: %q is not a final payment status", ErrInvalidRequest, next)
	}

	return nil
}

// Payment is a payment record keyed by the gateway correlation id (crc).
type Payment struct {
	ID          string
	Amount      decimal.Decimal
	Status      PaymentStatus
	Email       string
	Description string
	PayerName   string
	UserID      string // Empty for anonymous payers.
	ChildID     string // Optional pupil the payment is made for.
	InvoiceID   string // Filled asynchronously after the payment is paid.
	TPayID      string // Gateway transaction id, filled by the notification.
	TPayAmount  decimal.NullDecimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Notification is the result notification the payment gateway posts to the result url.
type Notification struct {
	MerchantID    string // id
	TransactionID string // tr_id
	Date          string // tr_date
	CRC           string // tr_crc
	Amount        string // tr_amount
	Paid          string // tr_paid
	Description   string // tr_desc
	Status        string // tr_status
	Error         string // tr_error
	Email         string // tr_email
	TestMode      bool   // test_mode
	Checksum      string // md5sum
}

const (
	notificationStatusTrue     = "TRUE"
	notificationStatusPaid     = "PAID"
	notificationErrorSurcharge = "surcharge"
)

// PaymentStatus maps the gateway transaction status to the payment status.
// An underpaid (surcharge) transaction is treated as failed.
func (n Notification) PaymentStatus() PaymentStatus {
	if (n.Status == notificationStatusTrue || n.Status == notificationStatusPaid) && n.Error != notificationErrorSurcharge {
		return PaymentStatusPaid
	}

	return PaymentStatusFailed
}

// PaymentRequest starts a payment session.
type PaymentRequest struct {
	Amount      float64
	Description string
	Email       string
	PayerName   string
	InvoiceID   string // Used as the correlation id when set.
	ChildID     string
	SuccessURL  string
	FailureURL  string
}
