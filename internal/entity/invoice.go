package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

const InvoiceNumberPrefix = "FV"

// Invoice is immutable once created, except PDFURL which is set once after rendering.
type Invoice struct {
	ID          string
	Number      string // Filled by CreateInvoice, e.g. FV/12/2026.
	AmountGross decimal.Decimal
	PaymentID   string
	PDFURL      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
