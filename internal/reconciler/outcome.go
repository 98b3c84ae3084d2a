package reconciler

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/musicschool/payments/internal/tpay"
)

type Outcome struct {
	State  State
	Reason string // Set for the failed state.
	Err    error  // Cause of a failed state, if any. Not rendered.

	PaymentID     string
	InvoiceID     string
	InvoiceNumber string
	Amount        decimal.Decimal
	PDFURL        string
}

// Render writes the human readable form of the outcome.
func (o Outcome) Render(w io.Writer) error {
	var b strings.Builder

	switch o.State {
	case StateChecking:
		b.WriteString("Checking payment status...\n")

	case StateSuccess:
		b.WriteString("Payment confirmed.\n")

		if o.PaymentID != "" {
			fmt.Fprintf(&b, "Payment: %s\n", o.PaymentID)
		}

		fmt.Fprintf(&b, "Invoice: %s (%s)\n", o.InvoiceNumber, o.InvoiceID)
		fmt.Fprintf(&b, "Amount: %s\n", tpay.FormatDecimal(o.Amount))

		if o.PDFURL != "" {
			fmt.Fprintf(&b, "Download invoice: %s\n", o.PDFURL)
		} else {
			b.WriteString("The invoice is still being generated.\n")
		}

	case StateFailed:
		fmt.Fprintf(&b, "Payment failed: %s\n", o.Reason)
		b.WriteString("[r] retry verification  [h] return home\n")

	default:
		return fmt.Errorf("unknown state %q", o.State)
	}

	_, err := io.WriteString(w, b.String())
	if err != nil {
		return fmt.Errorf("write outcome: %w", err)
	}

	return nil
}
