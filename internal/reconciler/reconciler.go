package reconciler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"sync"
	"time"

	"github.com/musicschool/payments/internal/entity"
	"github.com/musicschool/payments/internal/tpay"
	"github.com/musicschool/payments/pkg/job"
)

const (
	DefaultInterval    = 1500 * time.Millisecond
	DefaultMaxAttempts = 20
)

type State string

const (
	StateChecking State = "checking"
	StateFailed   State = "failed"
	StateSuccess  State = "success"
)

func (s State) IsTerminal() bool {
	return s == StateFailed || s == StateSuccess
}

const (
	ReasonNotCompleted      = "Payment was not completed."
	ReasonMissingIdentifier = "The return address carries no payment or invoice identifier."
	ReasonRejected          = "The payment was rejected by the payment gateway."
	ReasonNotConfirmed      = "The payment is not confirmed yet."
	ReasonTimeout           = "We could not confirm the payment in time. If funds were deducted from your account, " +
		"reload this page in a moment or contact support."
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=reconciler.go -destination=../mocks/reconciler.go -package=mocks
type Fetcher interface {
	// Payment and Invoice return an error wrapping entity.ErrNotFound while the record is not available.
	Payment(ctx context.Context, id string) (entity.Payment, error)
	Invoice(ctx context.Context, id string) (entity.Invoice, error)
}

// Params are the gateway return url query parameters.
type Params struct {
	InvoiceID string
	PaymentID string
	Failed    bool
}

func ParseParams(q url.Values) Params {
	return Params{
		InvoiceID: q.Get(tpay.QueryInvoiceID),
		PaymentID: q.Get(tpay.QueryPaymentID),
		Failed:    q.Get(tpay.QueryStatus) == tpay.StatusFailed,
	}
}

func ParseReturnURL(raw string) (Params, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Params{}, fmt.Errorf("%w: return url: %w", entity.ErrInvalidRequest, err)
	}

	return ParseParams(u.Query()), nil
}

type Option func(r *Reconciler)

// WithInterval sets the delay between attempts. Non-positive values keep the default.
func WithInterval(d time.Duration) Option {
	return func(r *Reconciler) {
		if d > 0 {
			r.interval = d
		}
	}
}

// WithMaxAttempts sets the attempt budget. Non-positive values keep the default.
func WithMaxAttempts(n int) Option {
	return func(r *Reconciler) {
		if n > 0 {
			r.maxAttempts = n
		}
	}
}

// WithOnChange registers fn to be called with every new outcome.
func WithOnChange(fn func(Outcome)) Option {
	return func(r *Reconciler) {
		r.onChange = fn
	}
}

// Reconciler confirms a payment after the payer returns from the gateway.
// It only reads payment records, never writes them.
type Reconciler struct {
	fetcher     Fetcher
	params      Params
	interval    time.Duration
	maxAttempts int
	onChange    func(Outcome)

	mu      sync.Mutex
	outcome Outcome
}

// New evaluates the entry conditions once. The reconciler starts in the checking state
// unless the return url already decides the outcome.
func New(f Fetcher, params Params, opts ...Option) *Reconciler {
	r := &Reconciler{
		fetcher:     f,
		params:      params,
		interval:    DefaultInterval,
		maxAttempts: DefaultMaxAttempts,
	}

	for _, opt := range opts {
		opt(r)
	}

	switch {
	case params.Failed:
		r.outcome = failed(params, ReasonNotCompleted, nil)
	case params.InvoiceID == "" && params.PaymentID == "":
		r.outcome = failed(params, ReasonMissingIdentifier, entity.ErrInvalidRequest)
	default:
		r.outcome = Outcome{
			State:     StateChecking,
			PaymentID: params.PaymentID,
			InvoiceID: params.InvoiceID,
		}
	}

	return r
}

func (r *Reconciler) Outcome() Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.outcome
}

// Start begins polling and returns its handle. Cancelling the task stops polling
// without changing the outcome: a result that arrives during cancellation is dropped.
// When the outcome is already terminal the returned task is done.
func (r *Reconciler) Start(ctx context.Context) *job.Task {
	if r.Outcome().State.IsTerminal() {
		return job.Completed(nil)
	}

	return job.Poll(ctx, r.interval, r.maxAttempts, func(ctx context.Context, attempt int) (bool, error) {
		out, done, err := r.attempt(ctx)

		if ctx.Err() != nil {
			return false, ctx.Err()
		}

		if done {
			r.set(out)
			return true, nil
		}

		if attempt == r.maxAttempts {
			r.set(failed(r.params, ReasonTimeout, entity.ErrReconciliationTimeout))
		}

		return false, err
	})
}

// Run polls until a terminal outcome is reached or ctx is done.
func (r *Reconciler) Run(ctx context.Context) (Outcome, error) {
	err := r.Start(ctx).Wait()
	if err != nil && !errors.Is(err, job.ErrAttemptsExhausted) {
		return r.Outcome(), err
	}

	return r.Outcome(), nil
}

// Retry runs a single verification attempt and resolves to success or failed.
func (r *Reconciler) Retry(ctx context.Context) (Outcome, error) {
	if r.params.InvoiceID == "" && r.params.PaymentID == "" {
		out := failed(r.params, ReasonMissingIdentifier, entity.ErrInvalidRequest)
		r.set(out)

		return out, nil
	}

	r.set(Outcome{
		State:     StateChecking,
		PaymentID: r.params.PaymentID,
		InvoiceID: r.params.InvoiceID,
	})

	out, done, err := r.attempt(ctx)
	if ctx.Err() != nil {
		return r.Outcome(), ctx.Err()
	}

	if !done {
		out = failed(r.params, ReasonNotConfirmed, err)
	}

	r.set(out)

	return out, nil
}

// attempt performs one verification attempt. done is true when the outcome is terminal.
func (r *Reconciler) attempt(ctx context.Context) (Outcome, bool, error) {
	var invoiceErr error

	if r.params.InvoiceID != "" {
		inv, err := r.fetcher.Invoice(ctx, r.params.InvoiceID)
		if err == nil {
			return succeeded(inv, r.params.PaymentID), true, nil
		}

		if r.params.PaymentID == "" {
			return Outcome{}, false, err
		}

		invoiceErr = err
	}

	p, err := r.fetcher.Payment(ctx, r.params.PaymentID)
	if err != nil {
		return Outcome{}, false, errors.Join(invoiceErr, err)
	}

	switch p.Status {
	case entity.PaymentStatusFailed:
		out := failed(r.params, ReasonRejected, nil)
		out.PaymentID = p.ID

		return out, true, nil

	case entity.PaymentStatusPaid:
		if p.InvoiceID == "" {
			// The invoice is generated asynchronously after the payment is confirmed.
			return Outcome{}, false, nil
		}

		inv, err := r.fetcher.Invoice(ctx, p.InvoiceID)
		if err != nil {
			return Outcome{}, false, err
		}

		return succeeded(inv, p.ID), true, nil
	}

	return Outcome{}, false, nil
}

func (r *Reconciler) set(out Outcome) {
	r.mu.Lock()
	r.outcome = out
	r.mu.Unlock()

	slog.Info("payment confirmation", "state", out.State, "reason", out.Reason,
		"payment_id", out.PaymentID, "invoice_id", out.InvoiceID)

	if r.onChange != nil {
		r.onChange(out)
	}
}

func succeeded(inv entity.Invoice, paymentID string) Outcome {
	if inv.PaymentID != "" {
		paymentID = inv.PaymentID
	}

	return Outcome{
		State:         StateSuccess,
		PaymentID:     paymentID,
		InvoiceID:     inv.ID,
		InvoiceNumber: inv.Number,
		Amount:        inv.AmountGross,
		PDFURL:        inv.PDFURL,
	}
}

func failed(params Params, reason string, err error) Outcome {
	return Outcome{
		State:     StateFailed,
		Reason:    reason,
		Err:       err,
		PaymentID: params.PaymentID,
		InvoiceID: params.InvoiceID,
	}
}
