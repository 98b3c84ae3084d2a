package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/musicschool/payments/internal/entity"
	"github.com/musicschool/payments/internal/reconciler"
	"github.com/musicschool/payments/internal/tpay"
	"github.com/musicschool/payments/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type Repository interface {
	CreatePayment(ctx context.Context, p entity.Payment) (entity.Payment, error)
	Payment(ctx context.Context, id string) (entity.Payment, error)
	FinalizePayment(
		ctx context.Context,
		id string,
		status entity.PaymentStatus,
		tpayID string,
		tpayAmount decimal.NullDecimal,
		updatedAt time.Time,
	) error
	PaidPaymentsWithoutInvoice(ctx context.Context, limit uint64) ([]entity.Payment, error)
	InvoicesWithoutPDF(ctx context.Context, updatedBefore time.Time, limit uint64) ([]entity.Invoice, error)
	CreateInvoice(ctx context.Context, inv entity.Invoice) (entity.Invoice, error)
	Invoice(ctx context.Context, id string) (entity.Invoice, error)
	SetInvoicePDF(ctx context.Context, id, url string, updatedAt time.Time) error
	DeleteChild(ctx context.Context, id string, refs []entity.Reference) (map[string]int64, error)
}

type Gateway interface {
	Initiate(req tpay.InitRequest) (tpay.Session, error)
	VerifyNotification(n entity.Notification) error
}

type Producer interface {
	SendPaymentStatusChanged(ctx context.Context, p entity.Payment)
}

type DocumentsService interface {
	RenderInvoice(ctx context.Context, inv entity.Invoice, p entity.Payment) error
}

type Mailer interface {
	SendPaymentConfirmation(ctx context.Context, p entity.Payment, inv entity.Invoice) error
}

type Service struct {
	repo      Repository
	gateway   Gateway
	producer  Producer
	documents DocumentsService
	mailer    Mailer
}

func New(repo Repository, gateway Gateway, producer Producer, documents DocumentsService, mailer Mailer) *Service {
	return &Service{
		repo:      repo,
		gateway:   gateway,
		producer:  producer,
		documents: documents,
		mailer:    mailer,
	}
}

// InitiatePayment stores a pending payment and returns the signed gateway form.
// Repeating the initiation for the same invoice returns a new form for the same pending payment.
func (s *Service) InitiatePayment(ctx context.Context, req entity.PaymentRequest) (tpay.Session, error) {
	userID := entity.PayerIDFromCtx(ctx)

	session, err := s.gateway.Initiate(tpay.InitRequest{
		Amount:        req.Amount,
		Description:   req.Description,
		Email:         req.Email,
		PayerName:     req.PayerName,
		CorrelationID: req.InvoiceID,
		UserID:        userID,
		SuccessURL:    req.SuccessURL,
		FailureURL:    req.FailureURL,
	})
	if err != nil {
		return tpay.Session{}, fmt.Errorf("initiate gateway session: %w", err)
	}

	amount, err := tpay.ParseAmount(session.Amount)
	if err != nil {
		return tpay.Session{}, err
	}

	now := time.Now()

	p, err := s.repo.CreatePayment(ctx, entity.Payment{
		ID:          session.CorrelationID,
		Amount:      amount,
		Status:      entity.PaymentStatusPending,
		Email:       req.Email,
		Description: req.Description,
		PayerName:   req.PayerName,
		UserID:      userID,
		ChildID:     req.ChildID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return tpay.Session{}, fmt.Errorf("create payment %q: %w", session.CorrelationID, err)
	}

	switch {
	case p.Status == entity.PaymentStatusPaid:
		return tpay.Session{}, fmt.Errorf("payment %q: %w", p.ID, entity.ErrAlreadyPaid)
	case p.Status != entity.PaymentStatusPending:
		return tpay.Session{}, fmt.Errorf("payment %q is %q: %w", p.ID, p.Status, entity.ErrAlreadyFinal)
	case !p.Amount.Equal(amount):
		return tpay.Session{}, fmt.Errorf("%w: payment %q was started for %s, not %s",
			entity.ErrConflict, p.ID, tpay.FormatDecimal(p.Amount), session.Amount)
	}

	ctx = logger.WithPaymentID(ctx, p.ID)

	slog.InfoContext(ctx, "payment initiated", "amount", session.Amount)

	return session, nil
}

// HandleNotification applies a gateway result notification to its payment.
// Notifications for payments that are already final are acknowledged without changes,
// except a paid notification for a failed payment, which returns entity.ErrConflict.
func (s *Service) HandleNotification(ctx context.Context, n entity.Notification) error {
	err := s.gateway.VerifyNotification(n)
	if err != nil {
		return fmt.Errorf("verify notification: %w", err)
	}

	ctx = logger.WithPaymentID(ctx, n.CRC)

	p, err := s.repo.Payment(ctx, n.CRC)
	if err != nil {
		return fmt.Errorf("get payment %q: %w", n.CRC, err)
	}

	status := n.PaymentStatus()

	if p.Status == entity.PaymentStatusFailed && status == entity.PaymentStatusPaid {
		return fmt.Errorf("%w: paid notification %q for failed payment %q", entity.ErrConflict, n.TransactionID, p.ID)
	}

	if p.Status.IsFinal() {
		slog.WarnContext(ctx, "notification for final payment ignored",
			"status", p.Status, "notified_status", status, "tr_id", n.TransactionID)

		return nil
	}

	var tpayAmount decimal.NullDecimal

	if n.Amount != "" {
		amount, err := tpay.ParseAmount(n.Amount)
		if err != nil {
			return fmt.Errorf("%w: %w", entity.ErrInvalidRequest, err)
		}

		if status == entity.PaymentStatusPaid && !amount.Equal(p.Amount) {
			return fmt.Errorf("%w: payment %q amount is %s, notification amount is %s",
				entity.ErrAmountMismatch, p.ID, tpay.FormatDecimal(p.Amount), n.Amount)
		}

		tpayAmount = decimal.NewNullDecimal(amount)
	}

	now := time.Now()

	err = s.repo.FinalizePayment(ctx, p.ID, status, n.TransactionID, tpayAmount, now)
	if err != nil {
		if errors.Is(err, entity.ErrAlreadyFinal) {
			slog.WarnContext(ctx, "payment finalized concurrently", "error", err)
			return nil
		}

		return fmt.Errorf("finalize payment %q as %q: %w", p.ID, status, err)
	}

	p.Status = status
	p.TPayID = n.TransactionID
	p.TPayAmount = tpayAmount
	p.UpdatedAt = now

	slog.InfoContext(ctx, "payment finalized", "status", status, "tr_id", n.TransactionID, "test_mode", n.TestMode)

	s.producer.SendPaymentStatusChanged(ctx, p)

	return nil
}

func (s *Service) Payment(ctx context.Context, id string) (entity.Payment, error) {
	p, err := s.repo.Payment(ctx, id)
	if err != nil {
		return entity.Payment{}, fmt.Errorf("get payment %q: %w", id, err)
	}

	return p, nil
}

func (s *Service) Invoice(ctx context.Context, id string) (entity.Invoice, error) {
	inv, err := s.repo.Invoice(ctx, id)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("get invoice %q: %w", id, err)
	}

	return inv, nil
}

// GenerateInvoice creates the invoice of a paid payment and requests its document.
// A payment that already has an invoice returns it; its document is requested again
// while the invoice has none.
func (s *Service) GenerateInvoice(ctx context.Context, paymentID string) (entity.Invoice, error) {
	ctx = logger.WithPaymentID(ctx, paymentID)

	p, err := s.repo.Payment(ctx, paymentID)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("get payment %q: %w", paymentID, err)
	}

	if p.InvoiceID != "" {
		inv, err := s.Invoice(ctx, p.InvoiceID)
		if err != nil {
			return entity.Invoice{}, err
		}

		if inv.PDFURL != "" {
			return inv, nil
		}

		return inv, s.renderInvoice(ctx, inv, p)
	}

	if p.Status != entity.PaymentStatusPaid {
		return entity.Invoice{}, fmt.Errorf("%w: payment %q is %q", entity.ErrConflict, p.ID, p.Status)
	}

	now := time.Now()

	inv, err := s.repo.CreateInvoice(ctx, entity.Invoice{
		ID:          uuid.Must(uuid.NewV4()).String(),
		AmountGross: p.Amount,
		PaymentID:   p.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("create invoice: %w", err)
	}

	slog.InfoContext(ctx, "invoice created", "invoice_id", inv.ID, "number", inv.Number)

	return inv, s.renderInvoice(ctx, inv, p)
}

func (s *Service) renderInvoice(ctx context.Context, inv entity.Invoice, p entity.Payment) error {
	err := s.documents.RenderInvoice(ctx, inv, p)
	if err != nil {
		return fmt.Errorf("render invoice %q: %w", inv.ID, err)
	}

	return nil
}

// GenerateMissingInvoices invoices paid payments whose status event was lost and
// requests the document again for invoices still without one after renderTimeout.
func (s *Service) GenerateMissingInvoices(ctx context.Context, renderTimeout time.Duration) error {
	const batchSize = 100

	payments, err := s.repo.PaidPaymentsWithoutInvoice(ctx, batchSize)
	if err != nil {
		return fmt.Errorf("get paid payments without invoice: %w", err)
	}

	var errs []error

	for _, p := range payments {
		_, err = s.GenerateInvoice(ctx, p.ID)
		if err != nil {
			errs = append(errs, err)
		}
	}

	invoices, err := s.repo.InvoicesWithoutPDF(ctx, time.Now().Add(-renderTimeout), batchSize)
	if err != nil {
		return errors.Join(append(errs, fmt.Errorf("get invoices without document: %w", err))...)
	}

	for _, inv := range invoices {
		_, err = s.GenerateInvoice(ctx, inv.PaymentID)
		if err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// SaveInvoicePDF stores the rendered invoice document and mails it to the payer.
func (s *Service) SaveInvoicePDF(ctx context.Context, invoiceID, url string) error {
	err := s.repo.SetInvoicePDF(ctx, invoiceID, url, time.Now())
	if err != nil {
		return fmt.Errorf("set invoice %q document: %w", invoiceID, err)
	}

	inv, err := s.repo.Invoice(ctx, invoiceID)
	if err != nil {
		return fmt.Errorf("get invoice %q: %w", invoiceID, err)
	}

	p, err := s.repo.Payment(ctx, inv.PaymentID)
	if err != nil {
		return fmt.Errorf("get payment %q: %w", inv.PaymentID, err)
	}

	err = s.mailer.SendPaymentConfirmation(ctx, p, inv)
	if err != nil {
		return fmt.Errorf("send payment confirmation: %w", err)
	}

	return nil
}

// DeleteChild removes a child and every reference to it. Only admins may delete children.
func (s *Service) DeleteChild(ctx context.Context, childID string) (map[string]int64, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if !user.IsAdmin() {
		return nil, fmt.Errorf("%w: user %s is not admin", entity.ErrForbidden, user.ID)
	}

	updated, err := s.repo.DeleteChild(ctx, childID, entity.ChildReferences)
	if err != nil {
		return nil, fmt.Errorf("delete child %q: %w", childID, err)
	}

	slog.InfoContext(ctx, "child deleted", "child_id", childID, "updated", updated)

	return updated, nil
}

// VerifyConfirmation runs a single confirmation attempt for a gateway return url.
func (s *Service) VerifyConfirmation(ctx context.Context, params reconciler.Params) (reconciler.Outcome, error) {
	r := reconciler.New(s, params)

	if r.Outcome().State.IsTerminal() {
		return r.Outcome(), nil
	}

	return r.Retry(ctx)
}
