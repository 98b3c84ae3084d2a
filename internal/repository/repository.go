package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/musicschool/payments/internal/entity"
)

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

// CreatePayment stores a pending payment. A payment with the same id is left untouched;
// the stored record is returned in both cases.
func (r *Repository) CreatePayment(ctx context.Context, p entity.Payment) (entity.Payment, error) {
	const q = `
	INSERT INTO payments (
		id,
		amount,
		status,
		email,
		description,
		payer_name,
		user_id,
		child_id,
		created_at,
		updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	ON CONFLICT (id) DO NOTHING
	`

	_, err := r.db.Exec(
		ctx,
		q,
		p.ID,
		p.Amount,
		entity.PaymentStatusPending,
		p.Email,
		p.Description,
		zeronull.Text(p.PayerName),
		zeronull.Text(p.UserID),
		zeronull.Text(p.ChildID),
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		return entity.Payment{}, err
	}

	return r.Payment(ctx, p.ID)
}

func (r *Repository) Payment(ctx context.Context, id string) (entity.Payment, error) {
	q := selectPayment + " WHERE id = $1"
	return scanPayment(r.db.QueryRow(ctx, q, id))
}

// FinalizePayment moves a pending payment to a final status.
// It returns entity.ErrAlreadyFinal when the payment is no longer pending.
func (r *Repository) FinalizePayment(
	ctx context.Context,
	id string,
	status entity.PaymentStatus,
	tpayID string,
	tpayAmount decimal.NullDecimal,
	updatedAt time.Time,
) error {
	const q = `
	UPDATE payments
	SET status = $1, tpay_id = $2, tpay_amount = $3, updated_at = $4
	WHERE id = $5 AND status = 'pending'
	`

	err := entity.PaymentStatusPending.CanTransitionTo(status)
	if err != nil {
		return err
	}

	result, err := r.db.Exec(ctx, q, status, zeronull.Text(tpayID), tpayAmount, updatedAt, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		p, err := r.Payment(ctx, id)
		if err != nil {
			return err
		}

		return fmt.Errorf("payment %q is %q: %w", id, p.Status, entity.ErrAlreadyFinal)
	}

	return nil
}

func (r *Repository) PaidPaymentsWithoutInvoice(ctx context.Context, limit uint64) ([]entity.Payment, error) {
	sql, args, err := sq.Select(paymentColumns...).
		From("payments").
		Where(sq.Eq{"status": entity.PaymentStatusPaid, "invoice_id": nil}).
		OrderBy("created_at").
		Limit(limit).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var payments []entity.Payment

	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}

		payments = append(payments, p)
	}

	return payments, rows.Err()
}

// InvoicesWithoutPDF returns invoices that have no document and were last updated before updatedBefore.
func (r *Repository) InvoicesWithoutPDF(ctx context.Context, updatedBefore time.Time, limit uint64) ([]entity.Invoice, error) {
	sql, args, err := sq.Select(invoiceColumns...).
		From("invoices").
		Where(sq.Eq{"pdf_url": nil}).
		Where(sq.Lt{"updated_at": updatedBefore}).
		OrderBy("created_at").
		Limit(limit).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var invoices []entity.Invoice

	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}

		invoices = append(invoices, inv)
	}

	return invoices, rows.Err()
}

// CreateInvoice numbers the invoice and links it to its paid payment in one transaction.
// It returns entity.ErrConflict when the payment is not paid or already has an invoice.
func (r *Repository) CreateInvoice(ctx context.Context, inv entity.Invoice) (entity.Invoice, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("begin: %w", err)
	}

	defer func() { _ = tx.Rollback(ctx) }()

	result, err := tx.Exec(ctx,
		`UPDATE payments SET invoice_id = $1, updated_at = $2
		WHERE id = $3 AND status = 'paid' AND invoice_id IS NULL`,
		inv.ID, inv.CreatedAt, inv.PaymentID,
	)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("link payment: %w", err)
	}

	if result.RowsAffected() == 0 {
		return entity.Invoice{}, fmt.Errorf("%w: payment %q is not paid or already invoiced", entity.ErrConflict, inv.PaymentID)
	}

	var seq int64

	err = tx.QueryRow(ctx, `SELECT nextval('invoice_number_seq')`).Scan(&seq)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("next invoice number: %w", err)
	}

	inv.Number = fmt.Sprintf("%s/%d/%d", entity.InvoiceNumberPrefix, seq, inv.CreatedAt.Year())

	_, err = tx.Exec(ctx, `
	INSERT INTO invoices (
		id,
		seq,
		number,
		amount_gross,
		payment_id,
		pdf_url,
		created_at,
		updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		inv.ID,
		seq,
		inv.Number,
		inv.AmountGross,
		inv.PaymentID,
		zeronull.Text(inv.PDFURL),
		inv.CreatedAt,
		inv.UpdatedAt,
	)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("insert invoice: %w", err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("commit: %w", err)
	}

	return inv, nil
}

func (r *Repository) Invoice(ctx context.Context, id string) (entity.Invoice, error) {
	q := selectInvoice + " WHERE id = $1"
	return scanInvoice(r.db.QueryRow(ctx, q, id))
}

// SetInvoicePDF sets the invoice document url once. Setting the same url again is a no-op,
// a different url returns entity.ErrConflict.
func (r *Repository) SetInvoicePDF(ctx context.Context, id, url string, updatedAt time.Time) error {
	const q = `
	UPDATE invoices SET pdf_url = $1, updated_at = $2
	WHERE id = $3 AND (pdf_url IS NULL OR pdf_url = $1)
	`

	result, err := r.db.Exec(ctx, q, url, updatedAt, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		_, err := r.Invoice(ctx, id)
		if err != nil {
			return err
		}

		return fmt.Errorf("%w: invoice %q already has a document", entity.ErrConflict, id)
	}

	return nil
}

func scanPayment(row pgx.Row) (p entity.Payment, err error) {
	err = row.Scan(
		&p.ID,
		&p.Amount,
		&p.Status,
		&p.Email,
		&p.Description,
		(*zeronull.Text)(&p.PayerName),
		(*zeronull.Text)(&p.UserID),
		(*zeronull.Text)(&p.ChildID),
		(*zeronull.Text)(&p.InvoiceID),
		(*zeronull.Text)(&p.TPayID),
		&p.TPayAmount,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Payment{}, entity.ErrNotFound
		}

		return entity.Payment{}, err
	}

	return p, nil
}

func scanInvoice(row pgx.Row) (inv entity.Invoice, err error) {
	err = row.Scan(
		&inv.ID,
		&inv.Number,
		&inv.AmountGross,
		&inv.PaymentID,
		(*zeronull.Text)(&inv.PDFURL),
		&inv.CreatedAt,
		&inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Invoice{}, entity.ErrNotFound
		}

		return entity.Invoice{}, err
	}

	return inv, nil
}
