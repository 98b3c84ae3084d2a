package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/musicschool/payments/internal/entity"
	"github.com/musicschool/payments/internal/repository"
	"github.com/musicschool/payments/pkg/postgres"
)

func TestRepository_CreatePayment(t *testing.T) {
	t.Parallel()

	repo, _ := newRepository(t)
	p := newPayment(time.Now())

	got, err := repo.CreatePayment(context.Background(), p)
	require.NoError(t, err)
	requirePayment(t, p, got)

	// A repeated initiation keeps the stored record.
	again := p
	again.Amount = decimal.NewFromInt(999)

	got, err = repo.CreatePayment(context.Background(), again)
	require.NoError(t, err)
	requirePayment(t, p, got)

	_, err = repo.Payment(context.Background(), uuid.Must(uuid.NewV4()).String())
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRepository_FinalizePayment(t *testing.T) {
	t.Parallel()

	repo, _ := newRepository(t)
	ctx := context.Background()

	p, err := repo.CreatePayment(ctx, newPayment(time.Now()))
	require.NoError(t, err)

	amount := decimal.NewNullDecimal(p.Amount)

	err = repo.FinalizePayment(ctx, p.ID, entity.PaymentStatusPaid, "TR-1", amount, time.Now())
	require.NoError(t, err)

	err = repo.FinalizePayment(ctx, p.ID, entity.PaymentStatusFailed, "TR-2", amount, time.Now())
	require.ErrorIs(t, err, entity.ErrAlreadyFinal)

	err = repo.FinalizePayment(ctx, p.ID, entity.PaymentStatusPending, "", decimal.NullDecimal{}, time.Now())
	require.ErrorIs(t, err, entity.ErrAlreadyFinal)

	got, err := repo.Payment(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, entity.PaymentStatusPaid, got.Status)
	require.Equal(t, "TR-1", got.TPayID)
	require.True(t, got.TPayAmount.Decimal.Equal(p.Amount))

	err = repo.FinalizePayment(ctx, "missing", entity.PaymentStatusPaid, "", amount, time.Now())
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRepository_InvoicesWithoutPDF(t *testing.T) {
	t.Parallel()

	repo, _ := newRepository(t)
	ctx := context.Background()
	now := time.Now().Truncate(time.Millisecond)
	created := now.Add(-time.Hour)

	p, err := repo.CreatePayment(ctx, newPayment(created))
	require.NoError(t, err)

	err = repo.FinalizePayment(ctx, p.ID, entity.PaymentStatusPaid, "TR-1", decimal.NewNullDecimal(p.Amount), created)
	require.NoError(t, err)

	inv, err := repo.CreateInvoice(ctx, entity.Invoice{
		ID:          uuid.Must(uuid.NewV4()).String(),
		AmountGross: p.Amount,
		PaymentID:   p.ID,
		CreatedAt:   created,
		UpdatedAt:   created,
	})
	require.NoError(t, err)

	invoices, err := repo.InvoicesWithoutPDF(ctx, now.Add(-30*time.Minute), 1000)
	require.NoError(t, err)
	require.Contains(t, invoiceIDs(invoices), inv.ID)

	invoices, err = repo.InvoicesWithoutPDF(ctx, now.Add(-2*time.Hour), 1000)
	require.NoError(t, err)
	require.NotContains(t, invoiceIDs(invoices), inv.ID)

	require.NoError(t, repo.SetInvoicePDF(ctx, inv.ID, "http://x/f.pdf", created))

	invoices, err = repo.InvoicesWithoutPDF(ctx, now, 1000)
	require.NoError(t, err)
	require.NotContains(t, invoiceIDs(invoices), inv.ID)
}

func TestRepository_CreateInvoice(t *testing.T) {
	t.Parallel()

	repo, _ := newRepository(t)
	ctx := context.Background()
	now := time.Now().Truncate(time.Millisecond)

	p, err := repo.CreatePayment(ctx, newPayment(now))
	require.NoError(t, err)

	inv := entity.Invoice{
		ID:          uuid.Must(uuid.NewV4()).String(),
		AmountGross: p.Amount,
		PaymentID:   p.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err = repo.CreateInvoice(ctx, inv)
	require.ErrorIs(t, err, entity.ErrConflict, "pending payment must not be invoiced")

	err = repo.FinalizePayment(ctx, p.ID, entity.PaymentStatusPaid, "TR-1", decimal.NewNullDecimal(p.Amount), now)
	require.NoError(t, err)

	missing, err := repo.PaidPaymentsWithoutInvoice(ctx, 1000)
	require.NoError(t, err)
	require.Contains(t, paymentIDs(missing), p.ID)

	created, err := repo.CreateInvoice(ctx, inv)
	require.NoError(t, err)
	require.Regexp(t, `^FV/\d+/\d{4}$`, created.Number)

	got, err := repo.Invoice(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, created.Number, got.Number)
	require.Equal(t, p.ID, got.PaymentID)
	require.True(t, got.AmountGross.Equal(p.Amount))
	require.Empty(t, got.PDFURL)

	paid, err := repo.Payment(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, inv.ID, paid.InvoiceID)

	missing, err = repo.PaidPaymentsWithoutInvoice(ctx, 1000)
	require.NoError(t, err)
	require.NotContains(t, paymentIDs(missing), p.ID)

	inv.ID = uuid.Must(uuid.NewV4()).String()

	_, err = repo.CreateInvoice(ctx, inv)
	require.ErrorIs(t, err, entity.ErrConflict)
}

func TestRepository_SetInvoicePDF(t *testing.T) {
	t.Parallel()

	repo, _ := newRepository(t)
	ctx := context.Background()
	now := time.Now().Truncate(time.Millisecond)

	p, err := repo.CreatePayment(ctx, newPayment(now))
	require.NoError(t, err)

	err = repo.FinalizePayment(ctx, p.ID, entity.PaymentStatusPaid, "TR-1", decimal.NewNullDecimal(p.Amount), now)
	require.NoError(t, err)

	inv, err := repo.CreateInvoice(ctx, entity.Invoice{
		ID:          uuid.Must(uuid.NewV4()).String(),
		AmountGross: p.Amount,
		PaymentID:   p.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	require.NoError(t, err)

	require.NoError(t, repo.SetInvoicePDF(ctx, inv.ID, "http://x/f.pdf", now))
	require.NoError(t, repo.SetInvoicePDF(ctx, inv.ID, "http://x/f.pdf", now))
	require.ErrorIs(t, repo.SetInvoicePDF(ctx, inv.ID, "http://x/other.pdf", now), entity.ErrConflict)
	require.ErrorIs(t, repo.SetInvoicePDF(ctx, "missing", "http://x/f.pdf", now), entity.ErrNotFound)

	got, err := repo.Invoice(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, "http://x/f.pdf", got.PDFURL)
}

func TestRepository_DeleteChild(t *testing.T) {
	t.Parallel()

	repo, pool := newRepository(t)
	ctx := context.Background()

	child := uuid.Must(uuid.NewV4()).String()
	sibling := child + "-2"
	user := uuid.Must(uuid.NewV4()).String()
	class := uuid.Must(uuid.NewV4()).String()

	_, err := pool.Exec(ctx, `INSERT INTO children (id, name) VALUES ($1, 'Ola'), ($2, 'Jan')`, child, sibling)
	require.NoError(t, err)

	_, err = pool.Exec(ctx, `INSERT INTO users (id, email, children) VALUES ($1, 'p@example.com', $2)`,
		user, []string{child, sibling})
	require.NoError(t, err)

	_, err = pool.Exec(ctx, `INSERT INTO classes (id, name, students) VALUES ($1, 'Piano', $2)`,
		class, []string{sibling})
	require.NoError(t, err)

	p := newPayment(time.Now())
	p.ChildID = child

	_, err = repo.CreatePayment(ctx, p)
	require.NoError(t, err)

	updated, err := repo.DeleteChild(ctx, child, entity.ChildReferences)
	require.NoError(t, err)
	require.Equal(t, int64(1), updated["users"])
	require.Equal(t, int64(0), updated["classes"])
	require.Equal(t, int64(1), updated["payments"])

	var children []string

	err = pool.QueryRow(ctx, `SELECT children FROM users WHERE id = $1`, user).Scan(&children)
	require.NoError(t, err)
	require.Equal(t, []string{sibling}, children)

	got, err := repo.Payment(ctx, p.ID)
	require.NoError(t, err)
	require.Empty(t, got.ChildID)

	_, err = repo.DeleteChild(ctx, child, entity.ChildReferences)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func newPayment(createdAt time.Time) entity.Payment {
	createdAt = createdAt.Truncate(time.Millisecond)

	return entity.Payment{
		ID:          uuid.Must(uuid.NewV4()).String(),
		Amount:      decimal.New(15000, -2),
		Status:      entity.PaymentStatusPending,
		Email:       "parent@example.com",
		Description: "Piano lessons",
		PayerName:   "Anna Nowak",
		UserID:      uuid.Must(uuid.NewV4()).String(),
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
}

func requirePayment(t *testing.T, want, got entity.Payment) {
	t.Helper()

	require.Equal(t, want.ID, got.ID)
	require.True(t, want.Amount.Equal(got.Amount), "amount %s != %s", want.Amount, got.Amount)
	require.Equal(t, want.Status, got.Status)
	require.Equal(t, want.Email, got.Email)
	require.Equal(t, want.Description, got.Description)
	require.Equal(t, want.PayerName, got.PayerName)
	require.Equal(t, want.UserID, got.UserID)
	require.Equal(t, want.ChildID, got.ChildID)
	require.Empty(t, got.InvoiceID)
	require.False(t, got.TPayAmount.Valid)
	require.True(t, want.CreatedAt.Equal(got.CreatedAt))
}

func paymentIDs(payments []entity.Payment) []string {
	ids := make([]string, 0, len(payments))
	for _, p := range payments {
		ids = append(ids, p.ID)
	}

	return ids
}

func invoiceIDs(invoices []entity.Invoice) []string {
	ids := make([]string, 0, len(invoices))
	for _, inv := range invoices {
		ids = append(ids, inv.ID)
	}

	return ids
}

func newRepository(t *testing.T) (*repository.Repository, *pgxpool.Pool) {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN is not set")
	}

	require.NoError(t, postgres.UpMigrations(dsn))

	pool, err := postgres.Connect(context.Background(), dsn, 10)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return repository.New(pool), pool
}
