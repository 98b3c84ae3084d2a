package repository

const (
	selectPayment = `SELECT
		id,
		amount,
		status,
		email,
		description,
		payer_name,
		user_id,
		child_id,
		invoice_id,
		tpay_id,
		tpay_amount,
		created_at,
		updated_at
	FROM payments`

	selectInvoice = `SELECT
		id,
		number,
		amount_gross,
		payment_id,
		pdf_url,
		created_at,
		updated_at
	FROM invoices`
)

var paymentColumns = []string{
	"id",
	"amount",
	"status",
	"email",
	"description",
	"payer_name",
	"user_id",
	"child_id",
	"invoice_id",
	"tpay_id",
	"tpay_amount",
	"created_at",
	"updated_at",
}

var invoiceColumns = []string{
	"id",
	"number",
	"amount_gross",
	"payment_id",
	"pdf_url",
	"created_at",
	"updated_at",
}
