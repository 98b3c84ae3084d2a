package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/musicschool/payments/internal/entity"
	"github.com/musicschool/payments/pkg/transport"
)

// Client reads payment records and invoices from the payment service read API.
type Client struct {
	baseURL  string
	http     *http.Client
	validate *validator.Validate
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: transport.NewRoundTripper(http.DefaultTransport),
		},
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

type PaymentResponse struct {
	ID         string           `json:"id"`
	Status     string           `json:"status" validate:"required,oneof=pending paid failed"`
	InvoiceID  string           `json:"invoiceId,omitempty"`
	TPayID     string           `json:"tpayId,omitempty"`
	TPayAmount *decimal.Decimal `json:"tpayAmount,omitempty"`
}

type InvoiceResponse struct {
	ID          string           `json:"id" validate:"required"`
	Number      string           `json:"number" validate:"required"`
	AmountGross *decimal.Decimal `json:"amountGross" validate:"required"`
	PaymentID   string           `json:"paymentId,omitempty"`
	PDFURL      string           `json:"pdfUrl,omitempty" validate:"omitempty,url"`
}

func (c *Client) Payment(ctx context.Context, id string) (entity.Payment, error) {
	var data PaymentResponse

	err := c.get(ctx, "/payments/"+url.PathEscape(id), &data)
	if err != nil {
		return entity.Payment{}, fmt.Errorf("get payment %q: %w", id, err)
	}

	p := entity.Payment{
		ID:        data.ID,
		Status:    entity.PaymentStatus(data.Status),
		InvoiceID: data.InvoiceID,
		TPayID:    data.TPayID,
	}

	if p.ID == "" {
		p.ID = id
	}

	if data.TPayAmount != nil {
		p.TPayAmount = decimal.NewNullDecimal(*data.TPayAmount)
	}

	return p, nil
}

func (c *Client) Invoice(ctx context.Context, id string) (entity.Invoice, error) {
	var data InvoiceResponse

	err := c.get(ctx, "/invoices/"+url.PathEscape(id), &data)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("get invoice %q: %w", id, err)
	}

	return entity.Invoice{
		ID:          data.ID,
		Number:      data.Number,
		AmountGross: *data.AmountGross,
		PaymentID:   data.PaymentID,
		PDFURL:      data.PDFURL,
	}, nil
}

// get decodes a 2xx JSON body into dst and validates it.
// Any other status is reported as entity.ErrNotFound: the record is not available yet.
func (c *Client) get(ctx context.Context, path string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	jwt := entity.JWTFromCtx(ctx)
	if jwt != "" {
		req.Header.Set("Authorization", "Bearer "+jwt)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: unexpected status code: %d, body: %s", entity.ErrNotFound, resp.StatusCode, body)
	}

	err = json.Unmarshal(body, dst)
	if err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	err = c.validate.Struct(dst)
	if err != nil {
		return fmt.Errorf("invalid response: %w", err)
	}

	return nil
}
