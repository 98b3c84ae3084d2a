package documents

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/shopspring/decimal"

	"github.com/musicschool/payments/internal/entity"
	"github.com/musicschool/payments/pkg/config"
	"github.com/musicschool/payments/pkg/transport"
)

const defaultRetryWaitMax = time.Second * 5

// Client asks the documents service to render invoice PDFs. The service reports the stored
// document back through the private invoice file endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(cfg config.Documents) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryAttempts
	retryClient.RetryWaitMin = cfg.RetryWaitMin
	retryClient.RetryWaitMax = max(defaultRetryWaitMax, cfg.RetryWaitMin)
	retryClient.HTTPClient.Timeout = cfg.Timeout
	retryClient.HTTPClient.Transport = transport.NewRoundTripper(http.DefaultTransport)

	retryClient.Logger = nil

	retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err == nil && resp.StatusCode < http.StatusInternalServerError && resp.StatusCode != http.StatusTooManyRequests {
			return false, nil
		}

		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		http:    retryClient.StandardClient(),
	}
}

type RenderInvoiceRequest struct {
	InvoiceID   string          `json:"invoiceId"`
	Number      string          `json:"number"`
	AmountGross decimal.Decimal `json:"amountGross"`
	PaymentID   string          `json:"paymentId"`
	Description string          `json:"description"`
	PayerName   string          `json:"payerName,omitempty"`
	Email       string          `json:"email"`
	IssuedAt    time.Time       `json:"issuedAt"`
}

func (c *Client) RenderInvoice(ctx context.Context, inv entity.Invoice, p entity.Payment) error {
	j, err := json.Marshal(RenderInvoiceRequest{
		InvoiceID:   inv.ID,
		Number:      inv.Number,
		AmountGross: inv.AmountGross,
		PaymentID:   p.ID,
		Description: p.Description,
		PayerName:   p.PayerName,
		Email:       p.Email,
		IssuedAt:    inv.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/private/v1/invoices", bytes.NewReader(j))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status code: %d\nbody: %s", resp.StatusCode, body)
	}

	return nil
}
