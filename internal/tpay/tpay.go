package tpay

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/musicschool/payments/internal/entity"
	"github.com/musicschool/payments/pkg/config"
)

const (
	maxDescriptionLength = 255
	anonymousUser        = "anon"
)

// Form field names of the gateway payment form.
const (
	FieldMerchantID     = "id"
	FieldAmount         = "amount"
	FieldDescription    = "description"
	FieldCRC            = "crc"
	FieldEmail          = "email"
	FieldName           = "name"
	FieldLanguage       = "language"
	FieldReturnURL      = "return_url"
	FieldReturnErrorURL = "return_error_url"
	FieldResultURL      = "result_url"
	FieldChecksum       = "md5sum"
)

// Return url query parameters read by the confirmation page.
const (
	QueryPaymentID = "paymentId"
	QueryInvoiceID = "invoiceId"
	QueryStatus    = "status"
	StatusFailed   = "failed"
)

type InitRequest struct {
	Amount        float64
	Description   string
	Email         string
	PayerName     string
	CorrelationID string // Usually an invoice id. Synthesized when empty.
	UserID        string // Used for the synthesized correlation id.
	SuccessURL    string
	FailureURL    string
}

// Session is the signed form the payer's browser posts to GatewayURL.
type Session struct {
	GatewayURL    string
	CorrelationID string
	Amount        string // Formatted amount, exactly as signed.
	Form          map[string]string
}

// Gateway builds signed payment forms for the TPay gateway and verifies its notifications.
// It performs no I/O.
type Gateway struct {
	cfg config.TPay
	now func() time.Time
}

func New(cfg config.TPay) *Gateway {
	return &Gateway{
		cfg: cfg,
		now: time.Now,
	}
}

// WithClock replaces the clock used for synthesized correlation ids.
func (g *Gateway) WithClock(now func() time.Time) *Gateway {
	g.now = now
	return g
}

func (g *Gateway) Initiate(req InitRequest) (Session, error) {
	if g.cfg.MerchantID == "" || g.cfg.Secret == "" {
		return Session{}, entity.ErrConfiguration
	}

	err := validate(req)
	if err != nil {
		return Session{}, err
	}

	amount := FormatAmount(req.Amount)
	crc := g.correlationID(req)

	successURL, err := returnURL(firstNonEmpty(req.SuccessURL, g.cfg.ReturnURL), crc, false)
	if err != nil {
		return Session{}, fmt.Errorf("%w: success url: %w", entity.ErrInvalidRequest, err)
	}

	failureURL, err := returnURL(firstNonEmpty(req.FailureURL, g.cfg.ReturnErrorURL), crc, true)
	if err != nil {
		return Session{}, fmt.Errorf("%w: failure url: %w", entity.ErrInvalidRequest, err)
	}

	form := map[string]string{
		FieldMerchantID:     g.cfg.MerchantID,
		FieldAmount:         amount,
		FieldDescription:    truncate(req.Description, maxDescriptionLength),
		FieldCRC:            crc,
		FieldEmail:          req.Email,
		FieldName:           req.PayerName,
		FieldLanguage:       g.cfg.Language,
		FieldReturnURL:      successURL,
		FieldReturnErrorURL: failureURL,
		FieldResultURL:      g.cfg.ResultURL,
		FieldChecksum:       Sign(g.cfg.MerchantID, amount, crc, g.cfg.Secret),
	}

	return Session{
		GatewayURL:    g.cfg.GatewayURL,
		CorrelationID: crc,
		Amount:        amount,
		Form:          form,
	}, nil
}

func validate(req InitRequest) error {
	switch {
	case !isFinite(req.Amount):
		return fmt.Errorf("%w: amount %v is not a finite number", entity.ErrInvalidRequest, req.Amount)
	case req.Amount <= 0:
		return fmt.Errorf("%w: amount is required and must be positive", entity.ErrInvalidRequest)
	case FormatAmount(req.Amount) == "0.00":
		return fmt.Errorf("%w: amount %v rounds to zero", entity.ErrInvalidRequest, req.Amount)
	case strings.TrimSpace(req.Description) == "":
		return fmt.Errorf("%w: description is required", entity.ErrInvalidRequest)
	case strings.TrimSpace(req.Email) == "":
		return fmt.Errorf("%w: email is required", entity.ErrInvalidRequest)
	}

	return nil
}

func (g *Gateway) correlationID(req InitRequest) string {
	if req.CorrelationID != "" {
		return req.CorrelationID
	}

	user := req.UserID
	if user == "" {
		user = anonymousUser
	}

	return user + ":" + strconv.FormatInt(g.now().UnixMilli(), 10)
}

// returnURL adds the payment id (and the failed status) to the return address
// unless the caller already put a payment or invoice id there.
func returnURL(raw, crc string, failed bool) (string, error) {
	if raw == "" {
		return "", nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	q := u.Query()

	if q.Get(QueryPaymentID) == "" && q.Get(QueryInvoiceID) == "" {
		q.Set(QueryPaymentID, crc)
	}

	if failed {
		q.Set(QueryStatus, StatusFailed)
	}

	u.RawQuery = q.Encode()

	return u.String(), nil
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}

	return string([]rune(s)[:limit])
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
