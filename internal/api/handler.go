package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/musicschool/payments/internal/entity"
	"github.com/musicschool/payments/internal/reconciler"
	"github.com/musicschool/payments/internal/tpay"
)

// @title Payments API
// @version 1.0
// @description Music school lesson payments through the TPay gateway
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-Api-Key

// notificationAck is the body the gateway expects after a processed notification.
const notificationAck = "TRUE"

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/api.go -package=mocks

type Service interface {
	InitiatePayment(ctx context.Context, req entity.PaymentRequest) (tpay.Session, error)
	HandleNotification(ctx context.Context, n entity.Notification) error
	Payment(ctx context.Context, id string) (entity.Payment, error)
	Invoice(ctx context.Context, id string) (entity.Invoice, error)
	VerifyConfirmation(ctx context.Context, params reconciler.Params) (reconciler.Outcome, error)
	SaveInvoicePDF(ctx context.Context, invoiceID, url string) error
	DeleteChild(ctx context.Context, childID string) (map[string]int64, error)
}

type Handler struct {
	s        Service
	validate *validator.Validate
}

func NewHandler(s Service) *Handler {
	return &Handler{
		s:        s,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

type InitiatePaymentRequest struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	PayerName   string  `json:"payerName"`
	InvoiceID   string  `json:"invoiceId" validate:"omitempty,max=128"`
	ChildID     string  `json:"childId"`
	SuccessURL  string  `json:"successUrl" validate:"omitempty,url"`
	FailureURL  string  `json:"failureUrl" validate:"omitempty,url"`
}

type InitiatePaymentResponse struct {
	PaymentID  string            `json:"paymentId"`
	Amount     string            `json:"amount"`
	GatewayURL string            `json:"gatewayUrl"`
	Form       map[string]string `json:"form"`
}

// InitiatePayment starts a payment and returns the signed gateway form
// @Summary Initiate payment
// @Description Stores a pending payment and returns the form the browser posts to the gateway
// @Tags payments
// @Accept json
// @Produce json
// @Param InitiatePaymentRequest body InitiatePaymentRequest true "Payment request"
// @Success 201 {object} InitiatePaymentResponse
// @Failure 400 {object} ErrorResponse "Invalid JSON"
// @Failure 409 {object} ErrorResponse "Payment already paid or finished"
// @Failure 422 {object} ErrorResponse "Invalid payment request"
// @Failure 500 {object} ErrorResponse "Payment gateway is not configured"
// @Router /payments [post]
// @Security BearerAuth
func (h *Handler) InitiatePayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req InitiatePaymentRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	err = h.validate.Struct(req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Invalid payment request")
		return
	}

	session, err := h.s.InitiatePayment(ctx, entity.PaymentRequest{
		Amount:      req.Amount,
		Description: req.Description,
		Email:       req.Email,
		PayerName:   req.PayerName,
		InvoiceID:   req.InvoiceID,
		ChildID:     req.ChildID,
		SuccessURL:  req.SuccessURL,
		FailureURL:  req.FailureURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrConfiguration):
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Payment gateway is not configured")
		case errors.Is(err, entity.ErrInvalidRequest):
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Invalid payment request")
		case errors.Is(err, entity.ErrAlreadyPaid):
			SendJSONErr(ctx, w, http.StatusConflict, err, "Invoice is already paid")
		case errors.Is(err, entity.ErrAlreadyFinal), errors.Is(err, entity.ErrConflict):
			SendJSONErr(ctx, w, http.StatusConflict, err, "Payment can not be started again")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to initiate payment")
		}

		return
	}

	SendJSON(ctx, w, http.StatusCreated, InitiatePaymentResponse{
		PaymentID:  session.CorrelationID,
		Amount:     session.Amount,
		GatewayURL: session.GatewayURL,
		Form:       session.Form,
	})
}

// TPayNotification applies a gateway result notification
// @Summary Gateway notification
// @Description Result notification posted by the payment gateway. Answers TRUE once processed
// @Tags callbacks
// @Accept x-www-form-urlencoded
// @Produce plain
// @Success 200 {string} string "TRUE"
// @Failure 400 {object} ErrorResponse "Invalid notification"
// @Failure 403 {object} ErrorResponse "Invalid checksum"
// @Failure 404 {object} ErrorResponse "Payment not found"
// @Failure 409 {object} ErrorResponse "Payment already failed"
// @Failure 500 {object} ErrorResponse "Failed to process notification"
// @Router /payments/callbacks/tpay [post]
func (h *Handler) TPayNotification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := r.ParseForm()
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid form")
		return
	}

	n := entity.Notification{
		MerchantID:    r.PostForm.Get("id"),
		TransactionID: r.PostForm.Get("tr_id"),
		Date:          r.PostForm.Get("tr_date"),
		CRC:           r.PostForm.Get("tr_crc"),
		Amount:        r.PostForm.Get("tr_amount"),
		Paid:          r.PostForm.Get("tr_paid"),
		Description:   r.PostForm.Get("tr_desc"),
		Status:        r.PostForm.Get("tr_status"),
		Error:         r.PostForm.Get("tr_error"),
		Email:         r.PostForm.Get("tr_email"),
		TestMode:      r.PostForm.Get("test_mode") == "1",
		Checksum:      r.PostForm.Get("md5sum"),
	}

	err = h.s.HandleNotification(ctx, n)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrInvalidSignature):
			SendJSONErr(ctx, w, http.StatusForbidden, err, "Invalid checksum")
		case errors.Is(err, entity.ErrNotFound):
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Payment not found")
		case errors.Is(err, entity.ErrInvalidRequest), errors.Is(err, entity.ErrAmountMismatch):
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid notification")
		case errors.Is(err, entity.ErrConflict):
			SendJSONErr(ctx, w, http.StatusConflict, err, "Payment already failed")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to process notification")
		}

		return
	}

	SendText(ctx, w, http.StatusOK, notificationAck)
}

type PaymentResponse struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	InvoiceID  string `json:"invoiceId,omitempty"`
	TPayID     string `json:"tpayId,omitempty"`
	TPayAmount string `json:"tpayAmount,omitempty"`
}

// Payment returns the payment record
// @Summary Get payment
// @Tags payments
// @Produce json
// @Param paymentId path string true "Payment id"
// @Success 200 {object} PaymentResponse
// @Failure 404 {object} ErrorResponse "Payment not found"
// @Failure 500 {object} ErrorResponse "Failed to get payment"
// @Router /payments/{paymentId} [get]
func (h *Handler) Payment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, err := h.s.Payment(ctx, chi.URLParam(r, "paymentId"))
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Payment not found")
		} else {
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to get payment")
		}

		return
	}

	resp := PaymentResponse{
		ID:        p.ID,
		Status:    p.Status.String(),
		InvoiceID: p.InvoiceID,
		TPayID:    p.TPayID,
	}

	if p.TPayAmount.Valid {
		resp.TPayAmount = tpay.FormatDecimal(p.TPayAmount.Decimal)
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

type InvoiceResponse struct {
	ID          string `json:"id"`
	Number      string `json:"number"`
	AmountGross string `json:"amountGross"`
	PaymentID   string `json:"paymentId,omitempty"`
	PDFURL      string `json:"pdfUrl,omitempty"`
}

// Invoice returns the invoice record
// @Summary Get invoice
// @Tags invoices
// @Produce json
// @Param invoiceId path string true "Invoice id"
// @Success 200 {object} InvoiceResponse
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Failure 500 {object} ErrorResponse "Failed to get invoice"
// @Router /invoices/{invoiceId} [get]
func (h *Handler) Invoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	inv, err := h.s.Invoice(ctx, chi.URLParam(r, "invoiceId"))
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Invoice not found")
		} else {
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to get invoice")
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, InvoiceResponse{
		ID:          inv.ID,
		Number:      inv.Number,
		AmountGross: tpay.FormatDecimal(inv.AmountGross),
		PaymentID:   inv.PaymentID,
		PDFURL:      inv.PDFURL,
	})
}

type ConfirmationResponse struct {
	State         string `json:"state"`
	Reason        string `json:"reason,omitempty"`
	PaymentID     string `json:"paymentId,omitempty"`
	InvoiceID     string `json:"invoiceId,omitempty"`
	InvoiceNumber string `json:"invoiceNumber,omitempty"`
	Amount        string `json:"amount,omitempty"`
	PDFURL        string `json:"pdfUrl,omitempty"`
}

// Confirmation verifies the payment the payer returned from
// @Summary Verify payment confirmation
// @Description Runs one confirmation attempt for the gateway return url query parameters
// @Tags payments
// @Produce json
// @Param paymentId query string false "Payment id"
// @Param invoiceId query string false "Invoice id"
// @Param status query string false "failed when the payer returned from the error url"
// @Success 200 {object} ConfirmationResponse
// @Failure 500 {object} ErrorResponse "Failed to verify payment"
// @Router /payments/confirmation [get]
func (h *Handler) Confirmation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	out, err := h.s.VerifyConfirmation(ctx, reconciler.ParseParams(r.URL.Query()))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to verify payment")
		return
	}

	resp := ConfirmationResponse{
		State:         string(out.State),
		Reason:        out.Reason,
		PaymentID:     out.PaymentID,
		InvoiceID:     out.InvoiceID,
		InvoiceNumber: out.InvoiceNumber,
		PDFURL:        out.PDFURL,
	}

	if out.State == reconciler.StateSuccess {
		resp.Amount = tpay.FormatDecimal(out.Amount)
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

type SaveInvoicePDFRequest struct {
	URL string `json:"url" validate:"required,url"`
}

type SaveInvoicePDFResponse struct {
}

// SaveInvoicePDF stores the rendered invoice document
// @Summary Save invoice document
// @Description Callback of the documents service once the invoice PDF is rendered
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoiceId path string true "Invoice id"
// @Param SaveInvoicePDFRequest body SaveInvoicePDFRequest true "Document url"
// @Success 200 {object} SaveInvoicePDFResponse
// @Failure 400 {object} ErrorResponse "Invalid JSON"
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Failure 409 {object} ErrorResponse "Invoice already has a document"
// @Failure 422 {object} ErrorResponse "Invalid document url"
// @Failure 500 {object} ErrorResponse "Failed to save invoice document"
// @Router /private/v1/invoices/{invoiceId}/file [post]
// @Security ApiKeyAuth
func (h *Handler) SaveInvoicePDF(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SaveInvoicePDFRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	err = h.validate.Struct(req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Invalid document url")
		return
	}

	err = h.s.SaveInvoicePDF(ctx, chi.URLParam(r, "invoiceId"), req.URL)

	switch {
	case err == nil:
		SendJSON(ctx, w, http.StatusOK, SaveInvoicePDFResponse{})
	case errors.Is(err, entity.ErrNotFound):
		SendJSONErr(ctx, w, http.StatusNotFound, err, "Invoice not found")
	case errors.Is(err, entity.ErrConflict):
		SendJSONErr(ctx, w, http.StatusConflict, err, "Invoice already has a document")
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to save invoice document")
	}
}

type DeleteChildResponse struct {
	Updated map[string]int64 `json:"updated"`
}

// DeleteChild deletes a child and detaches it from every record
// @Summary Delete child
// @Tags admin
// @Produce json
// @Param childId path string true "Child id"
// @Success 200 {object} DeleteChildResponse
// @Failure 401 {object} ErrorResponse "Unauthenticated"
// @Failure 403 {object} ErrorResponse "Action forbidden for user"
// @Failure 404 {object} ErrorResponse "Child not found"
// @Failure 500 {object} ErrorResponse "Failed to delete child"
// @Router /admin/children/{childId} [delete]
// @Security BearerAuth
func (h *Handler) DeleteChild(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	updated, err := h.s.DeleteChild(ctx, chi.URLParam(r, "childId"))
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrUnauthenticated):
			SendJSONErr(ctx, w, http.StatusUnauthorized, err, "Unauthenticated")
		case errors.Is(err, entity.ErrForbidden):
			SendJSONErr(ctx, w, http.StatusForbidden, err, "Action forbidden for user")
		case errors.Is(err, entity.ErrNotFound):
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Child not found")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to delete child")
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, DeleteChildResponse{Updated: updated})
}

// HealthHandler checks if the service is alive
// @Summary Health check
// @Tags health
// @Accept text/plain
// @Produce text/plain
// @Success 200 {string} string "Service is up!"
// @Router /health [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("Service is up!\n"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, fmt.Errorf("write health: %w", err), "Service is down!")
		return
	}
}
