package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/musicschool/payments/internal/entity"
	"github.com/musicschool/payments/internal/tpay"
	"github.com/musicschool/payments/pkg/config"
)

type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type Client struct {
	cfg    config.Mailer
	dialer sender
}

func New(cfg config.Mailer) *Client {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Login, cfg.Password)

	dialer.TLSConfig = &tls.Config{
		ServerName: cfg.Host,
		MinVersion: tls.VersionTLS12,
	}

	return &Client{
		cfg:    cfg,
		dialer: dialer,
	}
}

// SendPaymentConfirmation mails the payer the invoice of a paid payment.
func (c *Client) SendPaymentConfirmation(ctx context.Context, p entity.Payment, inv entity.Invoice) error {
	if p.Email == "" {
		return fmt.Errorf("%w: payment %q has no email", entity.ErrInvalidRequest, p.ID)
	}

	err := c.dialer.DialAndSend(c.confirmation(p, inv))
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	slog.InfoContext(ctx, "payment confirmation sent", "payment_id", p.ID, "invoice_id", inv.ID)

	return nil
}

func (c *Client) confirmation(p entity.Payment, inv entity.Invoice) *gomail.Message {
	msg := gomail.NewMessage(
		gomail.SetCharset("UTF-8"),
		gomail.SetEncoding(gomail.Base64),
	)

	msg.SetAddressHeader("From", c.cfg.From, c.cfg.FromName)
	msg.SetAddressHeader("To", p.Email, p.PayerName)
	msg.SetHeader("Subject", "Payment confirmation, invoice "+inv.Number)

	var b strings.Builder

	fmt.Fprintf(&b, "Thank you for your payment.\n\n")
	fmt.Fprintf(&b, "Payment: %s\n", p.ID)
	fmt.Fprintf(&b, "Description: %s\n", p.Description)
	fmt.Fprintf(&b, "Amount: %s\n", tpay.FormatDecimal(inv.AmountGross))
	fmt.Fprintf(&b, "Invoice: %s\n", inv.Number)

	if inv.PDFURL != "" {
		fmt.Fprintf(&b, "Download the invoice: %s\n", inv.PDFURL)
	}

	msg.SetBody("text/plain", b.String())

	return msg
}
