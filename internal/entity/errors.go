package entity

import (
	"errors"
)

var (
	ErrNotFound              = errors.New("not found")
	ErrInvalidRequest        = errors.New("invalid request")
	ErrConfiguration         = errors.New("payment gateway is not configured")
	ErrAlreadyPaid           = errors.New("already paid")
	ErrAlreadyFinal          = errors.New("payment status is already final")
	ErrInvalidSignature      = errors.New("invalid signature")
	ErrAmountMismatch        = errors.New("amount mismatch")
	ErrConflict              = errors.New("conflict")
	ErrReconciliationTimeout = errors.New("payment confirmation timed out")
	ErrUnauthenticated       = errors.New("unauthenticated")
	ErrForbidden             = errors.New("forbidden")
)
