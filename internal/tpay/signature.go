package tpay

import (
	"crypto/md5" //nolint:gosec // The gateway protocol mandates MD5 checksums.
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/musicschool/payments/internal/entity"
)

// Sign computes the md5sum of a payment form: md5(merchantID + amount + crc + secret).
// The parts are concatenated without a delimiter.
func Sign(merchantID, amount, crc, secret string) string {
	return checksum(merchantID, amount, crc, secret)
}

// NotificationChecksum computes the md5sum the gateway sends with a result notification:
// md5(id + tr_id + tr_amount + tr_crc + secret).
func NotificationChecksum(merchantID, transactionID, amount, crc, secret string) string {
	return checksum(merchantID, transactionID, amount, crc, secret)
}

func checksum(parts ...string) string {
	h := md5.New() //nolint:gosec
	for _, p := range parts {
		h.Write([]byte(p))
	}

	return hex.EncodeToString(h.Sum(nil))
}

// VerifyNotification checks that n was issued by the gateway for this merchant.
func (g *Gateway) VerifyNotification(n entity.Notification) error {
	if g.cfg.MerchantID == "" || g.cfg.Secret == "" {
		return entity.ErrConfiguration
	}

	if n.MerchantID != g.cfg.MerchantID {
		return fmt.Errorf("%w: unexpected merchant id %q", entity.ErrInvalidSignature, n.MerchantID)
	}

	want := NotificationChecksum(n.MerchantID, n.TransactionID, n.Amount, n.CRC, g.cfg.Secret)
	got := strings.ToLower(n.Checksum)

	if subtle.ConstantTimeCompare([]byte(want), []byte(got)) != 1 {
		return fmt.Errorf("%w: md5sum mismatch for transaction %q", entity.ErrInvalidSignature, n.TransactionID)
	}

	return nil
}
