package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
)

const SignatureHeader = "Webhook-Signature"

var ErrInvalidSignature = errors.New("invalid webhook signature")

// VerifySignature checks a hex HMAC-SHA256 of the raw body. A missing
// header, a non-hex header and an empty secret all fail verification.
func VerifySignature(secret string, body []byte, signature string) error {
	signature = strings.TrimSpace(signature)
	if secret == "" || signature == "" {
		return ErrInvalidSignature
	}

	got, err := hex.DecodeString(signature)
	if err != nil {
		return ErrInvalidSignature
	}

	if !hmac.Equal(got, computeMAC(secret, body)) {
		return ErrInvalidSignature
	}
	return nil
}

// Sign returns the hex signature VerifySignature accepts for body.
func Sign(secret string, body []byte) string {
	return hex.EncodeToString(computeMAC(secret, body))
}

func computeMAC(secret string, body []byte) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return mac.Sum(nil)
}
