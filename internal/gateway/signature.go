// Package gateway talks to the payment gateway: order creation over its
// REST API and verification of completed-payment signatures.
package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// ErrInvalidSignature is returned when a payment signature does not match
// the expected HMAC.
var ErrInvalidSignature = errors.New("invalid payment signature")

// ExpectedSignature computes the hex HMAC-SHA256 of "orderID|paymentID"
// under the gateway key secret. This is the signature the gateway sends
// back after a completed checkout.
func ExpectedSignature(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks a claimed payment signature. The comparison is
// constant-time; any mismatch, including a length mismatch, returns
// ErrInvalidSignature.
func VerifySignature(orderID, paymentID, signature, secret string) error {
	expected := ExpectedSignature(orderID, paymentID, secret)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrInvalidSignature
	}
	return nil
}
