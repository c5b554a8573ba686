// Package revalidate maps authenticated content-change notifications onto the
// set of cached page paths they make stale.
package revalidate

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// SignatureHeader is the request header carrying the webhook signature.
const SignatureHeader = "sanity-webhook-signature"

const signaturePrefix = "sha256="

// VerifySignature checks an HMAC-SHA256 signature over the exact raw request
// body bytes. The header value must be "sha256=<hex>". Any malformed header
// or mismatch yields false; the comparison is constant-time.
//
// The body must be the raw bytes as received: re-serializing parsed JSON
// changes key order and whitespace and breaks the check.
func VerifySignature(body []byte, header, secret string) bool {
	if secret == "" {
		return false
	}

	hexSig, ok := strings.CutPrefix(header, signaturePrefix)
	if !ok {
		return false
	}

	got, err := hex.DecodeString(hexSig)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)

	return hmac.Equal(got, mac.Sum(nil))
}

// Sign produces the signature header value for a body. Used by tests and by
// operators replaying notifications.
func Sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return signaturePrefix + hex.EncodeToString(mac.Sum(nil))
}
