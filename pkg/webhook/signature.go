package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// SignaturePrefix is prepended to the hex digest in the signature header.
const SignaturePrefix = "sha256="

// Sign computes the sha256 HMAC hex signature for payload under secret,
// including the scheme prefix. The payload must be the exact serialized
// body bytes; re-serializing a parsed object can produce different bytes.
func Sign(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return SignaturePrefix + hex.EncodeToString(mac.Sum(nil))
}

// VerifyHMAC verifies a sha256 HMAC hex signature against payload and secret.
// The received value may carry the "sha256=" prefix or be a bare hex digest.
func VerifyHMAC(secret string, payload []byte, signature string) bool {
	if secret == "" || signature == "" {
		return false
	}
	received := strings.TrimPrefix(signature, SignaturePrefix)
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(received))
}
