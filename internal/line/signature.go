package line

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
)

// SignatureHeader is the request header carrying the platform signature.
const SignatureHeader = "X-Line-Signature"

// Sign computes the base64-encoded HMAC-SHA256 of body under the channel
// secret, exactly as the platform does.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// ValidateSignature verifies a webhook signature against the exact raw
// request bytes. The body must not have been parsed or re-serialized before
// this check; any representation other than the original bytes makes the
// signature forgeable. Missing or malformed signatures fail closed.
func ValidateSignature(secret string, body []byte, signature string) bool {
	if secret == "" || signature == "" {
		return false
	}
	expected := Sign(secret, body)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}
