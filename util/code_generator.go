package util

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateCaptchaCode returns a 6-character lowercase hex code, e.g. "9f3a2c".
func GenerateCaptchaCode() string {
	b := make([]byte, 3)
	rand.Read(b)
	return hex.EncodeToString(b)
}
