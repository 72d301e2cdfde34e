package utils

import (
	"crypto/rand"
	"strings"
)

const (
	accessCodeLength   = 6
	accessCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// GenerateAccessCode returns a short uppercase alphanumeric token. It is a
// convenience login secret, not a password-strength credential.
func GenerateAccessCode() (string, error) {
	buf := make([]byte, accessCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i := range buf {
		buf[i] = accessCodeAlphabet[int(buf[i])%len(accessCodeAlphabet)]
	}
	return string(buf), nil
}

// NormalizeAccessCode uppercases and trims a code so lookups are
// case-insensitive.
func NormalizeAccessCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
