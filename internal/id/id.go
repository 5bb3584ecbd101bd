package id

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"
)

// GenerateID creates a random session identifier.
func GenerateID() string {
	return uuid.NewString()
}

// Fingerprint returns a stable 16-character hex digest of the given parts.
// Parts are separated by a unit separator so ("ab", "c") and ("a", "bc")
// produce different digests.
func Fingerprint(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0x1f})
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}
