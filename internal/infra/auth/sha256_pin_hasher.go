// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/JeffJagr/SmartBar-v3/internal/domain/entity"
	"github.com/JeffJagr/SmartBar-v3/internal/domain/service"
)

const pinSeparator = "::"

// sha256PinHasher is the PinHasher stored in staffPins.pinHash.
type sha256PinHasher struct{}

// NewSHA256PinHasher is the constructor for sha256PinHasher.
func NewSHA256PinHasher() service.PinHasher {
	return &sha256PinHasher{}
}

// Hash digests "<COMPANYCODE>::<pin>" with SHA-256 and returns lowercase hex.
// The company code is trimmed and uppercased, the PIN only trimmed.
func (h *sha256PinHasher) Hash(companyCode, pin string) string {
	normalized := entity.NormalizeCompanyCode(companyCode) + pinSeparator + strings.TrimSpace(pin)
	sum := sha256.Sum256([]byte(normalized))

	return hex.EncodeToString(sum[:])
}
