// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PinHasher derives the stored credential value of a staff PIN.
// The digest must be deterministic so it can be matched with an equality query,
// and must include the company code so equal PINs of different companies never collide.
type PinHasher interface {
	// Hash returns the digest of the normalized (companyCode, pin) pair.
	Hash(companyCode, pin string) string
}
