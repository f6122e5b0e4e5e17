package service

// SecretScope names an operation gated by a static pre-shared secret.
type SecretScope string

const (
	// ScopeBackfill gates the bulk PIN hash migration.
	ScopeBackfill SecretScope = "backfill"
	// ScopeNotify gates company topic broadcasts.
	ScopeNotify SecretScope = "notify"
)

// SecretVerifier checks caller tokens against the secret configured for a scope.
type SecretVerifier interface {
	// Verify reports whether token matches the scope's secret.
	// An unconfigured secret never matches.
	Verify(scope SecretScope, token string) bool
}
