package auth

import (
	"crypto/subtle"

	"github.com/JeffJagr/SmartBar-v3/config"
	"github.com/JeffJagr/SmartBar-v3/internal/domain/service"
)

// sharedSecretVerifier compares caller tokens with static deploy-time secrets.
type sharedSecretVerifier struct {
	secrets map[service.SecretScope]string
}

// NewSharedSecretVerifier builds a verifier from the backfill and notify tokens in cfg.
func NewSharedSecretVerifier(cfg *config.Config) service.SecretVerifier {
	secrets := make(map[service.SecretScope]string, 2)
	if cfg.Backfill != nil {
		secrets[service.ScopeBackfill] = cfg.Backfill.Token
	}
	if cfg.Notify != nil {
		secrets[service.ScopeNotify] = cfg.Notify.Token
	}

	return &sharedSecretVerifier{secrets: secrets}
}

// Verify reports whether token equals the scope's secret in constant time.
// An empty or unknown secret rejects every token, including an empty one.
func (v *sharedSecretVerifier) Verify(scope service.SecretScope, token string) bool {
	secret := v.secrets[scope]
	if secret == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(secret), []byte(token)) == 1
}
