package token

import "llm-intake/pkg/secrets"

// APIKeys verifies raw API keys against a configured bcrypt hash. Satisfies
// the middleware APIKeyVerifier interface.
type APIKeys struct {
	hash string
}

// NewAPIKeys builds a verifier. An empty hash disables API key auth.
func NewAPIKeys(hash string) *APIKeys {
	return &APIKeys{hash: hash}
}

// VerifyKey checks a raw key against the configured hash.
func (a *APIKeys) VerifyKey(key string) bool {
	if a.hash == "" || key == "" {
		return false
	}
	return secrets.Verify(key, a.hash) == nil
}
