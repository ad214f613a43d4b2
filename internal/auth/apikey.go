// Package auth provides a simple API key check for the HTTP surface.
package auth

import "strings"

// APIKeyAuth validates requests against a fixed set of keys. An empty
// set disables authentication entirely.
type APIKeyAuth struct {
	validKeys map[string]struct{}
}

// New parses a comma-separated key list into an authenticator.
func New(keys string) *APIKeyAuth {
	validKeys := make(map[string]struct{})
	for _, key := range strings.Split(keys, ",") {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		validKeys[key] = struct{}{}
	}

	return &APIKeyAuth{validKeys: validKeys}
}

// Enabled reports whether any keys are configured.
func (a *APIKeyAuth) Enabled() bool {
	return len(a.validKeys) > 0
}

// IsValidKey checks if a key is valid.
func (a *APIKeyAuth) IsValidKey(key string) bool {
	_, valid := a.validKeys[key]
	return valid
}
