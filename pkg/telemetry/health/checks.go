package health

import (
	"context"
	"errors"
)

// Names of the readiness checks registered by the server.
const (
	CheckCredential = "credential"
	CheckPrompt     = "system_prompt"
)

// CredentialCheck fails when no provider credential is configured.
func CredentialCheck(apiKey string) CheckFunc {
	return func(ctx context.Context) error {
		if apiKey == "" {
			return errors.New("no provider API key configured")
		}
		return nil
	}
}

// PromptCheck fails until the system prompt has been loaded.
func PromptCheck(loaded func() bool) CheckFunc {
	return func(ctx context.Context) error {
		if loaded == nil || !loaded() {
			return errors.New("system prompt not loaded")
		}
		return nil
	}
}
