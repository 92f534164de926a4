// Package health provides liveness and readiness endpoints.
//
//   - /health: the process is up. Always 200.
//   - /ready: every registered check passes. 200 or 503.
//   - /version: build information.
//
// The server registers a credential check (an API key is configured) and a
// system prompt check (the prompt store holds a prompt). A missing key does
// not stop the service from starting; it only keeps /ready at 503 so that
// orchestrators hold traffic back.
//
//	checker := health.New(2 * time.Second)
//	checker.RegisterCheck(health.CheckCredential, health.CredentialCheck(cfg.LLM.APIKey))
//	checker.RegisterCheck(health.CheckPrompt, health.PromptCheck(store.Loaded))
//	checker.Mount(mux, version, commit, buildTime)
package health
