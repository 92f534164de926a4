// Package providers implements the transport layer between the query
// client and a hosted LLM.
//
// # Overview
//
// A Provider turns a provider-agnostic CompletionRequest into one HTTP call
// and normalizes the reply into a CompletionResponse. Adapters embed
// HTTPProvider, which owns the pooled client and the error mapping; the
// OpenAI chat-completions adapter lives in the openai subpackage.
//
// # Basic Usage
//
//	provider, err := openai.NewProvider(providers.ProviderConfig{
//	    Name:    "openai",
//	    BaseURL: "https://api.openai.com/v1",
//	    APIKey:  os.Getenv("OPENAI_API_KEY"),
//	    Timeout: 60 * time.Second,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	resp, err := provider.SendCompletion(ctx, &providers.CompletionRequest{
//	    Model: "gpt-4o-mini",
//	    Messages: []providers.Message{
//	        {Role: providers.RoleSystem, Content: prompt.DefaultSystemPrompt},
//	        {Role: providers.RoleUser, Content: "How to reset password?"},
//	    },
//	    MaxTokens: 512,
//	})
//
// # Error Handling
//
// Every failure is a *ProviderError:
//
//   - non-2xx status: StatusCode is set and Message holds the response body
//   - transport failure or timeout: Cause holds the underlying error
//   - undecodable 2xx body: Cause holds the decode error
//
// Requests are attempted exactly once. The caller's context is honoured, and
// ProviderConfig.Timeout bounds each call.
//
// # Thread Safety
//
// Providers are safe for concurrent use.
package providers
