// Package openai implements the OpenAI chat-completions adapter.
//
// The adapter posts {model, messages, temperature, max_tokens} to
// {base}/chat/completions with a bearer credential and normalizes the
// reply: the content of the first choice, and usage counters with absent
// values read as zero and a missing total derived from its parts.
//
// Any OpenAI-compatible endpoint works; set ProviderConfig.BaseURL to point
// elsewhere:
//
//	provider, err := openai.NewProvider(providers.ProviderConfig{
//	    BaseURL: "http://localhost:11434/v1",
//	    Timeout: 60 * time.Second,
//	})
//
// Response decoding is tolerant. A body that is not a JSON object fails
// the call; a choice or usage block with an unexpected shape does not.
package openai
