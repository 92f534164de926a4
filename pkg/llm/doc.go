// Package llm sends a question to the configured chat-completions provider
// and coerces the free-form reply into a structured answer.
//
// The reply is expected to be a JSON object with "answer", "confidence" and
// "actions". Models do not always comply, so the text goes through a
// fallback chain:
//
//  1. the trimmed reply parsed as a JSON object
//  2. the span from the first "{" to the last "}" parsed as a JSON object
//  3. the trimmed reply itself as the answer, confidence 0.5, no actions
//
// The third step cannot fail, so a successful provider call always yields
// an answer. Field values are then coerced by Normalize.
//
// Usage:
//
//	client, err := llm.NewFromConfig(cfg.LLM, promptStore)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	answer, usage, err := client.Call(ctx, "How to reset password?", llm.WithMaxTokens(128))
package llm
