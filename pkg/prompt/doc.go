// Package prompt holds the system prompt sent with every query and the
// template used to render the user message.
//
// The default system prompt instructs the model to reply with a single JSON
// object carrying "answer", "confidence" and "actions". Deployments may
// replace it with a file; a Store loads that file once and, when asked to,
// watches it and swaps the prompt in place whenever it changes:
//
//	store, err := prompt.NewStore("prompts/system.txt", slog.Default())
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	go store.Watch(ctx)
//
//	system := store.SystemPrompt()
//
// Readers always see a complete prompt. A reload that fails (missing or
// empty file) keeps the previous prompt and logs the error.
//
// Fill renders "{name}" placeholders from a map. "{{" and "}}" produce
// literal braces; placeholders without a value are left untouched.
package prompt
