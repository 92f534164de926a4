// Textutil answers free-form questions through an OpenAI-compatible
// chat-completions API and reports token usage, latency and estimated cost.
//
// Usage:
//
//	# Start the HTTP service (POST /query)
//	textutil serve
//
//	# Start with a configuration file and a .env file
//	textutil serve --config textutil.yaml --env-file .env
//
//	# Ask a single question from the terminal
//	textutil ask "How do I reset my password?" --max-tokens 128
//
//	# Check a configuration file
//	textutil config validate --config textutil.yaml
package main

import "os"

func main() {
	os.Exit(Execute())
}
