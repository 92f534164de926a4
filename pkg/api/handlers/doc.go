// Package handlers implements the POST /query endpoint.
//
// Request:
//
//	{"question": "How to reset password?", "max_tokens": 256}
//
// Response:
//
//	{
//	  "response": {"answer": "...", "confidence": 0.92, "actions": ["..."]},
//	  "metrics": {
//	    "latency_ms": 123,
//	    "prompt_tokens": 10,
//	    "completion_tokens": 50,
//	    "total_tokens": 60,
//	    "estimated_cost_usd": 0.0033,
//	    "model": "gpt-4o-mini"
//	  }
//	}
//
// Any failure to reach the model answers 500 with {"detail": "<error>"} and
// no partial response.
package handlers
