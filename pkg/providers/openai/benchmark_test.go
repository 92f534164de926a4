package openai

import (
	"context"
	"encoding/json"
	"testing"

	testhelpers "mercator-hq/textutil/internal/providers"
)

func BenchmarkOpenAIProvider_SendCompletion(b *testing.B) {
	mock := testhelpers.NewMockServer()
	defer mock.Close()

	mock.SetResponse(testhelpers.ChatCompletionsPath, testhelpers.MockOpenAISuccess(`{"answer":"ok","confidence":0.9,"actions":[]}`, "gpt-4o-mini"))

	provider, err := NewProvider(testhelpers.TestConfigWithURL("openai", mock.URL()))
	if err != nil {
		b.Fatalf("failed to create provider: %v", err)
	}
	defer provider.Close()

	req := testhelpers.TestCompletionRequest("gpt-4o-mini", "system", "Hello")
	ctx := context.Background()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := provider.SendCompletion(ctx, req); err != nil {
			b.Fatalf("SendCompletion failed: %v", err)
		}
	}
}

func BenchmarkOpenAIResponse_Decode(b *testing.B) {
	body, _ := json.Marshal(testhelpers.MockOpenAIResponse(`{"answer":"ok"}`, "gpt-4o-mini"))

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		var resp OpenAIResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			b.Fatal(err)
		}
		_ = transformResponse(&resp, "gpt-4o-mini")
	}
}
