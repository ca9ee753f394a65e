package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewOpenAIClientRequiresAPIKey(t *testing.T) {
	_, err := NewOpenAIClient(OpenAISettings{Model: "gpt-4o-mini"})
	if err == nil {
		t.Fatalf("expected error for missing api key")
	}
}

func TestNewOpenAIClientRequiresModel(t *testing.T) {
	_, err := NewOpenAIClient(OpenAISettings{APIKey: "test"})
	if err == nil {
		t.Fatalf("expected error for missing model")
	}
}

func TestOpenAICompleteSuccess(t *testing.T) {
	var capturedBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if err := json.NewDecoder(request.Body).Decode(&capturedBody); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		writer.Header().Set("Content-Type", "application/json")
		payload := map[string]any{
			"id":     "chatcmpl-1",
			"object": "chat.completion",
			"choices": []any{
				map[string]any{
					"index": 0,
					"message": map[string]any{
						"role":    "assistant",
						"content": "generated text",
					},
					"finish_reason": "stop",
				},
			},
		}
		if err := json.NewEncoder(writer).Encode(payload); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}))
	defer server.Close()

	client, err := NewOpenAIClient(OpenAISettings{
		APIKey:      "test",
		BaseURL:     server.URL,
		Model:       "gpt-4o-mini",
		Temperature: 0.3,
		MaxTokens:   1000,
	})
	if err != nil {
		t.Fatalf("NewOpenAIClient: %v", err)
	}

	got, err := client.Complete(context.Background(), Request{System: "sys", User: "user"})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if got != "generated text" {
		t.Fatalf("expected generated text, got %q", got)
	}
	if capturedBody["model"] != "gpt-4o-mini" {
		t.Fatalf("expected model in request, got %v", capturedBody["model"])
	}
	messages, ok := capturedBody["messages"].([]any)
	if !ok || len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %v", capturedBody["messages"])
	}
}

func TestOpenAICompleteHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusBadRequest)
		_, _ = writer.Write([]byte(`{"error": {"message": "bad request"}}`))
	}))
	defer server.Close()

	client, err := NewOpenAIClient(OpenAISettings{APIKey: "test", BaseURL: server.URL, Model: "gpt-4o-mini"})
	if err != nil {
		t.Fatalf("NewOpenAIClient: %v", err)
	}
	if _, err := client.Complete(context.Background(), Request{User: "user"}); err == nil {
		t.Fatalf("expected error for http failure")
	}
}
