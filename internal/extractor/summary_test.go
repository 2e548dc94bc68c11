package extractor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOpenAISummarizer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != "gpt-test" {
			t.Errorf("expected model gpt-test, got %s", req.Model)
		}
		if len(req.Messages) != 2 || req.Messages[1].Content != "Patient asked for a refill." {
			t.Errorf("unexpected messages: %+v", req.Messages)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"x","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"  Refill requested.  "},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	s := NewOpenAISummarizer("sk-test", "gpt-test", srv.URL)
	got, err := s.Summarize(context.Background(), "Patient asked for a refill.")
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if got != "Refill requested." {
		t.Errorf("summary = %q, want trimmed content", got)
	}
}

func TestOpenAISummarizer_EmptyTranscript(t *testing.T) {
	s := NewOpenAISummarizer("sk-test", "", "http://127.0.0.1:1")
	got, err := s.Summarize(context.Background(), "   ")
	if err != nil || got != "" {
		t.Errorf("expected empty summary without a request, got %q, %v", got, err)
	}
}
