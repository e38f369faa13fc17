package ai

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func testClient(baseURL string) *Client {
	return NewClientWithBaseURL("test-key", 5*time.Second, 3, time.Millisecond, 5*time.Millisecond, baseURL)
}

func chatReq() GenerateRequest {
	return GenerateRequest{
		Model:    "openai/gpt-4o-mini",
		Messages: []Message{{Role: "user", Content: "hello"}},
	}
}

func TestGenerateSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("auth header = %q", got)
		}
		w.Header().Set("X-Request-Id", "req-123")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"gen-1","choices":[{"message":{"role":"assistant","content":"print('ok')"}}],"usage":{"total_tokens":10}}`))
	}))
	defer srv.Close()

	resp, err := testClient(srv.URL).Generate(context.Background(), chatReq())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if resp.Text() != "print('ok')" {
		t.Fatalf("text = %q", resp.Text())
	}
	if resp.RequestID != "req-123" {
		t.Fatalf("request id = %q", resp.RequestID)
	}
}

func TestGenerateRetriesOn500(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":{"message":"boom"}}`))
			return
		}
		w.Write([]byte(`{"choices":[{"message":{"content":"done"}}]}`))
	}))
	defer srv.Close()

	resp, err := testClient(srv.URL).Generate(context.Background(), chatReq())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if resp.Text() != "done" {
		t.Fatalf("text = %q", resp.Text())
	}
	if n := atomic.LoadInt32(&calls); n != 3 {
		t.Fatalf("calls = %d, want 3", n)
	}
}

func TestGenerateAuthError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"invalid key","code":"invalid_api_key"}}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Generate(context.Background(), chatReq())
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("err = %v (%T), want *AuthError", err, err)
	}
	if authErr.Code != "invalid_api_key" {
		t.Fatalf("code = %q", authErr.Code)
	}
}

func TestGenerateMissingKeyAndModel(t *testing.T) {
	c := NewClient("", 0, 0, 0, 0)
	if _, err := c.Generate(context.Background(), chatReq()); err == nil {
		t.Fatalf("expected error for missing api key")
	}
	c = NewClient("key", 0, 0, 0, 0)
	if _, err := c.Generate(context.Background(), GenerateRequest{}); err == nil {
		t.Fatalf("expected error for missing model")
	}
}

func TestGenerateContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := testClient(srv.URL).Generate(ctx, chatReq()); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
