package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func newTestResolver(t *testing.T, apiKey string, handler http.HandlerFunc) (*Resolver, *int64) {
	t.Helper()

	var calls int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	client := NewClient(apiKey)
	client.BaseURL = server.URL
	return NewResolver(client), &calls
}

func TestResolve_Success(t *testing.T) {
	resolver, _ := newTestResolver(t, "test-key", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(GenerateResponse{
			Candidates: []Candidate{
				{Content: Content{Parts: []Part{{Text: "Hello back"}}}},
			},
		})
	})

	got := resolver.Resolve(context.Background(), "hi")
	if got != "Hello back" {
		t.Errorf("Expected 'Hello back', got %q", got)
	}
}

func TestResolve_MissingKey_NoNetworkCall(t *testing.T) {
	resolver, calls := newTestResolver(t, "", func(w http.ResponseWriter, r *http.Request) {
		t.Error("No request should be sent when the credential is absent")
	})

	got := resolver.Resolve(context.Background(), "hi")
	if got != MissingKeyFallback {
		t.Errorf("Expected missing-key fallback, got %q", got)
	}
	if atomic.LoadInt64(calls) != 0 {
		t.Errorf("Expected 0 network calls, got %d", atomic.LoadInt64(calls))
	}
}

func TestResolve_BlankKeyIsMissing(t *testing.T) {
	resolver, _ := newTestResolver(t, "   ", func(w http.ResponseWriter, r *http.Request) {})

	if got := resolver.Resolve(context.Background(), "hi"); got != MissingKeyFallback {
		t.Errorf("Expected missing-key fallback for blank key, got %q", got)
	}
}

func TestResolve_ServiceError(t *testing.T) {
	resolver, _ := newTestResolver(t, "test-key", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
	})

	if got := resolver.Resolve(context.Background(), "hi"); got != ServiceFallback {
		t.Errorf("Expected service fallback, got %q", got)
	}
}

func TestResolve_ServiceErrorStatusesUniform(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusForbidden, http.StatusTooManyRequests, http.StatusServiceUnavailable} {
		resolver, _ := newTestResolver(t, "test-key", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})

		if got := resolver.Resolve(context.Background(), "hi"); got != ServiceFallback {
			t.Errorf("Status %d: expected service fallback, got %q", status, got)
		}
	}
}

func TestResolve_TransportError(t *testing.T) {
	client := NewClient("test-key")
	client.BaseURL = "http://127.0.0.1:1"
	client.SetTimeout(500 * time.Millisecond)
	resolver := NewResolver(client)

	if got := resolver.Resolve(context.Background(), "hi"); got != TransportFallback {
		t.Errorf("Expected transport fallback, got %q", got)
	}
}

func TestResolve_MalformedResponse(t *testing.T) {
	resolver, _ := newTestResolver(t, "test-key", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	})

	if got := resolver.Resolve(context.Background(), "hi"); got != TransportFallback {
		t.Errorf("Expected transport fallback for malformed body, got %q", got)
	}
}

func TestResolve_EmptyReplyPath(t *testing.T) {
	resolver, _ := newTestResolver(t, "test-key", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(GenerateResponse{})
	})

	if got := resolver.Resolve(context.Background(), "hi"); got != EmptyReplyFallback {
		t.Errorf("Expected empty-reply fallback, got %q", got)
	}
}

func TestResolve_NeverReturnsEmpty(t *testing.T) {
	handlers := map[string]http.HandlerFunc{
		"success": func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(GenerateResponse{
				Candidates: []Candidate{{Content: Content{Parts: []Part{{Text: "ok"}}}}},
			})
		},
		"empty":     func(w http.ResponseWriter, r *http.Request) { w.Write([]byte(`{}`)) },
		"error":     func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusBadGateway) },
		"malformed": func(w http.ResponseWriter, r *http.Request) { w.Write([]byte("<html>")) },
	}

	for name, handler := range handlers {
		resolver, _ := newTestResolver(t, "test-key", handler)
		if got := resolver.Resolve(context.Background(), "hi"); got == "" {
			t.Errorf("%s: Resolve returned an empty string", name)
		}
	}
}
