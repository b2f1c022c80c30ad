package gemini

import (
	"context"
	"errors"
	"log/slog"
	"strings"
)

// Fixed fallback replies. Every failure class collapses into one of these,
// so the session always receives exactly one assistant message per turn.
const (
	MissingKeyFallback = "Please set your Gemini API key to start chatting."
	ServiceFallback    = "Sorry, something went wrong on the assistant's side. Please try again."
	TransportFallback  = "Sorry, I couldn't reach the assistant. Please check your connection and try again."
	EmptyReplyFallback = "Sorry, I couldn't generate a response."
)

// Resolver turns a user utterance into an assistant utterance. It never
// fails and never returns an empty string: configuration, service and
// transport errors are absorbed here and replaced with fallback text.
type Resolver struct {
	client *Client
}

// NewResolver creates a resolver around the given client. The credential is
// carried by the client rather than read from ambient process state.
func NewResolver(client *Client) *Resolver {
	return &Resolver{client: client}
}

// Resolve produces the assistant reply for userText.
func (r *Resolver) Resolve(ctx context.Context, userText string) string {
	if strings.TrimSpace(r.client.APIKey) == "" {
		// Expected state, not an error; no network call is attempted.
		slog.Debug("resolve_missing_api_key")
		return MissingKeyFallback
	}

	resp, err := r.client.GenerateContent(ctx, userText)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			slog.Error("resolve_service_error",
				"status_code", statusErr.StatusCode,
				"body", truncateBody(statusErr.Body))
			return ServiceFallback
		}
		slog.Error("resolve_transport_error", "error", err)
		return TransportFallback
	}

	text := resp.Text()
	if text == "" {
		slog.Warn("resolve_empty_reply", "candidates", len(resp.Candidates))
		return EmptyReplyFallback
	}

	slog.Debug("resolve_ok", "reply_size", len(text))
	return text
}

func truncateBody(body string) string {
	if len(body) > 200 {
		return body[:200] + "..."
	}
	return body
}
