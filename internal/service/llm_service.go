package service

import (
	"context"
	"fmt"

	"legal-chatbot/internal/models"
)

// CompletionOptions are the per-call knobs of a chat completion.
type CompletionOptions struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

// CompletionClient is the narrow surface the orchestrator sees of the
// completion backend. Timeouts, retries and authentication are the
// adapter's concern; any error takes the localized fallback path.
type CompletionClient interface {
	Complete(ctx context.Context, messages []models.ChatMessage, opts CompletionOptions) (string, error)
}

// CompletionError carries the provider's error code and type when the
// backend reported a structured failure.
type CompletionError struct {
	Code    string
	Type    string
	Message string
}

func (e *CompletionError) Error() string {
	if e.Code != "" || e.Type != "" {
		return fmt.Sprintf("completion failed (code=%s, type=%s): %s", e.Code, e.Type, e.Message)
	}
	return fmt.Sprintf("completion failed: %s", e.Message)
}
