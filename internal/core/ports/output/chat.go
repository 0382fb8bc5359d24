package ports

import "context"

// ChatMessage is one prior turn of a conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompleter forwards a prompt plus turn history to a hosted LLM and
// returns the generated text. Implementations own their retry policy and
// surface domain.ErrRateLimitExceeded once retries are exhausted.
type ChatCompleter interface {
	Complete(ctx context.Context, prompt string, history []ChatMessage) (string, error)
}
