package services

import (
	"context"
	"strings"

	"ml-pipeline-service/internal/core/domain"
	ports "ml-pipeline-service/internal/core/ports/output"
)

// ChatService forwards prompts to the configured LLM provider.
type ChatService struct {
	completer ports.ChatCompleter
}

func NewChatService(completer ports.ChatCompleter) *ChatService {
	return &ChatService{completer: completer}
}

func (s *ChatService) Ask(ctx context.Context, prompt string, history []ports.ChatMessage) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", domain.ErrEmptyPrompt
	}
	return s.completer.Complete(ctx, prompt, history)
}
