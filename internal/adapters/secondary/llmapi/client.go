// Package llmapi talks to a hosted messages-style LLM API and retries
// transparently when the provider throttles.
package llmapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"ml-pipeline-service/internal/config"
	"ml-pipeline-service/internal/core/domain"
	ports "ml-pipeline-service/internal/core/ports/output"
)

type client struct {
	baseURL    string
	apiKey     string
	model      string
	maxTokens  int
	maxRetries int
	retryBase  time.Duration
	http       *http.Client
}

// NewClient creates a ChatCompleter for the configured provider endpoint.
func NewClient(cfg *config.ChatConfig) ports.ChatCompleter {
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 1000
	}
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 5
	}
	retryBase := cfg.RetryBase
	if retryBase <= 0 {
		retryBase = 2 * time.Second
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &client{
		baseURL:    cfg.URL,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		maxTokens:  maxTokens,
		maxRetries: maxRetries,
		retryBase:  retryBase,
		http:       &http.Client{Timeout: timeout},
	}
}

type messagesRequest struct {
	Model       string              `json:"model"`
	MaxTokens   int                 `json:"max_tokens"`
	Messages    []ports.ChatMessage `json:"messages"`
	Temperature float64             `json:"temperature"`
	TopP        float64             `json:"top_p"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

type errorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Complete replays the turn history, appends the current prompt and posts
// the conversation. HTTP 429 is retried with exponential backoff up to the
// configured attempt bound before surfacing ErrRateLimitExceeded.
func (c *client) Complete(ctx context.Context, prompt string, history []ports.ChatMessage) (string, error) {
	messages := make([]ports.ChatMessage, 0, len(history)+1)
	messages = append(messages, history...)
	messages = append(messages, ports.ChatMessage{Role: "user", Content: prompt})

	body := messagesRequest{
		Model:       c.model,
		MaxTokens:   c.maxTokens,
		Messages:    messages,
		Temperature: 0.7,
		TopP:        0.9,
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	for attempt := 0; attempt < c.maxRetries; attempt++ {
		reply, retryable, err := c.post(ctx, payload)
		if err == nil {
			return reply, nil
		}
		if !retryable {
			return "", err
		}
		if attempt == c.maxRetries-1 {
			break
		}

		delay := c.retryBase * (1 << attempt)
		log.WithFields(log.Fields{
			"attempt": attempt + 1,
			"delay":   delay.String(),
		}).Warn("chat provider throttled, retrying")

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delay):
		}
	}

	return "", domain.ErrRateLimitExceeded
}

func (c *client) post(ctx context.Context, payload []byte) (reply string, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", domain.ErrChatUpstream, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", domain.ErrChatUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", true, domain.ErrRateLimitExceeded
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error.Message != "" {
			return "", false, fmt.Errorf("%w: %s", domain.ErrChatUpstream, apiErr.Error.Message)
		}
		return "", false, fmt.Errorf("%w: status %d", domain.ErrChatUpstream, resp.StatusCode)
	}

	var apiResp messagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", false, fmt.Errorf("%w: decode response: %v", domain.ErrChatUpstream, err)
	}
	if len(apiResp.Content) == 0 {
		return "", false, fmt.Errorf("%w: response contains no content", domain.ErrChatUpstream)
	}
	return apiResp.Content[0].Text, false, nil
}
