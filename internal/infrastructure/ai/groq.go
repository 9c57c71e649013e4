package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/shared/config"
	"helpdesk/internal/shared/logger"
)

const (
	defaultBaseURL = "https://api.groq.com/openai/v1"
	defaultModel   = "llama-3.3-70b-versatile"

	// HTTP request timeout
	requestTimeout = 30 * time.Second
	// Maximum response body size for the completion API (1MB)
	maxCompletionResponseSize = 1 << 20
)

// chatRequest is the OpenAI-compatible chat completion request body.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse holds the subset of the completion response we read.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// GroqClient generates support replies via an OpenAI-compatible chat
// completion API. Errors are returned as-is; the caller decides whether a
// failed completion degrades or fails the request.
type GroqClient struct {
	httpClient  *http.Client
	logger      logger.Interface
	apiKey      string
	baseURL     string
	model       string
	temperature float64
	maxTokens   int
}

// NewGroqClient creates a completion client from the AI config. Empty
// base URL and model fall back to the Groq defaults.
func NewGroqClient(cfg *config.AIConfig, logger logger.Interface) *GroqClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	return &GroqClient{
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		logger:      logger,
		apiKey:      cfg.APIKey,
		baseURL:     baseURL,
		model:       model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}
}

// Ensure GroqClient implements Responder
var _ usecases.Responder = (*GroqClient)(nil)

// GenerateReply sends the user's message as a single-turn prompt and returns
// the first completion choice.
func (c *GroqClient) GenerateReply(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call completion API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var data chatResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxCompletionResponseSize)).Decode(&data); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(data.Choices) == 0 {
		return "", fmt.Errorf("completion response contains no choices")
	}
	content := data.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("completion response contains empty content")
	}

	c.logger.Debugw("generated completion",
		"model", c.model,
		"reply_length", len(content),
	)

	return content, nil
}
