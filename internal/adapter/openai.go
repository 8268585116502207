package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aognev/go-notes-api/internal/config"
	"github.com/aognev/go-notes-api/internal/logger"
	"github.com/aognev/go-notes-api/internal/utils"
)

// completionClient calls an OpenAI-compatible chat completions endpoint.
type completionClient struct {
	http  *utils.HTTPClient
	model string

	logger *logger.Logger
}

// NewCompletionClient constructs the chat [CompletionClient] from the LLM
// configuration. The caller is expected to construct it only when an API key
// is configured; the summarization service handles the disabled case.
func NewCompletionClient(cfg config.OpenAI, logger *logger.Logger) CompletionClient {
	client := utils.NewHTTPClient()
	client.
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.RequestTimeout).
		SetAuthToken(cfg.APIKey)

	return &completionClient{http: client, model: cfg.Model, logger: logger}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *completionClient) Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	body := chatCompletionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		MaxTokens:   maxTokens,
		Temperature: 0.7,
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("completion request: %w", err)
	}
	if err = mapProviderError(resp); err != nil {
		return "", err
	}

	var payload chatCompletionResponse
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		return "", fmt.Errorf("completion decode: %w", err)
	}
	if len(payload.Choices) == 0 {
		return "", &ProviderError{StatusCode: resp.StatusCode(), Message: "completion has no choices"}
	}

	return strings.TrimSpace(payload.Choices[0].Message.Content), nil
}
