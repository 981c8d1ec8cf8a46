package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"legal-chatbot/internal/models"
	"legal-chatbot/pkg/config"

	"go.uber.org/zap"
)

// OpenAIClient talks to any OpenAI-compatible chat-completions endpoint.
// Pointing BaseURL at a local model server works unchanged.
type OpenAIClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewOpenAIClient(cfg *config.OpenAIConfig, logger *zap.Logger) *OpenAIClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	return &OpenAIClient{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger: logger,
	}
}

type chatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string                  `json:"model"`
	Messages    []chatCompletionMessage `json:"messages"`
	Temperature float64                 `json:"temperature"`
	MaxTokens   int                     `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

func (c *OpenAIClient) Complete(ctx context.Context, messages []models.ChatMessage, opts CompletionOptions) (string, error) {
	reqBody := chatCompletionRequest{
		Model:       opts.Model,
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	}
	for _, msg := range messages {
		reqBody.Messages = append(reqBody.Messages, chatCompletionMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/chat/completions", bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call completion endpoint: %w", err)
	}
	defer resp.Body.Close()

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", &CompletionError{
			Message: fmt.Sprintf("undecodable response with status %d", resp.StatusCode),
		}
	}

	if completion.Error != nil {
		return "", &CompletionError{
			Code:    completion.Error.Code,
			Type:    completion.Error.Type,
			Message: completion.Error.Message,
		}
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Completion endpoint returned error status", zap.Int("status", resp.StatusCode))
		return "", &CompletionError{
			Message: fmt.Sprintf("completion endpoint returned status %d", resp.StatusCode),
		}
	}
	if len(completion.Choices) == 0 {
		return "", &CompletionError{Message: "no choices in completion response"}
	}

	return completion.Choices[0].Message.Content, nil
}
