package service

import (
	"context"
	"fmt"

	"legal-chatbot/internal/models"
	"legal-chatbot/pkg/config"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
)

// GigaChatClient is the alternate completion backend, kept behind the
// same CompletionClient surface as the OpenAI adapter.
type GigaChatClient struct {
	client *gigago.Client
	logger *zap.Logger
}

func NewGigaChatClient(ctx context.Context, cfg *config.GigaChatConfig, logger *zap.Logger) (*GigaChatClient, error) {
	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	return &GigaChatClient{
		client: client,
		logger: logger,
	}, nil
}

func (c *GigaChatClient) Complete(ctx context.Context, messages []models.ChatMessage, opts CompletionOptions) (string, error) {
	model := c.client.GenerativeModel("GigaChat")
	model.Temperature = opts.Temperature
	model.MaxTokens = int32(opts.MaxTokens)

	// GigaChat takes the system prompt as a model instruction rather
	// than a message.
	var chat []gigago.Message
	for _, msg := range messages {
		switch msg.Role {
		case models.RoleSystem:
			model.SystemInstruction = msg.Content
		case models.RoleAssistant:
			chat = append(chat, gigago.Message{Role: gigago.RoleAssistant, Content: msg.Content})
		default:
			chat = append(chat, gigago.Message{Role: gigago.RoleUser, Content: msg.Content})
		}
	}

	resp, err := model.Generate(ctx, chat)
	if err != nil {
		return "", &CompletionError{Message: err.Error()}
	}
	if len(resp.Choices) == 0 {
		return "", &CompletionError{Message: "no choices in GigaChat response"}
	}

	return resp.Choices[0].Message.Content, nil
}

func (c *GigaChatClient) Close() {
	c.client.Close()
}
