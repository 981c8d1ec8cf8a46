package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"legal-chatbot/internal/models"
	"legal-chatbot/internal/repository"
	"legal-chatbot/pkg/config"

	"go.uber.org/zap"
)

// Temperatures and token caps for the short conversational calls; the
// grounded legal call uses the configured values.
const (
	conversationalTemperature = 0.7
	conversationalMaxTokens   = 500
	historyWindow             = 4
)

// ChatResult is what the orchestrator hands back to the HTTP layer.
// Categories is populated only when a legal question retrieved nothing,
// so the caller can suggest topics instead of citations.
type ChatResult struct {
	Message    string
	Documents  []models.Document
	Categories []string
}

// ChatService glues classification, retrieval, prompt assembly, memory
// and the completion backend. LLM failures never escape: they are
// replaced by localized fallback text. Errors are returned only for
// genuine orchestration failures (e.g. an unreachable document store).
type ChatService struct {
	repo   repository.DocumentRepository
	llm    CompletionClient
	memory *ConversationMemory
	cfg    *config.ChatbotConfig
	logger *zap.Logger
}

func NewChatService(
	repo repository.DocumentRepository,
	llm CompletionClient,
	cfg *config.ChatbotConfig,
	logger *zap.Logger,
) *ChatService {
	return &ChatService{
		repo:   repo,
		llm:    llm,
		memory: NewConversationMemory(cfg.MaxHistoryLength),
		cfg:    cfg,
		logger: logger,
	}
}

// Chat answers a single user message in the given (already normalized)
// language.
func (s *ChatService) Chat(ctx context.Context, message, language string) (*ChatResult, error) {
	queryType := ClassifyQuery(message)
	s.logger.Info("Chat request classified",
		zap.String("query_type", queryType.String()),
		zap.String("language", language),
	)

	switch queryType {
	case QueryGreeting:
		return &ChatResult{Message: greetingText(language)}, nil
	case QueryGeneralQuestion:
		return s.handleGeneralQuestion(ctx, message, language), nil
	default:
		return s.handleLegalQuestion(ctx, message, language)
	}
}

func (s *ChatService) handleGeneralQuestion(ctx context.Context, message, language string) *ChatResult {
	answer, err := s.complete(ctx, []models.ChatMessage{
		models.SystemMessage(systemPrompt(language)),
		models.UserMessage(buildGeneralPrompt(message, language)),
	}, CompletionOptions{
		Model:       s.cfg.Model,
		Temperature: conversationalTemperature,
		MaxTokens:   conversationalMaxTokens,
	})
	if err != nil {
		return &ChatResult{Message: generalFallback(language)}
	}
	return &ChatResult{Message: answer}
}

func (s *ChatService) handleLegalQuestion(ctx context.Context, message, language string) (*ChatResult, error) {
	documents, err := s.repo.Search(ctx, message, language, "")
	if err != nil {
		return nil, fmt.Errorf("failed to search documents: %w", err)
	}
	s.logger.Info("Documents retrieved", zap.Int("count", len(documents)))

	if len(documents) == 0 {
		return s.handleNoDocuments(ctx, message, language)
	}

	prompt := buildGroundedPrompt(message, documents, language)
	history := s.memory.Recent(historyWindow)
	s.memory.Append(models.UserMessage(message))

	chat := make([]models.ChatMessage, 0, len(history)+2)
	chat = append(chat, models.SystemMessage(systemPrompt(language)))
	chat = append(chat, history...)
	chat = append(chat, models.UserMessage(prompt))

	answer, err := s.complete(ctx, chat, CompletionOptions{
		Model:       s.cfg.Model,
		Temperature: s.cfg.Temperature,
		MaxTokens:   s.cfg.MaxTokens,
	})
	if err != nil {
		// No assistant turn is recorded for a failed call.
		return &ChatResult{Message: legalFallback(language), Documents: documents}, nil
	}

	s.memory.Append(models.AssistantMessage(answer))
	return &ChatResult{Message: answer, Documents: documents}, nil
}

func (s *ChatService) handleNoDocuments(ctx context.Context, message, language string) (*ChatResult, error) {
	categories, err := s.repo.Categories(ctx, language)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	answer, err := s.complete(ctx, []models.ChatMessage{
		models.SystemMessage(systemPrompt(language)),
		models.UserMessage(buildNoDocumentsPrompt(message, language)),
	}, CompletionOptions{
		Model:       s.cfg.Model,
		Temperature: conversationalTemperature,
		MaxTokens:   conversationalMaxTokens,
	})
	if err != nil {
		answer = noDocumentsFallback(language)
	}
	return &ChatResult{Message: answer, Categories: categories}, nil
}

// complete calls the backend and logs the outcome, including the
// provider's error code and type when available.
func (s *ChatService) complete(ctx context.Context, messages []models.ChatMessage, opts CompletionOptions) (string, error) {
	start := time.Now()
	answer, err := s.llm.Complete(ctx, messages, opts)
	if err != nil {
		var completionErr *CompletionError
		if errors.As(err, &completionErr) {
			s.logger.Error("LLM call failed",
				zap.String("error_code", completionErr.Code),
				zap.String("error_type", completionErr.Type),
				zap.Duration("elapsed", time.Since(start)),
				zap.Error(err),
			)
		} else {
			s.logger.Error("LLM call failed",
				zap.Duration("elapsed", time.Since(start)),
				zap.Error(err),
			)
		}
		return "", err
	}

	s.logger.Info("LLM call succeeded", zap.Duration("elapsed", time.Since(start)))
	return answer, nil
}
