package handlers

import (
	"fmt"
	"strings"
	"time"

	"legal-chatbot/internal/dto"
	"legal-chatbot/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ChatHandler struct {
	chatService *service.ChatService
	logger      *zap.Logger
}

func NewChatHandler(chatService *service.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// PostChatMessage godoc
// @Summary Ask the legal assistant a question
// @Description Answers a natural-language question about North Macedonian legal and accounting matters, grounded in the document corpus
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "User message and optional language (en or mk)"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {string} string "Message cannot be empty"
// @Failure 500 {object} dto.ChatResponse
// @Router /api/chat [post]
func (h *ChatHandler) PostChatMessage(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Message cannot be empty")
	}
	if strings.TrimSpace(req.Message) == "" {
		return c.Status(fiber.StatusBadRequest).SendString("Message cannot be empty")
	}

	requestID := uuid.New().String()
	language := service.NormalizeLanguage(req.Language)
	h.logger.Info("Chat request received",
		zap.String("request_id", requestID),
		zap.String("language", language),
	)

	result, err := h.chatService.Chat(c.Context(), req.Message, language)
	if err != nil {
		h.logger.Error("Chat request failed",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ChatResponse{
			Message:         service.GenericErrorText(language),
			Timestamp:       time.Now().UTC(),
			Error:           true,
			SourceDocuments: []dto.DocumentReference{},
			SuggestedTopics: []string{},
		})
	}

	references := make([]dto.DocumentReference, 0, len(result.Documents))
	for _, doc := range result.Documents {
		references = append(references, dto.DocumentReference{
			ID:       doc.ID,
			Title:    doc.Title,
			Year:     doc.Year,
			Category: doc.Category,
		})
	}

	topics := make([]string, 0, len(result.Categories))
	for _, category := range result.Categories {
		topics = append(topics, formatTopicSuggestion(category))
	}

	return c.JSON(dto.ChatResponse{
		Message:         result.Message,
		Timestamp:       time.Now().UTC(),
		Error:           false,
		SourceDocuments: references,
		SuggestedTopics: topics,
	})
}

func formatTopicSuggestion(category string) string {
	return fmt.Sprintf("Questions about %s", category)
}
