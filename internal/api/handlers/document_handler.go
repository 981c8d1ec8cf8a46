package handlers

import (
	"strconv"

	"legal-chatbot/internal/dto"
	"legal-chatbot/internal/repository"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type DocumentHandler struct {
	repo   repository.DocumentRepository
	logger *zap.Logger
}

func NewDocumentHandler(repo repository.DocumentRepository, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{
		repo:   repo,
		logger: logger,
	}
}

// ListDocuments godoc
// @Summary List corpus documents
// @Description Returns references to every active document in the legal corpus
// @Tags documents
// @Produce json
// @Success 200 {array} dto.DocumentReference
// @Router /api/documents [get]
func (h *DocumentHandler) ListDocuments(c *fiber.Ctx) error {
	docs, err := h.repo.GetAll(c.Context())
	if err != nil {
		h.logger.Error("Failed to list documents", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list documents",
		})
	}

	references := make([]dto.DocumentReference, 0, len(docs))
	for _, doc := range docs {
		references = append(references, dto.DocumentReference{
			ID:       doc.ID,
			Title:    doc.Title,
			Year:     doc.Year,
			Category: doc.Category,
		})
	}
	return c.JSON(references)
}

// SimilarDocuments godoc
// @Summary Find similar documents
// @Description Returns up to count other documents sharing category and language with the given one, newest first
// @Tags documents
// @Produce json
// @Param id path int true "Document ID"
// @Param count query int false "Maximum results" default(3)
// @Success 200 {array} dto.DocumentReference
// @Failure 400 {object} map[string]string
// @Router /api/documents/{id}/similar [get]
func (h *DocumentHandler) SimilarDocuments(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid document ID",
		})
	}
	count := c.QueryInt("count", 3)

	docs, err := h.repo.Similar(c.Context(), id, count)
	if err != nil {
		h.logger.Error("Failed to find similar documents", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to find similar documents",
		})
	}

	references := make([]dto.DocumentReference, 0, len(docs))
	for _, doc := range docs {
		references = append(references, dto.DocumentReference{
			ID:       doc.ID,
			Title:    doc.Title,
			Year:     doc.Year,
			Category: doc.Category,
		})
	}
	return c.JSON(references)
}
