package repository

import (
	"context"
	"sort"
	"strings"

	"legal-chatbot/internal/models"
	"legal-chatbot/internal/search"

	"go.uber.org/zap"
)

// MemoryDocumentRepository serves the corpus from a slice built at
// construction time. The slice is never mutated afterwards, so concurrent
// readers need no synchronization.
type MemoryDocumentRepository struct {
	documents []models.Document
	logger    *zap.Logger
}

func NewMemoryDocumentRepository(documents []models.Document, logger *zap.Logger) *MemoryDocumentRepository {
	return &MemoryDocumentRepository{
		documents: documents,
		logger:    logger,
	}
}

// NewSeededMemoryRepository builds a repository over the built-in corpus.
func NewSeededMemoryRepository(logger *zap.Logger) *MemoryDocumentRepository {
	return NewMemoryDocumentRepository(SeedCorpus(), logger)
}

func (r *MemoryDocumentRepository) GetAll(_ context.Context) ([]models.Document, error) {
	return r.active("", ""), nil
}

func (r *MemoryDocumentRepository) GetByID(_ context.Context, id int) (*models.Document, error) {
	for _, doc := range r.documents {
		if doc.ID == id && doc.IsActive {
			d := doc
			return &d, nil
		}
	}
	return nil, nil
}

func (r *MemoryDocumentRepository) Search(_ context.Context, query, language, category string) ([]models.Document, error) {
	filtered := r.active(language, category)
	results := search.Rank(filtered, query)

	r.logger.Debug("Document search completed",
		zap.Int("filtered", len(filtered)),
		zap.Int("results", len(results)),
	)
	return results, nil
}

func (r *MemoryDocumentRepository) Categories(_ context.Context, language string) ([]string, error) {
	seen := make(map[string]struct{})
	var categories []string
	for _, doc := range r.active(language, "") {
		if _, ok := seen[doc.Category]; ok {
			continue
		}
		seen[doc.Category] = struct{}{}
		categories = append(categories, doc.Category)
	}
	sort.Strings(categories)
	return categories, nil
}

func (r *MemoryDocumentRepository) Similar(_ context.Context, id, count int) ([]models.Document, error) {
	var anchor *models.Document
	for _, doc := range r.documents {
		if doc.ID == id {
			d := doc
			anchor = &d
			break
		}
	}
	if anchor == nil {
		return nil, nil
	}

	var similar []models.Document
	for _, doc := range r.documents {
		if doc.ID == id || !doc.IsActive {
			continue
		}
		if doc.Category == anchor.Category && doc.Language == anchor.Language {
			similar = append(similar, doc)
		}
	}
	sort.SliceStable(similar, func(i, j int) bool {
		return similar[i].Year > similar[j].Year
	})
	if count >= 0 && len(similar) > count {
		similar = similar[:count]
	}
	return similar, nil
}

// active returns active documents matching the case-insensitive language
// and category filters; empty filters match everything.
func (r *MemoryDocumentRepository) active(language, category string) []models.Document {
	var docs []models.Document
	for _, doc := range r.documents {
		if !doc.IsActive {
			continue
		}
		if language != "" && !strings.EqualFold(doc.Language, language) {
			continue
		}
		if category != "" && !strings.EqualFold(doc.Category, category) {
			continue
		}
		docs = append(docs, doc)
	}
	return docs
}
