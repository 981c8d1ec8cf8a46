package repository

import (
	"context"

	"legal-chatbot/internal/models"
)

// DocumentRepository is the read-only view of the legal corpus. All
// operations are side-effect-free and safe for concurrent callers.
type DocumentRepository interface {
	// GetAll returns every active document.
	GetAll(ctx context.Context) ([]models.Document, error)

	// GetByID returns the active document with the given id, or nil.
	GetByID(ctx context.Context, id int) (*models.Document, error)

	// Search returns active documents matching the optional language and
	// category filters, ranked against the query. Filters are
	// case-insensitive; an empty filter matches everything.
	Search(ctx context.Context, query, language, category string) ([]models.Document, error)

	// Categories returns the distinct categories of active documents,
	// sorted ascending, optionally filtered by language.
	Categories(ctx context.Context, language string) ([]string, error)

	// Similar returns up to count other active documents sharing both
	// category and language with the anchor, newest first. An unknown
	// anchor yields an empty result.
	Similar(ctx context.Context, id, count int) ([]models.Document, error)
}
