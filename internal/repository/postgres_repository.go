package repository

import (
	"context"
	"fmt"
	"strings"

	"legal-chatbot/internal/models"
	"legal-chatbot/internal/search"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// PostgresDocumentRepository serves the corpus from the legal_documents
// table. Ranking happens in-process on the filtered rows so the search
// contract is identical to the in-memory backend.
type PostgresDocumentRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewPostgresDocumentRepository(db *pgxpool.Pool, logger *zap.Logger) *PostgresDocumentRepository {
	return &PostgresDocumentRepository{
		db:     db,
		logger: logger,
	}
}

var documentColumns = []string{
	"id", "title", "content", "year", "language", "category",
	"last_updated", "COALESCE(source, '')", "is_active",
}

func (r *PostgresDocumentRepository) GetAll(ctx context.Context) ([]models.Document, error) {
	query := squirrel.Select(documentColumns...).
		From("legal_documents").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryDocuments(ctx, query)
}

func (r *PostgresDocumentRepository) GetByID(ctx context.Context, id int) (*models.Document, error) {
	query := squirrel.Select(documentColumns...).
		From("legal_documents").
		Where(squirrel.Eq{"id": id, "is_active": true}).
		PlaceholderFormat(squirrel.Dollar)

	docs, err := r.queryDocuments(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return &docs[0], nil
}

func (r *PostgresDocumentRepository) Search(ctx context.Context, queryText, language, category string) ([]models.Document, error) {
	query := squirrel.Select(documentColumns...).
		From("legal_documents").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if language != "" {
		query = query.Where(squirrel.Expr("LOWER(language) = ?", strings.ToLower(language)))
	}
	if category != "" {
		query = query.Where(squirrel.Expr("LOWER(category) = ?", strings.ToLower(category)))
	}

	docs, err := r.queryDocuments(ctx, query)
	if err != nil {
		return nil, err
	}

	results := search.Rank(docs, queryText)
	r.logger.Debug("Document search completed",
		zap.Int("filtered", len(docs)),
		zap.Int("results", len(results)),
	)
	return results, nil
}

func (r *PostgresDocumentRepository) Categories(ctx context.Context, language string) ([]string, error) {
	query := squirrel.Select("DISTINCT category").
		From("legal_documents").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("category ASC").
		PlaceholderFormat(squirrel.Dollar)

	if language != "" {
		query = query.Where(squirrel.Expr("LOWER(language) = ?", strings.ToLower(language)))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build categories query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *PostgresDocumentRepository) Similar(ctx context.Context, id, count int) ([]models.Document, error) {
	if count < 0 {
		count = 0
	}
	anchorQuery := squirrel.Select("category", "language").
		From("legal_documents").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := anchorQuery.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build anchor query: %w", err)
	}

	var category, language string
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&category, &language); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load anchor document: %w", err)
	}

	query := squirrel.Select(documentColumns...).
		From("legal_documents").
		Where(squirrel.Eq{"category": category, "language": language, "is_active": true}).
		Where(squirrel.NotEq{"id": id}).
		OrderBy("year DESC").
		Limit(uint64(count)).
		PlaceholderFormat(squirrel.Dollar)

	return r.queryDocuments(ctx, query)
}

func (r *PostgresDocumentRepository) queryDocuments(ctx context.Context, query squirrel.SelectBuilder) ([]models.Document, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build documents query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	var docs []models.Document
	for rows.Next() {
		var doc models.Document
		if err := rows.Scan(
			&doc.ID, &doc.Title, &doc.Content, &doc.Year, &doc.Language,
			&doc.Category, &doc.LastUpdated, &doc.Source, &doc.IsActive,
		); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}
