// Command seed creates the legal_documents table and loads the built-in
// corpus into Postgres for the "postgres" documents backend.
package main

import (
	"context"
	"log"

	"legal-chatbot/internal/models"
	"legal-chatbot/internal/repository"
	"legal-chatbot/pkg/config"
	"legal-chatbot/pkg/logger"
	"legal-chatbot/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const schema = `
CREATE TABLE IF NOT EXISTS legal_documents (
    id           INTEGER PRIMARY KEY,
    title        TEXT NOT NULL,
    content      TEXT NOT NULL,
    year         INTEGER NOT NULL,
    language     TEXT NOT NULL,
    category     TEXT NOT NULL,
    last_updated TIMESTAMPTZ,
    source       TEXT,
    is_active    BOOLEAN NOT NULL DEFAULT TRUE
)`

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	appLogger.Info("Starting corpus seeding")

	if _, err := db.Exec(ctx, schema); err != nil {
		appLogger.Fatal("Failed to create schema", zap.Error(err))
	}

	corpus := repository.SeedCorpus()
	if err := seedDocuments(ctx, db, corpus); err != nil {
		appLogger.Fatal("Failed to seed documents", zap.Error(err))
	}

	appLogger.Info("Corpus seeding completed", zap.Int("documents", len(corpus)))
}

func seedDocuments(ctx context.Context, db *pgxpool.Pool, docs []models.Document) error {
	for _, doc := range docs {
		query := squirrel.Insert("legal_documents").
			Columns("id", "title", "content", "year", "language", "category", "last_updated", "source", "is_active").
			Values(doc.ID, doc.Title, doc.Content, doc.Year, doc.Language, doc.Category, doc.LastUpdated, nullableString(doc.Source), doc.IsActive).
			Suffix(`ON CONFLICT (id) DO UPDATE SET
				title = EXCLUDED.title,
				content = EXCLUDED.content,
				year = EXCLUDED.year,
				language = EXCLUDED.language,
				category = EXCLUDED.category,
				last_updated = EXCLUDED.last_updated,
				source = EXCLUDED.source,
				is_active = EXCLUDED.is_active`).
			PlaceholderFormat(squirrel.Dollar)

		sql, args, err := query.ToSql()
		if err != nil {
			return err
		}
		if _, err := db.Exec(ctx, sql, args...); err != nil {
			return err
		}
	}
	return nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
