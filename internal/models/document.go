package models

import "time"

// Document is an immutable unit of corpus content. ID, Language and
// Category are stable for the process lifetime; inactive documents are
// invisible to retrieval.
type Document struct {
	ID          int        `db:"id"`
	Title       string     `db:"title"`
	Content     string     `db:"content"`
	Year        int        `db:"year"`
	Language    string     `db:"language"`
	Category    string     `db:"category"`
	LastUpdated *time.Time `db:"last_updated"`
	Source      string     `db:"source"`
	IsActive    bool       `db:"is_active"`
}
