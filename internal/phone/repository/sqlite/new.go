package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"phone-assistant/internal/phone/repository"
	"phone-assistant/pkg/log"
	pkgsqlite "phone-assistant/pkg/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS phones (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	brand TEXT NOT NULL,
	price INTEGER,
	os TEXT,
	display_size_inch REAL,
	display_type TEXT,
	refresh_rate INTEGER,
	processor TEXT,
	ram_gb INTEGER,
	storage_gb INTEGER,
	battery_mah INTEGER,
	charging_speed_w INTEGER,
	rear_camera_mp INTEGER,
	front_camera_mp INTEGER,
	camera_features TEXT,
	network TEXT,
	weight_g INTEGER,
	rating REAL CHECK (rating IS NULL OR (rating >= 0 AND rating <= 5)),
	popularity_score INTEGER NOT NULL DEFAULT 0,
	features TEXT NOT NULL DEFAULT '[]',
	use_cases TEXT NOT NULL DEFAULT '[]',
	pros TEXT NOT NULL DEFAULT '[]',
	cons TEXT NOT NULL DEFAULT '[]',
	released_year INTEGER
);
CREATE INDEX IF NOT EXISTS idx_phones_rank ON phones(popularity_score DESC, rating DESC);
`

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed Repository for the phone catalog and applies its schema.
func New(ctx context.Context, db *sql.DB, l log.Logger) (repository.Repository, error) {
	if db == nil {
		panic("phone/repository/sqlite: db is required")
	}
	if err := pkgsqlite.Migrate(ctx, db, schema); err != nil {
		return nil, err
	}
	return &implRepository{db: db, l: l}, nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("phone/repository/sqlite.%s", method)
}
