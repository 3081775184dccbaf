package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"phone-assistant/internal/chat/repository"
	"phone-assistant/pkg/log"
	pkgsqlite "phone-assistant/pkg/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS logs (
	id TEXT PRIMARY KEY,
	session_id TEXT NOT NULL,
	event_type TEXT NOT NULL CHECK (event_type IN ('new_session', 'message', 'error', 'delete_session')),
	timestamp TEXT NOT NULL,
	user_message TEXT,
	bot_response TEXT,
	intent TEXT,
	error_details TEXT,
	metadata TEXT
);
CREATE INDEX IF NOT EXISTS idx_logs_session ON logs(session_id, id);
`

type implRepository struct {
	db  *sql.DB
	l   log.Logger
	now func() time.Time
}

// New creates a SQLite-backed Repository for the chat event log and applies its schema.
func New(ctx context.Context, db *sql.DB, l log.Logger) (repository.Repository, error) {
	if db == nil {
		panic("chat/repository/sqlite: db is required")
	}
	if err := pkgsqlite.Migrate(ctx, db, schema); err != nil {
		return nil, err
	}
	return &implRepository{db: db, l: l, now: time.Now}, nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("chat/repository/sqlite.%s", method)
}
