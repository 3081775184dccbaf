package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/oklog/ulid/v2"

	"phone-assistant/internal/chat"
	repo "phone-assistant/internal/chat/repository"
)

const (
	eventColumns = "id, session_id, event_type, timestamp, COALESCE(user_message, ''), COALESCE(bot_response, ''), " +
		"COALESCE(intent, ''), COALESCE(error_details, ''), COALESCE(metadata, '')"

	defaultListLimit = 100
)

// InsertEvent appends one row. Empty text fields are stored as NULL.
func (r *implRepository) InsertEvent(ctx context.Context, opt repo.InsertEventOptions) (chat.Event, error) {
	e := chat.Event{
		ID:           opt.ID,
		SessionID:    opt.SessionID,
		Type:         opt.Type,
		Timestamp:    opt.Timestamp,
		UserMessage:  opt.UserMessage,
		BotResponse:  opt.BotResponse,
		Intent:       opt.Intent,
		ErrorDetails: opt.ErrorDetails,
		Metadata:     opt.Metadata,
	}
	if e.ID == "" {
		e.ID = ulid.Make().String()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = r.now()
	}
	e.Timestamp = e.Timestamp.UTC()

	var metadata sql.NullString
	if len(e.Metadata) > 0 {
		b, err := json.Marshal(e.Metadata)
		if err != nil {
			r.l.Errorf(ctx, "%s: marshal metadata: %v", r.dsn("InsertEvent"), err)
			return chat.Event{}, repo.ErrFailedToInsert
		}
		metadata = sql.NullString{String: string(b), Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO logs (id, session_id, event_type, timestamp, user_message, bot_response, intent, error_details, metadata)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.SessionID, string(e.Type), e.Timestamp.Format(time.RFC3339Nano),
		nullString(e.UserMessage), nullString(e.BotResponse), nullString(e.Intent), nullString(e.ErrorDetails),
		metadata,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("InsertEvent"), err)
		return chat.Event{}, repo.ErrFailedToInsert
	}
	return e, nil
}

// ListEvents returns a session's events in insertion order.
func (r *implRepository) ListEvents(ctx context.Context, opt repo.ListEventsOptions) ([]chat.Event, error) {
	limit := opt.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT "+eventColumns+" FROM logs WHERE session_id = ? ORDER BY id LIMIT ?",
		opt.SessionID, limit,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	events := []chat.Event{}
	for rows.Next() {
		var (
			e         chat.Event
			eventType string
			ts        string
			metadata  string
		)
		if err := rows.Scan(&e.ID, &e.SessionID, &eventType, &ts, &e.UserMessage, &e.BotResponse,
			&e.Intent, &e.ErrorDetails, &metadata); err != nil {
			r.l.Errorf(ctx, "%s: scan: %v", r.dsn("ListEvents"), err)
			return nil, repo.ErrFailedToList
		}
		e.Type = chat.EventType(eventType)
		if e.Timestamp, err = time.Parse(time.RFC3339Nano, ts); err != nil {
			r.l.Errorf(ctx, "%s: timestamp %q: %v", r.dsn("ListEvents"), ts, err)
			return nil, repo.ErrFailedToList
		}
		if metadata != "" {
			if err := json.Unmarshal([]byte(metadata), &e.Metadata); err != nil {
				r.l.Errorf(ctx, "%s: metadata: %v", r.dsn("ListEvents"), err)
				return nil, repo.ErrFailedToList
			}
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, repo.ErrFailedToList
	}
	return events, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
