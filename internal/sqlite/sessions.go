// File path: internal/sqlite/sessions.go
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Session is one stored handover generation.
type Session struct {
	ID             int64          `db:"id"`
	SessionID      string         `db:"session_id"`
	ShiftNotes     string         `db:"shift_notes"`
	AlarmsJSON     sql.NullString `db:"alarms_json"`
	TrendsCSV      sql.NullString `db:"trends_csv"`
	MarkdownOutput string         `db:"markdown_output"`
	RecordJSON     string         `db:"record_json"`
	CreatedAt      time.Time      `db:"created_at"`
}

// SaveSession inserts a generated handover session.
func (s *Store) SaveSession(ctx context.Context, session *Session) error {
	if s == nil || s.db == nil {
		return errors.New("sqlite store not initialised")
	}
	if session == nil {
		return errors.New("session required")
	}
	const query = `INSERT INTO handover_sessions
                (session_id, shift_notes, alarms_json, trends_csv, markdown_output, record_json)
                VALUES (:session_id, :shift_notes, :alarms_json, :trends_csv, :markdown_output, :record_json)`
	if _, err := s.db.NamedExecContext(ctx, query, session); err != nil {
		return fmt.Errorf("insert handover session: %w", err)
	}
	return nil
}

// GetSession fetches a session by its public identifier. A missing session
// yields (nil, nil).
func (s *Store) GetSession(ctx context.Context, sessionID string) (*Session, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("sqlite store not initialised")
	}
	const query = `SELECT id, session_id, shift_notes, alarms_json, trends_csv,
                markdown_output, record_json, created_at
                FROM handover_sessions WHERE session_id = ?`
	var session Session
	if err := s.db.GetContext(ctx, &session, query, sessionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load handover session: %w", err)
	}
	return &session, nil
}

// RecentSessions lists the newest sessions, most recent first.
func (s *Store) RecentSessions(ctx context.Context, limit int) ([]Session, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("sqlite store not initialised")
	}
	if limit <= 0 {
		limit = 20
	}
	const query = `SELECT id, session_id, shift_notes, alarms_json, trends_csv,
                markdown_output, record_json, created_at
                FROM handover_sessions ORDER BY created_at DESC, id DESC LIMIT ?`
	var sessions []Session
	if err := s.db.SelectContext(ctx, &sessions, query, limit); err != nil {
		return nil, fmt.Errorf("list handover sessions: %w", err)
	}
	return sessions, nil
}
