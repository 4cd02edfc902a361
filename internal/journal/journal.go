package journal

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/thenoetrevino/asta/internal/session"
)

// Entry is one recorded session event.
type Entry struct {
	Seq    int
	Kind   string
	Index  int
	Cursor int
	Entity string
	Label  string
	Value  string
}

// Journal records the events of one session. It observes the controller and
// never changes session state.
type Journal struct {
	db        *sql.DB
	ctx       context.Context
	sessionID string
	seq       int
	logger    *slog.Logger
}

// SessionInfo describes the session being recorded.
type SessionInfo struct {
	InputPath   string
	EntityCount int
	Operator    string
}

// Open opens (or creates) the journal at path and starts a new session record.
func Open(ctx context.Context, path string, info SessionInfo) (*Journal, error) {
	db, err := openDB(ctx, path)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	_, err = db.ExecContext(ctx,
		`INSERT INTO sessions (id, input_path, entity_count, operator) VALUES (?, ?, ?, ?)`,
		id, info.InputPath, info.EntityCount, info.Operator,
	)
	if err != nil {
		closeDB(db)
		return nil, fmt.Errorf("failed to start session record: %w", err)
	}

	return &Journal{
		db:        db,
		ctx:       ctx,
		sessionID: id,
		logger:    slog.Default().With("session_id", id),
	}, nil
}

// SessionID returns the id of the session being recorded.
func (j *Journal) SessionID() string {
	return j.sessionID
}

// SessionChanged appends the event. Write failures are logged, not
// propagated: the journal must never interrupt a session.
func (j *Journal) SessionChanged(e session.Event) {
	j.seq++
	_, err := j.db.ExecContext(j.ctx, `
		INSERT INTO journal_entries (session_id, seq, kind, entity_index, cursor, entity, label, value)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		j.sessionID, j.seq, e.Kind.String(), e.Index, e.Cursor,
		e.Entity.Name, e.Assignment.Label, e.Assignment.Value.String(),
	)
	if err != nil {
		j.logger.Error("failed to record journal entry", "kind", e.Kind.String(), "error", err)
		return
	}

	if e.Kind == session.EventEnded {
		_, err = j.db.ExecContext(j.ctx,
			`UPDATE sessions SET ended_at = CURRENT_TIMESTAMP WHERE id = ?`, j.sessionID)
		if err != nil {
			j.logger.Error("failed to mark session ended", "error", err)
		}
	}
}

// Entries returns the recorded events of the current session, in order.
func (j *Journal) Entries(ctx context.Context) ([]Entry, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT seq, kind, entity_index, cursor, entity, label, value
		FROM journal_entries
		WHERE session_id = ?
		ORDER BY seq`, j.sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Seq, &e.Kind, &e.Index, &e.Cursor, &e.Entity, &e.Label, &e.Value); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the underlying database.
func (j *Journal) Close() error {
	return j.db.Close()
}
