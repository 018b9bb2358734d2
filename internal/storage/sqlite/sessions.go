package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sandevgo/factbot/internal/core"
	"github.com/sandevgo/factbot/pkg/log"
)

// SessionsRepo persists per-session fact state as a JSON document keyed by
// session id. One row per conversation; the platform's session expiry is the
// only eviction.
type SessionsRepo struct {
	db *sql.DB
}

func NewSessionsRepo(db *sql.DB) *SessionsRepo {
	return &SessionsRepo{db: db}
}

// Load returns the stored state for sessionID, or a fresh empty state for a
// session seen for the first time.
func (r *SessionsRepo) Load(ctx context.Context, sessionID string) (*core.SessionState, error) {
	var raw string
	query := `SELECT state FROM sessions WHERE session_id = ?`
	err := r.db.QueryRowContext(ctx, query, sessionID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		log.FromCtx(ctx).Debug().Str("session", sessionID).Msg("new session")
		return core.NewSessionState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	state := core.NewSessionState()
	if err := json.Unmarshal([]byte(raw), state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session state: %w", err)
	}
	if state.Remaining == nil {
		state.Remaining = make(map[string][]string)
	}
	return state, nil
}

func (r *SessionsRepo) Save(ctx context.Context, sessionID string, state *core.SessionState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal session state: %w", err)
	}

	query := `INSERT INTO sessions (session_id, state, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
	          ON CONFLICT(session_id) DO UPDATE SET state = excluded.state, updated_at = CURRENT_TIMESTAMP`
	if _, err := r.db.ExecContext(ctx, query, sessionID, string(raw)); err != nil {
		return fmt.Errorf("failed to upsert session: %w", err)
	}
	return nil
}
