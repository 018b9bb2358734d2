package core

import "context"

// SessionState is the per-session mutable record: for each category touched
// so far, the facts not yet told in this session. Categories are initialized
// lazily from the catalog on first access, so a missing key means "untouched"
// and an empty slice means "depleted".
type SessionState struct {
	Remaining map[string][]string `json:"remaining"`
}

func NewSessionState() *SessionState {
	return &SessionState{Remaining: make(map[string][]string)}
}

// SessionRepository persists session fact state between turns. The dialog
// engine never touches it; the transport loads before a turn and saves after.
type SessionRepository interface {
	Load(ctx context.Context, sessionID string) (*SessionState, error)
	Save(ctx context.Context, sessionID string, state *SessionState) error
}
