package dialog

import "errors"

var (
	// ErrInvalidCategory means the platform passed a category the catalog
	// does not know. A configuration error on the agent side, never a user
	// mistake.
	ErrInvalidCategory = errors.New("unknown fact category")

	// ErrDepleted signals that a session has been told every fact in a
	// category. Control flow for the redirect policy, not a failure.
	ErrDepleted = errors.New("category depleted for session")
)
