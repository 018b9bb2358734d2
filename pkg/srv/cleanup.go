package srv

import "context"

// cleanupService wraps a closer so resources like the session database join
// the shutdown sequence alongside the real services.
type cleanupService struct {
	cleanup func() error
}

// NewCleanup wraps fn as a Service that only acts at shutdown.
func NewCleanup(fn func() error) Service {
	return &cleanupService{cleanup: fn}
}

func (c *cleanupService) Start(ctx context.Context) error {
	// Nothing to run; the work happens at shutdown.
	return nil
}

func (c *cleanupService) Shutdown(ctx context.Context) error {
	if c.cleanup == nil {
		return nil
	}
	return c.cleanup()
}
