// Package dialog implements the fulfillment core: the session-scoped fact
// depletion state machine and the intent dispatcher driving it. It performs
// no I/O; the transport loads session state before a turn and persists it
// after.
package dialog

import (
	"context"
	"errors"

	"github.com/sandevgo/factbot/internal/catalog"
	"github.com/sandevgo/factbot/internal/core"
	"github.com/sandevgo/factbot/pkg/log"
)

// HandlerFunc processes one decoded turn against the session's fact state.
type HandlerFunc func(ctx context.Context, req *core.TurnRequest, state *core.SessionState) (*core.TurnResponse, error)

type Engine struct {
	cat      *catalog.Catalog
	rnd      Rand
	handlers map[string]HandlerFunc
}

// New builds the engine over a validated catalog. A nil rnd gets the
// concurrency-safe default source; tests pass their own seeded one.
func New(cat *catalog.Catalog, rnd Rand) *Engine {
	if rnd == nil {
		rnd = newDefaultRand()
	}

	e := &Engine{
		cat: cat,
		rnd: rnd,
	}

	e.handlers = map[string]HandlerFunc{
		core.IntentWelcome:     e.handleWelcome,
		core.IntentTellFact:    e.handleTellFact,
		core.IntentTellCatFact: e.handleTellCatFact,
		core.IntentChooseCats:  e.handleTellCatFact,
		core.IntentQuit:        e.handleQuit,
	}
	return e
}

// Handle routes the turn to exactly one intent handler. Unmapped intents and
// invalid categories are agent configuration errors: logged, and the user
// gets the clarifying prompt instead of a raw failure.
func (e *Engine) Handle(ctx context.Context, req *core.TurnRequest, state *core.SessionState) (*core.TurnResponse, error) {
	logger := log.FromCtx(ctx)

	h, ok := e.handlers[req.Intent]
	if !ok {
		logger.Warn().Str("intent", req.Intent).Msg("no handler registered for intent")
		return e.clarify(), nil
	}

	resp, err := h(ctx, req, state)
	if err != nil {
		if errors.Is(err, ErrInvalidCategory) {
			logger.Error().Err(err).Str("intent", req.Intent).Msg("platform sent a category missing from the catalog")
			return e.clarify(), nil
		}
		return nil, err
	}

	logger.Debug().
		Str("intent", req.Intent).
		Bool("end", resp.EndConversation).
		Msg("turn handled")
	return resp, nil
}
