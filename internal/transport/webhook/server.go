// Package webhook is the platform adapter: it exposes the fulfillment
// endpoint, decodes platform turns into core requests, runs the dialog
// engine against the session's stored fact state and renders the directive
// back into fulfillment JSON.
package webhook

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sandevgo/factbot/internal/config"
	"github.com/sandevgo/factbot/internal/core"
	"github.com/sandevgo/factbot/internal/service/dialog"
	"github.com/sandevgo/factbot/pkg/log"
)

// Engine handles one decoded turn against mutable session state.
type Engine interface {
	Handle(ctx context.Context, req *core.TurnRequest, state *core.SessionState) (*core.TurnResponse, error)
}

type Server struct {
	app      *fiber.App
	cfg      *config.ServerConfig
	engine   Engine
	sessions core.SessionRepository
}

func NewServer(
	ctx context.Context,
	cfg *config.ServerConfig,
	engine Engine,
	sessions core.SessionRepository,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:               core.FactbotName,
		ReadTimeout:           cfg.ReadTimeout,
		DisableStartupMessage: true,
	})

	s := &Server{
		app:      app,
		cfg:      cfg,
		engine:   engine,
		sessions: sessions,
	}

	// Propagate the signal-aware base context (with logger) into handlers.
	app.Use(func(c *fiber.Ctx) error {
		c.SetUserContext(ctx)
		return c.Next()
	})

	app.Post("/fulfillment", s.handleFulfillment)
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	return s
}

func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("addr", s.cfg.ListenAddr).Msg("starting fulfillment server")
	return s.app.Listen(s.cfg.ListenAddr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown()
}

func (s *Server) handleFulfillment(c *fiber.Ctx) error {
	ctx := c.UserContext()
	logger := log.FromCtx(ctx)

	req := &WebhookRequest{}
	if err := c.BodyParser(req); err != nil {
		logger.Warn().Err(err).Msg("malformed fulfillment request")
		return c.SendStatus(fiber.StatusBadRequest)
	}

	sessionID := sessionIDFrom(req.Session)

	// Contexts are rendered under the same path the state is stored for,
	// so a synthetic id replaces an empty platform session everywhere.
	sessionPath := req.Session
	if sessionPath == "" {
		sessionPath = sessionID
	}

	turn := &core.TurnRequest{
		Session: sessionID,
		Intent:  req.QueryResult.Intent.DisplayName,
		Params:  stringParams(req.QueryResult.Parameters),
	}

	state, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		logger.Error().Err(err).Str("session", sessionID).Msg("failed to load session state")
		return c.JSON(fallback(sessionPath))
	}

	resp, err := s.engine.Handle(ctx, turn, state)
	if err != nil {
		logger.Error().Err(err).Str("session", sessionID).Str("intent", turn.Intent).Msg("turn failed")
		return c.JSON(fallback(sessionPath))
	}

	// A turn that was answered but not persisted would repeat facts later,
	// so a failed save degrades the whole turn.
	if err := s.sessions.Save(ctx, sessionID, state); err != nil {
		logger.Error().Err(err).Str("session", sessionID).Msg("failed to save session state")
		return c.JSON(fallback(sessionPath))
	}

	return c.JSON(render(sessionPath, resp, req.HasScreenOutput()))
}

// fallback is the generic clarifying answer; the platform never sees a raw
// error.
func fallback(sessionPath string) *WebhookResponse {
	return render(sessionPath, &core.TurnResponse{Speech: dialog.FallbackPrompt}, true)
}

// sessionIDFrom extracts the trailing id from the platform session path
// ("projects/<p>/agent/sessions/<id>"). Requests without one get a synthetic
// id so they never share state.
func sessionIDFrom(sessionPath string) string {
	if i := strings.LastIndex(sessionPath, "/"); i >= 0 {
		sessionPath = sessionPath[i+1:]
	}
	if sessionPath == "" {
		return uuid.NewString()
	}
	return sessionPath
}

// stringParams keeps the string-valued parameters; that is all the intent
// schema defines, anything else is platform noise.
func stringParams(params map[string]any) map[string]string {
	out := make(map[string]string, len(params))
	for k, v := range params {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}
