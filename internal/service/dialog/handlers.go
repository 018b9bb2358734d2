package dialog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sandevgo/factbot/internal/catalog"
	"github.com/sandevgo/factbot/internal/core"
)

// FallbackPrompt is what the user hears when a turn cannot be understood or
// served. Never a raw error.
const FallbackPrompt = "Sorry, I didn't catch that. Which kind of fact would you like?"

const (
	promptAnother    = "Would you like to hear another one?"
	promptAnotherCat = "Would you like another cat fact?"
	promptWhatNext   = "So, what would you like to hear about?"
	speechHeardAll   = "Wow, looks like you've heard everything I know. Thanks for listening!"
	speechGoodbye    = "Alright, come back any time. Bye!"
)

var confirmSuggestions = []string{"Sure", "No thanks"}

func (e *Engine) handleWelcome(ctx context.Context, req *core.TurnRequest, state *core.SessionState) (*core.TurnResponse, error) {
	speech := fmt.Sprintf(
		"Hi, I'm %s! I can tell you facts about the company's %s, or about cats. Which would you like?",
		core.FactbotName, humanOr(lowered(e.cat.ContentLabels())),
	)

	return &core.TurnResponse{
		Speech:      speech,
		Suggestions: append(e.cat.ContentLabels(), e.cat.Cats.Label),
		Contexts:    []core.ContextUpdate{chooseFactContext("")},
	}, nil
}

func (e *Engine) handleTellFact(ctx context.Context, req *core.TurnRequest, state *core.SessionState) (*core.TurnResponse, error) {
	categoryID := req.Param(core.ParamCategory)
	if categoryID == "" {
		return e.askForCategory(), nil
	}

	// Some agent definitions route "cats" through the category slot rather
	// than the dedicated intent.
	if categoryID == catalog.CatsID {
		return e.handleTellCatFact(ctx, req, state)
	}

	fact, err := e.pick(state, categoryID)
	if errors.Is(err, ErrDepleted) {
		return e.redirect(state, categoryID)
	}
	if err != nil {
		return nil, err
	}

	cat, _ := e.cat.Category(categoryID)
	return &core.TurnResponse{
		Speech:      speak(cat.Prefix, fact, promptAnother),
		Suggestions: confirmSuggestions,
		Contexts:    []core.ContextUpdate{chooseFactContext(categoryID)},
	}, nil
}

// redirect handles depletion of a content category: steer the session to a
// category that still has facts, or end the conversation when nothing is
// left anywhere.
func (e *Engine) redirect(state *core.SessionState, depletedID string) (*core.TurnResponse, error) {
	if e.contentDepleted(state) {
		return heardItAll(), nil
	}

	depleted, ok := e.cat.Category(depletedID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, depletedID)
	}

	fallback, ok := e.fallbackCategory(state, depletedID)
	if !ok {
		// Unreachable after the contentDepleted check as long as the catalog
		// passed startup validation.
		return nil, catalog.ErrNoFallbackCategory
	}

	parts := []string{
		fmt.Sprintf("Looks like you've heard all the %s facts I know.", strings.ToLower(depleted.Label)),
		fmt.Sprintf("I could tell you about the %s instead.", strings.ToLower(fallback.Label)),
	}
	suggestions := []string{fallback.Label}

	if e.catsAvailable(state) {
		parts = append(parts, "I've also got some cat facts, if you're curious.")
		suggestions = append(suggestions, e.cat.Cats.Label)
	}
	parts = append(parts, promptWhatNext)

	return &core.TurnResponse{
		Speech:      speak(parts...),
		Suggestions: suggestions,
		Contexts:    []core.ContextUpdate{chooseFactContext(fallback.ID)},
	}, nil
}

func (e *Engine) handleTellCatFact(ctx context.Context, req *core.TurnRequest, state *core.SessionState) (*core.TurnResponse, error) {
	fact, err := e.pick(state, catalog.CatsID)
	if errors.Is(err, ErrDepleted) {
		return e.leaveCatsFlow(state), nil
	}
	if err != nil {
		return nil, err
	}

	return &core.TurnResponse{
		Speech:      speak(e.cat.Cats.Prefix, fact, promptAnotherCat),
		Suggestions: confirmSuggestions,
		Contexts: []core.ContextUpdate{
			{Name: core.ContextChooseCats, Lifespan: core.ContextLifespan},
		},
	}, nil
}

// leaveCatsFlow is the one-way hand-off out of the cats sub-flow: close the
// cats context, reopen the content context with no forced category, and ask
// about the content categories. Never routes back into cats automatically.
func (e *Engine) leaveCatsFlow(state *core.SessionState) *core.TurnResponse {
	if e.contentDepleted(state) {
		return heardItAll()
	}

	speech := speak(
		"Looks like you've heard all the cat facts I know.",
		fmt.Sprintf("Would you like to hear about the company's %s instead?", humanOr(lowered(e.cat.ContentLabels()))),
	)

	return &core.TurnResponse{
		Speech:      speech,
		Suggestions: e.cat.ContentLabels(),
		Contexts: []core.ContextUpdate{
			{Name: core.ContextChooseCats, Lifespan: 0},
			chooseFactContext(""),
		},
	}
}

func (e *Engine) handleQuit(ctx context.Context, req *core.TurnRequest, state *core.SessionState) (*core.TurnResponse, error) {
	return &core.TurnResponse{
		Speech:          speechGoodbye,
		EndConversation: true,
	}, nil
}

func (e *Engine) askForCategory() *core.TurnResponse {
	return &core.TurnResponse{
		Speech: fmt.Sprintf(
			"I can tell you facts about the company's %s, or about cats. Which would you like?",
			humanOr(lowered(e.cat.ContentLabels())),
		),
		Suggestions: append(e.cat.ContentLabels(), e.cat.Cats.Label),
		Contexts:    []core.ContextUpdate{chooseFactContext("")},
	}
}

func (e *Engine) clarify() *core.TurnResponse {
	return &core.TurnResponse{
		Speech:      FallbackPrompt,
		Suggestions: append(e.cat.ContentLabels(), e.cat.Cats.Label),
	}
}

// heardItAll is terminal: no context update, conversation over.
func heardItAll() *core.TurnResponse {
	return &core.TurnResponse{
		Speech:          speechHeardAll,
		EndConversation: true,
	}
}

func chooseFactContext(categoryID string) core.ContextUpdate {
	c := core.ContextUpdate{
		Name:     core.ContextChooseFact,
		Lifespan: core.ContextLifespan,
	}
	if categoryID != "" {
		c.Params = map[string]string{core.ParamCategory: categoryID}
	}
	return c
}

func speak(parts ...string) string {
	return strings.Join(parts, " ")
}

// humanOr renders a spoken list: "history", "history or headquarters",
// "history, headquarters or finances".
func humanOr(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
	}
}

func lowered(items []string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = strings.ToLower(s)
	}
	return out
}
