package dialog

import (
	"fmt"

	"github.com/sandevgo/factbot/internal/catalog"
	"github.com/sandevgo/factbot/internal/core"
)

// remaining returns the live remaining-fact slice for a category, seeding it
// with a copy of the catalog list the first time the session touches the
// category. A missing key means untouched; an empty slice means depleted.
func (e *Engine) remaining(state *core.SessionState, categoryID string) ([]string, error) {
	if state.Remaining == nil {
		state.Remaining = make(map[string][]string)
	}

	if r, ok := state.Remaining[categoryID]; ok {
		return r, nil
	}

	facts, ok := e.cat.Facts(categoryID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, categoryID)
	}

	state.Remaining[categoryID] = facts
	return facts, nil
}

// pick removes and returns a uniformly random remaining fact. Removal is by
// index, so the same fact is never told twice within a session.
func (e *Engine) pick(state *core.SessionState, categoryID string) (string, error) {
	r, err := e.remaining(state, categoryID)
	if err != nil {
		return "", err
	}
	if len(r) == 0 {
		return "", ErrDepleted
	}

	i := e.rnd.Intn(len(r))
	fact := r[i]
	state.Remaining[categoryID] = append(r[:i], r[i+1:]...)
	return fact, nil
}

// contentDepleted reports whether every content category has been touched
// and emptied for this session. Untouched categories still hold their full
// catalog list, so they count as non-depleted.
func (e *Engine) contentDepleted(state *core.SessionState) bool {
	for _, id := range e.cat.ContentIDs() {
		r, ok := state.Remaining[id]
		if !ok || len(r) > 0 {
			return false
		}
	}
	return true
}

// catsAvailable reports whether the cats bucket is untouched or still has
// facts left for this session.
func (e *Engine) catsAvailable(state *core.SessionState) bool {
	r, ok := state.Remaining[catalog.CatsID]
	return !ok || len(r) > 0
}

// fallbackCategory picks the redirect target after depletedID runs dry: the
// first content category in catalog order that is not the depleted one and
// still has facts for this session. Cats is never a redirect target.
func (e *Engine) fallbackCategory(state *core.SessionState, depletedID string) (catalog.Category, bool) {
	for _, cat := range e.cat.Content {
		if cat.ID == depletedID {
			continue
		}
		r, touched := state.Remaining[cat.ID]
		if !touched || len(r) > 0 {
			return cat, true
		}
	}
	return catalog.Category{}, false
}
