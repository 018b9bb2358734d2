// Package catalog holds the static fact catalog: ordered content categories
// plus the reserved cats bucket. The catalog is loaded once at startup and
// never mutated; per-session depletion state lives elsewhere.
package catalog

import (
	"errors"
	"fmt"
)

// CatsID is the reserved bucket id. Cats is tracked per session like any
// category but sits outside the content redirect cycle.
const CatsID = "cats"

var (
	// ErrNoFallbackCategory means the catalog has fewer than two content
	// categories, so a depletion redirect would have nowhere to go.
	ErrNoFallbackCategory = errors.New("catalog needs at least two content categories")
)

type Category struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
	// Prefix is spoken before a fact from this category.
	Prefix string   `yaml:"prefix"`
	Facts  []string `yaml:"facts"`
}

type Catalog struct {
	Content []Category `yaml:"categories"`
	Cats    Category   `yaml:"cats"`
}

// Validate checks the catalog invariants. Called once at startup so request
// handling never sees a misconfigured catalog.
func (c *Catalog) Validate() error {
	if len(c.Content) < 2 {
		return ErrNoFallbackCategory
	}

	seen := make(map[string]bool)
	for _, cat := range c.Content {
		if cat.ID == "" {
			return errors.New("content category with empty id")
		}
		if cat.ID == CatsID {
			return fmt.Errorf("category id %q is reserved", CatsID)
		}
		if seen[cat.ID] {
			return fmt.Errorf("duplicate category id %q", cat.ID)
		}
		seen[cat.ID] = true

		if err := validateFacts(cat); err != nil {
			return err
		}
	}

	return validateFacts(c.Cats)
}

func validateFacts(cat Category) error {
	if len(cat.Facts) == 0 {
		return fmt.Errorf("category %q has no facts", cat.ID)
	}
	seen := make(map[string]bool)
	for _, f := range cat.Facts {
		if f == "" {
			return fmt.Errorf("category %q has an empty fact", cat.ID)
		}
		if seen[f] {
			return fmt.Errorf("category %q has a duplicate fact: %s", cat.ID, f)
		}
		seen[f] = true
	}
	return nil
}

// Category looks up a content category or the cats bucket by id.
func (c *Catalog) Category(id string) (Category, bool) {
	if id == CatsID {
		return c.Cats, true
	}
	for _, cat := range c.Content {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

// Facts returns a copy of the authored fact list for id. The copy is what
// session state is seeded from; the catalog's own slice is never handed out.
func (c *Catalog) Facts(id string) ([]string, bool) {
	cat, ok := c.Category(id)
	if !ok {
		return nil, false
	}
	facts := make([]string, len(cat.Facts))
	copy(facts, cat.Facts)
	return facts, true
}

// ContentIDs returns content category ids in authored order.
func (c *Catalog) ContentIDs() []string {
	ids := make([]string, 0, len(c.Content))
	for _, cat := range c.Content {
		ids = append(ids, cat.ID)
	}
	return ids
}

// ContentLabels returns content category display labels in authored order.
func (c *Catalog) ContentLabels() []string {
	labels := make([]string, 0, len(c.Content))
	for _, cat := range c.Content {
		labels = append(labels, cat.Label)
	}
	return labels
}

