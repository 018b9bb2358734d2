package catalog

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("embedded catalog must load: %v", err)
	}

	if len(c.Content) < 2 {
		t.Fatalf("embedded catalog has %d content categories, want >= 2", len(c.Content))
	}
	if c.Cats.ID != CatsID {
		t.Fatalf("cats bucket id = %q, want %q", c.Cats.ID, CatsID)
	}
	for _, cat := range append(c.Content, c.Cats) {
		if len(cat.Facts) == 0 {
			t.Fatalf("category %q has no facts", cat.ID)
		}
	}
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
		wantMsg string
	}{
		{
			name: "single content category",
			yaml: `
categories:
  - id: history
    label: History
    facts: [a]
cats:
  label: Cats
  facts: [c]
`,
			wantErr: ErrNoFallbackCategory,
		},
		{
			name: "duplicate category id",
			yaml: `
categories:
  - id: history
    label: History
    facts: [a]
  - id: history
    label: Again
    facts: [b]
cats:
  label: Cats
  facts: [c]
`,
			wantMsg: "duplicate category id",
		},
		{
			name: "reserved cats id",
			yaml: `
categories:
  - id: cats
    label: Sneaky
    facts: [a]
  - id: history
    label: History
    facts: [b]
cats:
  label: Cats
  facts: [c]
`,
			wantMsg: "reserved",
		},
		{
			name: "duplicate fact in category",
			yaml: `
categories:
  - id: history
    label: History
    facts: [a, a]
  - id: headquarters
    label: Headquarters
    facts: [b]
cats:
  label: Cats
  facts: [c]
`,
			wantMsg: "duplicate fact",
		},
		{
			name: "empty cats bucket",
			yaml: `
categories:
  - id: history
    label: History
    facts: [a]
  - id: headquarters
    label: Headquarters
    facts: [b]
cats:
  label: Cats
  facts: []
`,
			wantMsg: "no facts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("want a validation error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Fatalf("error = %v, want it to mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestFactsReturnsCopy(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	id := c.Content[0].ID
	facts, ok := c.Facts(id)
	if !ok {
		t.Fatalf("category %q missing", id)
	}

	facts[0] = "mutated"

	again, _ := c.Facts(id)
	if again[0] == "mutated" {
		t.Fatal("Facts must return a copy, the catalog was mutated")
	}
}

func TestCategoryLookup(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := c.Category(CatsID); !ok {
		t.Fatal("cats bucket must resolve by id")
	}
	if _, ok := c.Category("nope"); ok {
		t.Fatal("unknown id must not resolve")
	}

	ids := c.ContentIDs()
	labels := c.ContentLabels()
	if len(ids) != len(c.Content) || len(labels) != len(c.Content) {
		t.Fatalf("ids/labels length mismatch: %d/%d vs %d", len(ids), len(labels), len(c.Content))
	}
	for i, cat := range c.Content {
		if ids[i] != cat.ID || labels[i] != cat.Label {
			t.Fatal("ids/labels must preserve authored order")
		}
	}
}
