package narrative

import (
	"strings"
	"testing"
)

const sampleYAML = `
name: voyage
title: A Voyage
sections:
  - id: intro
    title: Setting Out
    align: center
  - title: The Crossing
    detail: |
      Three weeks on open water.
  - title: Ports of Call
    gallery:
      - Lisbon
      - Azores
      - Halifax
`

func TestParseSampleDeck(t *testing.T) {
	n, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if n.Name != "voyage" || len(n.Sections) != 3 {
		t.Fatalf("unexpected deck shape: %+v", n)
	}
	if n.Sections[0].Align != AlignCenter {
		t.Fatalf("expected centered intro, got %q", n.Sections[0].Align)
	}
	if got := n.Sections[1].ID; got != "the-crossing" {
		t.Fatalf("expected slugged id, got %q", got)
	}
	if n.Sections[1].Align != AlignLeft {
		t.Fatalf("align should default to left, got %q", n.Sections[1].Align)
	}
	if !n.Sections[2].HasGallery() || n.Sections[2].HasDetail() {
		t.Fatalf("third section should be a gallery")
	}
}

func TestValidateRejectsDetailAndGallery(t *testing.T) {
	n := &Narrative{
		Name: "bad",
		Sections: []Section{
			{Title: "x", Detail: "d", Gallery: []string{"g"}},
		},
	}
	err := n.Validate()
	if err == nil || !strings.Contains(err.Error(), "mutually exclusive") {
		t.Fatalf("expected mutual-exclusion error, got %v", err)
	}
}

func TestValidateRejectsDuplicateIDs(t *testing.T) {
	n := &Narrative{
		Name: "dup",
		Sections: []Section{
			{ID: "one", Title: "One"},
			{ID: "one", Title: "Other"},
		},
	}
	if err := n.Validate(); err == nil {
		t.Fatalf("expected duplicate id error")
	}
}

func TestValidateRejectsUnknownAlign(t *testing.T) {
	n := &Narrative{
		Name:     "bad-align",
		Sections: []Section{{Title: "x", Align: "middle"}},
	}
	if err := n.Validate(); err == nil {
		t.Fatalf("expected align error")
	}
}

func TestValidateAllowsEmptySectionList(t *testing.T) {
	n := &Narrative{Name: "empty"}
	if err := n.Validate(); err != nil {
		t.Fatalf("empty deck is degenerate but valid, got %v", err)
	}
}
