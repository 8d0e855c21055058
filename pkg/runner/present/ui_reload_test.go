package present

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/saga/pkg/narrative"
	"tableflip.dev/saga/pkg/nav"
	"tableflip.dev/saga/pkg/store"
)

func revisedDeck() *narrative.Narrative {
	return &narrative.Narrative{
		Name:  "demo",
		Title: "Demo v2",
		Sections: []narrative.Section{
			{ID: "intro", Title: "Fresh Intro"},
			{ID: "middle", Title: "Middle"},
			{ID: "extra", Title: "Extra"},
			{ID: "outro", Title: "Outro"},
			{ID: "encore", Title: "Encore"},
		},
	}
}

func TestDeckReloadSwapsContent(t *testing.T) {
	m := newTestModel(t)
	if got := len(m.ctrl.Steps()); got != 6 {
		t.Fatalf("fixture deck should have 6 steps, got %d", got)
	}

	deck := revisedDeck()
	if err := deck.Validate(); err != nil {
		t.Fatalf("revised deck invalid: %v", err)
	}
	m = update(t, m, deckReloadedMsg{deck: deck})

	if got := len(m.ctrl.Steps()); got != 5 {
		t.Fatalf("expected 5 steps after reload, got %d", got)
	}
	if view := m.View(); !strings.Contains(view, "Fresh Intro") {
		t.Fatalf("view should show reloaded content:\n%s", view)
	}
}

func TestDeckReloadKeepsCurrentSection(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, tea.KeyPressMsg{Text: "3", Code: '3'})
	m = pump(t, m, time.Second)
	if got := m.ctrl.CurrentSection(); got != 2 {
		t.Fatalf("expected section 2 before reload, got %d", got)
	}

	deck := revisedDeck()
	if err := deck.Validate(); err != nil {
		t.Fatalf("revised deck invalid: %v", err)
	}
	m = update(t, m, deckReloadedMsg{deck: deck})
	m = pump(t, m, time.Second)

	if got := m.ctrl.CurrentSection(); got != 2 {
		t.Fatalf("expected section 2 after reload, got %d", got)
	}
}

func TestReloadCommandReReadsDeck(t *testing.T) {
	deck := testDeck()
	if err := deck.Validate(); err != nil {
		t.Fatalf("fixture deck invalid: %v", err)
	}
	events := make(chan store.Event)
	loads := 0
	m := New(deck, nav.DefaultConfig(), 30, WithLibrary(events, func() (*narrative.Narrative, error) {
		loads++
		n := revisedDeck()
		return n, n.Validate()
	}))

	msg := m.reloadDeck()()
	reloaded, ok := msg.(deckReloadedMsg)
	if !ok {
		t.Fatalf("expected deckReloadedMsg, got %T", msg)
	}
	if loads != 1 {
		t.Fatalf("expected one load, got %d", loads)
	}
	if reloaded.deck.Title != "Demo v2" {
		t.Fatalf("got deck %q, want %q", reloaded.deck.Title, "Demo v2")
	}
}

func TestReloadCommandKeepsDeckOnError(t *testing.T) {
	deck := testDeck()
	if err := deck.Validate(); err != nil {
		t.Fatalf("fixture deck invalid: %v", err)
	}
	events := make(chan store.Event)
	m := New(deck, nav.DefaultConfig(), 30, WithLibrary(events, func() (*narrative.Narrative, error) {
		return nil, errors.New("transient read failure")
	}))

	if msg := m.reloadDeck()(); msg != nil {
		t.Fatalf("expected nil msg on load failure, got %T", msg)
	}
}
