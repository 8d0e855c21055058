package chrome

import (
	"strings"
	"testing"
)

func TestFooterShowsDotPerSectionAndCounter(t *testing.T) {
	m := New()
	out := m.View(State{
		Width:         100,
		SectionCount:  5,
		ActiveSection: 2,
		StepIndex:     3,
		StepCount:     7,
		Progress:      0.5,
	})
	if got := strings.Count(out, "●"); got != 1 {
		t.Fatalf("expected one active dot, got %d", got)
	}
	if got := strings.Count(out, "○"); got != 4 {
		t.Fatalf("expected four inactive dots, got %d", got)
	}
	if !strings.Contains(out, "step 4/7") {
		t.Fatalf("expected step counter, got:\n%s", out)
	}
}

func TestFooterHandlesEmptyDeck(t *testing.T) {
	m := New()
	out := m.View(State{Width: 80})
	if !strings.Contains(out, "empty deck") {
		t.Fatalf("empty deck should be labelled, got:\n%s", out)
	}
}

func TestFooterZeroWidthRendersNothing(t *testing.T) {
	m := New()
	if out := m.View(State{}); out != "" {
		t.Fatalf("zero width should render nothing, got %q", out)
	}
}
