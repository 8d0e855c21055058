package storyview

import (
	"strings"
	"testing"
	"time"

	"tableflip.dev/saga/pkg/narrative"
	"tableflip.dev/saga/pkg/nav"
)

func testDeck() (*narrative.Narrative, []narrative.Step) {
	deck := &narrative.Narrative{
		Name: "t",
		Sections: []narrative.Section{
			{ID: "a", Title: "Alpha", Align: narrative.AlignCenter},
			{ID: "b", Title: "Beta", Detail: "all about beta and then some"},
			{ID: "c", Title: "Gamma", Gallery: []string{"one", "two", "three"}},
		},
	}
	return deck, narrative.BuildSteps(deck.Sections)
}

func TestAnchorsUnavailableBeforeLayout(t *testing.T) {
	deck, steps := testDeck()
	v := New(deck, steps, 600*time.Millisecond)
	if _, ok := v.AnchorRow(0); ok {
		t.Fatalf("anchor should be unavailable before Layout")
	}
	v.Layout(80, 24)
	row, ok := v.AnchorRow(2)
	if !ok || row != 48 {
		t.Fatalf("expected anchor 48 for step 2, got %v ok=%v", row, ok)
	}
	if _, ok := v.AnchorRow(99); ok {
		t.Fatalf("out-of-range step has no anchor")
	}
}

func TestDocHeightIsScreenPerStep(t *testing.T) {
	deck, steps := testDeck()
	v := New(deck, steps, 0)
	v.Layout(80, 24)
	if got, want := v.DocHeight(), len(steps)*24; got != want {
		t.Fatalf("doc height %d, want %d", got, want)
	}
}

func TestDetailCardFollowsVisibilityFlag(t *testing.T) {
	deck, steps := testDeck()
	v := New(deck, steps, 0)
	v.Layout(80, 24)

	detailStep := 2 // a:title, b:title, b:detail
	frame := strings.Join(v.Visible(float64(detailStep*24), nil), "\n")
	if strings.Contains(frame, "about beta") {
		t.Fatalf("detail body must stay hidden until the flag is set")
	}

	v.SetDetailVisible(1, true)
	frame = strings.Join(v.Visible(float64(detailStep*24), nil), "\n")
	if !strings.Contains(frame, "about beta") {
		t.Fatalf("detail body should render once visible:\n%s", frame)
	}
}

func TestGalleryStripRendersCards(t *testing.T) {
	deck, steps := testDeck()
	v := New(deck, steps, 0)
	v.Layout(100, 30)
	galleryStep := 4 // a, b, b.detail, c, c.gallery
	v.SetGalleryVisible(2, true)
	v.SetGalleryPos(2, 1)
	frame := strings.Join(v.Visible(float64(galleryStep*30), nil), "\n")
	for _, item := range deck.Sections[2].Gallery {
		if !strings.Contains(frame, item) {
			t.Fatalf("gallery strip missing card %q:\n%s", item, frame)
		}
	}
	if !strings.Contains(frame, "●") {
		t.Fatalf("gallery should render a position dot")
	}
}

func TestBackgroundShowsThroughEmptyRows(t *testing.T) {
	deck, steps := testDeck()
	v := New(deck, steps, 0)
	v.Layout(80, 10)
	bg := make([]string, 10)
	for i := range bg {
		bg[i] = "~bg~"
	}
	rows := v.Visible(0, bg)
	found := false
	for _, r := range rows {
		if r == "~bg~" {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("ambient background should fill empty document rows")
	}
}

func TestAnimationShiftsThenSettles(t *testing.T) {
	deck, steps := testDeck()
	v := New(deck, steps, 400*time.Millisecond)
	v.Layout(80, 24)

	steady := strings.Join(v.Visible(0, nil), "\n")
	v.EnterSection(0, nav.DirDown)
	moving := strings.Join(v.Visible(0, nil), "\n")
	if moving == steady {
		t.Fatalf("entering text should be displaced at animation start")
	}
	v.Advance(time.Second)
	settled := strings.Join(v.Visible(0, nil), "\n")
	if settled != steady {
		t.Fatalf("text should settle back once the animation completes")
	}
}
