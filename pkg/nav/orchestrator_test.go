package nav

import (
	"testing"
	"time"

	"tableflip.dev/saga/pkg/narrative"
)

type stageEvent struct {
	op      string
	section int
	dir     Direction
	on      bool
}

// fakeStage records orchestrator callbacks and serves anchors at one
// viewport height per step.
type fakeStage struct {
	rows    float64
	mounted bool
	events  []stageEvent
}

func (f *fakeStage) AnchorRow(step int) (float64, bool) {
	if !f.mounted {
		return 0, false
	}
	return float64(step) * f.rows, true
}

func (f *fakeStage) ExitSection(section int, dir Direction) {
	f.events = append(f.events, stageEvent{op: "exit", section: section, dir: dir})
}

func (f *fakeStage) EnterSection(section int, dir Direction) {
	f.events = append(f.events, stageEvent{op: "enter", section: section, dir: dir})
}

func (f *fakeStage) SetDetailVisible(section int, visible bool) {
	f.events = append(f.events, stageEvent{op: "detail", section: section, on: visible})
}

func (f *fakeStage) SetGalleryVisible(section int, visible bool) {
	f.events = append(f.events, stageEvent{op: "gallery", section: section, on: visible})
}

func (f *fakeStage) count(op string) int {
	n := 0
	for _, e := range f.events {
		if e.op == op {
			n++
		}
	}
	return n
}

type fakeAmbient struct {
	progress []float64
	active   []int
}

func (f *fakeAmbient) SetProgress(p float64)  { f.progress = append(f.progress, p) }
func (f *fakeAmbient) SetActiveSection(s int) { f.active = append(f.active, s) }

func (f *fakeAmbient) lastActive() (int, bool) {
	if len(f.active) == 0 {
		return 0, false
	}
	return f.active[len(f.active)-1], true
}

func sampleSections() []narrative.Section {
	return []narrative.Section{
		{ID: "a", Title: "A"},
		{ID: "b", Title: "B", Detail: "about b"},
		{ID: "c", Title: "C", Gallery: []string{"one", "two", "three", "four"}},
		{ID: "d", Title: "D"},
	}
}

func newTestOrchestrator(mounted bool) (*Orchestrator, *fakeStage, *fakeAmbient) {
	stage := &fakeStage{rows: 20, mounted: mounted}
	amb := &fakeAmbient{}
	steps := narrative.BuildSteps(sampleSections())
	cfg := DefaultConfig()
	return NewOrchestrator(steps, cfg, stage, amb), stage, amb
}

func finish(o *Orchestrator, cfg Config) {
	for i := 0; i < 100 && o.Transitioning(); i++ {
		o.Advance(cfg.Transition / 10)
	}
}

func TestGoToSameStepIsNoOp(t *testing.T) {
	o, stage, _ := newTestOrchestrator(true)
	if o.GoTo(0) {
		t.Fatalf("expected GoTo(current) to be rejected")
	}
	if o.Transitioning() {
		t.Fatalf("no-op must not take the lock")
	}
	if len(stage.events) != 0 {
		t.Fatalf("no-op must not fire stage events, got %v", stage.events)
	}
}

func TestGoToClampsOutOfRangeTargets(t *testing.T) {
	o, _, _ := newTestOrchestrator(true)
	if !o.GoTo(99) {
		t.Fatalf("expected clamped jump to start")
	}
	finish(o, DefaultConfig())
	if got, want := o.CurrentStep(), 5; got != want {
		t.Fatalf("expected clamp to last step %d, got %d", want, got)
	}
	if !o.GoTo(-7) {
		t.Fatalf("expected clamped jump toward zero to start")
	}
	finish(o, DefaultConfig())
	if o.CurrentStep() != 0 {
		t.Fatalf("expected clamp to step 0, got %d", o.CurrentStep())
	}
}

func TestSecondGoToWhileLockedIsRejected(t *testing.T) {
	o, _, _ := newTestOrchestrator(true)
	if !o.GoTo(1) {
		t.Fatalf("first transition should start")
	}
	if o.GoTo(2) {
		t.Fatalf("second transition during lock must be rejected")
	}
	finish(o, DefaultConfig())
	if o.CurrentStep() != 1 {
		t.Fatalf("exactly one transition should commit, landed on %d", o.CurrentStep())
	}
}

func TestLockReleasesOnScrollCompletionOnly(t *testing.T) {
	cfg := DefaultConfig()
	o, _, _ := newTestOrchestrator(true)
	o.GoTo(1)
	o.Advance(cfg.Transition / 2)
	if !o.Transitioning() {
		t.Fatalf("lock must hold until the scroll command completes")
	}
	if o.CurrentStep() != 0 {
		t.Fatalf("step must not commit mid-scroll")
	}
	o.Advance(cfg.Transition / 2)
	if o.Transitioning() {
		t.Fatalf("lock must clear when the scroll command completes")
	}
	if o.CurrentStep() != 1 {
		t.Fatalf("step must commit on completion, got %d", o.CurrentStep())
	}
	if o.Offset() != 20 {
		t.Fatalf("camera must land on the step anchor, got %v", o.Offset())
	}
}

func TestMissingAnchorCommitsLogicalStateOnly(t *testing.T) {
	o, _, _ := newTestOrchestrator(false)
	if !o.GoTo(2) {
		t.Fatalf("transition should start without an anchor")
	}
	if o.Transitioning() {
		t.Fatalf("anchorless transition commits immediately")
	}
	if o.CurrentStep() != 2 {
		t.Fatalf("logical state must commit, got %d", o.CurrentStep())
	}
	if o.Offset() != 0 {
		t.Fatalf("physical scroll must be skipped, offset %v", o.Offset())
	}
}

func TestDetailVisibilityToggles(t *testing.T) {
	cfg := DefaultConfig()
	o, stage, _ := newTestOrchestrator(true)
	// step 1 is section 0's... steps: a:title(0) b:title(1) b:detail(2) c:title(3) c:gallery(4) d:title(5)
	o.GoTo(1)
	finish(o, cfg)
	stage.events = nil

	o.GoTo(2) // title -> detail, same section
	finish(o, cfg)
	if !o.DetailVisible(1) {
		t.Fatalf("detail should be visible after entering the detail step")
	}
	if stage.count("exit") != 0 || stage.count("enter") != 0 {
		t.Fatalf("same-section toggle must not fire text animations: %v", stage.events)
	}

	o.GoTo(1) // detail -> title, same section
	finish(o, cfg)
	if o.DetailVisible(1) {
		t.Fatalf("detail should clear when returning to the title step")
	}
}

func TestCrossSectionAnimations(t *testing.T) {
	cfg := DefaultConfig()
	o, stage, amb := newTestOrchestrator(true)
	o.GoTo(1) // section 0 -> section 1 title
	if stage.count("exit") != 1 || stage.count("enter") != 1 {
		t.Fatalf("cross-section move to a title must fire exit+enter, got %v", stage.events)
	}
	last := stage.events[0]
	if last.section != 0 || last.dir != DirDown {
		t.Fatalf("exit should leave section 0 downward, got %+v", last)
	}
	if got, ok := amb.lastActive(); !ok || got != 1 {
		t.Fatalf("ambient active section should duck to 1, got %d", got)
	}
	finish(o, cfg)

	stage.events = nil
	o.GoTo(2) // into section 1's detail: no fresh title, no enter
	finish(o, cfg)
	if stage.count("enter") != 0 {
		t.Fatalf("entering a detail step must not fire an entrance animation")
	}
}

func TestEmptyStepsIsDegenerateNoOp(t *testing.T) {
	stage := &fakeStage{rows: 20, mounted: true}
	o := NewOrchestrator(nil, DefaultConfig(), stage, &fakeAmbient{})
	if o.GoTo(0) || o.GoTo(3) {
		t.Fatalf("empty step model must reject every transition")
	}
	if o.CurrentSection() != -1 {
		t.Fatalf("empty step model has no current section")
	}
}

func TestTeardownCancelsScroll(t *testing.T) {
	cfg := DefaultConfig()
	o, _, _ := newTestOrchestrator(true)
	o.GoTo(1)
	o.Advance(cfg.Transition / 4)
	o.Teardown()
	o.Advance(cfg.Transition) // must not fire the cancelled completion
	if o.CurrentStep() != 0 {
		t.Fatalf("cancelled transition must not commit, got %d", o.CurrentStep())
	}
	if o.Transitioning() {
		t.Fatalf("teardown must release the lock")
	}
}

func TestTweenEasingEndpoints(t *testing.T) {
	done := false
	tw := NewTween(0, 100, time.Second, func() { done = true })
	if v := tw.Value(); v != 0 {
		t.Fatalf("tween should start at from, got %v", v)
	}
	tw.Advance(500 * time.Millisecond)
	if v := tw.Value(); v != 50 {
		t.Fatalf("cubic in-out midpoint should be halfway, got %v", v)
	}
	tw.Advance(500 * time.Millisecond)
	if v := tw.Value(); v != 100 {
		t.Fatalf("tween should end at to, got %v", v)
	}
	if !done {
		t.Fatalf("completion callback should fire once at the end")
	}
}

func TestClockFiresAndCancels(t *testing.T) {
	c := NewClock()
	fired := 0
	c.AfterFunc(100*time.Millisecond, func() { fired++ })
	stop := c.AfterFunc(150*time.Millisecond, func() { fired += 10 })
	c.Advance(50 * time.Millisecond)
	if fired != 0 {
		t.Fatalf("nothing due yet, fired=%d", fired)
	}
	stop.Stop()
	c.Advance(200 * time.Millisecond)
	if fired != 1 {
		t.Fatalf("only the live timer should fire, fired=%d", fired)
	}
}
