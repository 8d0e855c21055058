package nav

import (
	"time"

	"tableflip.dev/saga/pkg/narrative"
)

// Direction is the direction of travel of a step transition.
type Direction int

const (
	DirDown Direction = iota
	DirUp
)

func (d Direction) String() string {
	if d == DirUp {
		return "up"
	}
	return "down"
}

// Stage is the rendering collaborator the orchestrator drives. It resolves
// step anchors in the virtual document and receives animation and
// visibility triggers; everything else about rendering is opaque here.
type Stage interface {
	// AnchorRow resolves the document row a step's screen begins at. The
	// second return is false while the layout is not mounted yet.
	AnchorRow(step int) (float64, bool)
	// ExitSection starts the departing section's direction-aware exit
	// animation.
	ExitSection(section int, dir Direction)
	// EnterSection starts the arriving section's entrance animation.
	EnterSection(section int, dir Direction)
	// SetDetailVisible toggles a section's detail card.
	SetDetailVisible(section int, visible bool)
	// SetGalleryVisible toggles a section's gallery strip.
	SetGalleryVisible(section int, visible bool)
}

// Ambient is the background/camera collaborator fed by the progress
// reporter and the active-section signal.
type Ambient interface {
	SetProgress(p float64)
	SetActiveSection(section int)
}

// Orchestrator is the single writer of navigation state: the current step,
// the transition lock, the visibility flags, and the camera offset. At most
// one transition is in flight; a GoTo during one is a documented no-op.
type Orchestrator struct {
	steps   []narrative.Step
	cfg     Config
	stage   Stage
	ambient Ambient

	current        int
	target         int
	transitioning  bool
	visibleDetails map[int]bool
	galleryVisible bool

	offset float64
	scroll *Tween
}

// NewOrchestrator starts at step zero with all visibility flags clear.
func NewOrchestrator(steps []narrative.Step, cfg Config, stage Stage, ambient Ambient) *Orchestrator {
	return &Orchestrator{
		steps:          steps,
		cfg:            cfg,
		stage:          stage,
		ambient:        ambient,
		visibleDetails: make(map[int]bool),
	}
}

// GoTo runs one step transition. The target is clamped; a target equal to
// the current step, or any call while a transition is in flight, is
// rejected. Rejection is silent: contention is expected, not an error.
func (o *Orchestrator) GoTo(target int) bool {
	if len(o.steps) == 0 {
		return false
	}
	if target < 0 {
		target = 0
	}
	if target > len(o.steps)-1 {
		target = len(o.steps) - 1
	}
	if target == o.current || o.transitioning {
		return false
	}

	o.transitioning = true
	o.target = target
	dir := DirDown
	if target < o.current {
		dir = DirUp
	}
	from := o.steps[o.current]
	to := o.steps[target]

	o.applyVisibility(from, to)

	// Cross-section moves animate the text; a title↔detail toggle within
	// one section is visibility-only.
	if from.Section != to.Section {
		o.stage.ExitSection(from.Section, dir)
		if to.Kind == narrative.StepTitle {
			o.stage.EnterSection(to.Section, dir)
		}
	}
	o.ambient.SetActiveSection(to.Section)

	// The scroll command is the transition's spine: its completion is the
	// only thing that releases the lock. With no anchor to move to, the
	// logical state commits anyway and the camera catches up on the next
	// successful transition.
	if row, ok := o.stage.AnchorRow(target); ok {
		o.scroll = NewTween(o.offset, row, o.cfg.Transition, o.commit)
	} else {
		o.commit()
	}
	return true
}

func (o *Orchestrator) applyVisibility(from, to narrative.Step) {
	if to.Section == from.Section && to.Kind == narrative.StepTitle {
		switch from.Kind {
		case narrative.StepDetail:
			delete(o.visibleDetails, from.Section)
			o.stage.SetDetailVisible(from.Section, false)
		case narrative.StepGallery:
			o.galleryVisible = false
			o.stage.SetGalleryVisible(from.Section, false)
		case narrative.StepTitle:
		}
	}
	switch to.Kind {
	case narrative.StepDetail:
		o.visibleDetails[to.Section] = true
		o.stage.SetDetailVisible(to.Section, true)
	case narrative.StepGallery:
		o.galleryVisible = true
		o.stage.SetGalleryVisible(to.Section, true)
	case narrative.StepTitle:
	}
}

func (o *Orchestrator) commit() {
	o.current = o.target
	o.transitioning = false
	o.scroll = nil
}

// Advance moves the in-flight scroll tween, if any. Lock release happens
// inside the Advance call that finishes the tween.
func (o *Orchestrator) Advance(dt time.Duration) {
	if o.scroll == nil {
		return
	}
	s := o.scroll
	s.Advance(dt)
	o.offset = s.Value()
}

// CurrentStep returns the committed step index.
func (o *Orchestrator) CurrentStep() int { return o.current }

// TargetStep returns the arriving step during a transition, or the current
// step when idle.
func (o *Orchestrator) TargetStep() int {
	if o.transitioning {
		return o.target
	}
	return o.current
}

// CurrentSection returns the section of the committed step, or -1 for an
// empty step list.
func (o *Orchestrator) CurrentSection() int {
	if len(o.steps) == 0 {
		return -1
	}
	return o.steps[o.current].Section
}

// Transitioning reports whether the transition lock is held.
func (o *Orchestrator) Transitioning() bool { return o.transitioning }

// Offset returns the camera's document row offset.
func (o *Orchestrator) Offset() float64 { return o.offset }

// SetOffset force-positions the camera, used once at mount.
func (o *Orchestrator) SetOffset(v float64) {
	if o.scroll == nil {
		o.offset = v
	}
}

// DetailVisible reports whether a section's detail card is expanded.
func (o *Orchestrator) DetailVisible(section int) bool {
	return o.visibleDetails[section]
}

// GalleryVisible reports whether the gallery strip is shown.
func (o *Orchestrator) GalleryVisible() bool { return o.galleryVisible }

// Teardown cancels the in-flight scroll so no completion fires against a
// torn-down host.
func (o *Orchestrator) Teardown() {
	if o.scroll != nil {
		o.scroll.Cancel()
		o.scroll = nil
	}
	o.transitioning = false
}
