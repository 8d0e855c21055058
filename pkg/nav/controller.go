package nav

import (
	"time"

	"tableflip.dev/saga/pkg/narrative"
)

// Controller owns every piece of navigation state for one presentation: the
// step model, the orchestrator, the input aggregator, one sub-navigator per
// gallery section, and the progress reporter. It is the only surface the
// host talks to; there are no ambient globals behind it.
type Controller struct {
	cfg     Config
	clock   *Clock
	steps   []narrative.Step
	orch    *Orchestrator
	agg     *Aggregator
	gals    map[int]*Gallery
	rep     *Reporter
	ambient Ambient

	docHeight  float64
	viewHeight float64
}

// New builds a controller for the given sections. stage and ambient are the
// rendering collaborators; they may be stubs in tests.
func New(sections []narrative.Section, cfg Config, stage Stage, ambient Ambient) *Controller {
	steps := narrative.BuildSteps(sections)
	c := &Controller{
		cfg:     cfg,
		clock:   NewClock(),
		steps:   steps,
		ambient: ambient,
		gals:    make(map[int]*Gallery),
	}
	c.orch = NewOrchestrator(steps, cfg, stage, ambient)
	for i, s := range sections {
		if s.HasGallery() {
			c.gals[i] = NewGallery(len(s.Gallery), cfg.GallerySlide)
		}
	}
	c.agg = NewAggregator(cfg, c.clock,
		c.orch.Transitioning,
		func() int { return len(steps) - 1 },
		c.dispatch,
	)
	c.rep = NewReporter(ambient.SetProgress)
	return c
}

// dispatch consumes one intent. Advance/retreat is first offered to the
// active gallery; only when it reports out-of-cards does the intent bubble
// into a top-level step transition. Jumps are rejected while the gallery's
// own slide lock is held, same as any transition during lock.
func (c *Controller) dispatch(in Intent) {
	switch in.Kind {
	case IntentAdvance:
		if g := c.activeGallery(); g != nil && g.Next() {
			return
		}
		c.orch.GoTo(c.orch.CurrentStep() + 1)
	case IntentRetreat:
		if g := c.activeGallery(); g != nil && g.Prev() {
			return
		}
		c.orch.GoTo(c.orch.CurrentStep() - 1)
	case IntentJump:
		if g := c.activeGallery(); g != nil && g.Sliding() {
			return
		}
		c.orch.GoTo(in.Target)
	}
}

// activeGallery returns the sub-navigator when the current step is a
// gallery step, else nil.
func (c *Controller) activeGallery() *Gallery {
	cur := c.orch.CurrentStep()
	if len(c.steps) == 0 {
		return nil
	}
	st := c.steps[cur]
	if st.Kind != narrative.StepGallery {
		return nil
	}
	return c.gals[st.Section]
}

// Wheel feeds a wheel event's vertical delta to the aggregator.
func (c *Controller) Wheel(delta float64) { c.agg.Wheel(delta) }

// DragStart begins a swipe gesture at the given row.
func (c *Controller) DragStart(y int) { c.agg.DragStart(y) }

// DragEnd finishes a swipe gesture at the given row.
func (c *Controller) DragEnd(y int) { c.agg.DragEnd(y) }

// Key feeds a normalized navigation key.
func (c *Controller) Key(k Key) { c.agg.Key(k) }

// GalleryNext slides the visible gallery one card forward without bubbling.
// Bound to the right-arrow key.
func (c *Controller) GalleryNext() {
	if g := c.activeGallery(); g != nil {
		g.Next()
	}
}

// GalleryPrev slides the visible gallery one card back without bubbling.
func (c *Controller) GalleryPrev() {
	if g := c.activeGallery(); g != nil {
		g.Prev()
	}
}

// GoTo jumps straight to a step through the same lock as gesture-driven
// navigation. Used by navigation dots and tests.
func (c *Controller) GoTo(step int) bool {
	if g := c.activeGallery(); g != nil && g.Sliding() {
		return false
	}
	return c.orch.GoTo(step)
}

// GoToSection jumps to a section's title step.
func (c *Controller) GoToSection(section int) bool {
	idx := narrative.TitleStep(c.steps, section)
	if idx < 0 {
		return false
	}
	return c.GoTo(idx)
}

// SetViewport records document geometry and re-samples progress, the mount
// sample included.
func (c *Controller) SetViewport(docHeight, viewHeight float64) {
	c.docHeight = docHeight
	c.viewHeight = viewHeight
	c.rep.Sample(c.orch.Offset(), docHeight, viewHeight)
}

// Advance pumps one frame: debounce timers, the scroll tween, gallery
// slides, then a progress sample of wherever the camera ended up.
func (c *Controller) Advance(dt time.Duration) {
	c.clock.Advance(dt)
	c.orch.Advance(dt)
	for _, g := range c.gals {
		g.Advance(dt)
	}
	c.rep.Sample(c.orch.Offset(), c.docHeight, c.viewHeight)
}

// Steps returns the derived step model.
func (c *Controller) Steps() []narrative.Step { return c.steps }

// CurrentStep returns the committed step index.
func (c *Controller) CurrentStep() int { return c.orch.CurrentStep() }

// TargetStep returns the arriving step mid-transition.
func (c *Controller) TargetStep() int { return c.orch.TargetStep() }

// CurrentSection returns the committed step's section, -1 when empty.
func (c *Controller) CurrentSection() int { return c.orch.CurrentSection() }

// Transitioning reports the transition lock.
func (c *Controller) Transitioning() bool { return c.orch.Transitioning() }

// Offset returns the camera's document row offset.
func (c *Controller) Offset() float64 { return c.orch.Offset() }

// SetOffset force-positions the camera, used once at mount.
func (c *Controller) SetOffset(v float64) { c.orch.SetOffset(v) }

// Progress returns the last published progress value.
func (c *Controller) Progress() float64 { return c.rep.Last() }

// DetailVisible reports a section's expanded detail card.
func (c *Controller) DetailVisible(section int) bool { return c.orch.DetailVisible(section) }

// GalleryVisible reports whether the gallery strip is shown.
func (c *Controller) GalleryVisible() bool { return c.orch.GalleryVisible() }

// Gallery returns the sub-navigator for a gallery section, nil otherwise.
// The renderer reads its offset to draw the strip mid-slide.
func (c *Controller) Gallery(section int) *Gallery { return c.gals[section] }

// Teardown cancels pending timers, the scroll tween, and gallery slides so
// nothing fires against a torn-down host.
func (c *Controller) Teardown() {
	c.agg.Teardown()
	c.orch.Teardown()
	for _, g := range c.gals {
		g.Teardown()
	}
}
