package nav

import "math"

// Aggregator turns noisy device signals into at most one discrete intent per
// gesture. Wheel deltas accumulate against a threshold under a debounce
// window; drags compare start and end rows; keys map directly. While the
// orchestrator holds its transition lock, advance/retreat input is dropped
// outright, never queued, so an in-flight animation can't bank up steps.
type Aggregator struct {
	cfg    Config
	clock  *Clock
	locked func() bool
	emit   func(Intent)
	last   func() int

	acc      float64
	reset    *Timer
	dragY    int
	dragging bool
}

// NewAggregator wires an aggregator to the orchestrator's lock and intent
// sink. last resolves the final step index for End jumps.
func NewAggregator(cfg Config, clock *Clock, locked func() bool, last func() int, emit func(Intent)) *Aggregator {
	return &Aggregator{cfg: cfg, clock: clock, locked: locked, last: last, emit: emit}
}

// Wheel feeds one wheel event's vertical delta into the accumulator.
// Positive deltas scroll the content down (advance).
func (a *Aggregator) Wheel(delta float64) {
	if a.locked() {
		a.clearAccumulator()
		return
	}
	a.acc += delta
	if a.reset != nil {
		a.reset.Stop()
	}
	a.reset = a.clock.AfterFunc(a.cfg.DebounceWindow, func() {
		a.acc = 0
		a.reset = nil
	})
	if math.Abs(a.acc) < a.cfg.WheelThreshold {
		return
	}
	in := Intent{Kind: IntentAdvance}
	if a.acc < 0 {
		in.Kind = IntentRetreat
	}
	// One step per gesture-burst: spend the whole accumulator on this intent
	// no matter how far past the threshold it got.
	a.clearAccumulator()
	a.emit(in)
}

// DragStart records the row a press/touch began on.
func (a *Aggregator) DragStart(y int) {
	a.dragY = y
	a.dragging = true
}

// DragEnd completes a drag gesture. A drag shorter than SwipeMin is
// ignored; anything longer emits one intent by direction. Dragging upward
// (toward smaller rows) advances, matching swipe-up on a touch screen.
func (a *Aggregator) DragEnd(y int) {
	if !a.dragging {
		return
	}
	a.dragging = false
	if a.locked() {
		return
	}
	delta := a.dragY - y
	if abs(delta) <= a.cfg.SwipeMin {
		return
	}
	if delta > 0 {
		a.emit(Intent{Kind: IntentAdvance})
	} else {
		a.emit(Intent{Kind: IntentRetreat})
	}
}

// Key emits immediately for a navigation key; no debounce, but the same
// lock gate as every other input.
func (a *Aggregator) Key(k Key) {
	if a.locked() {
		return
	}
	switch k {
	case KeyAdvance:
		a.emit(Intent{Kind: IntentAdvance})
	case KeyRetreat:
		a.emit(Intent{Kind: IntentRetreat})
	case KeyHome:
		a.emit(Intent{Kind: IntentJump, Target: 0})
	case KeyEnd:
		a.emit(Intent{Kind: IntentJump, Target: a.last()})
	}
}

// Accumulated exposes the running wheel sum for tests and debugging.
func (a *Aggregator) Accumulated() float64 {
	return a.acc
}

// Teardown stops the pending debounce timer.
func (a *Aggregator) Teardown() {
	a.clearAccumulator()
}

func (a *Aggregator) clearAccumulator() {
	a.acc = 0
	if a.reset != nil {
		a.reset.Stop()
		a.reset = nil
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
