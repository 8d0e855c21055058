package nav

import "time"

// Tween interpolates a value over a fixed duration with cubic in-out easing
// and fires a completion callback exactly once. It is advanced cooperatively
// by the host's frame tick, like everything else in this package.
type Tween struct {
	from, to  float64
	elapsed   time.Duration
	duration  time.Duration
	done      bool
	cancelled bool
	onDone    func()
}

// NewTween returns a tween from one value to another. A non-positive
// duration completes on the first Advance.
func NewTween(from, to float64, d time.Duration, onDone func()) *Tween {
	return &Tween{from: from, to: to, duration: d, onDone: onDone}
}

// Advance moves the tween forward. The completion callback runs inside the
// Advance call that crosses the end of the duration.
func (t *Tween) Advance(dt time.Duration) {
	if t.done || t.cancelled {
		return
	}
	t.elapsed += dt
	if t.elapsed >= t.duration {
		t.elapsed = t.duration
		t.done = true
		if t.onDone != nil {
			t.onDone()
		}
	}
}

// Value returns the current interpolated value.
func (t *Tween) Value() float64 {
	if t.duration <= 0 || t.done {
		return t.to
	}
	p := float64(t.elapsed) / float64(t.duration)
	return t.from + (t.to-t.from)*easeInOutCubic(p)
}

// Done reports whether the tween has completed.
func (t *Tween) Done() bool {
	return t.done
}

// Cancel kills the tween without firing its completion callback.
func (t *Tween) Cancel() {
	t.cancelled = true
}

func easeInOutCubic(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	if p < 0.5 {
		return 4 * p * p * p
	}
	q := -2*p + 2
	return 1 - q*q*q/2
}
