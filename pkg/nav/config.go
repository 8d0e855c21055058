package nav

import "time"

// Config carries the tuning constants for input aggregation and transitions.
// The defaults mirror the values the presentation was tuned with; they are
// plain configuration, not load-bearing semantics.
type Config struct {
	// WheelThreshold is the accumulated wheel delta that emits one intent.
	WheelThreshold float64
	// WheelDelta is the delta one wheel tick contributes. Terminals report
	// ticks, not pixel deltas, so the host scales them before accumulation.
	WheelDelta float64
	// DebounceWindow resets the wheel accumulator when no event arrives
	// before it elapses.
	DebounceWindow time.Duration
	// SwipeMin is the minimum drag distance, in rows, that counts as a swipe.
	SwipeMin int
	// Transition is the duration of the camera move between steps.
	Transition time.Duration
	// GallerySlide is the duration of one horizontal gallery slide.
	GallerySlide time.Duration
}

// DefaultConfig returns the reference tuning.
func DefaultConfig() Config {
	return Config{
		WheelThreshold: 50,
		WheelDelta:     25,
		DebounceWindow: 200 * time.Millisecond,
		SwipeMin:       3,
		Transition:     600 * time.Millisecond,
		GallerySlide:   350 * time.Millisecond,
	}
}
