// Package ambient renders the decorative background layer behind a
// presentation: a drifting particle field whose palette follows the
// continuous scroll progress. The controller talks to it only through the
// Layer interface; everything else is rendering detail.
package ambient

// Layer is the sink surface the navigation controller publishes into.
type Layer interface {
	// SetProgress receives the normalized scroll progress in [0,1].
	SetProgress(p float64)
	// SetActiveSection receives the section index the camera is moving to,
	// used for ducking the field while text animates.
	SetActiveSection(section int)
}

// Nop is a Layer that discards everything. Useful for headless commands.
type Nop struct{}

func (Nop) SetProgress(float64)  {}
func (Nop) SetActiveSection(int) {}
