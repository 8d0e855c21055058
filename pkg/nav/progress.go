package nav

// Reporter publishes the continuous scroll progress of the camera through
// the virtual document. It is sampled every frame and once at mount, and is
// never gated by the transition lock: it reflects physical position, not
// step bookkeeping. During a camera tween it animates smoothly for free,
// because the tween itself interpolates the offset it samples.
type Reporter struct {
	sink func(float64)
	last float64
}

// NewReporter wires the reporter to the ambient layer's progress sink.
func NewReporter(sink func(float64)) *Reporter {
	return &Reporter{sink: sink}
}

// Sample computes progress from the camera offset and document geometry,
// clamps it to [0,1], publishes it, and returns it. A document no taller
// than the viewport reports zero.
func (r *Reporter) Sample(top, docHeight, viewHeight float64) float64 {
	denom := docHeight - viewHeight
	p := 0.0
	if denom > 0 {
		p = top / denom
		if p < 0 {
			p = 0
		}
		if p > 1 {
			p = 1
		}
	}
	r.last = p
	if r.sink != nil {
		r.sink(p)
	}
	return p
}

// Last returns the most recently published value.
func (r *Reporter) Last() float64 { return r.last }
