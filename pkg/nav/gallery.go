package nav

import "time"

// Gallery is the horizontal sub-navigator for a gallery section. It can
// consume an advance/retreat intent by sliding to the next card, or report
// that it is out of cards so the intent bubbles to the main orchestrator.
// It carries its own slide lock, independent of the transition lock.
type Gallery struct {
	items   int
	index   int
	pos     float64
	slide   time.Duration
	tween   *Tween
	sliding bool
}

// NewGallery returns a gallery over items cards, resting on the first.
func NewGallery(items int, slide time.Duration) *Gallery {
	return &Gallery{items: items, slide: slide}
}

// Next tries to consume a forward intent. It returns false only when the
// gallery is at its last card and idle, which is the signal to bubble the
// intent up. While a slide is in flight the intent is consumed without
// moving; the slide lock releases on tween completion, before any later
// call can observe false.
func (g *Gallery) Next() bool {
	if g.sliding {
		return true
	}
	if g.index >= g.items-1 {
		return false
	}
	g.index++
	g.startSlide()
	return true
}

// Prev is the backward counterpart of Next.
func (g *Gallery) Prev() bool {
	if g.sliding {
		return true
	}
	if g.index <= 0 {
		return false
	}
	g.index--
	g.startSlide()
	return true
}

func (g *Gallery) startSlide() {
	g.sliding = true
	g.tween = NewTween(g.pos, float64(g.index), g.slide, func() {
		g.sliding = false
	})
}

// Advance moves the slide animation forward.
func (g *Gallery) Advance(dt time.Duration) {
	if g.tween == nil {
		return
	}
	g.tween.Advance(dt)
	g.pos = g.tween.Value()
	if g.tween.Done() {
		g.tween = nil
	}
}

// Index returns the committed card index.
func (g *Gallery) Index() int { return g.index }

// Len returns the card count.
func (g *Gallery) Len() int { return g.items }

// Offset returns the continuous slide position in card widths, for
// rendering the strip mid-slide.
func (g *Gallery) Offset() float64 { return g.pos }

// Sliding reports whether the gallery's own lock is held.
func (g *Gallery) Sliding() bool { return g.sliding }

// Teardown cancels an in-flight slide.
func (g *Gallery) Teardown() {
	if g.tween != nil {
		g.tween.Cancel()
		g.tween = nil
	}
	g.sliding = false
}
