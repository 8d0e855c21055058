package ambient

import (
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
)

var glyphs = []rune{'·', '˙', '∙', '+', '✦'}

// palette stops the progress value sweeps through, dusk to ember.
var paletteStops = []colorful.Color{
	mustHex("#1b2a4a"),
	mustHex("#4a3b78"),
	mustHex("#8a4d76"),
	mustHex("#c76b4e"),
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

type particle struct {
	x, y  float64
	speed float64 // rows per second, upward
	glyph rune
}

// Field is the default ambient layer: sparse particles drifting up the
// frame. Deterministic for a given seed and advance sequence.
type Field struct {
	rng    *rand.Rand
	width  int
	height int
	parts  []particle

	progress float64
	active   int
	duck     float64 // 1 steady, dips toward dim on section changes
}

// NewField returns a field seeded for deterministic drift.
func NewField(seed int64) *Field {
	return &Field{rng: rand.New(rand.NewSource(seed)), active: -1, duck: 1}
}

// Resize fits the field to the frame and repopulates particles at a density
// of roughly one per forty cells.
func (f *Field) Resize(width, height int) {
	f.width = width
	f.height = height
	n := width * height / 40
	if n < 0 {
		n = 0
	}
	f.parts = make([]particle, n)
	for i := range f.parts {
		f.parts[i] = f.spawn(f.rng.Float64() * float64(height))
	}
}

func (f *Field) spawn(y float64) particle {
	return particle{
		x:     f.rng.Float64() * float64(f.width),
		y:     y,
		speed: 0.5 + f.rng.Float64()*2.5,
		glyph: glyphs[f.rng.Intn(len(glyphs))],
	}
}

// SetProgress implements Layer.
func (f *Field) SetProgress(p float64) {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	f.progress = p
}

// SetActiveSection implements Layer. A section change ducks the field so
// arriving text reads over it; Advance recovers the level.
func (f *Field) SetActiveSection(section int) {
	if section != f.active {
		f.active = section
		f.duck = 0.35
	}
}

// Advance drifts particles and recovers the duck level.
func (f *Field) Advance(dt time.Duration) {
	sec := dt.Seconds()
	for i := range f.parts {
		f.parts[i].y -= f.parts[i].speed * sec
		if f.parts[i].y < 0 {
			p := f.spawn(float64(f.height))
			p.y = float64(f.height) - 0.01
			f.parts[i] = p
		}
	}
	f.duck += sec * 1.5
	if f.duck > 1 {
		f.duck = 1
	}
}

// Color returns the current palette color as a hex string, progress-blended
// and duck-dimmed. Exposed so chrome can tint itself to match.
func (f *Field) Color() string {
	c := blend(f.progress)
	h, s, l := c.Hsl()
	return colorful.Hsl(h, s, l*f.duck).Clamped().Hex()
}

func blend(p float64) colorful.Color {
	if len(paletteStops) == 1 {
		return paletteStops[0]
	}
	span := float64(len(paletteStops) - 1)
	pos := p * span
	i := int(pos)
	if i >= len(paletteStops)-1 {
		return paletteStops[len(paletteStops)-1]
	}
	return paletteStops[i].BlendLuv(paletteStops[i+1], pos-float64(i))
}

// Rows renders the field as one string per row at the current size.
func (f *Field) Rows() []string {
	rows := make([]string, f.height)
	if f.width <= 0 || f.height <= 0 {
		return rows
	}
	grid := make([]rune, f.width*f.height)
	for i := range grid {
		grid[i] = ' '
	}
	for _, p := range f.parts {
		x, y := int(p.x), int(p.y)
		if x < 0 || x >= f.width || y < 0 || y >= f.height {
			continue
		}
		grid[y*f.width+x] = p.glyph
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(f.Color()))
	for y := 0; y < f.height; y++ {
		line := strings.TrimRight(string(grid[y*f.width:(y+1)*f.width]), " ")
		if line == "" {
			rows[y] = ""
			continue
		}
		rows[y] = style.Render(line)
	}
	return rows
}

// Progress returns the last value published into the field.
func (f *Field) Progress() float64 { return f.progress }

// ActiveSection returns the last active section published into the field.
func (f *Field) ActiveSection() int { return f.active }
