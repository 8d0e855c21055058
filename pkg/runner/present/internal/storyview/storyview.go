// Package storyview renders a deck into the virtual document the camera
// scrolls through: one screen-height block per step, with per-section text
// animations, the detail card, and the horizontal gallery strip. It is the
// stage the navigation controller drives.
package storyview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/saga/pkg/narrative"
	"tableflip.dev/saga/pkg/nav"
	"tableflip.dev/saga/pkg/runner/present/internal/theme"
)

type animPhase int

const (
	animNone animPhase = iota
	animEnter
	animExit
)

type anim struct {
	phase animPhase
	dir   nav.Direction
	t     float64
}

// View holds layout and animation state for the rendered document.
type View struct {
	deck    *narrative.Narrative
	steps   []narrative.Step
	th      theme.Theme
	animDur time.Duration

	width  int
	height int

	anims      map[int]*anim
	detail     map[int]bool
	gallery    map[int]bool
	galleryPos map[int]float64
}

// New builds a view for the deck. animDur should match the controller's
// transition duration so text settles when the camera does.
func New(deck *narrative.Narrative, steps []narrative.Step, animDur time.Duration) *View {
	return &View{
		deck:       deck,
		steps:      steps,
		th:         theme.Default(),
		animDur:    animDur,
		anims:      make(map[int]*anim),
		detail:     make(map[int]bool),
		gallery:    make(map[int]bool),
		galleryPos: make(map[int]float64),
	}
}

// Layout fits the document to the frame. Every step owns one full screen.
func (v *View) Layout(width, height int) {
	v.width = width
	v.height = height
}

// Mounted reports whether a usable layout exists yet.
func (v *View) Mounted() bool {
	return v.width > 0 && v.height > 0
}

// DocHeight returns the virtual document height in rows.
func (v *View) DocHeight() int {
	return len(v.steps) * v.height
}

// AnchorRow implements nav.Stage. Anchors resolve only once the layout is
// mounted; before that the controller commits logical state without moving
// the camera.
func (v *View) AnchorRow(step int) (float64, bool) {
	if !v.Mounted() || step < 0 || step >= len(v.steps) {
		return 0, false
	}
	return float64(step * v.height), true
}

// ExitSection implements nav.Stage.
func (v *View) ExitSection(section int, dir nav.Direction) {
	v.anims[section] = &anim{phase: animExit, dir: dir}
}

// EnterSection implements nav.Stage.
func (v *View) EnterSection(section int, dir nav.Direction) {
	v.anims[section] = &anim{phase: animEnter, dir: dir}
}

// SetDetailVisible implements nav.Stage.
func (v *View) SetDetailVisible(section int, visible bool) {
	v.detail[section] = visible
}

// SetGalleryVisible implements nav.Stage.
func (v *View) SetGalleryVisible(section int, visible bool) {
	v.gallery[section] = visible
}

// SetGalleryPos feeds the sub-navigator's continuous slide position, in
// card widths, for the strip render.
func (v *View) SetGalleryPos(section int, pos float64) {
	v.galleryPos[section] = pos
}

// DetailVisible reports the flag for tests and chrome.
func (v *View) DetailVisible(section int) bool { return v.detail[section] }

// Advance moves text animations forward.
func (v *View) Advance(dt time.Duration) {
	if v.animDur <= 0 {
		for s := range v.anims {
			delete(v.anims, s)
		}
		return
	}
	for s, a := range v.anims {
		a.t += float64(dt) / float64(v.animDur)
		if a.t >= 1 {
			delete(v.anims, s)
		}
	}
}

// Visible renders the viewport slice at the camera offset, filling rows the
// document leaves empty from the background layer. background may be short
// or nil.
func (v *View) Visible(offset float64, background []string) []string {
	out := make([]string, v.height)
	if !v.Mounted() {
		return out
	}
	top := int(offset + 0.5)
	blocks := make(map[int][]string, 2)
	for i := 0; i < v.height; i++ {
		r := top + i
		bg := ""
		if i < len(background) {
			bg = background[i]
		}
		if r < 0 || r >= v.DocHeight() {
			out[i] = bg
			continue
		}
		step := r / v.height
		lines, ok := blocks[step]
		if !ok {
			lines = v.blockLines(step)
			blocks[step] = lines
		}
		line := lines[r%v.height]
		if line == "" {
			line = bg
		}
		out[i] = line
	}
	return out
}

// blockLines renders one step's screen worth of rows. Empty rows stay ""
// so the ambient layer shows through.
func (v *View) blockLines(step int) []string {
	lines := make([]string, v.height)
	st := v.steps[step]
	sec := v.deck.Sections[st.Section]

	var content []string
	switch st.Kind {
	case narrative.StepTitle:
		content = v.titleContent(st.Section, sec)
	case narrative.StepDetail:
		content = v.detailContent(st.Section, sec)
	case narrative.StepGallery:
		content = v.galleryContent(st.Section, sec)
	}

	top := (v.height - len(content)) / 2
	top += v.rowShift(st.Section)
	for i, line := range content {
		row := top + i
		if row < 0 || row >= v.height {
			continue
		}
		lines[row] = line
	}
	return lines
}

// rowShift is the vertical animation displacement for a section's text:
// entering text settles into place from the direction of travel, exiting
// text leaves toward it.
func (v *View) rowShift(section int) int {
	a := v.anims[section]
	if a == nil {
		return 0
	}
	amp := float64(v.height) / 3
	var sh float64
	switch a.phase {
	case animEnter:
		sh = (1 - ease(a.t)) * amp
	case animExit:
		sh = -ease(a.t) * amp
	case animNone:
		return 0
	}
	if a.dir == nav.DirUp {
		sh = -sh
	}
	return int(sh)
}

func (v *View) animating(section int) bool {
	return v.anims[section] != nil
}

func (v *View) titleContent(section int, sec narrative.Section) []string {
	titleStyle := v.th.Title
	if v.animating(section) {
		titleStyle = v.th.TitleFaint
	}
	kicker := v.th.Kicker.Render(fmt.Sprintf("%02d · %s", section+1, sec.ID))
	title := titleStyle.Render(sec.Title)
	return []string{
		v.place(kicker, sec.Align),
		"",
		v.place(title, sec.Align),
	}
}

func (v *View) detailContent(section int, sec narrative.Section) []string {
	out := []string{
		v.place(v.th.Kicker.Render(sec.Title), sec.Align),
		"",
	}
	if !v.detail[section] {
		return out
	}
	cardW := v.width - 8
	if cardW > 64 {
		cardW = 64
	}
	if cardW < 16 {
		cardW = 16
	}
	body := wordwrap.String(strings.TrimSpace(sec.Detail), cardW-8)
	card := v.th.Card.Render(v.th.CardBody.Render(body))
	for _, line := range strings.Split(card, "\n") {
		out = append(out, v.place(line, sec.Align))
	}
	return out
}

func (v *View) galleryContent(section int, sec narrative.Section) []string {
	out := []string{
		v.place(v.th.Kicker.Render(sec.Title), sec.Align),
		"",
	}
	if !v.gallery[section] {
		return out
	}
	pos := v.galleryPos[section]
	current := int(pos + 0.5)

	cards := make([]string, len(sec.Gallery))
	for i, item := range sec.Gallery {
		style := v.th.GalleryCard
		if i == current {
			style = v.th.GalleryHot
		}
		cards[i] = style.Render(wordwrap.String(item, 14))
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Top, cards...)

	// Slide the strip so the continuous position sits centered; mid-slide
	// the fractional part glides the cards across.
	cardAdv := 0
	if len(cards) > 0 {
		cardAdv = lipgloss.Width(cards[0])
	}
	indent := (v.width-cardAdv)/2 - int(pos*float64(cardAdv))
	if indent < 0 {
		indent = 0
	}
	pad := strings.Repeat(" ", indent)
	for _, line := range strings.Split(strip, "\n") {
		out = append(out, pad+line)
	}

	dots := make([]string, len(sec.Gallery))
	for i := range sec.Gallery {
		if i == current {
			dots[i] = v.th.Footer.DotOn.Render("●")
		} else {
			dots[i] = v.th.Footer.DotOff.Render("○")
		}
	}
	out = append(out, "", v.place(strings.Join(dots, " "), narrative.AlignCenter))
	return out
}

// place pads a rendered line into the frame width per the section's
// alignment.
func (v *View) place(line string, align narrative.Align) string {
	w := lipgloss.Width(line)
	if w >= v.width {
		return line
	}
	switch align {
	case narrative.AlignCenter:
		return strings.Repeat(" ", (v.width-w)/2) + line
	case narrative.AlignRight:
		pad := v.width - w - 4
		if pad < 0 {
			pad = 0
		}
		return strings.Repeat(" ", pad) + line
	default:
		return strings.Repeat(" ", min(4, v.width-w)) + line
	}
}

func ease(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p * p * (3 - 2*p)
}
