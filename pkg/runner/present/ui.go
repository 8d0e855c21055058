// Package present hosts the Bubble Tea presentation: it feeds terminal
// input into the navigation controller and composes the story, ambient
// field, and footer chrome into each frame.
package present

import (
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/saga/pkg/ambient"
	"tableflip.dev/saga/pkg/narrative"
	"tableflip.dev/saga/pkg/nav"
	"tableflip.dev/saga/pkg/runner/present/internal/chrome"
	"tableflip.dev/saga/pkg/runner/present/internal/storyview"
	"tableflip.dev/saga/pkg/store"
)

const footerRows = 3

type frameMsg time.Time

type libraryEventMsg store.Event

type deckReloadedMsg struct {
	deck *narrative.Narrative
}

// Model wires one deck to one controller instance for the page's lifetime.
type Model struct {
	deck   *narrative.Narrative
	cfg    nav.Config
	ctrl   *nav.Controller
	story  *storyview.View
	field  *ambient.Field
	footer chrome.Model

	width    int
	height   int
	contentH int

	frame     time.Duration
	lastFrame time.Time

	events <-chan store.Event
	load   func() (*narrative.Narrative, error)
}

// Option adjusts the presentation model before it runs.
type Option func(*Model)

// WithLibrary reloads the deck in place whenever its library entry changes
// on disk. load re-reads the deck; events comes from store.Persistence.Watch.
func WithLibrary(events <-chan store.Event, load func() (*narrative.Narrative, error)) Option {
	return func(m *Model) {
		m.events = events
		m.load = load
	}
}

// New builds the presentation model. fps bounds the ambient/animation tick.
func New(deck *narrative.Narrative, cfg nav.Config, fps int, opts ...Option) Model {
	if fps <= 0 {
		fps = 30
	}
	steps := narrative.BuildSteps(deck.Sections)
	story := storyview.New(deck, steps, cfg.Transition)
	field := ambient.NewField(time.Now().UnixNano())
	ctrl := nav.New(deck.Sections, cfg, story, field)
	m := Model{
		deck:   deck,
		cfg:    cfg,
		ctrl:   ctrl,
		story:  story,
		field:  field,
		footer: chrome.New(),
		frame:  time.Second / time.Duration(fps),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init starts the frame tick and, when watching a library deck, the
// change listener.
func (m Model) Init() tea.Cmd {
	if m.events != nil {
		return tea.Batch(m.tick(), m.nextEvent())
	}
	return m.tick()
}

func (m Model) nextEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return nil
		}
		return libraryEventMsg(ev)
	}
}

func (m Model) reloadDeck() tea.Cmd {
	return func() tea.Msg {
		n, err := m.load()
		if err != nil {
			// Keep presenting the last good deck; the next change gets
			// another chance.
			return nil
		}
		return deckReloadedMsg{deck: n}
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// Update routes input to the controller and pumps the frame clock.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.applySizes()

	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.ctrl.Teardown()
			return m, tea.Quit
		case "down", "j", "pgdown", "space", " ":
			m.ctrl.Key(nav.KeyAdvance)
		case "up", "k", "pgup":
			m.ctrl.Key(nav.KeyRetreat)
		case "home", "g":
			m.ctrl.Key(nav.KeyHome)
		case "end", "G":
			m.ctrl.Key(nav.KeyEnd)
		case "right", "l":
			m.ctrl.GalleryNext()
		case "left", "h":
			m.ctrl.GalleryPrev()
		default:
			if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
				m.ctrl.GoToSection(int(s[0] - '1'))
			}
		}

	case tea.MouseWheelMsg:
		switch msg.Mouse().Button {
		case tea.MouseWheelDown:
			m.ctrl.Wheel(m.cfg.WheelDelta)
		case tea.MouseWheelUp:
			m.ctrl.Wheel(-m.cfg.WheelDelta)
		}

	case tea.MouseClickMsg:
		mouse := msg.Mouse()
		if mouse.Button == tea.MouseLeft {
			m.ctrl.DragStart(mouse.Y)
		}

	case tea.MouseReleaseMsg:
		m.ctrl.DragEnd(msg.Mouse().Y)

	case libraryEventMsg:
		relevant := msg.Type == store.EventLibraryInvalidated ||
			(msg.Type == store.EventDeckChanged && msg.Deck == m.deck.Name)
		if relevant && m.load != nil {
			return m, tea.Batch(m.reloadDeck(), m.nextEvent())
		}
		return m, m.nextEvent()

	case deckReloadedMsg:
		m.swapDeck(msg.deck)

	case frameMsg:
		now := time.Time(msg)
		dt := m.frame
		if !m.lastFrame.IsZero() {
			if d := now.Sub(m.lastFrame); d > 0 && d < time.Second {
				dt = d
			}
		}
		m.lastFrame = now
		m.advance(dt)
		return m, m.tick()
	}
	return m, nil
}

// swapDeck rebuilds the content layers around new deck content, keeping the
// reader as close as possible to where they were.
func (m *Model) swapDeck(deck *narrative.Narrative) {
	section := m.ctrl.CurrentSection()
	m.ctrl.Teardown()

	steps := narrative.BuildSteps(deck.Sections)
	m.deck = deck
	m.story = storyview.New(deck, steps, m.cfg.Transition)
	m.field = ambient.NewField(time.Now().UnixNano())
	m.ctrl = nav.New(deck.Sections, m.cfg, m.story, m.field)
	if m.width > 0 && m.height > 0 {
		m.applySizes()
	}
	if section > 0 && section < len(deck.Sections) {
		m.ctrl.GoToSection(section)
	}
}

// advance pumps one frame through the controller and render layers.
func (m *Model) advance(dt time.Duration) {
	m.ctrl.Advance(dt)
	m.story.Advance(dt)
	m.field.Advance(dt)
	for i, sec := range m.deck.Sections {
		if !sec.HasGallery() {
			continue
		}
		if g := m.ctrl.Gallery(i); g != nil {
			m.story.SetGalleryPos(i, g.Offset())
		}
	}
}

func (m *Model) applySizes() {
	m.contentH = m.height - footerRows
	if m.contentH < 1 {
		m.contentH = 1
	}
	m.story.Layout(m.width, m.contentH)
	m.field.Resize(m.width, m.contentH)
	m.ctrl.SetViewport(float64(m.story.DocHeight()), float64(m.contentH))
	// Snap the camera onto the current anchor after a resize so logical and
	// physical state reconverge immediately.
	if row, ok := m.story.AnchorRow(m.ctrl.CurrentStep()); ok && !m.ctrl.Transitioning() {
		m.ctrl.SetOffset(row)
	}
}

// View composes the story slice over the ambient field, plus footer.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	rows := m.story.Visible(m.ctrl.Offset(), m.field.Rows())
	body := ""
	for i, r := range rows {
		if i > 0 {
			body += "\n"
		}
		body += r
	}
	footer := m.footer.View(chrome.State{
		Width:         m.width,
		SectionCount:  len(m.deck.Sections),
		ActiveSection: m.ctrl.CurrentSection(),
		StepIndex:     m.ctrl.TargetStep(),
		StepCount:     len(m.ctrl.Steps()),
		Progress:      m.ctrl.Progress(),
	})
	return body + "\n" + footer
}

// Run launches the presentation program.
func Run(deck *narrative.Narrative, cfg nav.Config, fps int, opts ...Option) error {
	p := tea.NewProgram(New(deck, cfg, fps, opts...),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
