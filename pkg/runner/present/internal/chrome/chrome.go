// Package chrome renders the fixed page furniture under the presentation:
// section dots, the step counter, a progress bar, and the key help line.
package chrome

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/progress"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/saga/pkg/runner/present/internal/theme"
)

const helpLine = "↓/space/pgdn next · ↑/pgup back · ←/→ gallery · home/end ends · 1-9 section · q quit"

// Model tracks footer rendering state.
type Model struct {
	th  theme.Theme
	bar progress.Model
}

// New returns the footer model.
func New() Model {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	return Model{th: theme.Default(), bar: bar}
}

// State is everything the footer shows for one frame.
type State struct {
	Width         int
	SectionCount  int
	ActiveSection int
	StepIndex     int
	StepCount     int
	Progress      float64
}

// View renders the two footer rows.
func (m Model) View(s State) string {
	if s.Width <= 0 {
		return ""
	}

	dots := make([]string, s.SectionCount)
	for i := range dots {
		if i == s.ActiveSection {
			dots[i] = m.th.Footer.DotOn.Render("●")
		} else {
			dots[i] = m.th.Footer.DotOff.Render("○")
		}
	}
	counter := m.th.Footer.Counter.Render(fmt.Sprintf("step %d/%d", s.StepIndex+1, s.StepCount))
	if s.StepCount == 0 {
		counter = m.th.Footer.Counter.Render("empty deck")
	}

	barWidth := s.Width / 3
	if barWidth < 10 {
		barWidth = 10
	}
	m.bar.SetWidth(barWidth)
	bar := m.bar.ViewAs(s.Progress)

	left := strings.Join(dots, " ")
	gap := lipgloss.NewStyle().Padding(0, 2).Render(" ")
	row := lipgloss.JoinHorizontal(lipgloss.Center, left, gap, counter, gap, bar)

	help := m.th.Footer.Help.Render(helpLine)
	if lipgloss.Width(help) > s.Width {
		help = m.th.Footer.Help.Render("↓ next · ↑ back · q quit")
	}
	return row + "\n" + help
}
