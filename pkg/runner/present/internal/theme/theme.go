package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the presentation UI.
type Theme struct {
	Title       lipgloss.Style
	TitleFaint  lipgloss.Style
	Kicker      lipgloss.Style
	Card        lipgloss.Style
	CardBody    lipgloss.Style
	GalleryCard lipgloss.Style
	GalleryHot  lipgloss.Style
	Footer      FooterTheme
}

// FooterTheme groups styles used by the bottom chrome bar.
type FooterTheme struct {
	Help    lipgloss.Style
	Counter lipgloss.Style
	DotOn   lipgloss.Style
	DotOff  lipgloss.Style
}

// Default returns the built-in theme used across the presentation.
func Default() Theme {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("60")).
		Padding(1, 3)

	return Theme{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")),
		TitleFaint: lipgloss.NewStyle().Bold(true).Faint(true).Foreground(lipgloss.Color("230")),
		Kicker:     lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("245")),
		Card:       card,
		CardBody:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		GalleryCard: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2).
			Faint(true),
		GalleryHot: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("213")).
			Padding(1, 2),
		Footer: FooterTheme{
			Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Counter: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			DotOn:   lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
			DotOff:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		},
	}
}
