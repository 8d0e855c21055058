package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/saga/pkg/narrative"
)

type PrettyPrint struct{}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Decks renders the library listing, one deck name per row.
func (pp *PrettyPrint) Decks(names ...string) {
	if len(names) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	for _, name := range names {
		_, _ = t.Printf("  %s\n", name)
	}
	_, _ = t.Println("")
}

// Steps renders the navigable step list for a deck, one row per step.
func (pp *PrettyPrint) Steps(n *narrative.Narrative) {
	steps := narrative.BuildSteps(n.Sections)

	title := n.Title
	if title == "" {
		title = n.Name
	}
	pp.TitleWithCount(title, len(steps))

	tbl := uitable.New()
	tbl.Separator = "  "
	faint := color.New(color.Faint)
	for i, st := range steps {
		s := n.Sections[st.Section]
		tbl.AddRow(
			faint.Sprintf("%d", i+1),
			s.ID,
			st.Kind.String(),
			stepHint(s, st.Kind),
		)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" step")
	default:
		_, _ = c.Println(" steps")
	}
}

func stepHint(s narrative.Section, kind narrative.StepKind) string {
	switch kind {
	case narrative.StepDetail:
		return truncate(s.Detail, 40)
	case narrative.StepGallery:
		return fmt.Sprintf("%d cards", len(s.Gallery))
	}
	return s.Title
}

func truncate(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
