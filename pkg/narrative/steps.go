package narrative

import "fmt"

// StepKind is the closed set of navigable unit kinds.
type StepKind int

const (
	StepTitle StepKind = iota
	StepDetail
	StepGallery
)

func (k StepKind) String() string {
	switch k {
	case StepTitle:
		return "title"
	case StepDetail:
		return "detail"
	case StepGallery:
		return "gallery"
	}
	return fmt.Sprintf("StepKind(%d)", int(k))
}

// Step is the atomic navigable unit. Section is a back-reference into the
// deck's section list, not ownership.
type Step struct {
	Section int
	Kind    StepKind
}

// BuildSteps flattens sections into the ordered step list. Every section
// yields one title step; a section with detail content yields one extra
// detail step; a gallery section yields one extra gallery step instead.
// Pure and deterministic; an empty section list yields an empty step list.
func BuildSteps(sections []Section) []Step {
	steps := make([]Step, 0, len(sections)*2)
	for i, s := range sections {
		steps = append(steps, Step{Section: i, Kind: StepTitle})
		switch {
		case s.HasGallery():
			steps = append(steps, Step{Section: i, Kind: StepGallery})
		case s.HasDetail():
			steps = append(steps, Step{Section: i, Kind: StepDetail})
		}
	}
	return steps
}

// TitleStep returns the index of the title step for the given section, or -1
// when the section is out of range. Used by direct navigation UI (section
// markers jump to titles, never into details).
func TitleStep(steps []Step, section int) int {
	for i, st := range steps {
		if st.Section == section && st.Kind == StepTitle {
			return i
		}
	}
	return -1
}
