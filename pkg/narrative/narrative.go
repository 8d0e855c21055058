package narrative

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Align controls how a section title sits in the frame.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Section is an authored content unit of a deck. Sections are loaded once and
// never mutated; everything the controller navigates is derived from them.
type Section struct {
	ID      string   `yaml:"id" json:"id"`
	Title   string   `yaml:"title" json:"title"`
	Align   Align    `yaml:"align,omitempty" json:"align,omitempty"`
	Detail  string   `yaml:"detail,omitempty" json:"detail,omitempty"`
	Gallery []string `yaml:"gallery,omitempty" json:"gallery,omitempty"`
}

// HasDetail reports whether the section expands into a detail card.
func (s Section) HasDetail() bool {
	return strings.TrimSpace(s.Detail) != ""
}

// HasGallery reports whether the section expands into a horizontal gallery.
func (s Section) HasGallery() bool {
	return len(s.Gallery) > 0
}

// Narrative is a full deck: a title and its ordered sections.
type Narrative struct {
	Name     string    `yaml:"name" json:"name"`
	Title    string    `yaml:"title,omitempty" json:"title,omitempty"`
	Sections []Section `yaml:"sections" json:"sections"`
}

// Parse decodes and validates a deck from YAML.
func Parse(data []byte) (*Narrative, error) {
	n := &Narrative{}
	if err := yaml.Unmarshal(data, n); err != nil {
		return nil, fmt.Errorf("narrative: decode: %w", err)
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return n, nil
}

// LoadFile reads and parses a deck from a YAML file on disk.
func LoadFile(path string) (*Narrative, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("narrative: read %s: %w", path, err)
	}
	return Parse(data)
}

// Validate checks structural rules the controller relies on. An empty section
// list is valid (the presentation degrades to a no-op), but individual
// sections must be well formed.
func (n *Narrative) Validate() error {
	if strings.TrimSpace(n.Name) == "" {
		return errors.New("narrative: deck name required")
	}
	seen := make(map[string]bool, len(n.Sections))
	for i := range n.Sections {
		s := &n.Sections[i]
		if strings.TrimSpace(s.Title) == "" {
			return fmt.Errorf("narrative: section %d: title required", i)
		}
		if s.ID == "" {
			s.ID = slug(s.Title)
		}
		if seen[s.ID] {
			return fmt.Errorf("narrative: duplicate section id %q", s.ID)
		}
		seen[s.ID] = true
		if s.HasDetail() && s.HasGallery() {
			return fmt.Errorf("narrative: section %q: detail and gallery are mutually exclusive", s.ID)
		}
		switch s.Align {
		case "":
			s.Align = AlignLeft
		case AlignLeft, AlignCenter, AlignRight:
		default:
			return fmt.Errorf("narrative: section %q: unknown align %q", s.ID, s.Align)
		}
	}
	return nil
}

func slug(title string) string {
	out := make([]rune, 0, len(title))
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		case r == ' ' || r == '-' || r == '_':
			if len(out) > 0 && out[len(out)-1] != '-' {
				out = append(out, '-')
			}
		}
	}
	return strings.Trim(string(out), "-")
}
