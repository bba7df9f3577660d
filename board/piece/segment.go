package piece

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"soshiki/board"
	"soshiki/style"
)

// Segment picks exactly one of a list of options
type Segment struct {
	options  []string
	selected int
}

func NewSegment(options []string, selected int) Segment {
	if selected < 0 || selected >= len(options) {
		selected = 0
	}
	return Segment{
		options:  options,
		selected: selected,
	}
}

func (s Segment) Update(msg tea.Msg) (board.Piece, tea.Cmd) {
	if len(s.options) == 0 {
		return s, nil
	}

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "left", "h":
			if s.selected > 0 {
				s.selected--
				return s, s.changedCmd()
			}
		case "right", "l":
			if s.selected < len(s.options)-1 {
				s.selected++
				return s, s.changedCmd()
			}
		}
	}
	return s, nil
}

func (s Segment) changedCmd() tea.Cmd {
	idx := s.selected
	return func() tea.Msg {
		return &SegmentChangedMsg{Index: idx}
	}
}

func (s Segment) Selected() string {
	if s.selected < 0 || s.selected >= len(s.options) {
		return ""
	}
	return s.options[s.selected]
}

func (s Segment) SelectedIndex() int {
	return s.selected
}

func (s Segment) Render() string {
	parts := make([]string, len(s.options))
	for i, opt := range s.options {
		if i == s.selected {
			parts[i] = style.SelectedStyle.Render(opt)
			continue
		}
		parts[i] = style.MutedStyle.Render(opt)
	}
	return strings.Join(parts, style.MutedStyle.Render(" | "))
}
