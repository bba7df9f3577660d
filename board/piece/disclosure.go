package piece

import (
	tea "charm.land/bubbletea/v2"

	"soshiki/board"
)

// Disclosure marks a row that opens a child screen.
// It is passive: the owning panel decides what activation does.
type Disclosure struct{}

func NewDisclosure() Disclosure {
	return Disclosure{}
}

func (d Disclosure) Update(msg tea.Msg) (board.Piece, tea.Cmd) {
	return d, nil
}

func (d Disclosure) Render() string {
	return "›"
}
