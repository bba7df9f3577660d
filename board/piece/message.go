package piece

import "soshiki/board"

// Ensure messages implement board.PieceMsg
var (
	_ board.PieceMsg = (*CheckedMsg)(nil)
	_ board.PieceMsg = (*SegmentChangedMsg)(nil)
	_ board.PieceMsg = (*EditedMsg)(nil)
	_ board.PieceMsg = (*NumberChangedMsg)(nil)
)

// CheckedMsg is sent when a checkbox is toggled
type CheckedMsg struct {
	Rank    int
	File    int
	Checked bool
}

func (CheckedMsg) IsPieceMsg() {}
func (m *CheckedMsg) SetPosition(rank, file int) {
	m.Rank = rank
	m.File = file
}

// SegmentChangedMsg is sent when a segment selection changes
type SegmentChangedMsg struct {
	Rank  int
	File  int
	Index int
}

func (SegmentChangedMsg) IsPieceMsg() {}
func (m *SegmentChangedMsg) SetPosition(rank, file int) {
	m.Rank = rank
	m.File = file
}

// EditedMsg is sent when text editing ends
type EditedMsg struct {
	Rank  int
	File  int
	Value string
}

func (EditedMsg) IsPieceMsg() {}
func (m *EditedMsg) SetPosition(rank, file int) {
	m.Rank = rank
	m.File = file
}

// NumberChangedMsg is sent when a stepper value changes
type NumberChangedMsg struct {
	Rank  int
	File  int
	Value float64
}

func (NumberChangedMsg) IsPieceMsg() {}
func (m *NumberChangedMsg) SetPosition(rank, file int) {
	m.Rank = rank
	m.File = file
}
