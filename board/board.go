package board

import (
	tea "charm.land/bubbletea/v2"
	"github.com/pkg/errors"
)

// Piece is an interactive control occupying a square.
type Piece interface {
	Update(msg tea.Msg) (Piece, tea.Cmd)
	Render() string
}

// PieceMsg is emitted by a piece; the board stamps where it came from.
type PieceMsg interface {
	IsPieceMsg()
	SetPosition(rank, file int)
}

// BlurMsg is sent to a piece when focus leaves its rank.
// Sent to the board, it blurs the focused piece in place.
type BlurMsg struct{}

// Rank is a row of pieces.
type Rank struct {
	pieces []Piece
}

func NewRank(pieces []Piece) Rank {
	return Rank{pieces: pieces}
}

// Board is a grid of pieces organized into ranks (rows), one focused square at a time.
// Pieces are values; Update replaces the focused piece with the one it returns.
type Board struct {
	ranks    []Rank
	position position
	width    int
	height   int
}

// New creates a board from ranks, focusing rank/file.
func New(ranks []Rank, rank, file int) (brd Board, err error) {

	for i, r := range ranks {
		if len(r.pieces) == 0 {
			err = errors.Errorf("rank %d has no pieces", i)
			return
		}
	}

	brd = Board{ranks: ranks}
	if len(ranks) == 0 {
		return
	}

	brd.position = position{rank: clamp(rank, 0, len(ranks)-1)}
	brd.position.file = clamp(file, 0, len(ranks[brd.position.rank].pieces)-1)
	return
}

// SizeMsg tells the board how much room it has.
type SizeMsg struct {
	Width  int
	Height int
}

func (brd Board) Update(msg tea.Msg) (Board, tea.Cmd) {

	switch msg := msg.(type) {
	case SizeMsg:
		brd.width = msg.Width
		brd.height = msg.Height
		return brd, nil

	case BlurMsg:
		if len(brd.ranks) == 0 {
			return brd, nil
		}
		return brd.updateFocused(msg)

	case tea.KeyPressMsg:
		if len(brd.ranks) == 0 {
			return brd, nil
		}

		switch msg.String() {
		case "up", "shift+tab":
			return brd.move(brd.position.rank - 1)
		case "down", "tab":
			return brd.move(brd.position.rank + 1)
		}
		return brd.updateFocused(msg)
	}

	return brd, nil
}

// Position returns the focused rank and file.
func (brd Board) Position() (rank, file int) {
	return brd.position.rank, brd.position.file
}

// Height returns the number of ranks.
func (brd Board) Height() int {
	return len(brd.ranks)
}

// Piece returns the piece at rank/file, or nil when out of range.
func (brd Board) Piece(rank, file int) Piece {
	if rank < 0 || rank >= len(brd.ranks) {
		return nil
	}
	pieces := brd.ranks[rank].pieces
	if file < 0 || file >= len(pieces) {
		return nil
	}
	return pieces[file]
}

// Rank returns the rendered pieces of a rank.
func (brd Board) Rank(rank int) []string {
	if rank < 0 || rank >= len(brd.ranks) {
		return nil
	}

	rendered := make([]string, len(brd.ranks[rank].pieces))
	for i, pc := range brd.ranks[rank].pieces {
		rendered[i] = pc.Render()
	}
	return rendered
}

// unexported

type position struct {
	rank int
	file int
}

// move focuses another rank, blurring the piece being left.
func (brd Board) move(rank int) (Board, tea.Cmd) {

	rank = clamp(rank, 0, len(brd.ranks)-1)
	if rank == brd.position.rank {
		return brd, nil
	}

	brd, cmd := brd.updateFocused(BlurMsg{})

	brd.position.rank = rank
	brd.position.file = clamp(brd.position.file, 0, len(brd.ranks[rank].pieces)-1)
	return brd, cmd
}

func (brd Board) updateFocused(msg tea.Msg) (Board, tea.Cmd) {

	pos := brd.position
	pieces := brd.ranks[pos.rank].pieces

	updated, cmd := pieces[pos.file].Update(msg)

	// copy so boards sharing ranks are not disturbed
	ranks := make([]Rank, len(brd.ranks))
	copy(ranks, brd.ranks)
	ranks[pos.rank] = Rank{pieces: append([]Piece(nil), pieces...)}
	ranks[pos.rank].pieces[pos.file] = updated
	brd.ranks = ranks

	return brd, stamp(cmd, pos)
}

// stamp sets the originating position on any PieceMsg produced by cmd.
func stamp(cmd tea.Cmd, pos position) tea.Cmd {
	if cmd == nil {
		return nil
	}

	return func() tea.Msg {
		msg := cmd()
		if pm, ok := msg.(PieceMsg); ok {
			pm.SetPosition(pos.rank, pos.file)
		}
		return msg
	}
}

func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
