package board_test

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soshiki/board"
	"soshiki/board/piece"
	"soshiki/testutil"
)

func newBoard(t *testing.T) board.Board {
	t.Helper()

	brd, err := board.New([]board.Rank{
		board.NewRank([]board.Piece{piece.NewCheckbox(false)}),
		board.NewRank([]board.Piece{piece.NewTextInput("", "", 0)}),
		board.NewRank([]board.Piece{piece.NewSegment([]string{"A", "B"}, 0)}),
	}, 0, 0)
	require.NoError(t, err)
	return brd
}

func TestNewRejectsEmptyRank(t *testing.T) {
	_, err := board.New([]board.Rank{board.NewRank(nil)}, 0, 0)
	assert.Error(t, err)

	brd, err := board.New(nil, 3, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, brd.Height())

	brd, _ = brd.Update(testutil.Key("down"))
	assert.Equal(t, 0, brd.Height())
}

func TestNavigation(t *testing.T) {
	brd := newBoard(t)

	brd, _ = brd.Update(testutil.Key("up"))
	rank, _ := brd.Position()
	assert.Equal(t, 0, rank)

	brd, _ = brd.Update(testutil.Key("down"))
	brd, _ = brd.Update(testutil.Key("tab"))
	brd, _ = brd.Update(testutil.Key("down"))
	rank, _ = brd.Position()
	assert.Equal(t, 2, rank)
	assert.Equal(t, 3, brd.Height())
}

func TestStampsPosition(t *testing.T) {
	brd := newBoard(t)
	brd, _ = brd.Update(testutil.Key("down"))
	brd, _ = brd.Update(testutil.Key("down"))

	brd, cmd := brd.Update(testutil.Key("right"))
	msg := testutil.Run(cmd)

	require.IsType(t, &piece.SegmentChangedMsg{}, msg)
	changed := msg.(*piece.SegmentChangedMsg)
	assert.Equal(t, 2, changed.Rank)
	assert.Equal(t, 1, changed.Index)
	assert.Contains(t, brd.Rank(2)[0], "B")
}

func TestBlurOnLeave(t *testing.T) {
	brd := newBoard(t)
	brd, _ = brd.Update(testutil.Key("down"))

	for _, key := range testutil.Keys("hi") {
		brd, _ = brd.Update(key)
	}

	var cmd tea.Cmd
	brd, cmd = brd.Update(testutil.Key("down"))
	msg := testutil.Run(cmd)

	require.IsType(t, &piece.EditedMsg{}, msg)
	assert.Equal(t, "hi", msg.(*piece.EditedMsg).Value)
	assert.Equal(t, 1, msg.(*piece.EditedMsg).Rank)
	assert.Equal(t, "hi", brd.Piece(1, 0).(piece.TextInput).Value())
}

func TestUpdateDoesNotDisturbCopies(t *testing.T) {
	brd := newBoard(t)
	before := brd

	brd, _ = brd.Update(testutil.Key("t"))

	assert.Equal(t, "[x]", brd.Rank(0)[0])
	assert.Equal(t, "[ ]", before.Rank(0)[0])
	assert.Nil(t, brd.Piece(5, 0))
	assert.Nil(t, brd.Rank(-1))
}

func TestBlurInPlace(t *testing.T) {
	brd := newBoard(t)

	brd, _ = brd.Update(testutil.Key("down"))
	brd, _ = brd.Update(testutil.Key("x"))

	brd, cmd := brd.Update(board.BlurMsg{})
	msg := testutil.Run(cmd)

	require.IsType(t, &piece.EditedMsg{}, msg)
	assert.Equal(t, "x", msg.(*piece.EditedMsg).Value)
	assert.Equal(t, 1, msg.(*piece.EditedMsg).Rank)

	rank, _ := brd.Position()
	assert.Equal(t, 1, rank)

	empty, err := board.New(nil, 0, 0)
	require.NoError(t, err)
	_, cmd = empty.Update(board.BlurMsg{})
	assert.Nil(t, cmd)
}
