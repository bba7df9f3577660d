package filter

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soshiki/board/piece"
	"soshiki/editor"
	nt "soshiki/entity"
	"soshiki/nav"
	"soshiki/testutil"
)

type fixture struct {
	list    List
	filters nt.FilterList
	updated []nt.Filter
	logger  *testutil.Logger
}

func newFixture(t *testing.T, cfg *editor.Config) *fixture {
	t.Helper()

	fx := &fixture{
		filters: nt.FilterList{
			&nt.ToggleFilter{Name: "Adult"},
			&nt.ExcludableMultiSelectFilter{Name: "Genre", Options: []nt.SelectOption{{Name: "Drama"}, {Name: "Horror"}}},
			&nt.NumberFilter{Name: "Year", Value: 2000, LowerBound: 1990, UpperBound: 2010, Step: 5},
			&nt.TextFilter{Name: "Title"},
			&nt.SegmentFilter{Name: "Status", Options: []nt.SegmentOption{{Name: "Any", Selected: true}, {Name: "Ongoing"}}},
		},
		logger: &testutil.Logger{},
	}

	var err error
	fx.list, err = New(context.Background(), fx.logger, "Filters", fx.filters, cfg, func(f nt.Filter) {
		fx.updated = append(fx.updated, f)
	})
	require.NoError(t, err)
	return fx
}

// send delivers msg and then every message its command produces, as the runtime would.
func (fx *fixture) send(msg tea.Msg) tea.Msg {
	screen, cmd := fx.list.Update(msg)
	fx.list = screen.(List)

	out := testutil.Run(cmd)
	switch out.(type) {
	case *piece.CheckedMsg, *piece.SegmentChangedMsg, *piece.EditedMsg, *piece.NumberChangedMsg:
		return fx.send(out)
	}
	return out
}

func (fx *fixture) keys(names ...string) tea.Msg {
	var out tea.Msg
	for _, name := range names {
		out = fx.send(testutil.Key(name))
	}
	return out
}

func TestToggleRow(t *testing.T) {
	fx := newFixture(t, nil)

	fx.keys("t")

	assert.True(t, fx.filters[0].(*nt.ToggleFilter).Value)
	require.Len(t, fx.updated, 1)
	assert.Same(t, fx.filters[0], fx.updated[0])
}

func TestNumberRow(t *testing.T) {
	fx := newFixture(t, nil)

	fx.keys("down", "down", "+", "+", "-")

	assert.Equal(t, 2005.0, fx.filters[2].(*nt.NumberFilter).Value)
	assert.Len(t, fx.updated, 3)
	assert.Equal(t, "2005", fx.list.Editors()[2].Secondary())
}

func TestTextRowEndsOnBlur(t *testing.T) {
	fx := newFixture(t, nil)

	fx.keys("down", "down", "down", "m", "o", "o", "n")
	assert.Empty(t, fx.updated)

	fx.keys("down")

	assert.Equal(t, "moon", fx.filters[3].(*nt.TextFilter).Value)
	require.Len(t, fx.updated, 1)
	assert.Equal(t, 4, fx.list.Focused())
}

func TestSegmentRow(t *testing.T) {
	fx := newFixture(t, nil)

	fx.keys("down", "down", "down", "down", "right")

	assert.Equal(t, 1, fx.filters[4].(*nt.SegmentFilter).SelectedIndex())
	assert.Len(t, fx.updated, 1)
}

func TestChoiceRowOpensPicker(t *testing.T) {
	fx := newFixture(t, nil)

	out := fx.keys("down", "enter")

	push, ok := out.(nav.PushMsg)
	require.True(t, ok, "want push, got %T", out)
	assert.Equal(t, "Genre", push.Screen.Title())
	assert.Empty(t, fx.updated)
	assert.Contains(t, fx.logger.Logged[0], "opening filter options")
}

func TestEnterOnInlineRowDoesNotPush(t *testing.T) {
	fx := newFixture(t, nil)

	out := fx.keys("enter")

	assert.Nil(t, out)
}

func TestMisroutedMessage(t *testing.T) {
	fx := newFixture(t, nil)

	fx.send(&piece.CheckedMsg{Rank: 2, Checked: true})
	fx.send(&piece.CheckedMsg{Rank: 9, Checked: true})

	assert.Empty(t, fx.updated)
	assert.Equal(t, 2000.0, fx.filters[2].(*nt.NumberFilter).Value)
	assert.Len(t, fx.logger.Logged, 2)
}

func TestView(t *testing.T) {
	fx := newFixture(t, nil)

	view := fx.list.View(100, 40)

	for _, want := range []string{"Filters", "Adult", "[ ]", "Genre", "Any", "Year", "2000", "Status"} {
		assert.Contains(t, view, want)
	}
}

func TestEmptyList(t *testing.T) {
	lst, err := New(context.Background(), &testutil.Logger{}, "Filters", nil, nil, nil)
	require.NoError(t, err)

	screen, cmd := lst.Update(testutil.Key("enter"))
	assert.Nil(t, cmd)
	assert.Contains(t, screen.View(80, 20), "(no filters)")
}

func TestBlurAppliesPendingText(t *testing.T) {
	fx := newFixture(t, nil)

	fx.keys("down", "down", "down", "s", "u", "n")
	assert.Empty(t, fx.updated)

	fx.list = fx.list.Blur()

	assert.Equal(t, "sun", fx.filters[3].(*nt.TextFilter).Value)
	require.Len(t, fx.updated, 1)
	assert.Equal(t, 3, fx.list.Focused())

	fx.list = fx.list.Blur()
	assert.Len(t, fx.updated, 1, "nothing pending the second time")
}
