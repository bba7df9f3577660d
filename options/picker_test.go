package options

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nt "soshiki/entity"
	"soshiki/nav"
	"soshiki/testutil"
)

func pressKeys(pkr nav.Screen, keys ...string) (nav.Screen, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		pkr, cmd = pkr.Update(testutil.Key(k))
	}
	return pkr, cmd
}

func TestPickerEditsInPlace(t *testing.T) {
	opts := selectOpts("Drama", "Horror", "Comedy")
	var pkr nav.Screen = New("Genre", NewSelectList(opts, false, true), nil)

	pkr, cmd := pressKeys(pkr, "down", "enter", "down", "down", "space")
	assert.Nil(t, cmd)
	assert.Equal(t, 2, pkr.(Picker).Cursor())
	assert.Equal(t, []nt.TriState{u, i, i}, states(opts))

	pkr, _ = pressKeys(pkr, "up", "up", "up")
	assert.Equal(t, 0, pkr.(Picker).Cursor())

	view := pkr.View(80, 24)
	assert.Contains(t, view, "Genre")
	assert.Contains(t, view, "Comedy")
}

func TestPickerClose(t *testing.T) {
	done := 0
	var pkr nav.Screen = New("Sort", NewSortList(sortOpts("Title"), true), func() { done++ })

	_, cmd := pressKeys(pkr, "esc")
	require.NotNil(t, cmd)
	assert.Equal(t, nav.PopMsg{}, cmd())
	assert.Equal(t, 0, done, "popping is the host's job")

	closer, ok := pkr.(nav.Closer)
	require.True(t, ok)
	assert.Nil(t, closer.Close())
	assert.Equal(t, 1, done)
}
