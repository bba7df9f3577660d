package preview

import (
	"fmt"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nt "soshiki/entity"
	"soshiki/nav"
	"soshiki/testutil"
)

func TestRendersYaml(t *testing.T) {
	pvw := New("Preview", nt.FilterList{
		&nt.ToggleFilter{Name: "Adult", Value: true},
		&nt.NumberFilter{Name: "Year", Value: 2000, LowerBound: 1990, UpperBound: 2010, Step: 1},
	})

	assert.Equal(t, []string{
		"- kind: toggle",
		"  name: Adult",
		"  value: true",
		"- kind: number",
		"  name: Year",
		"  value: 2000",
		"  lowerBound: 1990",
		"  upperBound: 2010",
		"  step: 1",
	}, pvw.Lines())

	view := pvw.View(80, 40)
	assert.Contains(t, view, "kind: toggle")
	assert.Contains(t, view, "Preview")
}

func TestScroll(t *testing.T) {
	var filters nt.FilterList
	for i := range 10 {
		filters = append(filters, &nt.TextFilter{Name: fmt.Sprintf("Text%d", i)})
	}
	pvw := New("Preview", filters)
	require.Len(t, pvw.Lines(), 30)

	var screen nav.Screen = pvw
	screen, _ = screen.Update(tea.WindowSizeMsg{Width: 80, Height: chrome + 10})

	screen, _ = screen.Update(testutil.Key("up"))
	assert.Equal(t, 0, screen.(Preview).Offset())

	screen, _ = screen.Update(testutil.Key("end"))
	assert.Equal(t, 20, screen.(Preview).Offset())

	screen, _ = screen.Update(testutil.Key("down"))
	assert.Equal(t, 20, screen.(Preview).Offset())

	screen, _ = screen.Update(testutil.Key("home"))
	screen, _ = screen.Update(testutil.Key("j"))
	assert.Equal(t, 1, screen.(Preview).Offset())

	view := screen.View(80, chrome+10)
	assert.Contains(t, view, "name: Text0")
	assert.NotContains(t, view, "Text4")
}

func TestClose(t *testing.T) {
	pvw := New("Preview", nil)
	assert.Equal(t, []string{"[]"}, pvw.Lines())

	_, cmd := pvw.Update(testutil.Key("esc"))
	require.NotNil(t, cmd)
	assert.Equal(t, nav.PopMsg{}, cmd())
}
