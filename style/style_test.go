package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowStyler(t *testing.T) {
	styler := RowStyler(1)

	assert.Equal(t, HlRowStyle, styler(1))
	assert.Equal(t, UnStyle, styler(0))
}

func TestDialog(t *testing.T) {
	assert.Equal(t, 40, Dialog(40).GetWidth())
	assert.Equal(t, 0, Dialog(0).GetWidth())
	assert.Contains(t, Dialog(20).Render("hi"), "hi")
}
