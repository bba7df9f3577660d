// Package preview shows the serialized form of a filter list.
package preview

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	nt "soshiki/entity"
	"soshiki/nav"
	"soshiki/style"
)

// Preview is a scrollable, read-only view of a filter list as yaml.
// The list is encoded once, when the preview is created.
type Preview struct {
	title        string
	contentLines []string
	height       int
	offset       int
}

func New(title string, filters nt.FilterList) Preview {
	return Preview{
		title:        title,
		contentLines: render(filters),
	}
}

func (pvw Preview) Title() string {
	return pvw.title
}

// Lines returns the rendered content.
func (pvw Preview) Lines() []string {
	return pvw.contentLines
}

// Offset returns the first visible line.
func (pvw Preview) Offset() int {
	return pvw.offset
}

func (pvw Preview) Update(msg tea.Msg) (nav.Screen, tea.Cmd) {

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pvw.height = viewport(msg.Height)
		pvw.offset = min(pvw.offset, pvw.maxOffset())

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if pvw.offset > 0 {
				pvw.offset--
			}
		case "down", "j":
			if pvw.offset < pvw.maxOffset() {
				pvw.offset++
			}
		case "pgup":
			pvw.offset = max(pvw.offset-pvw.height, 0)
		case "pgdown":
			pvw.offset = min(pvw.offset+pvw.height, pvw.maxOffset())
		case "home", "g":
			pvw.offset = 0
		case "end", "G":
			pvw.offset = pvw.maxOffset()
		case "esc", "q", "left", "backspace":
			return pvw, nav.PopCmd
		}
	}

	return pvw, nil
}

func (pvw Preview) View(width, height int) string {

	visible := pvw.contentLines[pvw.offset:]
	if rows := viewport(height); rows > 0 && len(visible) > rows {
		visible = visible[:rows]
	}

	var content strings.Builder
	content.WriteString(style.TitleStyle.Render(pvw.title))
	content.WriteString("\n\n")
	content.WriteString(strings.Join(visible, "\n"))
	content.WriteString("\n\n" + style.MutedStyle.Render("↑↓: scroll  esc: back"))

	dialog := style.Dialog(0)
	if width > 4 {
		dialog = style.Dialog(width - 4)
	}
	return dialog.Render(content.String())
}

// unexported

// chrome is the rows taken by border, padding, title and help.
const chrome = 10

func viewport(height int) int {
	return max(height-chrome, 0)
}

func (pvw Preview) maxOffset() int {
	if pvw.height <= 0 {
		return max(len(pvw.contentLines)-1, 0)
	}
	return max(len(pvw.contentLines)-pvw.height, 0)
}

func render(filters nt.FilterList) []string {

	data, err := yaml.Marshal(filters)
	if err != nil {
		err = errors.Wrapf(err, "failed to encode filters")
		return []string{style.ErrorStyle.Render(err.Error())}
	}

	content := strings.TrimSuffix(string(data), "\n")
	return strings.Split(content, "\n")
}
