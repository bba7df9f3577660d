// Package options provides the option-list editor: a child screen that
// toggles the options of a select or sort filter in place.
package options

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"soshiki/nav"
	"soshiki/style"
)

// Picker is the option-list screen.
type Picker struct {
	title  string
	list   List
	cursor int
	onDone func()
}

// New creates a picker over list; onDone runs each time the picker is closed.
func New(title string, list List, onDone func()) Picker {
	return Picker{
		title:  title,
		list:   list,
		onDone: onDone,
	}
}

func (pkr Picker) Title() string {
	return pkr.title
}

func (pkr Picker) Cursor() int {
	return pkr.cursor
}

func (pkr Picker) List() List {
	return pkr.list
}

func (pkr Picker) Update(msg tea.Msg) (nav.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if pkr.cursor > 0 {
				pkr.cursor--
			}
		case "down", "j":
			if pkr.cursor < pkr.list.Len()-1 {
				pkr.cursor++
			}
		case "enter", "space", " ", "x":
			pkr.list.Press(pkr.cursor)
		case "esc", "backspace", "left", "q":
			return pkr, nav.PopCmd
		}
	}
	return pkr, nil
}

// Close reports completion to the owner of the options.
func (pkr Picker) Close() tea.Cmd {
	if pkr.onDone != nil {
		pkr.onDone()
	}
	return nil
}

func (pkr Picker) View(width, height int) string {
	var content strings.Builder

	content.WriteString(style.TitleStyle.Render(pkr.title))
	content.WriteString("\n\n")

	for i := 0; i < pkr.list.Len(); i++ {
		prefix := "  "
		if i == pkr.cursor {
			prefix = "> "
		}

		mark := pkr.list.Mark(i)
		switch mark {
		case "[ ]":
		case "[-]":
			mark = style.ExcludedStyle.Render(mark)
		default:
			mark = style.SelectedStyle.Render(mark)
		}

		row := fmt.Sprintf("%s%s %s", prefix, mark, pkr.list.Name(i))
		if i == pkr.cursor {
			row = style.HlRowStyle.Render(row)
		}
		content.WriteString(row + "\n")
	}

	content.WriteString("\n" + style.MutedStyle.Render(pkr.help()))
	return style.Dialog(dialogWidth(width)).Render(content.String())
}

func (pkr Picker) help() string {
	press := "toggle"
	switch lst := pkr.list.(type) {
	case *SelectList:
		if lst.Tristate() {
			press = "include/exclude"
		}
	case *SortList:
		press = "sort by"
		if lst.Ascendable() {
			press = "sort by/flip"
		}
	}
	return "↑↓: move  enter: " + press + "  esc: done"
}

func dialogWidth(width int) int {
	if width <= 0 || width > 64 {
		return 60
	}
	return width - 4
}
