package editor

import (
	tea "charm.land/bubbletea/v2"

	"soshiki/board"
	"soshiki/board/piece"
	nt "soshiki/entity"
	"soshiki/nav"
	"soshiki/options"
)

// ChoiceEditor edits select and sort filters through a child option picker.
// The picker mutates the filter's options; the editor only reports completion.
type ChoiceEditor struct {
	filter nt.Filter
	list   options.List
	picker options.Picker
	notify notifier
}

func newChoiceEditor(f nt.Filter, list options.List, notify notifier) *ChoiceEditor {
	ed := &ChoiceEditor{
		filter: f,
		list:   list,
		notify: notify,
	}
	ed.picker = options.New(f.Label(), list, ed.OnOptionsDone)
	return ed
}

func (ed *ChoiceEditor) Filter() nt.Filter    { return ed.filter }
func (ed *ChoiceEditor) Label() string        { return ed.filter.Label() }
func (ed *ChoiceEditor) Control() board.Piece { return piece.NewDisclosure() }
func (ed *ChoiceEditor) HasChild() bool       { return true }

// Secondary summarizes the current selection.
func (ed *ChoiceEditor) Secondary() string {
	return ed.list.Summary()
}

// Activate requests the option picker be pushed.
func (ed *ChoiceEditor) Activate() tea.Cmd {
	return nav.PushCmd(ed.picker)
}

// OnOptionsDone reports the filter once the picker is dismissed.
func (ed *ChoiceEditor) OnOptionsDone() {
	ed.notify.notify(ed.filter)
}

func (ed *ChoiceEditor) Handle(msg tea.Msg) bool {
	return false
}
