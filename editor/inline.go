package editor

import (
	tea "charm.land/bubbletea/v2"

	"soshiki/board"
	"soshiki/board/piece"
	nt "soshiki/entity"
)

// defaultPlaceholder stands in for a text filter without one.
const defaultPlaceholder = "..."

// inline is the part shared by editors whose control edits in the row itself.
type inline struct {
	notify  notifier
	control board.Piece
}

func (in inline) Control() board.Piece {
	return in.control
}

func (in inline) HasChild() bool {
	return false
}

func (in inline) Activate() tea.Cmd {
	return nil
}

func (in inline) Secondary() string {
	return ""
}

// TextEditor edits a free-form string.
type TextEditor struct {
	inline
	filter *nt.TextFilter
}

func newTextEditor(f *nt.TextFilter, notify notifier, cfg Config) *TextEditor {
	placeholder := f.Placeholder
	if placeholder == "" {
		placeholder = defaultPlaceholder
	}

	return &TextEditor{
		inline: inline{
			notify:  notify,
			control: piece.NewTextInput(f.Value, placeholder, cfg.MaxLength),
		},
		filter: f,
	}
}

func (ed *TextEditor) Filter() nt.Filter { return ed.filter }
func (ed *TextEditor) Label() string     { return ed.filter.Name }

// OnTextEditingEnded stores the edited text.
func (ed *TextEditor) OnTextEditingEnded(text string) {
	ed.filter.Value = text
	ed.notify.notify(ed.filter)
}

func (ed *TextEditor) Handle(msg tea.Msg) bool {
	edited, ok := msg.(*piece.EditedMsg)
	if !ok {
		return false
	}
	ed.OnTextEditingEnded(edited.Value)
	return true
}

// ToggleEditor edits an on/off flag.
type ToggleEditor struct {
	inline
	filter *nt.ToggleFilter
}

func newToggleEditor(f *nt.ToggleFilter, notify notifier) *ToggleEditor {
	return &ToggleEditor{
		inline: inline{
			notify:  notify,
			control: piece.NewCheckbox(f.Value),
		},
		filter: f,
	}
}

func (ed *ToggleEditor) Filter() nt.Filter { return ed.filter }
func (ed *ToggleEditor) Label() string     { return ed.filter.Name }

// OnToggleChanged stores the flag.
func (ed *ToggleEditor) OnToggleChanged(value bool) {
	ed.filter.Value = value
	ed.notify.notify(ed.filter)
}

func (ed *ToggleEditor) Handle(msg tea.Msg) bool {
	checked, ok := msg.(*piece.CheckedMsg)
	if !ok {
		return false
	}
	ed.OnToggleChanged(checked.Checked)
	return true
}

// SegmentEditor edits a one-of-many choice.
type SegmentEditor struct {
	inline
	filter *nt.SegmentFilter
}

// newSegmentEditor normalizes the filter so exactly one option is selected,
// defaulting to the first.
func newSegmentEditor(f *nt.SegmentFilter, notify notifier) *SegmentEditor {
	f.Normalize()

	names := make([]string, len(f.Options))
	for i, opt := range f.Options {
		names[i] = opt.Name
	}

	return &SegmentEditor{
		inline: inline{
			notify:  notify,
			control: piece.NewSegment(names, f.SelectedIndex()),
		},
		filter: f,
	}
}

func (ed *SegmentEditor) Filter() nt.Filter { return ed.filter }
func (ed *SegmentEditor) Label() string     { return ed.filter.Name }

// OnSegmentChanged makes option idx the only selected option.
// The control only produces indexes in range; others are ignored.
func (ed *SegmentEditor) OnSegmentChanged(idx int) {
	if idx < 0 || idx >= len(ed.filter.Options) {
		return
	}
	ed.filter.Select(idx)
	ed.notify.notify(ed.filter)
}

func (ed *SegmentEditor) Handle(msg tea.Msg) bool {
	changed, ok := msg.(*piece.SegmentChangedMsg)
	if !ok {
		return false
	}
	ed.OnSegmentChanged(changed.Index)
	return true
}

// NumberEditor edits a bounded number with a stepper.
type NumberEditor struct {
	inline
	filter    *nt.NumberFilter
	secondary string
}

func newNumberEditor(f *nt.NumberFilter, notify notifier, cfg Config) *NumberEditor {
	return &NumberEditor{
		inline: inline{
			notify:  notify,
			control: piece.NewStepper(f.Value, f.LowerBound, f.UpperBound, f.Step, cfg.CustomInput),
		},
		filter:    f,
		secondary: nt.Truncate(f.Value),
	}
}

func (ed *NumberEditor) Filter() nt.Filter { return ed.filter }
func (ed *NumberEditor) Label() string     { return ed.filter.Name }
func (ed *NumberEditor) Secondary() string { return ed.secondary }

// OnNumberChanged stores the value and refreshes the displayed text.
func (ed *NumberEditor) OnNumberChanged(value float64) {
	ed.filter.Value = value
	ed.notify.notify(ed.filter)
	ed.secondary = nt.Truncate(ed.filter.Value)
}

func (ed *NumberEditor) Handle(msg tea.Msg) bool {
	changed, ok := msg.(*piece.NumberChangedMsg)
	if !ok {
		return false
	}
	ed.OnNumberChanged(changed.Value)
	return true
}
