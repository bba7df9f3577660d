package piece

import (
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"

	"soshiki/board"
	"soshiki/style"
)

// TextInput is an editable text field.
// Editing ends on enter, or on blur when the text changed since the last end.
type TextInput struct {
	value       []rune
	committed   string
	placeholder string
	cursor      int
	maxLength   int
}

func NewTextInput(value, placeholder string, maxLength int) TextInput {
	if maxLength <= 0 {
		maxLength = 100 // Default max length
	}
	runes := []rune(value)
	return TextInput{
		value:       runes,
		committed:   value,
		placeholder: placeholder,
		cursor:      len(runes),
		maxLength:   maxLength,
	}
}

func (t TextInput) Update(msg tea.Msg) (board.Piece, tea.Cmd) {
	switch msg := msg.(type) {
	case board.BlurMsg:
		if t.Value() == t.committed {
			return t, nil
		}
		return t.end()

	case tea.KeyPressMsg:
		switch key := msg.String(); key {
		case "enter":
			return t.end()
		case "backspace":
			if t.cursor > 0 {
				t.value = append(t.value[:t.cursor-1:t.cursor-1], t.value[t.cursor:]...)
				t.cursor--
			}
		case "delete":
			if t.cursor < len(t.value) {
				t.value = append(t.value[:t.cursor:t.cursor], t.value[t.cursor+1:]...)
			}
		case "left":
			if t.cursor > 0 {
				t.cursor--
			}
		case "right":
			if t.cursor < len(t.value) {
				t.cursor++
			}
		case "home", "ctrl+a":
			t.cursor = 0
		case "end", "ctrl+e":
			t.cursor = len(t.value)
		case "space":
			t.insert(' ')
		default:
			// Insert character if it's a single rune
			if utf8.RuneCountInString(key) == 1 {
				r, _ := utf8.DecodeRuneInString(key)
				t.insert(r)
			}
		}
	}
	return t, nil
}

func (t *TextInput) insert(r rune) {
	if len(t.value) >= t.maxLength {
		return
	}
	value := make([]rune, 0, len(t.value)+1)
	value = append(value, t.value[:t.cursor]...)
	value = append(value, r)
	value = append(value, t.value[t.cursor:]...)
	t.value = value
	t.cursor++
}

func (t TextInput) end() (board.Piece, tea.Cmd) {
	t.committed = t.Value()
	value := t.committed
	return t, func() tea.Msg {
		return &EditedMsg{Value: value}
	}
}

func (t TextInput) Value() string {
	return string(t.value)
}

func (t TextInput) Cursor() int {
	return t.cursor
}

func (t TextInput) Render() string {
	if len(t.value) == 0 {
		return style.MutedStyle.Render(t.placeholder)
	}
	return string(t.value)
}
