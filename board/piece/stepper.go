package piece

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"soshiki/board"
	nt "soshiki/entity"
	"soshiki/style"
)

// epsilon absorbs float drift when comparing a step against a bound.
const epsilon = 1e-9

// Stepper nudges a bounded number up or down by step.
// With custom input enabled, digits typed and entered replace the value.
type Stepper struct {
	value  float64
	lower  float64
	upper  float64
	step   float64
	custom bool
	input  string
}

func NewStepper(value, lower, upper, step float64, custom bool) Stepper {
	if step <= 0 {
		step = 1
	}
	return Stepper{
		value:  value,
		lower:  lower,
		upper:  upper,
		step:   step,
		custom: custom,
	}
}

func (s Stepper) Update(msg tea.Msg) (board.Piece, tea.Cmd) {
	switch msg := msg.(type) {
	case board.BlurMsg:
		s.input = ""

	case tea.KeyPressMsg:
		switch key := msg.String(); key {
		case "+", "=", "right", "l":
			if s.input == "" && s.value+s.step <= s.upper+epsilon {
				return s.set(s.value + s.step)
			}
		case "-", "left", "h":
			if key == "-" && s.signed() {
				if s.input == "" {
					s.input = "-"
				}
				return s, nil
			}
			if s.input == "" && s.value-s.step >= s.lower-epsilon {
				return s.set(s.value - s.step)
			}
		case "backspace":
			if s.input != "" {
				s.input = s.input[:len(s.input)-1]
			}
		case "enter":
			if s.input == "" {
				return s, nil
			}
			val := nt.ParseNumber(s.input, s.value)
			s.input = ""
			if val == s.value {
				return s, nil
			}
			return s.set(val)
		default:
			if s.custom && len(key) == 1 && strings.Contains("0123456789.", key) {
				s.input += key
			}
		}
	}
	return s, nil
}

// set clamps and stores val, announcing it if it moved.
func (s Stepper) set(val float64) (board.Piece, tea.Cmd) {
	val = clampFloat(val, s.lower, s.upper)
	if val == s.value {
		return s, nil
	}

	s.value = val
	return s, func() tea.Msg {
		return &NumberChangedMsg{Value: val}
	}
}

func (s Stepper) Value() float64 {
	return s.value
}

// signed reports whether custom input may be negative, in which case "-"
// starts an entry and stepping down is left to left/h.
func (s Stepper) signed() bool {
	return s.custom && s.lower < 0
}

// Bounds returns the range the value is kept in.
func (s Stepper) Bounds() (lower, upper float64) {
	return s.lower, s.upper
}

func (s Stepper) Render() string {
	minus := "−"
	if s.value-s.step < s.lower-epsilon {
		minus = style.MutedStyle.Render(minus)
	}
	plus := "+"
	if s.value+s.step > s.upper+epsilon {
		plus = style.MutedStyle.Render(plus)
	}

	if s.input != "" {
		return "[" + minus + " " + s.input + "_ " + plus + "]"
	}
	return "[" + minus + " " + plus + "]"
}

func clampFloat(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
