package options

import (
	"strings"

	nt "soshiki/entity"
)

// List is the set of rows a picker edits.
// Implementations mutate the filter's option slice in place.
type List interface {
	Len() int
	Name(idx int) string
	Mark(idx int) string
	Press(idx int)
	Summary() string
}

// SelectList edits select options.
// Tristate rows cycle through included and excluded; single choice lists
// clear the other rows when one becomes marked.
type SelectList struct {
	options  []nt.SelectOption
	tristate bool
	multi    bool
}

func NewSelectList(options []nt.SelectOption, tristate, multi bool) *SelectList {
	return &SelectList{
		options:  options,
		tristate: tristate,
		multi:    multi,
	}
}

func (lst *SelectList) Len() int {
	return len(lst.options)
}

func (lst *SelectList) Name(idx int) string {
	return lst.options[idx].Name
}

func (lst *SelectList) Tristate() bool {
	return lst.tristate
}

func (lst *SelectList) Multi() bool {
	return lst.multi
}

func (lst *SelectList) Press(idx int) {
	if idx < 0 || idx >= len(lst.options) {
		return
	}

	state := lst.options[idx].State()
	var next nt.TriState
	switch {
	case lst.tristate:
		next = state.Next()
	case state == nt.Unset:
		next = nt.Included
	default:
		next = nt.Unset
	}

	if !lst.multi && next != nt.Unset {
		for i := range lst.options {
			lst.options[i].SetState(nt.Unset)
		}
	}
	lst.options[idx].SetState(next)
}

func (lst *SelectList) Mark(idx int) string {
	switch lst.options[idx].State() {
	case nt.Included:
		return "[x]"
	case nt.Excluded:
		return "[-]"
	}
	return "[ ]"
}

// Summary lists included names, then excluded names prefixed with "-".
func (lst *SelectList) Summary() string {
	var included, excluded []string
	for _, opt := range lst.options {
		switch opt.State() {
		case nt.Included:
			included = append(included, opt.Name)
		case nt.Excluded:
			excluded = append(excluded, "-"+opt.Name)
		}
	}

	marked := append(included, excluded...)
	if len(marked) == 0 {
		return "Any"
	}
	return strings.Join(marked, ", ")
}

// SortList edits sort keys; exactly one key is active once pressed.
// An ascendable list flips direction when the active key is pressed again.
type SortList struct {
	options    []nt.SortOption
	ascendable bool
}

func NewSortList(options []nt.SortOption, ascendable bool) *SortList {
	return &SortList{
		options:    options,
		ascendable: ascendable,
	}
}

func (lst *SortList) Len() int {
	return len(lst.options)
}

func (lst *SortList) Name(idx int) string {
	return lst.options[idx].Name
}

func (lst *SortList) Ascendable() bool {
	return lst.ascendable
}

func (lst *SortList) Press(idx int) {
	if idx < 0 || idx >= len(lst.options) {
		return
	}

	if lst.options[idx].Selected {
		if lst.ascendable {
			lst.options[idx].Ascending = !lst.options[idx].Ascending
		}
		return
	}

	for i := range lst.options {
		lst.options[i].Selected = i == idx
	}
}

func (lst *SortList) Mark(idx int) string {
	opt := lst.options[idx]
	switch {
	case !opt.Selected:
		return "[ ]"
	case !lst.ascendable:
		return "[x]"
	case opt.Ascending:
		return "[↑]"
	}
	return "[↓]"
}

// Summary names the active key, with its direction when ascendable.
func (lst *SortList) Summary() string {
	for _, opt := range lst.options {
		if !opt.Selected {
			continue
		}
		if !lst.ascendable {
			return opt.Name
		}
		if opt.Ascending {
			return opt.Name + " ↑"
		}
		return opt.Name + " ↓"
	}
	return "Default"
}
