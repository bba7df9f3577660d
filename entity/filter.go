package entity

// Kind tags a filter variant as it appears in configuration.
type Kind string

const (
	KindText                  Kind = "text"
	KindToggle                Kind = "toggle"
	KindSegment               Kind = "segment"
	KindSelect                Kind = "select"
	KindExcludableSelect      Kind = "excludableSelect"
	KindMultiSelect           Kind = "multiSelect"
	KindExcludableMultiSelect Kind = "excludableMultiSelect"
	KindSort                  Kind = "sort"
	KindAscendableSort        Kind = "ascendableSort"
	KindNumber                Kind = "number"
)

// Filter is one configurable search/browse parameter.
// The set of implementations is closed; dispatch with Accept and a Visitor.
type Filter interface {
	Label() string
	Kind() Kind
	Accept(v Visitor)
	Clone() Filter
}

// Visitor has one method per filter variant.
type Visitor interface {
	VisitText(f *TextFilter)
	VisitToggle(f *ToggleFilter)
	VisitSegment(f *SegmentFilter)
	VisitSelect(f *SelectFilter)
	VisitExcludableSelect(f *ExcludableSelectFilter)
	VisitMultiSelect(f *MultiSelectFilter)
	VisitExcludableMultiSelect(f *ExcludableMultiSelectFilter)
	VisitSort(f *SortFilter)
	VisitAscendableSort(f *AscendableSortFilter)
	VisitNumber(f *NumberFilter)
}

// TextFilter is a free-form string.
type TextFilter struct {
	Name        string `yaml:"name"`
	Value       string `yaml:"value"`
	Placeholder string `yaml:"placeholder,omitempty"`
}

// ToggleFilter is an on/off flag.
type ToggleFilter struct {
	Name  string `yaml:"name"`
	Value bool   `yaml:"value"`
}

// SegmentOption is one choice of a segment filter.
type SegmentOption struct {
	Name     string `yaml:"name"`
	Selected bool   `yaml:"selected,omitempty"`
}

// SegmentFilter has exactly one selected option once normalized.
type SegmentFilter struct {
	Name    string          `yaml:"name"`
	Options []SegmentOption `yaml:"options"`
}

// SelectOption is a selectable string with tristate include/exclude marking.
// Selected and Excluded are never both set.
type SelectOption struct {
	Name     string `yaml:"name"`
	Selected bool   `yaml:"selected,omitempty"`
	Excluded bool   `yaml:"excluded,omitempty"`
}

// SelectFilter is a single choice without exclusion.
type SelectFilter struct {
	Name    string         `yaml:"name"`
	Options []SelectOption `yaml:"options"`
}

// ExcludableSelectFilter is a single choice where the choice may be an exclusion.
type ExcludableSelectFilter struct {
	Name    string         `yaml:"name"`
	Options []SelectOption `yaml:"options"`
}

// MultiSelectFilter is any subset of its options.
type MultiSelectFilter struct {
	Name    string         `yaml:"name"`
	Options []SelectOption `yaml:"options"`
}

// ExcludableMultiSelectFilter is any subset of its options, each tristate.
type ExcludableMultiSelectFilter struct {
	Name    string         `yaml:"name"`
	Options []SelectOption `yaml:"options"`
}

// SortOption is a sort key.
type SortOption struct {
	Name      string `yaml:"name"`
	Selected  bool   `yaml:"selected,omitempty"`
	Ascending bool   `yaml:"ascending,omitempty"`
}

// SortFilter has a single active key with a fixed direction.
type SortFilter struct {
	Name    string       `yaml:"name"`
	Options []SortOption `yaml:"options"`
}

// AscendableSortFilter has a single active key whose direction can be flipped.
type AscendableSortFilter struct {
	Name    string       `yaml:"name"`
	Options []SortOption `yaml:"options"`
}

// NumberFilter is a bounded numeric value stepped by Step.
type NumberFilter struct {
	Name       string  `yaml:"name"`
	Value      float64 `yaml:"value"`
	LowerBound float64 `yaml:"lowerBound"`
	UpperBound float64 `yaml:"upperBound"`
	Step       float64 `yaml:"step"`
}

func (f *TextFilter) Label() string                  { return f.Name }
func (f *ToggleFilter) Label() string                { return f.Name }
func (f *SegmentFilter) Label() string               { return f.Name }
func (f *SelectFilter) Label() string                { return f.Name }
func (f *ExcludableSelectFilter) Label() string      { return f.Name }
func (f *MultiSelectFilter) Label() string           { return f.Name }
func (f *ExcludableMultiSelectFilter) Label() string { return f.Name }
func (f *SortFilter) Label() string                  { return f.Name }
func (f *AscendableSortFilter) Label() string        { return f.Name }
func (f *NumberFilter) Label() string                { return f.Name }

func (f *TextFilter) Kind() Kind                  { return KindText }
func (f *ToggleFilter) Kind() Kind                { return KindToggle }
func (f *SegmentFilter) Kind() Kind               { return KindSegment }
func (f *SelectFilter) Kind() Kind                { return KindSelect }
func (f *ExcludableSelectFilter) Kind() Kind      { return KindExcludableSelect }
func (f *MultiSelectFilter) Kind() Kind           { return KindMultiSelect }
func (f *ExcludableMultiSelectFilter) Kind() Kind { return KindExcludableMultiSelect }
func (f *SortFilter) Kind() Kind                  { return KindSort }
func (f *AscendableSortFilter) Kind() Kind        { return KindAscendableSort }
func (f *NumberFilter) Kind() Kind                { return KindNumber }

func (f *TextFilter) Accept(v Visitor)                  { v.VisitText(f) }
func (f *ToggleFilter) Accept(v Visitor)                { v.VisitToggle(f) }
func (f *SegmentFilter) Accept(v Visitor)               { v.VisitSegment(f) }
func (f *SelectFilter) Accept(v Visitor)                { v.VisitSelect(f) }
func (f *ExcludableSelectFilter) Accept(v Visitor)      { v.VisitExcludableSelect(f) }
func (f *MultiSelectFilter) Accept(v Visitor)           { v.VisitMultiSelect(f) }
func (f *ExcludableMultiSelectFilter) Accept(v Visitor) { v.VisitExcludableMultiSelect(f) }
func (f *SortFilter) Accept(v Visitor)                  { v.VisitSort(f) }
func (f *AscendableSortFilter) Accept(v Visitor)        { v.VisitAscendableSort(f) }
func (f *NumberFilter) Accept(v Visitor)                { v.VisitNumber(f) }

// SelectedIndex returns the index of the first selected option, or 0 if none is.
func (f *SegmentFilter) SelectedIndex() int {
	for i, opt := range f.Options {
		if opt.Selected {
			return i
		}
	}
	return 0
}

// Select makes option idx the only selected option.
// Out of range indexes are ignored.
func (f *SegmentFilter) Select(idx int) {
	if idx < 0 || idx >= len(f.Options) {
		return
	}
	for i := range f.Options {
		f.Options[i].Selected = i == idx
	}
}

// Normalize enforces a single selected option, defaulting to the first.
func (f *SegmentFilter) Normalize() {
	if len(f.Options) == 0 {
		return
	}
	f.Select(f.SelectedIndex())
}

// Normalize orders the bounds, defaults a non-positive step to 1 and clamps Value.
func (f *NumberFilter) Normalize() {
	if f.LowerBound > f.UpperBound {
		f.LowerBound, f.UpperBound = f.UpperBound, f.LowerBound
	}
	if f.Step <= 0 {
		f.Step = 1
	}
	f.Value = f.Clamp(f.Value)
}

// Clamp limits val to the filter's bounds.
func (f *NumberFilter) Clamp(val float64) float64 {
	if val < f.LowerBound {
		return f.LowerBound
	}
	if val > f.UpperBound {
		return f.UpperBound
	}
	return val
}

// State returns the tristate of an option.
func (opt SelectOption) State() TriState {
	switch {
	case opt.Excluded:
		return Excluded
	case opt.Selected:
		return Included
	default:
		return Unset
	}
}

// SetState marks an option, keeping Selected and Excluded exclusive.
func (opt *SelectOption) SetState(state TriState) {
	opt.Selected = state == Included
	opt.Excluded = state == Excluded
}

// TriState is the marking of a select option.
type TriState int

const (
	Unset TriState = iota
	Included
	Excluded
)

// Next cycles unset, included, excluded and back.
func (ts TriState) Next() TriState {
	return (ts + 1) % 3
}

// FilterList is an ordered collection of filters owned by a parent list.
type FilterList []Filter

// Clone deep copies the list so it can leave the ui goroutine.
func (list FilterList) Clone() FilterList {
	if list == nil {
		return nil
	}
	clone := make(FilterList, len(list))
	for i, f := range list {
		clone[i] = f.Clone()
	}
	return clone
}
