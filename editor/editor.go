// Package editor binds a filter to an interactive control.
//
// New dispatches on the filter's variant through entity.Visitor and returns
// an editor typed for that variant. Each typed operation mutates exactly one
// field of the filter in place and reports the filter to the update callback.
// Handle routes control messages to those operations; a message meant for a
// different variant is ignored.
package editor

import (
	tea "charm.land/bubbletea/v2"

	"soshiki/board"
	nt "soshiki/entity"
	"soshiki/options"
)

// UpdateFunc receives a filter after every edit; it is the same instance the
// editor was built with.
type UpdateFunc func(nt.Filter)

// Editor binds one filter to its control.
type Editor interface {
	// Filter returns the filter being edited.
	Filter() nt.Filter
	// Label returns the filter's display name.
	Label() string
	// Secondary returns the value text shown beside the label, if any.
	Secondary() string
	// Control returns the control, initialized from the filter's value.
	Control() board.Piece
	// HasChild reports whether activating opens a child screen.
	HasChild() bool
	// Activate requests the child screen, or returns nil when there is none.
	Activate() tea.Cmd
	// Handle applies a control message, reporting whether it was used.
	Handle(msg tea.Msg) bool
}

// Config tunes the controls editors build.
type Config struct {
	CustomInput bool `yaml:"custom_input"`
	MaxLength   int  `yaml:"max_length"`
}

// New builds an editor for filter with the default config.
func New(filter nt.Filter, onUpdate UpdateFunc) Editor {
	return (&Config{}).New(filter, onUpdate)
}

// New builds an editor for filter.
func (cfg *Config) New(filter nt.Filter, onUpdate UpdateFunc) Editor {

	bld := &builder{
		cfg:    *cfg,
		notify: notifier(onUpdate),
	}
	filter.Accept(bld)
	return bld.editor
}

// unexported

type notifier func(nt.Filter)

func (fn notifier) notify(f nt.Filter) {
	if fn != nil {
		fn(f)
	}
}

// builder is the closed switch over variants.
type builder struct {
	cfg    Config
	notify notifier
	editor Editor
}

func (bld *builder) VisitText(f *nt.TextFilter) {
	bld.editor = newTextEditor(f, bld.notify, bld.cfg)
}

func (bld *builder) VisitToggle(f *nt.ToggleFilter) {
	bld.editor = newToggleEditor(f, bld.notify)
}

func (bld *builder) VisitSegment(f *nt.SegmentFilter) {
	bld.editor = newSegmentEditor(f, bld.notify)
}

func (bld *builder) VisitSelect(f *nt.SelectFilter) {
	bld.editor = newChoiceEditor(f, options.NewSelectList(f.Options, false, false), bld.notify)
}

func (bld *builder) VisitExcludableSelect(f *nt.ExcludableSelectFilter) {
	bld.editor = newChoiceEditor(f, options.NewSelectList(f.Options, true, false), bld.notify)
}

func (bld *builder) VisitMultiSelect(f *nt.MultiSelectFilter) {
	bld.editor = newChoiceEditor(f, options.NewSelectList(f.Options, false, true), bld.notify)
}

func (bld *builder) VisitExcludableMultiSelect(f *nt.ExcludableMultiSelectFilter) {
	bld.editor = newChoiceEditor(f, options.NewSelectList(f.Options, true, true), bld.notify)
}

func (bld *builder) VisitSort(f *nt.SortFilter) {
	bld.editor = newChoiceEditor(f, options.NewSortList(f.Options, false), bld.notify)
}

func (bld *builder) VisitAscendableSort(f *nt.AscendableSortFilter) {
	bld.editor = newChoiceEditor(f, options.NewSortList(f.Options, true), bld.notify)
}

func (bld *builder) VisitNumber(f *nt.NumberFilter) {
	bld.editor = newNumberEditor(f, bld.notify, bld.cfg)
}
