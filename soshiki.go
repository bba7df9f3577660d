package soshiki

import (
	"context"

	"soshiki/editor"
	nt "soshiki/entity"
)

// Store specifies a backing datastore for filter values.
type Store interface {
	// Name returns the name of the datastore
	Name() string
	// SaveFilters replaces the stored filters of a source
	SaveFilters(ctx context.Context, source string, filters nt.FilterList) (err error)
	// LoadFilters returns the stored filters of a source, empty if none
	LoadFilters(ctx context.Context, source string) (filters nt.FilterList, err error)
}

// Config is the application config.
type Config struct {
	Source   string        `yaml:"source"`
	Filters  string        `yaml:"filters"`
	Export   string        `yaml:"export"`
	Autosave bool          `yaml:"autosave"`
	Editor   editor.Config `yaml:"editor"`
}

// Session owns the filters being edited and is the editors' update target.
type Session struct {
	Source  string
	Filters nt.FilterList

	updates int
	saved   int

	ctx    context.Context
	logger nt.Logger
}

// NewSession loads the filter definitions of the layout and overlays any
// values the store holds for its source.
func (cfg *Config) NewSession(ctx context.Context, store Store, lgr nt.Logger) (sess *Session, err error) {

	layout, err := LoadLayout(cfg.Filters)
	if err != nil {
		return
	}

	source := cfg.Source
	if source == "" {
		source = layout.Source
	}

	saved, err := store.LoadFilters(ctx, source)
	if err != nil {
		return
	}

	filters := Merge(layout.Filters, saved)
	lgr.Info(ctx, "loaded filters", "source", source, "defined", len(layout.Filters), "saved", len(saved))

	sess = NewSession(ctx, lgr, source, filters)
	return
}

func NewSession(ctx context.Context, lgr nt.Logger, source string, filters nt.FilterList) *Session {
	return &Session{
		Source:  source,
		Filters: filters,
		ctx:     lgr.WithFields(ctx, "source", source),
		logger:  lgr,
	}
}

// OnUpdate records an edit of one of the session's filters.
func (sess *Session) OnUpdate(f nt.Filter) {
	sess.updates++
	sess.logger.Info(sess.ctx, "filter updated", "filter", f.Label(), "kind", f.Kind(), "updates", sess.updates)
}

// Updates returns the number of edits so far.
// It doubles as the generation of the filters' current state.
func (sess *Session) Updates() int {
	return sess.updates
}

// Dirty reports whether there are edits newer than the last save.
func (sess *Session) Dirty() bool {
	return sess.updates != sess.saved
}

// Snapshot deep copies the filters so they can leave the ui goroutine.
func (sess *Session) Snapshot() nt.FilterList {
	return sess.Filters.Clone()
}

// Saved records that the state of a generation reached the store.
// An older generation never moves the mark back.
func (sess *Session) Saved(generation int) {
	if generation > sess.saved {
		sess.saved = generation
	}
}
