package soshiki

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/pkg/errors"

	nt "soshiki/entity"
	"soshiki/filter"
	"soshiki/message"
	"soshiki/nav"
	"soshiki/preview"
	"soshiki/style"
	"soshiki/util"
)

const (
	footerHeight = 2
	exportMode   = os.FileMode(0644)
)

// Model is the bubbletea model for the filter editor TUI.
// The root of its stack is the filter list; option pickers and the preview
// are pushed over it.
type Model struct {
	session  *Session
	store    Store
	export   string
	autosave bool

	stack       nav.Stack
	status      string
	errorString string
	saving      bool
	quitting    bool

	width  int
	height int

	ctx    context.Context
	logger nt.Logger
}

// NewModel creates a new bt model editing the filters of sess.
func (cfg *Config) NewModel(ctx context.Context, sess *Session, store Store, lgr nt.Logger) (model Model, err error) {

	list, err := filter.New(ctx, lgr, sess.Source, sess.Filters, &cfg.Editor, sess.OnUpdate)
	if err != nil {
		return
	}

	model = Model{
		session:  sess,
		store:    store,
		export:   cfg.Export,
		autosave: cfg.Autosave,
		stack:    nav.NewStack(list),
		ctx:      ctx,
		logger:   lgr,
	}
	return
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Depth returns the number of screens stacked.
func (m Model) Depth() int {
	return m.stack.Len()
}

// Top returns the screen in front.
func (m Model) Top() nav.Screen {
	return m.stack.Top()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {

	switch msg := msg.(type) {

	case nav.PushMsg:
		screen, cmd := msg.Screen.Update(m.screenSize())
		m.stack = m.stack.Push(screen)
		return m, cmd

	case nav.PopMsg:
		return m.pop()

	case message.ErrorMsg:
		m.logger.Error(m.ctx, "error msg", msg.Err)
		m.errorString = msg.Err.Error()
		return m, nil

	case message.SavedMsg:
		return m.saved(msg)

	case message.ExportedMsg:
		m.logger.Info(m.ctx, "exported filters", "path", msg.Path)
		m.status = "exported to " + msg.Path
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m.updateTop(m.screenSize())

	case tea.KeyPressMsg:
		if m.errorString != "" {
			m.errorString = ""
		}

		switch msg.String() {
		case "ctrl+c":
			return m.quit()

		case "esc":
			if m.stack.Len() == 1 {
				return m.quit()
			}

		case "ctrl+p":
			m = m.blurList()
			pvw := preview.New("Preview: "+m.session.Source, m.session.Filters)

			var save tea.Cmd
			m, save = m.startSave()
			return m, tea.Batch(nav.PushCmd(pvw), save)

		case "ctrl+s":
			return m, m.exportCmd()
		}
	}

	return m.updateTop(msg)
}

func (m Model) View() tea.View {
	if m.width == 0 {
		return tea.NewView("Loading...")
	}

	screenContent := m.stack.Top().View(m.width, m.height-footerHeight)
	screenLayer := lipgloss.NewLayer("screen", screenContent)

	footerContent := RenderFooter(m.stack.Titles(), m.statusLine(), m.width)
	if m.errorString != "" {
		footerContent = style.ErrorStyle.Render(m.errorString)
	}
	footerLayer := lipgloss.NewLayer("footer", footerContent).Y(m.height - footerHeight)

	// Compose layers on canvas
	canvas := lipgloss.NewCanvas(m.width, m.height)
	canvas.Compose(screenLayer)
	canvas.Compose(footerLayer)

	view := tea.NewView(canvas)
	view.AltScreen = true
	return view
}

// unexported

func (m Model) screenSize() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{
		Width:  m.width,
		Height: m.height - footerHeight,
	}
}

func (m Model) updateTop(msg tea.Msg) (tea.Model, tea.Cmd) {

	screen, cmd := m.stack.Top().Update(msg)
	m.stack = m.stack.Replace(screen)

	m, save := m.startSave()
	return m, tea.Batch(cmd, save)
}

// pop removes the top screen, letting it report completion.
func (m Model) pop() (tea.Model, tea.Cmd) {

	if m.stack.Len() == 1 {
		return m, nil
	}

	var popped nav.Screen
	m.stack, popped = m.stack.Pop()

	var cmd tea.Cmd
	if closer, ok := popped.(nav.Closer); ok {
		cmd = closer.Close()
	}

	m, save := m.startSave()
	return m, tea.Batch(cmd, save)
}

// quit ends editing, waits for any edits to be saved and then quits.
// Asking again while waiting quits right away.
func (m Model) quit() (tea.Model, tea.Cmd) {

	if m.quitting {
		return m, tea.Quit
	}
	m.quitting = true

	var cmds []tea.Cmd
	for m.stack.Len() > 1 {
		var popped nav.Screen
		m.stack, popped = m.stack.Pop()
		if closer, ok := popped.(nav.Closer); ok {
			cmds = append(cmds, closer.Close())
		}
	}
	m = m.blurList()

	if m.saving {
		return m, tea.Batch(cmds...)
	}

	m, save := m.startSave()
	if save == nil {
		cmds = append(cmds, tea.Quit)
	}
	return m, tea.Batch(append(cmds, save)...)
}

// blurList applies a pending edit on the focused row of the filter list.
func (m Model) blurList() Model {

	if lst, ok := m.stack.Top().(filter.List); ok {
		m.stack = m.stack.Replace(lst.Blur())
	}
	return m
}

// startSave persists a snapshot of the session when autosaving and it has
// unsaved edits. Only one save is in flight; the next starts when it reports.
func (m Model) startSave() (Model, tea.Cmd) {

	if !m.autosave || m.saving || !m.session.Dirty() {
		return m, nil
	}
	m.saving = true

	ctx := m.ctx
	store := m.store
	source := m.session.Source
	generation := m.session.Updates()
	snapshot := m.session.Snapshot()

	return m, func() tea.Msg {
		err := store.SaveFilters(ctx, source, snapshot)
		return message.SavedMsg{
			Source:     source,
			Count:      len(snapshot),
			Generation: generation,
			Err:        err,
		}
	}
}

// saved settles a save, starting a follow-up for edits made meanwhile.
func (m Model) saved(msg message.SavedMsg) (tea.Model, tea.Cmd) {

	m.saving = false

	if msg.Err != nil {
		m.logger.Error(m.ctx, "failed to save filters", msg.Err, "generation", msg.Generation)
		m.errorString = msg.Err.Error()
		if m.quitting {
			return m, tea.Quit
		}
		return m, nil
	}

	m.session.Saved(msg.Generation)
	m.status = fmt.Sprintf("saved %d to %s", msg.Count, m.store.Name())

	m, save := m.startSave()
	if save == nil && m.quitting {
		return m, tea.Quit
	}
	return m, save
}

// exportCmd writes a snapshot of the session as a layout file.
func (m Model) exportCmd() tea.Cmd {

	if m.export == "" {
		return message.ErrorCmd(errors.New("no export path configured"))
	}

	path := m.export
	layout := Layout{
		Source:  m.session.Source,
		Filters: m.session.Snapshot(),
	}

	return func() tea.Msg {
		err := util.WriteConfig(layout, path, exportMode)
		if err != nil {
			return message.ErrorMsg{Err: err}
		}
		return message.ExportedMsg{Path: path}
	}
}

func (m Model) statusLine() string {
	status := fmt.Sprintf("%d updates", m.session.Updates())
	if m.status != "" {
		status = m.status + "  " + status
	}
	return status
}
