// Package filter is the screen listing every filter of a source, one editor
// per row.
package filter

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/pkg/errors"

	"soshiki/board"
	"soshiki/board/piece"
	"soshiki/editor"
	nt "soshiki/entity"
	"soshiki/nav"
	"soshiki/style"
)

const helpText = "↑↓: move  enter: edit/open  t: toggle  ←→: change  ctrl+p: preview  esc: quit"

// List is the filter list screen.
// Rank i of the board holds the control of editors[i].
type List struct {
	title   string
	editors []editor.Editor
	board   board.Board

	ctx    context.Context
	logger nt.Logger
}

// New builds an editor for each filter, all reporting to onUpdate.
func New(ctx context.Context, lgr nt.Logger, title string, filters nt.FilterList, cfg *editor.Config, onUpdate editor.UpdateFunc) (lst List, err error) {

	if cfg == nil {
		cfg = &editor.Config{}
	}

	lst = List{
		title:   title,
		editors: make([]editor.Editor, len(filters)),
		ctx:     ctx,
		logger:  lgr,
	}

	ranks := make([]board.Rank, len(filters))
	for i, f := range filters {
		lst.editors[i] = cfg.New(f, onUpdate)
		ranks[i] = board.NewRank([]board.Piece{lst.editors[i].Control()})
	}

	lst.board, err = board.New(ranks, 0, 0)
	err = errors.Wrapf(err, "failed to build board for %s", title)
	return
}

func (lst List) Title() string {
	return lst.title
}

// Editors returns the row editors in filter order.
func (lst List) Editors() []editor.Editor {
	return lst.editors
}

// Focused returns the index of the focused row.
func (lst List) Focused() int {
	rank, _ := lst.board.Position()
	return rank
}

func (lst List) Update(msg tea.Msg) (nav.Screen, tea.Cmd) {

	switch msg := msg.(type) {

	case board.PieceMsg:
		lst.receive(msg)

	case tea.KeyPressMsg:
		if len(lst.editors) == 0 {
			return lst, nil
		}

		ed := lst.editors[lst.Focused()]
		if ed.HasChild() {
			switch msg.String() {
			case "enter", "right", "l", "space", " ":
				lst.logger.Info(lst.ctx, "opening filter options", "filter", ed.Label())
				return lst, ed.Activate()
			}
		}

		var cmd tea.Cmd
		lst.board, cmd = lst.board.Update(msg)
		return lst, cmd
	}

	return lst, nil
}

func (lst List) View(width, height int) string {
	var content strings.Builder

	content.WriteString(style.TitleStyle.Render(lst.title))
	content.WriteString("\n\n")

	if len(lst.editors) == 0 {
		content.WriteString(style.MutedStyle.Render("(no filters)") + "\n")
	}

	labelWidth := 0
	for _, ed := range lst.editors {
		labelWidth = max(labelWidth, lipgloss.Width(ed.Label()))
	}

	rowStyle := style.RowStyler(lst.Focused())
	for i, ed := range lst.editors {
		prefix := "  "
		if i == lst.Focused() {
			prefix = "> "
		}

		row := fmt.Sprintf("%s%-*s  %s", prefix, labelWidth, ed.Label(), strings.Join(lst.board.Rank(i), " "))
		if secondary := ed.Secondary(); secondary != "" {
			row += "  " + style.MutedStyle.Render(secondary)
		}
		content.WriteString(rowStyle(i).Render(row) + "\n")
	}

	content.WriteString("\n" + style.MutedStyle.Render(helpText))
	return style.Dialog(dialogWidth(width)).Render(content.String())
}

// Blur ends editing on the focused row, applying any pending edit before it returns.
func (lst List) Blur() List {

	var cmd tea.Cmd
	lst.board, cmd = lst.board.Update(board.BlurMsg{})

	// piece commands only build a message, so running them here is safe
	if msg, ok := run(cmd).(board.PieceMsg); ok {
		lst.receive(msg)
	}
	return lst
}

// unexported

func (lst List) receive(msg board.PieceMsg) {

	switch msg := msg.(type) {
	case *piece.CheckedMsg:
		lst.route(msg.Rank, msg)
	case *piece.SegmentChangedMsg:
		lst.route(msg.Rank, msg)
	case *piece.EditedMsg:
		lst.route(msg.Rank, msg)
	case *piece.NumberChangedMsg:
		lst.route(msg.Rank, msg)
	}
}

// route hands a stamped control message to the editor of its row.
func (lst List) route(rank int, msg tea.Msg) {

	if rank < 0 || rank >= len(lst.editors) {
		lst.logger.Error(lst.ctx, "dropping control message", errors.Errorf("no row %d", rank))
		return
	}

	if !lst.editors[rank].Handle(msg) {
		lst.logger.Error(lst.ctx, "dropping control message", errors.Errorf("%T not for %s", msg, lst.editors[rank].Label()))
	}
}

func dialogWidth(width int) int {
	if width <= 0 || width > 84 {
		return 80
	}
	return width - 4
}

func run(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
