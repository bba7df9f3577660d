// Package nav is the contract between screens and the host that stacks them.
// Screens ask for a push or pop with a message; only the host manages the stack.
package nav

import tea "charm.land/bubbletea/v2"

// Screen is one page on the navigation stack.
type Screen interface {
	Title() string
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
}

// Closer is implemented by screens that act when popped.
type Closer interface {
	Close() tea.Cmd
}

// PushMsg asks the host to push a screen.
type PushMsg struct {
	Screen Screen
}

// PopMsg asks the host to pop the top screen.
type PopMsg struct{}

func PushCmd(screen Screen) tea.Cmd {
	return func() tea.Msg {
		return PushMsg{Screen: screen}
	}
}

func PopCmd() tea.Msg {
	return PopMsg{}
}

// Stack holds screens, last pushed on top.
type Stack struct {
	screens []Screen
}

func NewStack(root Screen) Stack {
	return Stack{screens: []Screen{root}}
}

// Push adds a screen on top.
func (stk Stack) Push(screen Screen) Stack {
	stk.screens = append(stk.screens[:len(stk.screens):len(stk.screens)], screen)
	return stk
}

// Pop removes the top screen, never the root.
func (stk Stack) Pop() (Stack, Screen) {
	if len(stk.screens) <= 1 {
		return stk, nil
	}

	top := stk.screens[len(stk.screens)-1]
	stk.screens = stk.screens[:len(stk.screens)-1]
	return stk, top
}

// Top returns the top screen, or nil when empty.
func (stk Stack) Top() Screen {
	if len(stk.screens) == 0 {
		return nil
	}
	return stk.screens[len(stk.screens)-1]
}

// Replace swaps the top screen, as after an Update.
func (stk Stack) Replace(screen Screen) Stack {
	if len(stk.screens) == 0 {
		return stk
	}

	screens := make([]Screen, len(stk.screens))
	copy(screens, stk.screens)
	screens[len(screens)-1] = screen
	stk.screens = screens
	return stk
}

// Len returns the depth of the stack.
func (stk Stack) Len() int {
	return len(stk.screens)
}

// Titles returns the title of each screen, root first.
func (stk Stack) Titles() []string {
	titles := make([]string, len(stk.screens))
	for i, s := range stk.screens {
		titles[i] = s.Title()
	}
	return titles
}
