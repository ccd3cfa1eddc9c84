package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pawquiz/internal/ui/layout"
)

// Screen is one full-window view managed by the router.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is implemented by screens that supply their own footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider is implemented by screens that show a status string on the
// right side of the header, such as the question counter.
type StatusProvider interface {
	Status() string
}

// Closer is implemented by screens that hold timers or other resources that
// must be released when the screen leaves the stack.
type Closer interface {
	Close()
}

// Resumer is implemented by screens that restart work when they become the
// active screen again after the one above them was popped.
type Resumer interface {
	Resume() tea.Cmd
}
