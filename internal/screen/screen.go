package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/prepmap/internal/ui/layout"
)

// Screen is one full-window view: home, today's session, or the roadmap
// overview. The app model owns the chrome; screens render only their
// content area.
type Screen interface {
	// Init returns the screen's initial command, usually a data load.
	Init() tea.Cmd

	// Update handles a message and returns the updated screen.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area between header and footer.
	View(width, height int) string

	// Title names the screen for the header line.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
