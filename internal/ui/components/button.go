package components

import (
	"github.com/abhisek/pawquiz/internal/ui/theme"
)

// Button is a navigation button. Hidden buttons render as nothing.
type Button struct {
	Label   string
	Key     string
	Visible bool
	Enabled bool
}

// NewButton creates a new button.
func NewButton(label, key string, visible, enabled bool) Button {
	return Button{
		Label:   label,
		Key:     key,
		Visible: visible,
		Enabled: enabled,
	}
}

// View renders the button.
func (b Button) View() string {
	if !b.Visible {
		return ""
	}
	label := b.Label
	if b.Key != "" {
		label += " [" + b.Key + "]"
	}
	if b.Enabled {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
