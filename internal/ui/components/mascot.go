package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pawquiz/internal/ui/theme"
)

const pawArt = `   ▄▄   ▄▄
  ████ ████
▄▄ ▀▀   ▀▀ ▄▄
██  ▄███▄  ██
   ███████
    ▀▀▀▀▀`

const catArt = ` /\_/\
( o.o )
 > ^ <`

// PawArt renders the decorative cat paw.
func PawArt() string {
	return lipgloss.NewStyle().Foreground(theme.Accent).Render(pawArt)
}

// CatArt renders the cat face used on the splash screen.
func CatArt() string {
	return lipgloss.NewStyle().Foreground(theme.Primary).Render(catArt)
}

// SpeechBubble renders text in a rounded bubble.
func SpeechBubble(text string) string {
	return theme.SpeechBubble.Render(text)
}
