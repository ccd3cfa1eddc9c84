package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pawquiz/internal/router"
	"github.com/abhisek/pawquiz/internal/screen"
	"github.com/abhisek/pawquiz/internal/ui/components"
	"github.com/abhisek/pawquiz/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 300 * time.Millisecond
	phase2End    = 800 * time.Millisecond
	totalDur     = 1500 * time.Millisecond
)

// paw prints cycle beside the cat once phase 1 ends
var pawFrames = []string{"🐾", "  "}

type tickMsg time.Time

// WelcomeScreen shows a short splash and pushes the quiz on any key. It
// sits at the bottom of the stack, so Esc from the quiz lands back here.
type WelcomeScreen struct {
	quizFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.Resumer = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that starts quizFactory's screen on a key press.
func New(quizFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		quizFactory: quizFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		// Any key skips the rest of the splash.
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.quizFactory()
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

// Resume re-arms the splash once the quiz above it is popped. The
// animation picks up where it stopped.
func (w *WelcomeScreen) Resume() tea.Cmd {
	w.transitioned = false
	return tick()
}

func (w *WelcomeScreen) View(width, height int) string {
	cat := components.CatArt()

	if w.elapsed >= phase1End {
		paw := pawFrames[w.tickCount%len(pawFrames)]
		lines := strings.Split(cat, "\n")
		if len(lines) > 1 {
			lines[1] = paw + "  " + lines[1] + "  " + paw
		}
		cat = strings.Join(lines, "\n")
	}

	sections := []string{cat}

	if w.elapsed >= phase2End {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Four questions. No pressure."),
			"",
			theme.Hint.Render("press any key to start"),
		)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
