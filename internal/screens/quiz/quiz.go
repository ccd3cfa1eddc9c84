package quiz

import (
	"fmt"
	"strconv"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	qz "github.com/abhisek/pawquiz/internal/quiz"
	"github.com/abhisek/pawquiz/internal/screen"
	"github.com/abhisek/pawquiz/internal/ui/layout"
)

// QuizScreen hosts a quiz controller and renders its surface.
type QuizScreen struct {
	ctrl    *qz.Controller
	surface *Surface
	sched   *teaScheduler
	keys    keyMap
	focus   int
	log     *zap.Logger
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)
var _ screen.Closer = (*QuizScreen)(nil)

// New creates a quiz screen for questions.
func New(questions []qz.Question, cfg qz.Config, log *zap.Logger) *QuizScreen {
	if log == nil {
		log = zap.NewNop()
	}
	surface := NewSurface()
	sched := newTeaScheduler()
	return &QuizScreen{
		ctrl:    qz.NewController(questions, surface, sched, cfg, log),
		surface: surface,
		sched:   sched,
		keys:    defaultKeyMap(),
		log:     log,
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	s.ctrl.Initialize()
	s.focus = 0
	return s.sched.flush()
}

// Close cancels the reveal and any pending transition so no tick outlives
// the screen.
func (s *QuizScreen) Close() {
	s.ctrl.Reveal().Cancel()
	s.sched.stopAll()
	s.log.Debug("quiz screen closed", zap.String("session", s.ctrl.SessionID()))
}

func (s *QuizScreen) Title() string {
	if s.ctrl.Phase() == qz.PhaseResults {
		return "Results"
	}
	return "Quiz"
}

func (s *QuizScreen) Status() string {
	if s.ctrl.Phase() == qz.PhaseResults {
		return ""
	}
	idx, _, _ := s.ctrl.Current()
	return fmt.Sprintf("Question %d of %d", idx+1, len(s.ctrl.Questions()))
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.ctrl.Phase() == qz.PhaseResults {
		return []layout.KeyHint{hint(s.keys.Restart)}
	}

	hints := []layout.KeyHint{hint(s.keys.Up), hint(s.keys.Select)}
	if s.surface.Usable(qz.ElementPrevButton) {
		hints = append(hints, hint(s.keys.Prev))
	}
	if s.surface.Usable(qz.ElementNextButton) {
		hints = append(hints, hint(s.keys.Next))
	}
	if s.surface.Usable(qz.ElementSubmitButton) {
		hints = append(hints, hint(s.keys.Submit))
	}
	return hints
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerFiredMsg:
		if s.sched.owns(msg) {
			s.sched.fire(msg)
		}
	case tea.KeyPressMsg:
		s.handleKey(msg)
	}
	return s, s.sched.flush()
}

func (s *QuizScreen) handleKey(msg tea.KeyPressMsg) {
	if s.ctrl.Phase() == qz.PhaseResults {
		if key.Matches(msg, s.keys.Restart) {
			s.ctrl.Restart()
			s.focus = 0
		}
		return
	}

	switch {
	case key.Matches(msg, s.keys.Up):
		if s.focus > 0 {
			s.focus--
		}
	case key.Matches(msg, s.keys.Down):
		if s.focus < s.surface.OptionCount()-1 {
			s.focus++
		}
	case key.Matches(msg, s.keys.Select):
		s.surface.Click(s.focus)
	case key.Matches(msg, s.keys.Next):
		if s.surface.Usable(qz.ElementNextButton) {
			s.ctrl.Advance()
			s.focus = 0
		}
	case key.Matches(msg, s.keys.Prev):
		if s.surface.Usable(qz.ElementPrevButton) {
			s.ctrl.Retreat()
			s.focus = 0
		}
	case key.Matches(msg, s.keys.Submit):
		if s.surface.Usable(qz.ElementSubmitButton) {
			score := s.ctrl.Submit()
			s.log.Debug("submit pressed", zap.Int("score", score))
		}
	default:
		// Number keys pick an option directly.
		if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= s.surface.OptionCount() {
			s.focus = n - 1
			s.surface.Click(s.focus)
		}
	}
}
