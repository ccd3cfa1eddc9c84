package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pawquiz/internal/screen"
)

type resumeMsg struct{}

// fakeScreen records lifecycle calls made by the router.
type fakeScreen struct {
	name    string
	inits   int
	closed  bool
	resumed int
	got     []tea.Msg
}

func (s *fakeScreen) Init() tea.Cmd { s.inits++; return nil }
func (s *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.got = append(s.got, msg)
	return s, nil
}
func (s *fakeScreen) View(int, int) string { return s.name }
func (s *fakeScreen) Title() string        { return s.name }
func (s *fakeScreen) Close()               { s.closed = true }
func (s *fakeScreen) Resume() tea.Cmd {
	s.resumed++
	return func() tea.Msg { return resumeMsg{} }
}

// plainScreen implements only screen.Screen.
type plainScreen struct{ name string }

func (s *plainScreen) Init() tea.Cmd                           { return nil }
func (s *plainScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *plainScreen) View(int, int) string                    { return s.name }
func (s *plainScreen) Title() string                           { return s.name }

func TestPushRunsInit(t *testing.T) {
	r := New(&plainScreen{name: "splash"})
	quiz := &fakeScreen{name: "quiz"}

	r.Update(PushScreenMsg{Screen: quiz})

	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}
	if r.Active() != quiz {
		t.Errorf("active = %q, want quiz", r.Active().Title())
	}
	if quiz.inits != 1 {
		t.Errorf("Init ran %d times, want 1", quiz.inits)
	}
}

func TestPopClosesTopAndResumesBelow(t *testing.T) {
	splash := &fakeScreen{name: "splash"}
	quiz := &fakeScreen{name: "quiz"}
	r := New(splash)
	r.Push(quiz)

	cmd := r.Update(PopScreenMsg{})

	if !quiz.closed {
		t.Error("popped screen should be closed")
	}
	if splash.resumed != 1 {
		t.Errorf("Resume ran %d times, want 1", splash.resumed)
	}
	if cmd == nil {
		t.Fatal("expected the resume command")
	}
	if _, ok := cmd().(resumeMsg); !ok {
		t.Error("expected resumeMsg from the resumed screen")
	}
	if r.View(80, 24) != "splash" {
		t.Errorf("view = %q, want splash", r.View(80, 24))
	}
}

func TestPopWithoutOptionalInterfaces(t *testing.T) {
	r := New(&plainScreen{name: "splash"})
	r.Push(&plainScreen{name: "quiz"})

	if cmd := r.Pop(); cmd != nil {
		t.Error("plain screens should produce no command on pop")
	}
	if r.Active().Title() != "splash" {
		t.Errorf("active = %q, want splash", r.Active().Title())
	}
}

func TestPopKeepsRoot(t *testing.T) {
	root := &fakeScreen{name: "splash"}
	r := New(root)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("depth = %d, want 1", r.Depth())
	}
	if root.closed {
		t.Error("root screen must not be closed")
	}
}

func TestUpdateForwardsToActiveOnly(t *testing.T) {
	splash := &fakeScreen{name: "splash"}
	quiz := &fakeScreen{name: "quiz"}
	r := New(splash)
	r.Push(quiz)

	r.Update(tea.KeyPressMsg{Code: 'x'})

	if len(quiz.got) != 1 {
		t.Errorf("active screen got %d messages, want 1", len(quiz.got))
	}
	if len(splash.got) != 0 {
		t.Errorf("covered screen got %d messages, want 0", len(splash.got))
	}
}
