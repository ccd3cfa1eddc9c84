package components

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pawquiz/internal/quiz"
)

func TestOptionList_MarksSelected(t *testing.T) {
	o := NewOptionList([]OptionItem{
		{Label: "Bhau-Bhau"},
		{Label: "Meow-Meow", Selected: true},
		{Label: "Oink-Oink", Selected: true},
	}, 0, 30)

	view := o.View()
	if got := strings.Count(view, "✓"); got != 2 {
		t.Errorf("selected marks = %d, want 2", got)
	}
	if !strings.Contains(view, "▸ 1. Bhau-Bhau") {
		t.Errorf("focused option not marked:\n%s", view)
	}
}

func TestProgressLines_Width(t *testing.T) {
	p := NewProgressLines([]quiz.ProgressState{
		quiz.ProgressCompleted, quiz.ProgressActive, quiz.ProgressDefault, quiz.ProgressDefault,
	}, 43)
	if w := lipgloss.Width(p.View()); w != 43 {
		t.Errorf("width = %d, want 43", w)
	}
}

func TestProgressLines_Empty(t *testing.T) {
	if v := NewProgressLines(nil, 40).View(); v != "" {
		t.Errorf("expected empty view, got %q", v)
	}
}

func TestButton_Hidden(t *testing.T) {
	if v := NewButton("Next", "→", false, true).View(); v != "" {
		t.Errorf("hidden button rendered %q", v)
	}
	if v := NewButton("Next", "→", true, false).View(); !strings.Contains(v, "Next") {
		t.Errorf("disabled button should still render label, got %q", v)
	}
}
