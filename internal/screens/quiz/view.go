package quiz

import (
	"strings"

	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/pawquiz/internal/quiz"
	"github.com/abhisek/pawquiz/internal/ui/components"
	"github.com/abhisek/pawquiz/internal/ui/theme"
)

const greeting = "Hi! Let's see how well you know cats & stuff."

func (s *QuizScreen) View(width, height int) string {
	switch {
	case s.surface.QuizVisible():
		return s.renderQuiz(width, height)
	case s.surface.ResultsVisible():
		return s.renderResults(width, height)
	}
	return ""
}

func (s *QuizScreen) renderQuiz(width, height int) string {
	cw := components.ContentWidth(width)
	var b strings.Builder

	b.WriteString(components.NewProgressLines(s.surface.Progress(), cw).View())
	b.WriteString("\n\n")

	bubble := s.surface.Visibility(qz.ElementSpeechBubble).Shown()
	paw := s.surface.Visibility(qz.ElementPawArt).Shown()
	if bubble || paw {
		var decor []string
		if paw {
			decor = append(decor, components.PawArt())
		}
		if bubble {
			decor = append(decor, components.SpeechBubble(greeting))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, joinSpaced(decor)...))
		b.WriteString("\n\n")
	}

	b.WriteString(theme.Question.Width(cw).Render(s.surface.Text(qz.ElementQuestionText)))
	b.WriteString("\n\n")

	items := make([]components.OptionItem, s.surface.OptionCount())
	for i := range items {
		items[i] = components.OptionItem{
			Label:    s.surface.OptionLabel(i),
			Selected: s.surface.OptionSelected(i),
		}
	}
	b.WriteString(components.NewOptionList(items, s.focus, cw).View())
	b.WriteString("\n\n")

	b.WriteString(s.renderNav())

	return components.Center(b.String(), width, height)
}

func (s *QuizScreen) renderNav() string {
	buttons := []components.Button{
		s.button(qz.ElementPrevButton, "Previous", "←"),
		s.button(qz.ElementNextButton, "Next", "→"),
		s.button(qz.ElementSubmitButton, "Submit", "S"),
	}
	var parts []string
	for _, btn := range buttons {
		if v := btn.View(); v != "" {
			parts = append(parts, v)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, joinSpaced(parts)...)
}

func (s *QuizScreen) button(el qz.Element, label, keyLabel string) components.Button {
	return components.NewButton(label, keyLabel,
		s.surface.Visibility(el).Shown(),
		s.surface.Enabled(el))
}

func (s *QuizScreen) renderResults(width, height int) string {
	score := s.surface.Text(qz.ElementScoreNumber)
	if s.surface.Visibility(qz.ElementScorePercent).Shown() {
		score += "%"
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		theme.Title.Render("Your score"),
		"",
		theme.ScoreNumber.Render(score),
		"",
		theme.Hint.Render("press r to start again"),
	)
	return components.Center(components.Card(content, components.ContentWidth(width)/2+10), width, height)
}

// joinSpaced interleaves parts with two-space gaps for horizontal joins.
func joinSpaced(parts []string) []string {
	out := make([]string, 0, 2*len(parts))
	for i, p := range parts {
		if i > 0 {
			out = append(out, "  ")
		}
		out = append(out, p)
	}
	return out
}
