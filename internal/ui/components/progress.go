package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pawquiz/internal/quiz"
	"github.com/abhisek/pawquiz/internal/ui/theme"
)

// ProgressLines draws one horizontal segment per question. The active
// segment is half filled, completed segments are filled and the rest are
// left as empty track.
type ProgressLines struct {
	Steps []quiz.ProgressState
	Width int
}

// NewProgressLines creates a segmented progress indicator.
func NewProgressLines(steps []quiz.ProgressState, width int) ProgressLines {
	return ProgressLines{Steps: steps, Width: width}
}

// View renders the progress lines.
func (p ProgressLines) View() string {
	n := len(p.Steps)
	if n == 0 {
		return ""
	}

	gap := 1
	seg := max((p.Width-gap*(n-1))/n, 2)

	parts := make([]string, 0, n)
	for _, st := range p.Steps {
		switch st {
		case quiz.ProgressCompleted:
			parts = append(parts, theme.ProgressDone.Render(strings.Repeat(" ", seg)))
		case quiz.ProgressActive:
			half := seg / 2
			parts = append(parts,
				theme.ProgressDone.Render(strings.Repeat(" ", half))+
					theme.ProgressTodo.Render(strings.Repeat(" ", seg-half)))
		default:
			parts = append(parts, theme.ProgressTodo.Render(strings.Repeat(" ", seg)))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(parts, strings.Repeat(" ", gap)))
}
