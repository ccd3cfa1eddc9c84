package components

import (
	"fmt"
	"strings"

	"github.com/abhisek/pawquiz/internal/ui/theme"
)

// OptionItem is one answer choice.
type OptionItem struct {
	Label    string
	Selected bool
}

// OptionList renders answer choices as a vertical stack of boxes. Any
// number of items may be selected at once.
type OptionList struct {
	Items   []OptionItem
	Focused int
	Width   int
}

// NewOptionList creates an option list with focus on the first item.
func NewOptionList(items []OptionItem, focused, width int) OptionList {
	return OptionList{Items: items, Focused: focused, Width: width}
}

// View renders the option list.
func (o OptionList) View() string {
	lines := make([]string, 0, len(o.Items))
	for i, item := range o.Items {
		style := theme.OptionIdle
		switch {
		case item.Selected:
			style = theme.OptionSelected
		case i == o.Focused:
			style = theme.OptionFocused
		}

		marker := "  "
		if i == o.Focused {
			marker = "▸ "
		}
		label := fmt.Sprintf("%s%d. %s", marker, i+1, item.Label)
		if item.Selected {
			label += "  ✓"
		}

		if o.Width > 4 {
			style = style.Width(o.Width)
		}
		lines = append(lines, style.Render(label))
	}
	return strings.Join(lines, "\n")
}
