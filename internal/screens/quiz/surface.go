package quiz

import (
	"maps"

	qz "github.com/abhisek/pawquiz/internal/quiz"
)

// element is the retained state of one named region.
type element struct {
	text    string
	vis     qz.Visibility
	enabled bool
	classes map[string]bool
}

// optionControl is a rendered answer choice.
type optionControl struct {
	label    string
	onSelect func()
	classes  map[string]bool
}

func (o *optionControl) AddClass(names ...string) {
	for _, n := range names {
		o.classes[n] = true
	}
}

func (o *optionControl) HasClass(name string) bool { return o.classes[name] }

// Surface is a retained-mode display the controller paints into and the
// screen renders from.
type Surface struct {
	elements map[qz.Element]*element
	options  []*optionControl
	progress []qz.ProgressState
}

var _ qz.ViewBinding = (*Surface)(nil)

// NewSurface returns a surface in its initial layout: the quiz container
// shown, the results container hidden.
func NewSurface() *Surface {
	s := &Surface{elements: make(map[qz.Element]*element)}
	s.SetVisibility(qz.ElementQuizContainer, qz.Flex)
	s.SetVisibility(qz.ElementResultsContainer, qz.Hidden)
	s.SetVisibility(qz.ElementScorePercent, qz.Hidden)
	s.SetText(qz.ElementScoreNumber, "0")
	return s
}

func (s *Surface) el(e qz.Element) *element {
	x, ok := s.elements[e]
	if !ok {
		x = &element{classes: make(map[string]bool)}
		s.elements[e] = x
	}
	return x
}

func (s *Surface) SetText(e qz.Element, text string)           { s.el(e).text = text }
func (s *Surface) SetVisibility(e qz.Element, v qz.Visibility) { s.el(e).vis = v }
func (s *Surface) SetEnabled(e qz.Element, enabled bool)       { s.el(e).enabled = enabled }

func (s *Surface) AddClass(e qz.Element, names ...string) {
	x := s.el(e)
	for _, n := range names {
		x.classes[n] = true
	}
}

func (s *Surface) RemoveClass(e qz.Element, names ...string) {
	x := s.el(e)
	for _, n := range names {
		delete(x.classes, n)
	}
}

func (s *Surface) ClearOptions() { s.options = nil }

func (s *Surface) AppendOption(text string, onSelect func()) qz.Control {
	o := &optionControl{label: text, onSelect: onSelect, classes: make(map[string]bool)}
	s.options = append(s.options, o)
	return o
}

func (s *Surface) Options() []qz.Control {
	out := make([]qz.Control, len(s.options))
	for i, o := range s.options {
		out[i] = o
	}
	return out
}

func (s *Surface) SetProgress(steps []qz.ProgressState) {
	s.progress = append(s.progress[:0], steps...)
}

// Text returns the text of e.
func (s *Surface) Text(e qz.Element) string { return s.el(e).text }

// Visibility returns the display mode of e.
func (s *Surface) Visibility(e qz.Element) qz.Visibility { return s.el(e).vis }

// Enabled reports whether e accepts input.
func (s *Surface) Enabled(e qz.Element) bool { return s.el(e).enabled }

// Usable reports whether e is both shown and enabled, i.e. clickable.
func (s *Surface) Usable(e qz.Element) bool {
	x := s.el(e)
	return x.vis.Shown() && x.enabled
}

// HasClass reports whether e carries the class name.
func (s *Surface) HasClass(e qz.Element, name string) bool { return s.el(e).classes[name] }

// Classes returns a copy of the classes on e.
func (s *Surface) Classes(e qz.Element) map[string]bool { return maps.Clone(s.el(e).classes) }

// OptionCount returns the number of rendered options.
func (s *Surface) OptionCount() int { return len(s.options) }

// OptionLabel returns the label of option i.
func (s *Surface) OptionLabel(i int) string { return s.options[i].label }

// OptionSelected reports whether option i is highlighted.
func (s *Surface) OptionSelected(i int) bool { return s.options[i].HasClass(qz.ClassSelected) }

// Click invokes the select handler of option i, as a mouse click would.
func (s *Surface) Click(i int) {
	if i < 0 || i >= len(s.options) || s.options[i].onSelect == nil {
		return
	}
	s.options[i].onSelect()
}

// Progress returns the current progress steps.
func (s *Surface) Progress() []qz.ProgressState { return s.progress }

// QuizVisible reports whether the quiz container is on screen and not leaving.
func (s *Surface) QuizVisible() bool {
	return s.Visibility(qz.ElementQuizContainer).Shown() && !s.HasClass(qz.ElementQuizContainer, qz.ClassSlideUp)
}

// ResultsVisible reports whether the results container is on screen and not leaving.
func (s *Surface) ResultsVisible() bool {
	return s.Visibility(qz.ElementResultsContainer).Shown() && !s.HasClass(qz.ElementResultsContainer, qz.ClassSlideUp)
}
