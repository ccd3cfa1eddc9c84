package quiz

// Element names a region of the display surface the controller paints.
type Element string

const (
	ElementQuestionText     Element = "question-text"
	ElementSpeechBubble     Element = "speech-bubble"
	ElementPawArt           Element = "paw-art"
	ElementPrevButton       Element = "prev-button"
	ElementNextButton       Element = "next-button"
	ElementSubmitButton     Element = "submit-button"
	ElementQuizContainer    Element = "quiz-container"
	ElementResultsContainer Element = "results-container"
	ElementScoreNumber      Element = "score-number"
	ElementScorePercent     Element = "score-percent"
)

// Visibility is the display mode of an element.
type Visibility int

const (
	Hidden Visibility = iota
	Block
	Flex
	Inline
)

// Shown reports whether v is any visible mode.
func (v Visibility) Shown() bool { return v != Hidden }

// Class names toggled on elements and option controls.
const (
	ClassSelected          = "selected"
	ClassSlideUp           = "slide-up"
	ClassSlideInFromBottom = "slide-in-from-bottom"
	ClassSlideInFromTop    = "slide-in-from-top"
)

// Control is one rendered, selectable option.
type Control interface {
	AddClass(names ...string)
	HasClass(name string) bool
}

// ViewBinding is the display surface a Controller drives. Implementations
// must not call back into the controller synchronously except through the
// onSelect handlers they were given.
type ViewBinding interface {
	SetText(el Element, text string)
	SetVisibility(el Element, v Visibility)
	SetEnabled(el Element, enabled bool)
	AddClass(el Element, names ...string)
	RemoveClass(el Element, names ...string)

	// ClearOptions removes all option controls.
	ClearOptions()
	// AppendOption adds an option control after the existing ones.
	AppendOption(text string, onSelect func()) Control
	// Options returns the option controls in display order.
	Options() []Control

	// SetProgress replaces the progress indicator, one step per question.
	SetProgress(steps []ProgressState)
}
