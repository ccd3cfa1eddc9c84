package quiz

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Controller owns one quiz session and paints it onto a ViewBinding.
// All methods must be called from the event loop that runs the Scheduler's
// callbacks; the controller does no locking.
type Controller struct {
	questions []Question
	view      ViewBinding
	sched     Scheduler
	cfg       Config
	log       *zap.Logger

	state     *State
	phase     Phase
	reveal    *Reveal
	sessionID string
	lastScore int

	// transition hides the results container after a restart slide.
	transition Timer
}

// NewController creates a controller for questions. It does not render
// anything until Initialize is called. questions must be non-empty and valid.
func NewController(questions []Question, view ViewBinding, sched Scheduler, cfg Config, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		questions: questions,
		view:      view,
		sched:     sched,
		cfg:       cfg,
		log:       log,
		state:     NewState(),
		reveal:    NewReveal(cfg, view, sched, log),
	}
}

// Questions returns the question set.
func (c *Controller) Questions() []Question { return c.questions }

// State returns a deep copy of the session state.
func (c *Controller) State() State { return c.state.Clone() }

// Phase returns whether the quiz or the results are showing.
func (c *Controller) Phase() Phase { return c.phase }

// Reveal exposes the score animation state.
func (c *Controller) Reveal() *Reveal { return c.reveal }

// LastScore returns the computed score of the most recent Submit.
func (c *Controller) LastScore() int { return c.lastScore }

// SessionID identifies the current session in logs.
func (c *Controller) SessionID() string { return c.sessionID }

// Current returns the displayed question and its selections.
func (c *Controller) Current() (int, Question, Selection) {
	i := c.state.CurrentIndex
	return i, c.questions[i], c.state.Selections[i]
}

// Initialize starts a fresh session on question 0.
func (c *Controller) Initialize() {
	c.state.reset()
	c.state.Started = true
	c.state.markVisited(0)
	c.phase = PhaseQuiz
	c.sessionID = uuid.NewString()

	c.log.Info("quiz initialized",
		zap.String("session", c.sessionID),
		zap.Int("questions", len(c.questions)))

	c.Render()
	c.refreshProgress()
	c.refreshNav()
}

// Render paints the current question. Calling it twice yields the same view.
func (c *Controller) Render() {
	idx := c.state.CurrentIndex
	q := c.questions[idx]

	c.state.markVisited(idx)

	if idx == 0 {
		c.view.SetVisibility(ElementSpeechBubble, Flex)
		c.view.SetVisibility(ElementPawArt, Block)
	} else {
		c.view.SetVisibility(ElementSpeechBubble, Hidden)
		c.view.SetVisibility(ElementPawArt, Hidden)
	}

	c.view.SetText(ElementQuestionText, q.Text)

	c.view.ClearOptions()
	sel := c.state.Selections[idx]
	for i, opt := range q.Options {
		ctl := c.view.AppendOption(opt, func() { c.SelectOption(i) })
		if sel.Contains(i) {
			ctl.AddClass(ClassSelected)
		}
	}
}

// SelectOption adds option i to the current question's selection. Selecting
// an option twice is a no-op; selections are never removed.
func (c *Controller) SelectOption(i int) {
	idx := c.state.CurrentIndex
	if c.state.selectOption(idx, i) {
		c.view.Options()[i].AddClass(ClassSelected)
		c.log.Debug("option selected",
			zap.String("session", c.sessionID),
			zap.Int("question", idx),
			zap.Int("option", i))
	}
	c.refreshNav()
}

// Advance moves to the next question. No-op on the last question.
func (c *Controller) Advance() {
	if c.state.CurrentIndex >= len(c.questions)-1 {
		return
	}
	c.state.markVisited(c.state.CurrentIndex)
	c.state.CurrentIndex++
	c.state.markVisited(c.state.CurrentIndex)
	c.Render()
	c.refreshProgress()
	c.refreshNav()
}

// Retreat moves to the previous question. No-op on the first question.
func (c *Controller) Retreat() {
	if c.state.CurrentIndex <= 0 {
		return
	}
	c.state.CurrentIndex--
	c.Render()
	c.refreshProgress()
	c.refreshNav()
}

// Submit scores the session and starts the results reveal. It returns the
// computed score. Submitting again restarts the reveal from zero.
func (c *Controller) Submit() int {
	stop(&c.transition)

	score, correct := Score(c.questions, c.state.Selections)
	c.lastScore = score
	c.phase = PhaseResults

	c.log.Info("quiz submitted",
		zap.String("session", c.sessionID),
		zap.Int("correct", correct),
		zap.Int("score", score))

	c.reveal.Start(score)
	return score
}

// Restart cancels the reveal, slides the quiz back in and starts a fresh session.
func (c *Controller) Restart() {
	c.reveal.Cancel()
	stop(&c.transition)

	c.state.reset()

	c.view.SetText(ElementScoreNumber, "0")
	c.view.SetVisibility(ElementScorePercent, Hidden)

	c.view.RemoveClass(ElementResultsContainer, ClassSlideInFromBottom)
	c.view.RemoveClass(ElementQuizContainer, ClassSlideUp, ClassSlideInFromBottom, ClassSlideInFromTop)

	c.view.SetVisibility(ElementQuizContainer, Flex)
	c.view.AddClass(ElementQuizContainer, ClassSlideInFromTop)
	c.view.AddClass(ElementResultsContainer, ClassSlideUp)

	c.transition = c.sched.AfterFunc(c.cfg.TransitionDuration, func() {
		c.transition = nil
		c.view.SetVisibility(ElementResultsContainer, Hidden)
		c.view.RemoveClass(ElementResultsContainer, ClassSlideUp)
		c.view.RemoveClass(ElementQuizContainer, ClassSlideInFromTop)
	})

	c.log.Info("quiz restarted", zap.String("session", c.sessionID))

	c.Initialize()
}

func (c *Controller) refreshProgress() {
	c.view.SetProgress(ProgressIndicator(len(c.questions), c.state.CurrentIndex, c.state.Visited))
}

func (c *Controller) refreshNav() {
	NavigationButtons(c.state.CurrentIndex, len(c.questions)).apply(c.view)
}
