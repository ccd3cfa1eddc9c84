package quiz

import (
	"strconv"

	"go.uber.org/zap"
)

// RevealPhase is the state of the score reveal animation.
type RevealPhase int

const (
	RevealIdle    RevealPhase = iota // Not running
	RevealDelayed                    // Waiting for the counter to start
	RevealTicking                    // Counter running
	RevealSettled                    // Final value shown
)

func (p RevealPhase) String() string {
	switch p {
	case RevealDelayed:
		return "delayed"
	case RevealTicking:
		return "ticking"
	case RevealSettled:
		return "settled"
	default:
		return "idle"
	}
}

// Reveal plays the results-phase score animation. At most one delayed start,
// one ticker and one container-hide timer are live at any time.
type Reveal struct {
	cfg   Config
	view  ViewBinding
	sched Scheduler
	log   *zap.Logger

	delay  Timer
	ticker Timer
	hide   Timer

	phase   RevealPhase
	counter int
	snapAt  int
	final   int
}

// NewReveal creates an idle reveal bound to view and sched.
func NewReveal(cfg Config, view ViewBinding, sched Scheduler, log *zap.Logger) *Reveal {
	if log == nil {
		log = zap.NewNop()
	}
	return &Reveal{cfg: cfg, view: view, sched: sched, log: log}
}

// Phase returns the current animation state.
func (r *Reveal) Phase() RevealPhase { return r.phase }

// Final returns the value the reveal lands on.
func (r *Reveal) Final() int { return r.final }

// Start cancels any running reveal, swaps the quiz container for the results
// container and schedules the counter. score is the computed score; it is only
// displayed when Config.ShowComputedScore is set.
func (r *Reveal) Start(score int) {
	r.Cancel()

	r.view.SetText(ElementScoreNumber, "0")
	r.view.SetVisibility(ElementScorePercent, Hidden)

	r.view.RemoveClass(ElementQuizContainer, ClassSlideInFromBottom, ClassSlideInFromTop)
	r.view.RemoveClass(ElementResultsContainer, ClassSlideUp, ClassSlideInFromBottom)

	r.view.SetVisibility(ElementResultsContainer, Flex)
	r.view.AddClass(ElementResultsContainer, ClassSlideInFromBottom)
	r.view.AddClass(ElementQuizContainer, ClassSlideUp)

	r.final = r.cfg.DisplayedScore
	r.snapAt = r.cfg.SnapAt
	if r.cfg.ShowComputedScore {
		r.final = score
		r.snapAt = max(1, min(r.snapAt, score))
	}

	r.phase = RevealDelayed
	r.delay = r.sched.AfterFunc(r.cfg.RevealDelay, r.beginTicking)
	r.hide = r.sched.AfterFunc(r.cfg.TransitionDuration, func() {
		r.hide = nil
		r.view.SetVisibility(ElementQuizContainer, Hidden)
		r.view.RemoveClass(ElementQuizContainer, ClassSlideUp)
	})

	r.log.Debug("reveal scheduled",
		zap.Int("score", score),
		zap.Int("final", r.final),
		zap.Duration("delay", r.cfg.RevealDelay))
}

// Cancel stops every live reveal timer and returns to idle.
func (r *Reveal) Cancel() {
	stop(&r.delay)
	stop(&r.ticker)
	stop(&r.hide)
	r.phase = RevealIdle
	r.counter = 0
}

func (r *Reveal) beginTicking() {
	r.delay = nil
	r.phase = RevealTicking
	r.ticker = r.sched.Every(r.cfg.TickInterval, r.tick)
}

func (r *Reveal) tick() {
	r.counter++
	if r.counter > 0 {
		r.view.SetVisibility(ElementScorePercent, Inline)
	}

	switch {
	case r.counter == r.snapAt:
		r.view.SetText(ElementScoreNumber, strconv.Itoa(r.final))
		stop(&r.ticker)
		r.phase = RevealSettled
		r.log.Debug("reveal settled", zap.Int("final", r.final))
	case r.counter < r.snapAt:
		r.view.SetText(ElementScoreNumber, strconv.Itoa(r.counter))
	}
}
