package quiz

import (
	"slices"
	"sort"
	"time"
)

type fakeControl struct {
	text     string
	onSelect func()
	classes  map[string]bool
}

func (c *fakeControl) AddClass(names ...string) {
	for _, n := range names {
		c.classes[n] = true
	}
}

func (c *fakeControl) HasClass(name string) bool { return c.classes[name] }

// fakeView records the last value written to every element.
type fakeView struct {
	text     map[Element]string
	vis      map[Element]Visibility
	enabled  map[Element]bool
	classes  map[Element]map[string]bool
	options  []*fakeControl
	progress []ProgressState
}

func newFakeView() *fakeView {
	return &fakeView{
		text:    make(map[Element]string),
		vis:     make(map[Element]Visibility),
		enabled: make(map[Element]bool),
		classes: make(map[Element]map[string]bool),
	}
}

func (v *fakeView) SetText(el Element, text string)          { v.text[el] = text }
func (v *fakeView) SetVisibility(el Element, vis Visibility) { v.vis[el] = vis }
func (v *fakeView) SetEnabled(el Element, enabled bool)      { v.enabled[el] = enabled }

func (v *fakeView) AddClass(el Element, names ...string) {
	if v.classes[el] == nil {
		v.classes[el] = make(map[string]bool)
	}
	for _, n := range names {
		v.classes[el][n] = true
	}
}

func (v *fakeView) RemoveClass(el Element, names ...string) {
	for _, n := range names {
		delete(v.classes[el], n)
	}
}

func (v *fakeView) hasClass(el Element, name string) bool { return v.classes[el][name] }

func (v *fakeView) ClearOptions() { v.options = nil }

func (v *fakeView) AppendOption(text string, onSelect func()) Control {
	c := &fakeControl{text: text, onSelect: onSelect, classes: make(map[string]bool)}
	v.options = append(v.options, c)
	return c
}

func (v *fakeView) Options() []Control {
	out := make([]Control, len(v.options))
	for i, c := range v.options {
		out[i] = c
	}
	return out
}

func (v *fakeView) SetProgress(steps []ProgressState) { v.progress = slices.Clone(steps) }

func (v *fakeView) selectedOptions() []int {
	var out []int
	for i, c := range v.options {
		if c.HasClass(ClassSelected) {
			out = append(out, i)
		}
	}
	return out
}

// manualScheduler fires callbacks only when the test advances its clock.
type manualScheduler struct {
	now    time.Duration
	seq    int
	timers []*manualTimer
}

type manualTimer struct {
	seq      int
	at       time.Duration
	every    time.Duration
	f        func()
	stopped  bool
	fired    bool
	interval bool
}

func (t *manualTimer) Stop() bool {
	if t.stopped || (t.fired && !t.interval) {
		return false
	}
	t.stopped = true
	return true
}

func (t *manualTimer) live() bool { return !t.stopped && !(t.fired && !t.interval) }

func (s *manualScheduler) add(d time.Duration, f func(), interval bool) *manualTimer {
	s.seq++
	t := &manualTimer{seq: s.seq, at: s.now + d, every: d, f: f, interval: interval}
	s.timers = append(s.timers, t)
	return t
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) Timer { return s.add(d, f, false) }
func (s *manualScheduler) Every(d time.Duration, f func()) Timer     { return s.add(d, f, true) }

// Advance moves the clock forward by d, firing due timers in time order.
func (s *manualScheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		var due []*manualTimer
		for _, t := range s.timers {
			if t.live() && t.at <= target {
				due = append(due, t)
			}
		}
		if len(due) == 0 {
			break
		}
		sort.Slice(due, func(i, j int) bool {
			if due[i].at != due[j].at {
				return due[i].at < due[j].at
			}
			return due[i].seq < due[j].seq
		})
		t := due[0]
		s.now = t.at
		t.fired = true
		if t.interval {
			t.at += t.every
		}
		t.f()
	}
	s.now = target
}

// liveCount returns live one-shot and interval timers.
func (s *manualScheduler) liveCount() (oneShots, intervals int) {
	for _, t := range s.timers {
		if !t.live() {
			continue
		}
		if t.interval {
			intervals++
		} else {
			oneShots++
		}
	}
	return oneShots, intervals
}

// liveOneShots counts live one-shot timers scheduled with duration d.
func (s *manualScheduler) liveOneShots(d time.Duration) int {
	n := 0
	for _, t := range s.timers {
		if t.live() && !t.interval && t.every == d {
			n++
		}
	}
	return n
}

func referenceQuestions() []Question {
	return []Question{
		{Text: "1. What sound does a cat make?", Options: []string{"Bhau-Bhau", "Meow-Meow", "Oink-Oink"}, CorrectIndex: 1},
		{Text: "2. What would you probably find in your fridge?", Options: []string{"Shoes", "Ice Cream", "Books"}, CorrectIndex: 1},
		{Text: "3. What color are bananas?", Options: []string{"Blue", "Yellow", "Red"}, CorrectIndex: 1},
		{Text: "4. How many stars are in the sky?", Options: []string{"Two", "Infinite", "One Hundred"}, CorrectIndex: 1},
	}
}

func newTestController() (*Controller, *fakeView, *manualScheduler) {
	view := newFakeView()
	sched := &manualScheduler{}
	c := NewController(referenceQuestions(), view, sched, DefaultConfig(), nil)
	return c, view, sched
}
