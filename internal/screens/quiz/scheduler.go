package quiz

import (
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"

	qz "github.com/abhisek/pawquiz/internal/quiz"
)

var lastSchedulerID int64

func nextSchedulerID() int {
	return int(atomic.AddInt64(&lastSchedulerID, 1))
}

// timerFiredMsg is delivered by tea.Tick when a scheduled timer is due.
type timerFiredMsg struct {
	scheduler int
	timer     int
}

// teaScheduler implements qz.Scheduler on top of the Bubble Tea event
// loop. Arming a timer queues a tea.Tick command; stopping it forgets the id
// so the tick is ignored when it arrives.
type teaScheduler struct {
	id      int
	nextID  int
	live    map[int]*teaTimer
	pending []tea.Cmd
}

type teaTimer struct {
	s      *teaScheduler
	id     int
	d      time.Duration
	f      func()
	repeat bool
}

var _ qz.Scheduler = (*teaScheduler)(nil)

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{
		id:   nextSchedulerID(),
		live: make(map[int]*teaTimer),
	}
}

func (s *teaScheduler) AfterFunc(d time.Duration, f func()) qz.Timer {
	return s.arm(d, f, false)
}

func (s *teaScheduler) Every(d time.Duration, f func()) qz.Timer {
	return s.arm(d, f, true)
}

func (s *teaScheduler) arm(d time.Duration, f func(), repeat bool) *teaTimer {
	s.nextID++
	t := &teaTimer{s: s, id: s.nextID, d: d, f: f, repeat: repeat}
	s.live[t.id] = t
	s.queue(t)
	return t
}

func (s *teaScheduler) queue(t *teaTimer) {
	sid, tid := s.id, t.id
	s.pending = append(s.pending, tea.Tick(t.d, func(time.Time) tea.Msg {
		return timerFiredMsg{scheduler: sid, timer: tid}
	}))
}

func (t *teaTimer) Stop() bool {
	if _, ok := t.s.live[t.id]; !ok {
		return false
	}
	delete(t.s.live, t.id)
	return true
}

// owns reports whether msg was produced by this scheduler.
func (s *teaScheduler) owns(msg timerFiredMsg) bool {
	return msg.scheduler == s.id
}

// fire runs the callback for msg if its timer is still live. Interval
// timers are re-armed unless the callback stopped them.
func (s *teaScheduler) fire(msg timerFiredMsg) {
	t, ok := s.live[msg.timer]
	if !ok {
		return
	}
	if !t.repeat {
		delete(s.live, t.id)
	}
	t.f()
	if _, still := s.live[t.id]; still && t.repeat {
		s.queue(t)
	}
}

// flush returns the commands queued since the last flush.
func (s *teaScheduler) flush() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

// stopAll forgets every live timer and drops queued ticks.
func (s *teaScheduler) stopAll() {
	clear(s.live)
	s.pending = nil
}

// liveCount returns the number of armed timers.
func (s *teaScheduler) liveCount() int { return len(s.live) }
