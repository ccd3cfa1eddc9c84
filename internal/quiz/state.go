package quiz

import "maps"

// Phase is the visible phase of a quiz session.
type Phase int

const (
	PhaseQuiz    Phase = iota // Answering questions
	PhaseResults              // Score reveal shown
)

func (p Phase) String() string {
	if p == PhaseResults {
		return "results"
	}
	return "quiz"
}

// State is the mutable state of one quiz session.
type State struct {
	// CurrentIndex is the displayed question. Always a valid index while Started.
	CurrentIndex int

	// Selections maps question index to the options chosen for it. Entries only grow.
	Selections map[int]Selection

	// Visited holds every question index displayed at least once.
	Visited map[int]bool

	// Started is set once Initialize has run.
	Started bool
}

// NewState returns a zeroed, not-yet-started state.
func NewState() *State {
	return &State{
		Selections: make(map[int]Selection),
		Visited:    make(map[int]bool),
	}
}

// reset puts the state back to what Initialize expects to find.
func (s *State) reset() {
	s.CurrentIndex = 0
	s.Selections = make(map[int]Selection)
	s.Visited = make(map[int]bool)
	s.Started = false
}

// markVisited records index i as displayed. Idempotent.
func (s *State) markVisited(i int) {
	s.Visited[i] = true
}

// selectOption appends option to the selection for question q.
// Returns false if it was already selected.
func (s *State) selectOption(q, option int) bool {
	sel := s.Selections[q]
	if sel.Contains(option) {
		return false
	}
	s.Selections[q] = append(sel, option)
	return true
}

// Clone returns a deep copy of the state.
func (s *State) Clone() State {
	c := State{
		CurrentIndex: s.CurrentIndex,
		Selections:   make(map[int]Selection, len(s.Selections)),
		Visited:      maps.Clone(s.Visited),
		Started:      s.Started,
	}
	if c.Visited == nil {
		c.Visited = make(map[int]bool)
	}
	for k, v := range s.Selections {
		c.Selections[k] = append(Selection(nil), v...)
	}
	return c
}
