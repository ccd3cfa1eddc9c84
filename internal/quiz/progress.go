package quiz

// ProgressState is the appearance of one step of the progress indicator.
type ProgressState int

const (
	ProgressDefault   ProgressState = iota // Not yet visited
	ProgressActive                         // Currently displayed
	ProgressCompleted                      // Visited earlier
)

func (p ProgressState) String() string {
	switch p {
	case ProgressActive:
		return "active"
	case ProgressCompleted:
		return "completed"
	default:
		return "default"
	}
}

// ProgressIndicator returns one state per question, in question order.
func ProgressIndicator(count, current int, visited map[int]bool) []ProgressState {
	steps := make([]ProgressState, count)
	for i := range steps {
		switch {
		case i == current:
			steps[i] = ProgressActive
		case visited[i]:
			steps[i] = ProgressCompleted
		}
	}
	return steps
}
