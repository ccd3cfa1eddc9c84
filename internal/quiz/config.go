package quiz

import "time"

// Config holds the score reveal timings.
type Config struct {
	// RevealDelay is the pause before the counter starts.
	RevealDelay time.Duration

	// TickInterval is the counter step period.
	TickInterval time.Duration

	// SnapAt is the counter value at which the display jumps to the final value.
	SnapAt int

	// DisplayedScore is the value the reveal lands on.
	DisplayedScore int

	// ShowComputedScore lands the reveal on the real score instead of DisplayedScore.
	ShowComputedScore bool

	// TransitionDuration is how long a container slide takes before the
	// outgoing container is hidden.
	TransitionDuration time.Duration
}

// DefaultConfig returns the reference reveal timings.
func DefaultConfig() Config {
	return Config{
		RevealDelay:        1000 * time.Millisecond,
		TickInterval:       20 * time.Millisecond,
		SnapAt:             35,
		DisplayedScore:     62,
		TransitionDuration: 1200 * time.Millisecond,
	}
}
