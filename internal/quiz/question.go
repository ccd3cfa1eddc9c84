package quiz

import (
	"errors"
	"fmt"
)

// ErrInvalidQuestion is wrapped by every error returned from Question.Validate.
var ErrInvalidQuestion = errors.New("invalid question")

// Question is a single multiple-choice prompt. Questions are immutable once loaded.
type Question struct {
	Text         string   `yaml:"text" json:"text"`
	Options      []string `yaml:"options" json:"options"`
	CorrectIndex int      `yaml:"correct" json:"correct"`
}

// Validate checks the structural invariants of a question.
func (q Question) Validate() error {
	if q.Text == "" {
		return fmt.Errorf("%w: empty text", ErrInvalidQuestion)
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("%w: %q has %d options, need at least 2", ErrInvalidQuestion, q.Text, len(q.Options))
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return fmt.Errorf("%w: %q correct index %d out of range [0,%d)", ErrInvalidQuestion, q.Text, q.CorrectIndex, len(q.Options))
	}
	return nil
}

// Selection is the append-only list of option indices chosen for one question.
type Selection []int

// Contains reports whether option i has been chosen.
func (s Selection) Contains(i int) bool {
	for _, v := range s {
		if v == i {
			return true
		}
	}
	return false
}
