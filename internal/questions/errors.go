package questions

import (
	"errors"
	"fmt"
)

// ErrInvalidBank is wrapped by every validation failure.
var ErrInvalidBank = errors.New("invalid question bank")

// ValidationError reports why a bank file was rejected.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%v: %v", ErrInvalidBank, e.Err)
	}
	return fmt.Sprintf("%s: %v: %v", e.Path, ErrInvalidBank, e.Err)
}

func (e *ValidationError) Unwrap() []error { return []error{ErrInvalidBank, e.Err} }
