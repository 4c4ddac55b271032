package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInputNotFound  = errors.New("input not found")
	ErrUnknownDay     = errors.New("unknown day")
	ErrNoSolution     = errors.New("no solution")
	ErrAnswerNotFound = errors.New("answer not found")
	ErrMalformed      = errors.New("line does not match expected format")
	ErrTransition     = errors.New("invalid sleep transition")
)

// ParseError reports an input line that does not fit the puzzle grammar.
// Line is 1-based; zero means the error is not tied to a single line.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("parse input: %v", e.Err)
	}

	return fmt.Sprintf("parse line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// TransitionError reports a guard log event that is not valid in the
// current sleep state.
type TransitionError struct {
	Line  int
	State string
	Event string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("entry %d: %s while %s: %v", e.Line, e.Event, e.State, ErrTransition)
}

func (e *TransitionError) Unwrap() error {
	return ErrTransition
}
