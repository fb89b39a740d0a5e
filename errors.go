package sqlbuilder

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidState    = errors.New("invalid state")
)

// ArgumentError reports a malformed or missing call argument.
type ArgumentError struct {
	Argument string
	Reason   string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s %s", e.Argument, e.Reason)
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// StateError reports a call that breaks the builder protocol.
type StateError struct {
	Message string
}

func (e *StateError) Error() string {
	return e.Message
}

func (e *StateError) Is(target error) bool {
	return target == ErrInvalidState
}

func atLeastOneElement(argument string, n int) error {
	if n == 0 {
		return &ArgumentError{Argument: argument, Reason: "should have at least one element"}
	}
	return nil
}

func notEmpty(argument string, value string) error {
	if value == "" {
		return &ArgumentError{Argument: argument, Reason: "should not be empty string"}
	}
	return nil
}

func greaterThanZero(argument string, value int) error {
	if value <= 0 {
		return &ArgumentError{Argument: argument, Reason: fmt.Sprintf("%d should be greater than 0", value)}
	}
	return nil
}
