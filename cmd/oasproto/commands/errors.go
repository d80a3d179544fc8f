package commands

import (
	"errors"
	"fmt"
)

// ErrUsage matches errors caused by bad arguments or flags.
var ErrUsage = errors.New("cli usage error")

// ErrViolations matches the error verify returns for a document that
// breaks a rewrite invariant.
var ErrViolations = errors.New("invariant violations")

type usageError struct {
	msg string
}

func newUsageError(msg string) error {
	return usageError{msg: msg}
}

func (e usageError) Error() string {
	return e.msg
}

func (e usageError) Is(target error) bool {
	return target == ErrUsage
}

type violationsError struct {
	count int
}

func (e violationsError) Error() string {
	return fmt.Sprintf("found %d invariant violation(s)", e.count)
}

func (e violationsError) Is(target error) bool {
	return target == ErrViolations
}
