package quiz

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidQuestion     = errors.New("invalid question")
	ErrNoQuestions         = errors.New("quiz has no questions")
	ErrAnswerCountMismatch = errors.New("answer count does not match question count")
	ErrBadFormat           = errors.New("answer is not a number")
	ErrOutOfRange          = errors.New("answer is out of range")
)

// RangeError reports a well-formed answer outside [1, Max].
type RangeError struct {
	Value int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("answer %d outside 1..%d", e.Value, e.Max)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
