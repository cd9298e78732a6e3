package quiz

import (
	"fmt"
	"strings"
)

const minOptions = 2

// Question is a single multiple-choice prompt. Options hold the display labels
// exactly as they are printed, and correct is a 1-based index into them.
type Question struct {
	prompt  string
	options []string
	correct int
}

func NewQuestion(prompt string, options []string, correct int) (Question, error) {
	if strings.TrimSpace(prompt) == "" {
		return Question{}, fmt.Errorf("%w: prompt is required", ErrInvalidQuestion)
	}
	if len(options) < minOptions {
		return Question{}, fmt.Errorf("%w: need at least %d options, got %d", ErrInvalidQuestion, minOptions, len(options))
	}
	for idx, option := range options {
		if strings.TrimSpace(option) == "" {
			return Question{}, fmt.Errorf("%w: option %d is blank", ErrInvalidQuestion, idx+1)
		}
	}
	if correct < 1 || correct > len(options) {
		return Question{}, fmt.Errorf("%w: correct option %d outside 1..%d", ErrInvalidQuestion, correct, len(options))
	}

	return Question{
		prompt:  prompt,
		options: append([]string(nil), options...),
		correct: correct,
	}, nil
}

func (q Question) Prompt() string {
	return q.prompt
}

// Options returns a copy of the option labels in display order.
func (q Question) Options() []string {
	return append([]string(nil), q.options...)
}

func (q Question) OptionCount() int {
	return len(q.options)
}

// IsCorrect reports whether choice is the correct 1-based option. Out-of-range
// choices are simply wrong.
func (q Question) IsCorrect(choice int) bool {
	return choice == q.correct
}
