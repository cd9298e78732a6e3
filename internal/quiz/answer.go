package quiz

import (
	"strconv"
	"strings"
)

// ParseAnswer turns one line of user input into a 1-based option index.
// Leading and trailing control characters and spaces are ignored; other
// Unicode spaces such as U+00A0 are kept and make the line malformed. Only
// ASCII digits are accepted. The result is either a valid index or an error
// matching ErrBadFormat or ErrOutOfRange.
func ParseAnswer(line string, optionCount int) (int, error) {
	trimmed := strings.TrimFunc(line, func(r rune) bool { return r <= ' ' })

	// 32-bit parse: anything wider is rejected as malformed, not out of range.
	parsed, err := strconv.ParseInt(trimmed, 10, 32)
	if err != nil {
		return 0, ErrBadFormat
	}

	value := int(parsed)
	if value < 1 || value > optionCount {
		return 0, &RangeError{Value: value, Max: optionCount}
	}
	return value, nil
}
