package batch

import (
	"strconv"
	"strings"
)

// ParseSelection parses a 1-based menu answer. Surrounding whitespace is
// ignored; signs, decimals and anything outside [1, max] are rejected.
func ParseSelection(input string, max int) (int, error) {
	s := strings.TrimSpace(input)
	if !isNumber(s) {
		return 0, &InvalidSelectionError{Input: input, Max: max}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > max {
		return 0, &InvalidSelectionError{Input: input, Max: max}
	}
	return n, nil
}

// ParseCount parses a copy count. Only plain positive decimal integers are
// accepted.
func ParseCount(input string) (int, error) {
	s := strings.TrimSpace(input)
	if !isNumber(s) {
		return 0, &InvalidCountError{Input: input}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, &InvalidCountError{Input: input}
	}
	return n, nil
}
