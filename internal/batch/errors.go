package batch

import (
	"fmt"
	"strings"
)

// EmptyInputError reports a naming template that is empty after
// sanitization.
type EmptyInputError struct {
	Input string // raw answer as typed
}

func (e *EmptyInputError) Error() string {
	return "naming convention cannot be empty"
}

// InvalidSelectionError reports a format menu answer that is not a number
// in [1, Max], or a --format query that matches nothing.
type InvalidSelectionError struct {
	Input string
	Max   int
	Query bool // Input came from --format rather than the menu
}

func (e *InvalidSelectionError) Error() string {
	switch {
	case e.Query:
		return fmt.Sprintf("no file type matches %q", e.Input)
	case !isNumber(strings.TrimSpace(e.Input)):
		return "selection must be a number"
	default:
		return fmt.Sprintf("please enter a number between 1 and %d", e.Max)
	}
}

// InvalidCountError reports a copy count that is not a positive integer.
type InvalidCountError struct {
	Input string
}

func (e *InvalidCountError) Error() string {
	return fmt.Sprintf("input must be a positive integer, got %q", strings.TrimSpace(e.Input))
}

// FilesystemError wraps a failure to create a directory or file.
type FilesystemError struct {
	Op   string // "mkdir" or "create"
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("filesystem error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}

// isNumber reports whether s is a non-empty run of ASCII digits.
func isNumber(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
