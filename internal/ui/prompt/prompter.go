package prompt

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
)

// ErrCancelled is returned when the user aborts a prompt (ctrl+c, esc).
var ErrCancelled = errors.New("cancelled by user")

// Prompter asks the user for input.
type Prompter interface {
	// Input shows prompt and returns the entered text, unmodified.
	Input(prompt, placeholder string) (string, error)
	// Confirm shows a yes/no prompt and reports whether the user said yes.
	Confirm(prompt string) (bool, error)
}

// New returns a Terminal prompter when in is a terminal, and a Line
// prompter reading from in otherwise.
func New(in, out *os.File) Prompter {
	if isTerminal(in) {
		return &Terminal{In: in, Out: out}
	}
	return NewLine(in, out)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
