package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/raphi011/docbatch/internal/ui/styles"
)

// Line reads answers line by line. It is used when stdin is not a
// terminal. Reaching end of input yields an empty answer.
type Line struct {
	r   *bufio.Reader
	out io.Writer
}

// NewLine creates a Line prompter reading from in and writing prompts to out.
func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{r: bufio.NewReader(in), out: out}
}

// Input writes prompt and returns the next line without its line ending.
// The placeholder is shown as a hint.
func (l *Line) Input(prompt, placeholder string) (string, error) {
	if placeholder != "" {
		fmt.Fprint(l.out, styles.PrimaryStyle.Render(prompt), styles.MutedStyle.Render("("+placeholder+")"), ": ")
	} else {
		fmt.Fprint(l.out, styles.PrimaryStyle.Render(prompt), " ")
	}
	return l.readLine()
}

// Confirm writes prompt and reports whether the answer is "y" (any case,
// surrounding whitespace ignored). Anything else, including end of input,
// is a no.
func (l *Line) Confirm(prompt string) (bool, error) {
	fmt.Fprint(l.out, styles.WarningStyle.Render(prompt+" (y/n):"), " ")
	answer, err := l.readLine()
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(answer), "y"), nil
}

func (l *Line) readLine() (string, error) {
	line, err := l.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if errors.Is(err, io.EOF) {
		// Terminate the prompt line when input ended without a newline.
		fmt.Fprintln(l.out)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
