package prompt

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"

	"github.com/raphi011/docbatch/internal/ui/styles"
)

// Terminal runs bubbletea prompts on an interactive terminal. After each
// prompt, the question and answer are echoed to Out so the session stays
// readable in scrollback.
type Terminal struct {
	In  *os.File
	Out *os.File
}

func (t *Terminal) run(model tea.Model) (tea.Model, error) {
	p := tea.NewProgram(model,
		tea.WithInput(t.In),
		tea.WithOutput(t.Out),
		tea.WithColorProfile(colorprofile.Detect(t.Out, os.Environ())),
	)
	return p.Run()
}

// Input shows a text input and returns the entered value.
// Returns ErrCancelled on ctrl+c or esc.
func (t *Terminal) Input(prompt, placeholder string) (string, error) {
	final, err := t.run(newTextInputModel(prompt, placeholder))
	if err != nil {
		return "", err
	}
	m := final.(textInputModel)
	if m.cancelled {
		return "", ErrCancelled
	}
	value := m.textInput.Value()
	fmt.Fprintln(t.Out, styles.PrimaryStyle.Render(prompt), styles.AccentStyle.Render(value))
	return value, nil
}

// Confirm shows a yes/no prompt. Enter defaults to no.
// Returns ErrCancelled on ctrl+c, esc or q.
func (t *Terminal) Confirm(prompt string) (bool, error) {
	final, err := t.run(confirmModel{prompt: prompt})
	if err != nil {
		return false, err
	}
	m := final.(confirmModel)
	if m.cancelled {
		return false, ErrCancelled
	}
	answer := "n"
	if m.confirmed {
		answer = "y"
	}
	fmt.Fprintln(t.Out, styles.WarningStyle.Render(prompt+" [y/N]"), styles.AccentStyle.Render(answer))
	return m.confirmed, nil
}
