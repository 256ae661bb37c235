// Package prompt provides the interactive prompts used by a batch session.
//
// A [Prompter] asks for free text ([Prompter.Input]) and yes/no answers
// ([Prompter.Confirm]). Two implementations exist:
//   - [Terminal]: bubbletea prompts for interactive terminals
//   - [Line]: plain line reading for pipes, scripts and tests
//
// [New] picks one based on whether the input is a terminal.
package prompt
