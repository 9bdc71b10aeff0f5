package prompt

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
)

// Prompter resolves a list of options to the index of the chosen one. It is
// an interface so unattended runs and tests can swap the terminal prompt for
// a non-interactive strategy.
type Prompter interface {
	Select(message string, options []string) (int, error)
}

type PTermPrompter struct {
	// Input reads one line of operator input. The default shows a pterm
	// interactive text input; tests swap in a scripted reader.
	Input func(message string) (string, error)
}

func NewPTermPrompter() *PTermPrompter {
	return &PTermPrompter{
		Input: func(message string) (string, error) {
			return pterm.DefaultInteractiveTextInput.Show(message)
		},
	}
}

// Select renders the options as a zero-based indexed list and reads an index
// from the terminal. Non-numeric or out-of-range input is rejected with a
// visible error and re-prompted, without bound.
func (prompter *PTermPrompter) Select(message string, options []string) (int, error) {
	pterm.Info.Println(message)
	for i, option := range options {
		pterm.Printfln("  [%d] %s", i, option)
	}

	for {
		input, err := prompter.Input(fmt.Sprintf("Enter a number between 0 and %d", len(options)-1))
		if err != nil {
			return 0, err
		}

		index, err := strconv.Atoi(input)
		if err != nil || index < 0 || index >= len(options) {
			pterm.Error.Printfln("Invalid selection %q, try again", input)
			continue
		}
		return index, nil
	}
}

// AutoFailPrompter rejects every prompt. It backs unattended runs, where
// anything that would block on operator input must fail instead.
type AutoFailPrompter struct{}

func NewAutoFailPrompter() *AutoFailPrompter {
	return &AutoFailPrompter{}
}

func (prompter *AutoFailPrompter) Select(message string, options []string) (int, error) {
	return 0, fmt.Errorf("interactive selection is disabled: %s", message)
}
