package cli

import (
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

// PromptFunc prompts the user for free-text input and returns the response.
type PromptFunc func(prompt string) (string, error)

// NewPromptFunc creates a PromptFunc using huh's interactive input component.
func NewPromptFunc() PromptFunc {
	return func(prompt string) (string, error) {
		var result string
		err := huh.NewInput().
			Title(prompt).
			Value(&result).
			Run()
		return result, err
	}
}

// Answers returns a PromptFunc that replies with the given answers in order.
func Answers(answers ...string) PromptFunc {
	return func(_ string) (string, error) {
		if len(answers) == 0 {
			return "", errors.New("no answer left")
		}
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}
}

// isInteractive reports whether in is a terminal a prompt can read from.
func isInteractive(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
