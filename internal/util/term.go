package util

import (
	"fmt"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// PromptSecret prompts for secret input on the terminal (hides input)
//
//nolint:forbidigo // Secret input requires direct terminal I/O
func PromptSecret(prompt string) (string, error) {
	//nolint:forbidigo // Secret input requires direct terminal I/O
	fmt.Print(prompt)

	secretBytes, err := term.ReadPassword(syscall.Stdin)
	if err != nil {
		return "", errors.Wrap(err, "failed to read secret from terminal")
	}

	//nolint:forbidigo // Secret input requires direct terminal I/O
	fmt.Println() // New line after hidden input

	return string(secretBytes), nil
}
