package util

import (
	"fmt"

	"golang.org/x/crypto/ssh/terminal"
)

// prompts user for input on the console, hiding input
func PromptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	d, err := terminal.ReadPassword(0)
	if err != nil {
		return "", err
	}
	fmt.Println()
	return string(d), nil
}
