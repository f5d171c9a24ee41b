// Package prompt provides interactive prompt functionality for codesweep.
package prompt

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=prompt.go -destination=mockprompt.gen.go -package=prompt

// FileChoice represents a selectable scan candidate.
type FileChoice struct {
	Path     string
	Category string
}

// Prompter interface provides user interaction functionality.
type Prompter interface {
	// PromptForRootDir prompts the user for the source root directory with examples.
	PromptForRootDir(defaultRootDir string) (string, error)

	// PromptForReportFile prompts the user for the completion report location with examples.
	PromptForReportFile(defaultReportFile string) (string, error)

	// PromptForConfirmation prompts the user for confirmation with a default value.
	PromptForConfirmation(message string, defaultYes bool) (bool, error)

	// PromptSelectFiles prompts the user to select zero or more files from a list.
	PromptSelectFiles(choices []FileChoice) ([]FileChoice, error)
}

type realPrompt struct {
	reader *bufio.Reader
}

// NewPrompt creates a new Prompt instance.
func NewPrompt() Prompter {
	return &realPrompt{
		reader: bufio.NewReader(os.Stdin),
	}
}

// PromptForRootDir prompts the user for the source root directory with examples.
func (p *realPrompt) PromptForRootDir(defaultRootDir string) (string, error) {
	if defaultRootDir == "" {
		defaultRootDir = "src"
	}
	fmt.Printf("Choose the source root directory to scan "+
		"(ex: src, app/src, packages/app/src): "+
		"[default: %s]: ", defaultRootDir)

	input, err := p.reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read user input: %w", err)
	}

	// Trim whitespace and newlines
	input = strings.TrimSpace(input)

	// Use default if input is empty
	if input == "" {
		return defaultRootDir, nil
	}

	return input, nil
}

// PromptForReportFile prompts the user for the completion report location with examples.
func (p *realPrompt) PromptForReportFile(defaultReportFile string) (string, error) {
	if defaultReportFile == "" {
		defaultReportFile = "~/.codesweep/report.yaml"
	}
	fmt.Printf("Choose the location of the cleanup report file "+
		"(ex: ~/.codesweep/report.yaml, ./cleanup-report.yaml): "+
		"[default: %s]: ", defaultReportFile)

	input, err := p.reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read user input: %w", err)
	}

	// Trim whitespace and newlines
	input = strings.TrimSpace(input)

	// Use default if input is empty
	if input == "" {
		return defaultReportFile, nil
	}

	return input, nil
}

// PromptForConfirmation prompts the user for confirmation with a default value.
func (p *realPrompt) PromptForConfirmation(message string, defaultYes bool) (bool, error) {
	var defaultText string
	if defaultYes {
		defaultText = "[Y/n]"
	} else {
		defaultText = "[y/N]"
	}

	fmt.Printf("%s %s: ", message, defaultText)

	input, err := p.reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	// Trim whitespace and newlines
	input = strings.TrimSpace(strings.ToLower(input))

	// Use default if input is empty
	if input == "" {
		return defaultYes, nil
	}

	// Check for yes/no responses
	switch input {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, ErrInvalidConfirmationInput
	}
}

// PromptSelectFiles prompts the user to select zero or more files from a list.
func (p *realPrompt) PromptSelectFiles(choices []FileChoice) ([]FileChoice, error) {
	if len(choices) == 0 {
		return nil, ErrNoChoicesAvailable
	}

	// Use Bubble Tea selector for interactive selection
	return promptSelectFilesBubbleTea(choices)
}
