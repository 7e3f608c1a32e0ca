// Package cli prints pantry output to a plain terminal and reads user input outside of the TUI.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/buger/goterm"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

const defaultWidth = 80

var (
	// Colors for different types of output
	userColor      = color.New(color.FgWhite, color.Bold) // Bold white for user messages
	assistantColor = color.New(color.FgCyan)              // Cyan for assistant replies
	errorColor     = color.New(color.FgRed)               // Red for failed requests
	reminderColor  = color.New(color.FgHiYellow)          // Yellow for reminders
	titleColor     = color.New(color.FgMagenta, color.Bold)
	separatorColor = color.New(color.FgHiBlack) // Dark grey for separators
	infoColor      = color.New(color.FgGreen)
	promptColor    = color.New(color.FgHiBlue) // Bright blue for prompts

	output io.Writer = color.Output
)

// SetOutput redirects everything printed by this package.
func SetOutput(w io.Writer) {
	output = w
}

// Writer returns the writer this package prints to.
func Writer() io.Writer {
	return output
}

// Width of the terminal, 80 when it cannot be determined.
func Width() int {
	if w := goterm.Width(); w > 0 {
		return w
	}
	return defaultWidth
}

// Separator printed to cli.
func Separator() {
	separatorColor.Fprintln(output, strings.Repeat("-", Width()))
}

// Title printed to cli.
func Title(text string, args ...any) {
	w := Width()
	title := "      " + fmt.Sprintf(text, args...) + "      "
	leftWidth := (w - len(title)) / 2
	if leftWidth < 0 {
		leftWidth = 0
	}
	rightWidth := w - len(title) - leftWidth
	if rightWidth < 0 {
		rightWidth = 0
	}
	titleColor.Fprintf(output, "%s%s%s\n", strings.Repeat("-", leftWidth), title, strings.Repeat("-", rightWidth))
}

// UserMessage printed to cli.
func UserMessage(text string) {
	userColor.Fprintf(output, "> %s\n", text)
}

// AssistantMessage printed to cli. Failures are printed in red.
func AssistantMessage(text string) {
	if strings.HasPrefix(text, "Error:") {
		errorColor.Fprintln(output, text)
		return
	}
	assistantColor.Fprintln(output, text)
}

// Reminder printed to cli.
func Reminder(text string) {
	reminderColor.Fprintf(output, "  ⏰ %s\n", text)
}

// Info printed to cli.
func Info(text string, args ...any) {
	infoColor.Fprintf(output, text, args...)
}

// Print writes pre-rendered text as is.
func Print(text string) {
	fmt.Fprint(output, text)
}

// PromptUser for input. Lines are accumulated until Ctrl+J is pressed.
func PromptUser() (string, error) {
	exit := false
	config := &readline.Config{
		Prompt:            promptColor.Sprint("> "),
		InterruptPrompt:   "^C",
		HistorySearchFold: true,
		FuncFilterInputRune: func(r rune) (rune, bool) {
			if r == '\x0A' { // Ctrl + J
				exit = true
			}
			return r, true
		},
	}

	rl, err := readline.NewEx(config)
	if err != nil {
		return "", err
	}
	defer rl.Close()
	var lines []string
	for {
		line, err := rl.Readline()
		if err != nil {
			return "", err
		}
		lines = append(lines, line)
		if exit {
			break
		}
		rl.SetPrompt("")
	}
	return strings.Join(lines, "\n"), nil
}

// QueryUser a yes/no question.
func QueryUser(question string) (bool, error) {
	surveyQuestion := &survey.Confirm{
		Message: question,
	}
	confirm := false
	if err := survey.AskOne(surveyQuestion, &confirm); err != nil {
		return false, err
	}
	return confirm, nil
}
