// SPDX-License-Identifier: MIT

package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/hillcipher/shell"
)

// Color palette shared by every command.
const (
	// ColorPrimary is purple, used for titles.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray, used for labels and secondary text.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorSuccess is green, used for results.
	ColorSuccess = lipgloss.Color("#10B981")

	// ColorError is red.
	ColorError = lipgloss.Color("#EF4444")

	// ColorHighlight is blue, used for prompts and matrices.
	ColorHighlight = lipgloss.Color("#3B82F6")

	// ColorVerbose is light gray, used for trace output.
	ColorVerbose = lipgloss.Color("#9CA3AF")
)

var (
	// TitleStyle is for headers.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for labels.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// SuccessStyle is for results.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// ErrorStyle is for failures.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// CmdStyle is for prompts and interactive elements.
	CmdStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)

	// MatrixStyle indents matrices.
	MatrixStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			PaddingLeft(2)

	// VerboseStyle is for trace output.
	VerboseStyle = lipgloss.NewStyle().
			Foreground(ColorVerbose)
)

// consoleStyles maps the palette onto the interactive shell.
func consoleStyles() shell.Styles {
	return shell.Styles{
		Title:  TitleStyle,
		Prompt: CmdStyle,
		Result: SuccessStyle,
		Error:  ErrorStyle,
		Matrix: MatrixStyle,
	}
}
