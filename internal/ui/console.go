// Package ui holds the console styling used by command output.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	colorGreen  = lipgloss.Color("#22c55e")
	colorRed    = lipgloss.Color("#ef4444")
	colorYellow = lipgloss.Color("#eab308")
	colorDim    = lipgloss.Color("#6b7280")

	okStyle   = lipgloss.NewStyle().Foreground(colorGreen)
	failStyle = lipgloss.NewStyle().Foreground(colorRed)
	warnStyle = lipgloss.NewStyle().Foreground(colorYellow)
	dimStyle  = lipgloss.NewStyle().Foreground(colorDim)

	titleStyle = lipgloss.NewStyle().Bold(true)
)

const (
	checkMark = "[OK]"
	crossMark = "[!!]"
	warnMark  = "[??]"
)

// IsTerminal reports whether stdout is an interactive terminal. Styled
// output is disabled otherwise.
func IsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// OK renders a success marker.
func OK() string {
	if !IsTerminal() {
		return checkMark
	}
	return okStyle.Render(checkMark)
}

// Fail renders a failure marker.
func Fail() string {
	if !IsTerminal() {
		return crossMark
	}
	return failStyle.Render(crossMark)
}

// Warn renders a warning marker.
func Warn() string {
	if !IsTerminal() {
		return warnMark
	}
	return warnStyle.Render(warnMark)
}

// Title renders a bold heading.
func Title(s string) string {
	if !IsTerminal() {
		return s
	}
	return titleStyle.Render(s)
}

// Dim renders de-emphasized detail text.
func Dim(s string) string {
	if !IsTerminal() {
		return s
	}
	return dimStyle.Render(s)
}
