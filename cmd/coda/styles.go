package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Brand color palette
var (
	// Primary Brand Colors (Canvas Coral)
	colorPrimary      = lipgloss.Color("#F46A54") // Canvas Coral - main brand
	colorPrimaryLight = lipgloss.Color("#F98B77") // Light Coral - highlights
	colorPrimaryDark  = lipgloss.Color("#C94F3C") // Dark Coral - active states

	// Neutral Colors
	colorText  = lipgloss.Color("#F2F3F3") // primary text
	colorMuted = lipgloss.Color("240")     // secondary text

	// State Colors
	colorSuccess = lipgloss.Color("#22C55E")
	colorWarning = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
)

// Styles
var (
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(colorPrimary)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	labelStyle   = lipgloss.NewStyle().Foreground(colorPrimaryLight).Bold(true)
	valueStyle   = lipgloss.NewStyle().Foreground(colorText)
)

// isTTY returns true if stdout is a terminal
func isTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// labelRender styles a label, applying color only in TTY mode
func labelRender(s string) string {
	if isTTY() {
		return labelStyle.Render(s)
	}
	return s
}

// mutedRender styles secondary text
func mutedRender(s string) string {
	if isTTY() {
		return mutedStyle.Render(s)
	}
	return s
}

// successRender styles success text
func successRender(s string) string {
	if isTTY() {
		return successStyle.Render(s)
	}
	return s
}

// errorRender styles error text
func errorRender(s string) string {
	if isTTY() {
		return errorStyle.Render(s)
	}
	return s
}

// renderMarkdown renders markdown content with glamour, falling back to the
// raw content when rendering is unavailable or fails.
func renderMarkdown(content string) string {
	if !isTTY() {
		return content
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}

	return strings.TrimSpace(rendered)
}
