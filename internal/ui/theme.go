package ui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha
const (
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorRed      lipgloss.Color = "#f38ba8"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorLavender lipgloss.Color = "#b4befe"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorText     lipgloss.Color = "#cdd6f4"
)

const (
	colorSuccess = colorGreen
	colorWarning = colorYellow
	colorError   = colorRed
	colorInfo    = colorTeal
	colorAccent  = colorLavender
	colorMuted   = colorOverlay1
)

type styles struct {
	id        lipgloss.Style
	title     lipgloss.Style
	pending   lipgloss.Style
	completed lipgloss.Style
	muted     lipgloss.Style
	heading   lipgloss.Style
	info      lipgloss.Style
	success   lipgloss.Style
	warning   lipgloss.Style
	err       lipgloss.Style
}

func newStyles() styles {
	return styles{
		id:        lipgloss.NewStyle().Foreground(colorAccent),
		title:     lipgloss.NewStyle().Foreground(colorText),
		pending:   lipgloss.NewStyle().Foreground(colorWarning),
		completed: lipgloss.NewStyle().Foreground(colorSuccess),
		muted:     lipgloss.NewStyle().Foreground(colorMuted),
		heading:   lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		info:      lipgloss.NewStyle().Foreground(colorInfo),
		success:   lipgloss.NewStyle().Foreground(colorSuccess),
		warning:   lipgloss.NewStyle().Foreground(colorWarning),
		err:       lipgloss.NewStyle().Foreground(colorError),
	}
}
