package ui

import "github.com/charmbracelet/lipgloss"

// sift's palette: river silt and the glint in it.
var (
	Glint  = lipgloss.Color("#F5C242")
	Silt   = lipgloss.Color("#8A8178")
	Moss   = lipgloss.Color("#6FA86F")
	Clay   = lipgloss.Color("#C65D4A")
	Water  = lipgloss.Color("#5C8FBF")
	Dim    = lipgloss.Color("#5F5F5F")
	Bright = lipgloss.Color("#F2F2F2")

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Glint)

	Success = lipgloss.NewStyle().
		Foreground(Moss)

	Error = lipgloss.NewStyle().
		Foreground(Clay)

	Warning = lipgloss.NewStyle().
		Foreground(Glint)

	Info = lipgloss.NewStyle().
		Foreground(Water)

	Muted = lipgloss.NewStyle().
		Foreground(Dim)

	Accent = lipgloss.NewStyle().
		Foreground(Glint).
		Bold(true)

	// Match is the style for highlighted match ranges.
	Match = lipgloss.NewStyle().
		Foreground(Glint).
		Bold(true).
		Underline(true)

	KeyStyle = lipgloss.NewStyle().
			Foreground(Water)

	ValueStyle = lipgloss.NewStyle().
			Foreground(Bright)
)

const (
	IconSift  = "⏚ "
	IconOk    = "✓ "
	IconWarn  = "⚠ "
	IconError = "✗ "
	IconArrow = "→"
	IconDot   = "·"
)
