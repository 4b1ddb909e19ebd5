package tui

import "github.com/charmbracelet/lipgloss"

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	cursorStyle      = currentWordStyle.Underline(true)
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	speedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	completeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#7BC67B")).Bold(true)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#C89A3A")).
			Bold(true).
			Underline(true).
			Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#8C8C8C")).
				Padding(0, 1)
	actionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1A1A1A")).
			Background(lipgloss.Color("#C89A3A")).
			Bold(true).
			Padding(0, 1)

	capIdleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8C8C8C")).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A")).
			Align(lipgloss.Center)
	capTestedStyle = capIdleStyle.
			Foreground(lipgloss.Color("#F0F0F0")).
			BorderForeground(lipgloss.Color("#5B8C5A"))
	capActiveStyle = capIdleStyle.
			Foreground(lipgloss.Color("#1A1A1A")).
			Background(lipgloss.Color("#C89A3A")).
			Bold(true).
			BorderForeground(lipgloss.Color("#C89A3A"))
)

// celebrationColors cycle while the completion flourish plays.
var celebrationColors = []lipgloss.Color{"#C89A3A", "#7BC67B", "#5FB3D9", "#D97BC6"}
