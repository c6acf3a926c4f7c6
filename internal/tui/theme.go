package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorPrimary  lipgloss.Color = "#6200ee"
	colorInactive lipgloss.Color = "#998cac"
	colorEmpty    lipgloss.Color = "#cccccc"
	colorVictory  lipgloss.Color = "#2e7d32"
	colorCursor   lipgloss.Color = "#ffb300"
	colorText     lipgloss.Color = "#ffffff"
	colorMuted    lipgloss.Color = "#757575"
	colorError    lipgloss.Color = "#d32f2f"
)

const (
	cellWidth  = 9
	cellHeight = 3
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText).
			Background(colorPrimary).
			Padding(0, 2).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().Foreground(colorMuted)

	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorInactive).
			Width(28).
			Padding(0, 1)

	focusedInputStyle = inputStyle.BorderForeground(colorPrimary)

	buttonStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorPrimary).
			Padding(0, 3).
			MarginTop(1)

	disabledButtonStyle = buttonStyle.Background(colorEmpty).Foreground(colorMuted)

	focusedButtonStyle = buttonStyle.Underline(true).Bold(true)

	cardStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorInactive).
			Width(3*cellWidth + 2).
			Padding(0, 1)

	activeCardStyle = cardStyle.Background(colorPrimary).Bold(true)

	cellStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Height(cellHeight).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(colorText).
			Bold(true)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 3).
			MarginTop(1)

	modalTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)

	noticeStyle = lipgloss.NewStyle().Foreground(colorError)

	helpStyle = lipgloss.NewStyle().Foreground(colorMuted).MarginTop(1)
)
