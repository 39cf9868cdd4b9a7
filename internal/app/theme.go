package app

import (
	"github.com/charmbracelet/lipgloss"
)

// ThemeColors defines the color scheme for the dock
type ThemeColors struct {
	Primary lipgloss.AdaptiveColor
	Success lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor
	Subtle  lipgloss.AdaptiveColor
	Border  lipgloss.AdaptiveColor
	Focus   lipgloss.AdaptiveColor
}

// DefaultTheme returns the color scheme
func DefaultTheme() ThemeColors {
	return ThemeColors{
		Primary: lipgloss.AdaptiveColor{Light: "#0066CC", Dark: "#4DA6FF"},
		Success: lipgloss.AdaptiveColor{Light: "#008000", Dark: "#00D700"},
		Warning: lipgloss.AdaptiveColor{Light: "#FF8C00", Dark: "#FFCC00"},
		Error:   lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF3333"},
		Subtle:  lipgloss.AdaptiveColor{Light: "#999999", Dark: "#999999"},
		Border:  lipgloss.AdaptiveColor{Light: "#CCCCCC", Dark: "#333333"},
		Focus:   lipgloss.AdaptiveColor{Light: "#0066CC", Dark: "#4DA6FF"},
	}
}

// GetHeaderStyle returns a styled header
func (m Model) GetHeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(m.theme.Primary).
		Bold(true)
}

// GetErrorStyle returns a styled error message
func (m Model) GetErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(m.theme.Error).
		Bold(true)
}

// GetHelpStyle returns styled help text
func (m Model) GetHelpStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(m.theme.Subtle)
}

// GetCellStyle returns the style for an unselected grid cell
func (m Model) GetCellStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1)
}

// GetFocusedCellStyle returns the style for the selected grid cell
func (m Model) GetFocusedCellStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Focus).
		Bold(true).
		Padding(0, 1)
}

// GetComboStyle returns the style for key-combination labels
func (m Model) GetComboStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(m.theme.Warning)
}
