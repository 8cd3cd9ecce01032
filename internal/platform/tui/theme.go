package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the visual styles for every screen.
type Theme struct {
	// HUD styles
	HUDTitle     lipgloss.Style
	HUDLabel     lipgloss.Style
	HUDValue     lipgloss.Style
	HUDSeparator lipgloss.Style
	HUDControls  lipgloss.Style
	HUDBorder    lipgloss.Style

	// Obstacle and outcome flashes
	Obstacle lipgloss.Style
	Bonus    lipgloss.Style
	Dodged   lipgloss.Style
	Missed   lipgloss.Style
	LifeFull lipgloss.Style
	LifeLost lipgloss.Style

	// Menus and pages
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
	PageBorder      lipgloss.Style
	PageText        lipgloss.Style
	Status          lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		HUDTitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		HUDLabel:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		HUDValue:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		HUDSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		HUDControls:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		HUDBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 3),

		Obstacle: lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true), // Orange
		Bonus:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),  // Cyan
		Dodged:   lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),  // Green
		Missed:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true), // Red
		LifeFull: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		LifeLost: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),

		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		PageBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2),
		PageText: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	}
}

// HighContrastTheme returns a black and white theme for low vision.
func HighContrastTheme() Theme {
	theme := DefaultTheme()
	white := lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	theme.HUDTitle = white
	theme.HUDLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	theme.HUDValue = white
	theme.HUDControls = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	theme.HUDBorder = theme.HUDBorder.BorderForeground(lipgloss.Color("15")).Border(lipgloss.ThickBorder())
	theme.Obstacle = white.Reverse(true)
	theme.Bonus = white.Underline(true)
	theme.Dodged = white
	theme.Missed = white.Reverse(true)
	theme.LifeFull = white
	theme.LifeLost = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	theme.MenuTitle = white
	theme.MenuItemNormal = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	theme.MenuItemActive = white.Reverse(true)
	theme.MenuDescription = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	theme.PageBorder = theme.PageBorder.BorderForeground(lipgloss.Color("15")).Border(lipgloss.ThickBorder())
	theme.PageText = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	theme.Status = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	return theme
}

// Global theme variable (can be changed at startup)
var theme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(t Theme) {
	theme = t
}

// CurrentTheme returns the current global theme.
func CurrentTheme() Theme {
	return theme
}
