package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title     lipgloss.Style
	Input     lipgloss.Style
	Loader    lipgloss.Style
	Error     lipgloss.Style
	Card      lipgloss.Style
	CardUser  lipgloss.Style
	CardTitle lipgloss.Style
	CardBody  lipgloss.Style
	Dim       lipgloss.Style
	Status    lipgloss.Style
	Location  lipgloss.Style
	Help      lipgloss.Style
	Main      lipgloss.Style
	Scroll    lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		Loader: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1).
			MarginBottom(1),
		CardUser:  lipgloss.NewStyle().Faint(true),
		CardTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")), // yellow
		CardBody:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Dim:       lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Location: lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Help:     lipgloss.NewStyle().Faint(true),
		Main:     lipgloss.NewStyle().Padding(1, 2),
		Scroll:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	}
}
