// ABOUTME: Lipgloss styles for the status monitor
// ABOUTME: Colors assume a dark background, see internal/termfix

package monitor

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(11)
	onStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	offStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	editStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	hintStyle  = lipgloss.NewStyle().Faint(true)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
)
