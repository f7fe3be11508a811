package tui

import (
	"github.com/ariefcatur/stockfront/internal/notify"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Padding(0, 1)
	tabStyle      = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("245"))
	activeTab     = tabStyle.Foreground(lipgloss.Color("230")).Background(lipgloss.Color("57")).Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	soldOutStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
	priceStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	helpStyle     = lipgloss.NewStyle().Faint(true)
	busyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	sheetStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(1, 2)
	sheetTitle    = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	pendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	approvedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	rejectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
)

var toastStyles = map[notify.Kind]lipgloss.Style{
	notify.Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("24")).Padding(0, 1),
	notify.Success: lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("28")).Padding(0, 1),
	notify.Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("214")).Padding(0, 1),
	notify.Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("124")).Padding(0, 1),
}
