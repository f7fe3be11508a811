package tui

import (
	"strings"

	"github.com/ariefcatur/stockfront/internal/app"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) View() string {
	var header, body, help string
	if m.app.Mode() == app.ModeAdmin {
		header, body, help = m.adminHeader(), m.adminView(), m.adminHelp()
	} else {
		header, _ = m.header()
		body, help = m.shopView(), shopHelp
	}

	if top, ok := m.app.Overlays.Top(); ok {
		sheet := m.overlayView(top)
		if m.width > 0 && m.height > 6 {
			body = lipgloss.Place(m.width, m.height-5, lipgloss.Center, lipgloss.Center, sheet)
		} else {
			body = sheet
		}
		help = ""
	}

	var status []string
	if m.app.Busy.Active() {
		status = append(status, busyStyle.Render("⏳ "+m.app.Busy.Label()))
	}
	for _, t := range m.app.Toasts.Active() {
		status = append(status, toastStyles[t.Kind].Render(t.Message))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		header, "", strings.TrimRight(body, "\n"), "", strings.Join(status, "  "), helpStyle.Render(help))
}
