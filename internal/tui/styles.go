package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	panel      lipgloss.Style
	expression lipgloss.Style
	invalid    lipgloss.Style
	display    lipgloss.Style
	errDisplay lipgloss.Style
	pending    lipgloss.Style
	key        lipgloss.Style
	operator   lipgloss.Style
	control    lipgloss.Style
	action     lipgloss.Style
	disabled   lipgloss.Style
	confirm    lipgloss.Style
}

func defaultStyles() styles {
	accent := lipgloss.AdaptiveColor{Light: "26", Dark: "86"}
	subtle := lipgloss.AdaptiveColor{Light: "245", Dark: "241"}
	danger := lipgloss.Color("203")

	keyCap := lipgloss.NewStyle().
		Width(5).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(subtle)

	return styles{
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1).
			Width(displayWidth),
		expression: lipgloss.NewStyle().Foreground(subtle),
		invalid:    lipgloss.NewStyle().Foreground(danger),
		display:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		errDisplay: lipgloss.NewStyle().Bold(true).Foreground(danger),
		pending:    lipgloss.NewStyle().Foreground(lipgloss.Color("170")),
		key:        keyCap,
		operator:   keyCap.Foreground(accent).Bold(true),
		control:    keyCap.Foreground(lipgloss.Color("214")),
		action:     lipgloss.NewStyle().Foreground(accent).Bold(true),
		disabled:   lipgloss.NewStyle().Foreground(subtle).Faint(true),
		confirm:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
	}
}
