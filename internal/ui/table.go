package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Table renders rows under headers with the theme's border and header colors.
func Table(headers []string, rows [][]string) string {
	header := lipgloss.NewStyle().Bold(true).Foreground(Vitesse.Primary).Padding(0, 1)
	cell := lipgloss.NewStyle().Foreground(Vitesse.Text).Padding(0, 1)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(Vitesse.Secondary)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	return t.String()
}
