package ui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Design centralizes the color palette and common styles.
//
// Palette is based on Vitesse Dark Soft:
// https://github.com/antfu/vscode-theme-vitesse/blob/main/themes/vitesse-dark-soft.json
type designTheme struct {
	Primary lipgloss.Color // #4d9375
	Blue    lipgloss.Color // #6394bf
	Yellow  lipgloss.Color // #e6cc77
	Red     lipgloss.Color // #cb7676

	Text      lipgloss.Color // #dbd7caee
	Secondary lipgloss.Color // #bfbaaa
	Muted     lipgloss.Color // #dedcd590
}

// Vitesse is the global design theme.
var Vitesse = designTheme{
	Primary: lipgloss.Color("#4d9375"),
	Blue:    lipgloss.Color("#6394bf"),
	Yellow:  lipgloss.Color("#e6cc77"),
	Red:     lipgloss.Color("#cb7676"),

	Text:      lipgloss.Color("#dbd7caee"),
	Secondary: lipgloss.Color("#bfbaaa"),
	Muted:     lipgloss.Color("#dedcd590"),
}

// AccentBold returns a bold style using the primary accent color.
func AccentBold() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(Vitesse.Primary)
}

// Success renders a completed-action line.
func Success(s string) string {
	return lipgloss.NewStyle().Foreground(Vitesse.Primary).Render("✓ " + s)
}

// Failure renders an error line.
func Failure(s string) string {
	return lipgloss.NewStyle().Foreground(Vitesse.Red).Render("× " + s)
}

// Notice renders an informational line such as a non-zero exit.
func Notice(s string) string {
	return lipgloss.NewStyle().Foreground(Vitesse.Yellow).Render("• " + s)
}

// Hint renders a manual-action instruction.
func Hint(s string) string {
	return lipgloss.NewStyle().Foreground(Vitesse.Blue).Render(s)
}

// Dim renders secondary text.
func Dim(s string) string {
	return lipgloss.NewStyle().Foreground(Vitesse.Muted).Render(s)
}

// FormTheme is the huh theme shared by all prompts.
func FormTheme() *huh.Theme {
	green := Vitesse.Primary
	theme := huh.ThemeCharm()
	theme.FieldSeparator = lipgloss.NewStyle()
	theme.Blurred.Title = theme.Blurred.Title.Foreground(lipgloss.Color("7"))
	theme.Focused.Title = theme.Focused.Title.Foreground(green).Bold(true)
	theme.Blurred.SelectedOption = theme.Blurred.SelectedOption.Foreground(lipgloss.Color("243"))
	theme.Focused.SelectedOption = lipgloss.NewStyle().Foreground(green)
	theme.Focused.SelectSelector = theme.Focused.SelectSelector.Foreground(green)
	theme.Focused.FocusedButton = theme.Focused.FocusedButton.Background(green)
	theme.Focused.Base = theme.Focused.Base.BorderForeground(green)
	return theme
}
