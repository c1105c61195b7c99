// Package ui renders the styled terminal output shown after a successful
// scaffolding run.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	scriptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("75"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
)

// scriptHints maps the generated script aliases to what they do, in display
// order.
var scriptHints = []struct {
	Name        string
	Description string
}{
	{"build", "bundle the stageplay library for production"},
	{"dev", "rebuild on change and serve with live reload"},
	{"start", "serve the current build"},
}

// SuccessBanner returns the banner printed once install and build have both
// completed, echoing the project name and the generated script aliases.
func SuccessBanner(projectName string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("✓ %s is ready", projectName)))
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render(fmt.Sprintf("cd %s and try:", projectName)))
	b.WriteString("\n")

	for _, script := range scriptHints {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			scriptStyle.Render("npm run "+script.Name),
			hintStyle.Render(script.Description)))
	}

	return bannerStyle.Render(strings.TrimRight(b.String(), "\n")) + "\n"
}
