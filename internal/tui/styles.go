package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ------- styling helpers (Lip Gloss) -------
var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	watchedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Faint(true)
	pendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)

	boxChecked   = "[✓]"
	boxUnchecked = "[ ]"
	cursorMark   = "► "
)

// Fail prints a styled error line on stderr.
func Fail(msg string) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("✖ "+msg))
}

// progressBar renders "[██░░] 1/2"; width counts the cells between the brackets.
func progressBar(watched, total, width int) string {
	width = max(width, 0)
	filled := 0
	if total > 0 {
		filled = min(width, watched*width/total)
	}
	return fmt.Sprintf("[%s%s] %d/%d",
		strings.Repeat("█", filled), strings.Repeat("░", width-filled), watched, total)
}
