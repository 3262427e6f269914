package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

const progressWidth = 28

// View rebuilds the whole screen from the watchlist on every frame.
func (m App) View() string {
	if m.quitting {
		return ""
	}
	inner := m.width - 2 // border; padding is inside Width

	watched, total := m.watchlist.Stats()
	header := boxStyle.Width(inner).Render(
		titleStyle.Render(fmt.Sprintf("Movie Watchlist (%d/%d watched)", watched, total)) + "\n" +
			mutedStyle.Render(progressBar(watched, total, progressWidth)),
	)

	m.help.Width = inner - 2
	footerText := m.help.View(m.keys)
	if m.status != "" {
		footerText += "\n" + errorStyle.Render(m.status)
	}
	footer := boxStyle.Width(inner).Render(footerText)

	// border (2) + "Movies" title row (1)
	listHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer) - 3
	if listHeight < 1 {
		listHeight = 1
	}
	body := boxStyle.Width(inner).Render(
		titleStyle.Render("Movies") + "\n" + m.movieList(inner-2, listHeight).View(),
	)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// movieList builds a throwaway bubbles list positioned on the current
// selection. Paging keeps the selected row in view.
func (m App) movieList(width, height int) list.Model {
	movies := m.watchlist.Movies()
	items := make([]list.Item, 0, len(movies))
	for _, mv := range movies {
		items = append(items, movieItem{movie: mv})
	}

	l := list.New(items, itemDelegate{}, width, height)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(true)
	l.SetStatusBarItemName("movie", "movies")
	l.Styles.NoItems = mutedStyle
	if len(items) > 0 {
		l.Select(m.watchlist.Selected())
	}
	return l
}
