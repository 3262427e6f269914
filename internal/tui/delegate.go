package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/watchlist/internal/model"
)

// movieItem adapts model.Movie to bubbles/list.Item
type movieItem struct {
	movie model.Movie
}

func (i movieItem) FilterValue() string { return i.movie.Title }

func (i movieItem) text() string {
	box := boxUnchecked
	if i.movie.Watched {
		box = boxChecked
	}
	return fmt.Sprintf("%s %d - %s", box, i.movie.Year, i.movie.Title)
}

// single-line rows, no spacing
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(movieItem)
	if !ok {
		return
	}
	prefix, style := "  ", pendingStyle
	if it.movie.Watched {
		style = watchedStyle
	}
	if index == m.Index() {
		prefix, style = cursorMark, selectedStyle
	}
	line := prefix + it.text()
	if m.Width() > 0 {
		line = ansi.Truncate(line, m.Width(), "…")
	}
	fmt.Fprint(w, style.Render(line))
}
