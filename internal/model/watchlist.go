package model

// Saver persists the full list of movies. Implemented by jsonstore.Store.
type Saver interface {
	Save(movies []Movie) error
}

// Watchlist is an ordered list of movies plus the current selection.
// When the list is empty there is no selection and every mutation is a no-op.
type Watchlist struct {
	movies   []Movie
	selected int
	saver    Saver
}

// New wraps movies in a Watchlist with the selection on the first entry.
// saver may be nil, in which case toggles are kept in memory only.
func New(movies []Movie, saver Saver) *Watchlist {
	if movies == nil {
		movies = []Movie{}
	}
	return &Watchlist{movies: movies, saver: saver}
}

// Len is the number of movies.
func (w *Watchlist) Len() int { return len(w.movies) }

// Selected returns the highlighted index. Meaningless when Len() == 0.
func (w *Watchlist) Selected() int { return w.selected }

// Movies returns a copy of the list in display order.
func (w *Watchlist) Movies() []Movie {
	out := make([]Movie, len(w.movies))
	copy(out, w.movies)
	return out
}

// ToggleCurrent flips the watched flag of the selected movie and saves the
// whole list. A failed save does not undo the toggle; the error is returned
// so the caller can tell the user that disk and memory have diverged.
func (w *Watchlist) ToggleCurrent() error {
	if len(w.movies) == 0 {
		return nil
	}
	w.movies[w.selected].Watched = !w.movies[w.selected].Watched
	if w.saver == nil {
		return nil
	}
	return w.saver.Save(w.Movies())
}

// Next moves the selection down, wrapping to the top.
func (w *Watchlist) Next() {
	if len(w.movies) == 0 {
		return
	}
	w.selected = (w.selected + 1) % len(w.movies)
}

// Previous moves the selection up, wrapping to the bottom.
func (w *Watchlist) Previous() {
	if len(w.movies) == 0 {
		return
	}
	if w.selected == 0 {
		w.selected = len(w.movies) - 1
		return
	}
	w.selected--
}

// Stats reports how many movies are watched out of the total.
func (w *Watchlist) Stats() (watched, total int) {
	for _, m := range w.movies {
		if m.Watched {
			watched++
		}
	}
	return watched, len(w.movies)
}
