package model

// Movie is one watchlist entry. Identity is positional; duplicates are fine.
// The title is persisted under "movie" to stay compatible with existing files.
type Movie struct {
	Year    uint32 `json:"year"`
	Watched bool   `json:"watched"`
	Title   string `json:"movie"`
}
