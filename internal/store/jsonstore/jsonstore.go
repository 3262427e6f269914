package jsonstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/idilsaglam/watchlist/internal/model"
)

// JSON-backed storage. Single file, human-readable, portable.
// No locking; the running process owns the file for the whole session.

const dataFileName = "movies.json"

// DefaultPath is movies.json in the working directory.
func DefaultPath() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	return filepath.Join(wd, dataFileName), nil
}

// Store reads and writes the watchlist file at Path.
type Store struct {
	Path string
	Log  *slog.Logger
}

// New returns a Store for path. A nil log falls back to slog.Default().
func New(path string, log *slog.Logger) *Store {
	return &Store{Path: path, Log: log}
}

func (s *Store) logger() *slog.Logger {
	if s.Log == nil {
		return slog.Default()
	}
	return s.Log
}

// Load never fails: a missing file is an empty watchlist, and an unreadable
// or malformed one is logged and treated the same way so startup is never blocked.
func (s *Store) Load() []model.Movie {
	movies, err := s.read()
	if err != nil {
		s.logger().Error("load watchlist", "path", s.Path, "err", err)
		return []model.Movie{}
	}
	return movies
}

func (s *Store) read() ([]model.Movie, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Movie{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	movies, err := decodeMovies(b)
	if err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return movies, nil
}

// decodeMovies requires every record to carry year, watched and movie under
// exactly those keys with non-null values. encoding/json alone would fold
// case and zero-fill missing fields, and the next save would then overwrite
// data it never understood. Extra keys are ignored.
func decodeMovies(b []byte) ([]model.Movie, error) {
	var records []map[string]json.RawMessage
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, err
	}
	if records == nil {
		return nil, errors.New("expected an array, got null")
	}
	movies := make([]model.Movie, 0, len(records))
	for i, rec := range records {
		var m model.Movie
		if err := field(rec, "year", &m.Year); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if err := field(rec, "watched", &m.Watched); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if err := field(rec, "movie", &m.Title); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		movies = append(movies, m)
	}
	return movies, nil
}

func field(rec map[string]json.RawMessage, name string, dst any) error {
	raw, ok := rec[name]
	if !ok {
		return fmt.Errorf("missing field %q", name)
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return fmt.Errorf("field %q is null", name)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("field %q: %w", name, err)
	}
	return nil
}

// Save overwrites the file with the full list, pretty-printed.
func (s *Store) Save(movies []model.Movie) error {
	if movies == nil {
		movies = []model.Movie{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(movies); err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(s.Path, bytes.TrimRight(buf.Bytes(), "\n"), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
