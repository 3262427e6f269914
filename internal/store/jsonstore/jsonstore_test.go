package jsonstore

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/idilsaglam/watchlist/internal/model"
)

func newTestStore(t *testing.T) (*Store, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	path := filepath.Join(t.TempDir(), "movies.json")
	return New(path, slog.New(slog.NewTextHandler(&logs, nil))), &logs
}

func TestSaveLoadRoundTrip(t *testing.T) {
	cases := map[string][]model.Movie{
		"empty": {},
		"one":   {{Year: 1994, Watched: false, Title: "Pulp Fiction"}},
		"many": {
			{Year: 2010, Watched: false, Title: "Inception"},
			{Year: 1999, Watched: true, Title: "The Matrix"},
			{Year: 1999, Watched: true, Title: "The Matrix"},
			{Year: 2001, Watched: false, Title: "Fast & Furious <1>"},
			{Year: 0, Watched: false, Title: ""},
		},
	}
	for name, movies := range cases {
		t.Run(name, func(t *testing.T) {
			s, _ := newTestStore(t)
			if err := s.Save(movies); err != nil {
				t.Fatalf("save: %v", err)
			}
			got := s.Load()
			if !reflect.DeepEqual(got, movies) {
				t.Fatalf("round trip mismatch:\nwant %+v\ngot  %+v", movies, got)
			}
		})
	}
}

func TestSaveWritesPrettyJSONWithStableFieldNames(t *testing.T) {
	s, _ := newTestStore(t)
	if err := s.Save([]model.Movie{{Year: 1994, Watched: true, Title: "Pulp Fiction"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	b, err := os.ReadFile(s.Path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := "[\n  {\n    \"year\": 1994,\n    \"watched\": true,\n    \"movie\": \"Pulp Fiction\"\n  }\n]"
	if string(b) != want {
		t.Fatalf("unexpected file contents:\n%s", b)
	}
}

func TestSaveNilWritesEmptyArray(t *testing.T) {
	s, _ := newTestStore(t)
	if err := s.Save(nil); err != nil {
		t.Fatalf("save: %v", err)
	}
	b, _ := os.ReadFile(s.Path)
	if string(b) != "[]" {
		t.Fatalf("expected [], got %q", b)
	}
}

func TestLoadMissingFileIsEmptyAndQuiet(t *testing.T) {
	s, logs := newTestStore(t)
	got := s.Load()
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", got)
	}
	if logs.Len() != 0 {
		t.Fatalf("expected no diagnostics for a missing file, got %q", logs.String())
	}
}

func TestLoadMalformedFallsBackToEmpty(t *testing.T) {
	for name, body := range map[string]string{
		"garbage":       "{not json",
		"wrong shape":   `{"year": 1994}`,
		"negative year": `[{"year": -1, "watched": false, "movie": "X"}]`,
	} {
		t.Run(name, func(t *testing.T) {
			s, logs := newTestStore(t)
			if err := os.WriteFile(s.Path, []byte(body), 0o644); err != nil {
				t.Fatalf("seed: %v", err)
			}
			if got := s.Load(); len(got) != 0 {
				t.Fatalf("expected empty list, got %+v", got)
			}
			if !strings.Contains(logs.String(), "load watchlist") {
				t.Fatalf("expected a diagnostic, got %q", logs.String())
			}
		})
	}
}

func TestLoadUnreadableFallsBackToEmpty(t *testing.T) {
	s, logs := newTestStore(t)
	s.Path = t.TempDir() // a directory cannot be read as a file
	if got := s.Load(); len(got) != 0 {
		t.Fatalf("expected empty list, got %+v", got)
	}
	if !strings.Contains(logs.String(), "read file") {
		t.Fatalf("expected read diagnostic, got %q", logs.String())
	}
}

func TestLoadAcceptsEmptyTitleAndExtraKeys(t *testing.T) {
	s, logs := newTestStore(t)
	body := `[{"year": 2000, "watched": false, "movie": ""}, {"year": 1995, "watched": true, "movie": "Heat", "extra": 1}]`
	if err := os.WriteFile(s.Path, []byte(body), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	want := []model.Movie{
		{Year: 2000, Watched: false, Title: ""},
		{Year: 1995, Watched: true, Title: "Heat"},
	}
	if got := s.Load(); !reflect.DeepEqual(got, want) {
		t.Fatalf("want %+v, got %+v", want, got)
	}
	if logs.Len() != 0 {
		t.Fatalf("expected no diagnostics, got %q", logs.String())
	}
}

func TestLoadRejectsIncompleteRecords(t *testing.T) {
	for name, tc := range map[string]struct {
		body string
		diag string
	}{
		"missing field": {`[{"year": 1994, "watched": false, "title": "Pulp Fiction"}]`, `missing field \"movie\"`},
		"miscased keys": {`[{"YEAR": 1994, "Watched": false, "MOVIE": "Heat"}]`, `missing field \"year\"`},
		"null field":    {`[{"year": 1994, "watched": null, "movie": "Heat"}]`, `field \"watched\" is null`},
		"null record":   {`[null]`, `missing field \"year\"`},
		"null document": {`null`, "got null"},
		"wrong type":    {`[{"year": "1994", "watched": false, "movie": "Heat"}]`, `field \"year\"`},
	} {
		t.Run(name, func(t *testing.T) {
			s, logs := newTestStore(t)
			if err := os.WriteFile(s.Path, []byte(tc.body), 0o644); err != nil {
				t.Fatalf("seed: %v", err)
			}
			if got := s.Load(); got == nil || len(got) != 0 {
				t.Fatalf("expected empty list, got %#v", got)
			}
			if !strings.Contains(logs.String(), "load watchlist") || !strings.Contains(logs.String(), tc.diag) {
				t.Fatalf("expected diagnostic containing %q, got %q", tc.diag, logs.String())
			}
		})
	}
}

func TestRejectedFileSurvivesToggle(t *testing.T) {
	s, _ := newTestStore(t)
	body := `[{"year":1994,"watched":false,"title":"Pulp Fiction"}]`
	if err := os.WriteFile(s.Path, []byte(body), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	w := model.New(s.Load(), s)
	if err := w.ToggleCurrent(); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	b, err := os.ReadFile(s.Path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != body {
		t.Fatalf("expected file left untouched, got:\n%s", b)
	}
}

func TestSaveReportsWriteError(t *testing.T) {
	s, _ := newTestStore(t)
	s.Path = filepath.Join(t.TempDir(), "missing", "movies.json")
	err := s.Save([]model.Movie{{Title: "X"}})
	if err == nil || !strings.Contains(err.Error(), "write file") {
		t.Fatalf("expected write error, got %v", err)
	}
}
