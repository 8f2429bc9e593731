// Package history persists the cross-game leaderboard.
//
// The on-disk format is one entry per line, score and name separated by the
// ASCII unit separator: "<score>\x1f<name>\n". The file is rewritten in full
// at the end of every game and is always left sorted by score descending,
// name ascending. There is no locking: a single interactive user is assumed.
package history

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

const fieldSep = "\x1f"

// Entry is one finished game's result for one player.
type Entry struct {
	Score int
	Name  string
}

// Merge inserts each final into existing, keeping the sequence sorted by
// (score descending, name ascending). Insertion is stable: equal keys land
// after entries already present. Nothing is deduplicated; the same name may
// appear once per finished game.
func Merge(existing []Entry, finals []Entry) []Entry {
	out := append([]Entry(nil), existing...)
	for _, f := range finals {
		i := sort.Search(len(out), func(i int) bool {
			return entryLess(f, out[i])
		})
		out = append(out, Entry{})
		copy(out[i+1:], out[i:])
		out[i] = f
	}
	return out
}

// entryLess orders by score descending, then name ascending by code point.
func entryLess(a, b Entry) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.Name < b.Name
}

// Top returns the first n entries, which are the highest scores given the
// sort order. It is a display convenience only; storage is unbounded.
func Top(entries []Entry, n int) []Entry {
	if n < 0 || n > len(entries) {
		n = len(entries)
	}
	return entries[:n]
}

// Store reads and rewrites the history file.
type Store struct {
	path string
}

// NewStore returns a store over the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the history file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads every entry. A missing file is an empty history, not an error;
// it will be created on the first save.
func (s *Store) Load() ([]Entry, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open history: %w", err)
	}
	defer f.Close()

	var out []Entry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		scoreRaw, name, ok := strings.Cut(line, fieldSep)
		if !ok {
			return nil, fmt.Errorf("history %s: malformed line %q", s.path, line)
		}
		score, err := strconv.Atoi(scoreRaw)
		if err != nil {
			return nil, fmt.Errorf("history %s: bad score in line %q: %w", s.path, line, err)
		}
		out = append(out, Entry{Score: score, Name: name})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	return out, nil
}

// Save rewrites the whole history file, creating its directory if needed.
func (s *Store) Save(entries []Entry) error {
	for _, e := range entries {
		if strings.ContainsAny(e.Name, fieldSep+"\n") {
			return fmt.Errorf("history: name %q contains a reserved character", e.Name)
		}
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("mkdir history dir: %w", err)
	}
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create history: %w", err)
	}
	w := bufio.NewWriter(f)
	for _, e := range entries {
		fmt.Fprintf(w, "%d%s%s\n", e.Score, fieldSep, e.Name)
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("write history: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close history: %w", err)
	}
	return nil
}

// Record merges the finished game's finals into the persisted history and
// rewrites it, returning the full merged sequence.
func (s *Store) Record(finals []Entry) ([]Entry, error) {
	existing, err := s.Load()
	if err != nil {
		return nil, err
	}
	merged := Merge(existing, finals)
	if err := s.Save(merged); err != nil {
		return nil, err
	}
	return merged, nil
}
