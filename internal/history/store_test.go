package history

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMergeOrdersByScoreThenName(t *testing.T) {
	t.Parallel()

	merged := Merge(nil, []Entry{
		{Score: 100, Name: "B"},
		{Score: 100, Name: "A"},
	})
	require.Equal(t, []Entry{
		{Score: 100, Name: "A"},
		{Score: 100, Name: "B"},
	}, merged)
}

func TestMergeIntoExisting(t *testing.T) {
	t.Parallel()

	existing := []Entry{
		{Score: 100, Name: "Ada"},
		{Score: 90, Name: "Eve"},
	}
	merged := Merge(existing, []Entry{
		{Score: 95, Name: "Bob"},
		{Score: 100, Name: "Ada"},
	})
	require.Equal(t, []Entry{
		{Score: 100, Name: "Ada"},
		{Score: 100, Name: "Ada"},
		{Score: 95, Name: "Bob"},
		{Score: 90, Name: "Eve"},
	}, merged)
	// Merge never mutates its input.
	require.Len(t, existing, 2)
}

func TestMergeDoesNotDeduplicate(t *testing.T) {
	t.Parallel()

	merged := Merge([]Entry{{Score: 50, Name: "Ada"}}, []Entry{{Score: 50, Name: "Ada"}})
	require.Len(t, merged, 2)
}

func TestTop(t *testing.T) {
	t.Parallel()

	entries := []Entry{{Score: 3, Name: "a"}, {Score: 2, Name: "b"}, {Score: 1, Name: "c"}}
	require.Len(t, Top(entries, 2), 2)
	require.Len(t, Top(entries, 10), 3)
	require.Equal(t, entries, Top(entries, -1))
}

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "data", "history")
	s := NewStore(path)

	// Missing file is an empty history, not an error.
	entries, err := s.Load()
	require.NoError(t, err)
	require.Empty(t, entries)

	merged, err := s.Record([]Entry{
		{Score: 120, Name: "Ada"},
		{Score: 95, Name: "Bob"},
	})
	require.NoError(t, err)
	require.Equal(t, []Entry{{Score: 120, Name: "Ada"}, {Score: 95, Name: "Bob"}}, merged)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "120\x1fAda\n95\x1fBob\n", string(raw))

	// A second game merges into the same file, keeping the sort order.
	merged, err = s.Record([]Entry{{Score: 100, Name: "Ada"}})
	require.NoError(t, err)

	loaded, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, merged, loaded)
	require.Equal(t, []Entry{
		{Score: 120, Name: "Ada"},
		{Score: 100, Name: "Ada"},
		{Score: 95, Name: "Bob"},
	}, loaded)
}

func TestLoadMalformedLine(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history")
	require.NoError(t, os.WriteFile(path, []byte("not-a-score\x1fAda\n"), 0o644))

	_, err := NewStore(path).Load()
	require.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("no separator here\n"), 0o644))
	_, err = NewStore(path).Load()
	require.Error(t, err)
}

func TestSaveRejectsReservedCharacters(t *testing.T) {
	t.Parallel()

	s := NewStore(filepath.Join(t.TempDir(), "history"))
	require.Error(t, s.Save([]Entry{{Score: 10, Name: "Ada\x1fB"}}))
	require.Error(t, s.Save([]Entry{{Score: 10, Name: "Ada\nB"}}))
}

func TestSaveNegativeAndZeroScores(t *testing.T) {
	t.Parallel()

	s := NewStore(filepath.Join(t.TempDir(), "history"))
	require.NoError(t, s.Save([]Entry{{Score: 0, Name: "Ada"}}))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, []Entry{{Score: 0, Name: "Ada"}}, loaded)
}
