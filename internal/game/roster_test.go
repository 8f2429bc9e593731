package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRosterAddValidation(t *testing.T) {
	t.Parallel()

	r := NewRoster()

	_, err := r.Add("   ")
	require.ErrorIs(t, err, ErrEmptyPlayerName)

	p, err := r.Add("  Ada  ")
	require.NoError(t, err)
	require.Equal(t, "Ada", p.Name)
	require.NotEmpty(t, p.ID)

	_, err = r.Add("Ada")
	require.ErrorIs(t, err, ErrNameTaken)

	_, err = r.Add("Ada\x1fSmith")
	require.ErrorIs(t, err, ErrBadPlayerName)

	require.Equal(t, 1, r.Len())
}

func TestRosterRename(t *testing.T) {
	t.Parallel()

	r := NewRoster()
	_, err := r.Add("Ada")
	require.NoError(t, err)
	_, err = r.Add("Bob")
	require.NoError(t, err)

	// Keeping your own name is not a collision.
	require.NoError(t, r.Rename(0, "Ada"))
	require.ErrorIs(t, r.Rename(1, "Ada"), ErrNameTaken)
	require.ErrorIs(t, r.Rename(1, ""), ErrEmptyPlayerName)

	require.NoError(t, r.Rename(1, "Grace"))
	require.Equal(t, "Grace", r.Players()[1].Name)
}

func TestRosterRemove(t *testing.T) {
	t.Parallel()

	r := NewRoster()
	for _, n := range []string{"Ada", "Bob", "Eve"} {
		_, err := r.Add(n)
		require.NoError(t, err)
	}

	r.Remove(1)
	require.Equal(t, 2, r.Len())
	require.Equal(t, "Ada", r.Players()[0].Name)
	require.Equal(t, "Eve", r.Players()[1].Name)

	r.Remove(99) // out of range is a no-op
	require.Equal(t, 2, r.Len())
}

func TestDefaultRoster(t *testing.T) {
	t.Parallel()

	r := DefaultRoster("")
	require.Equal(t, 1, r.Len())
	require.NotEmpty(t, r.Players()[0].Name)

	named := DefaultRoster("Linus")
	require.Equal(t, "Linus", named.Players()[0].Name)
}

func TestRosterResetSheets(t *testing.T) {
	t.Parallel()

	r := NewRoster()
	p, err := r.Add("Ada")
	require.NoError(t, err)
	require.NoError(t, p.Sheet.Set(Chance, 20))

	r.ResetSheets()
	require.Empty(t, r.Players()[0].Sheet)
}
