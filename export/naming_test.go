package export_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gametree/core"
	"github.com/katalvlaran/gametree/export"
)

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2026, 8, 30, 14, 15, 0, 0, time.UTC)
	}
}

func TestNamingService_FileName(t *testing.T) {
	n := export.NewNamingService(export.WithClock(fixedClock()))

	assert.Equal(t, "Game_J2_R2_E2_20260830-1415", n.FileName(2, 2, 2, "Game"))
	assert.Equal(t, "export_J3_R1_E4_20260830-1415", n.FileName(3, 1, 4, "  "))
	assert.Equal(t, "my_game_J1_R1_E1_20260830-1415", n.FileName(1, 1, 1, " my game "))
}

func TestNamingService_ValidateName(t *testing.T) {
	n := export.NewNamingService()

	assert.True(t, n.ValidateName("Game_J2_R2_E2.xlsx"))
	assert.False(t, n.ValidateName(""))
	for _, bad := range []string{`a\b`, "a/b", "a:b", "a*b", "a?b", `a"b`, "a<b", "a>b", "a|b"} {
		assert.False(t, n.ValidateName(bad), "name %q", bad)
	}
}

func TestNamingService_ResolveConflict(t *testing.T) {
	n := export.NewNamingService()
	dir := t.TempDir()
	path := filepath.Join(dir, "game.xlsx")

	// A free path comes back untouched.
	got, err := n.ResolveConflict(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	// Occupied paths shift to _1, then _2.
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	got, err = n.ResolveConflict(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "game_1.xlsx"), got)

	require.NoError(t, os.WriteFile(got, []byte("x"), 0o644))
	got, err = n.ResolveConflict(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "game_2.xlsx"), got)
}

func TestNamingService_ResolveConflictEmptyPath(t *testing.T) {
	n := export.NewNamingService()

	_, err := n.ResolveConflict("")
	assert.ErrorIs(t, err, export.ErrEmptyPath)
	assert.ErrorIs(t, err, core.ErrValidation)
}
