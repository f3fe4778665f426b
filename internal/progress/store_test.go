package progress

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knightly/knightly/internal/mission"
)

var testMissions = []mission.Mission{
	{ID: "wins", Progress: "0/3", XP: 100},
	{ID: "puzzles", Progress: "2/10", XP: 50},
	{ID: "free", Progress: "0/0", XP: 5},
}

func TestStoreAdvanceAndText(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	m := testMissions[1]
	assert.Equal(t, "2/10", s.Text(m), "falls back to catalogue count")

	p := s.Advance(m, 3)
	assert.Equal(t, mission.Progress{Current: 5, Total: 10}, p)
	assert.Equal(t, "5/10", s.Text(m))

	p = s.Advance(m, 9)
	assert.Equal(t, "14/10", p.String(), "overshoot is kept verbatim")
	assert.Equal(t, float64(100), p.Percentage())
	assert.True(t, p.Complete())

	p = s.Advance(m, -20)
	assert.Equal(t, -6, p.Current)
	assert.Equal(t, float64(0), p.Percentage())
}

func TestStorePersistence(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)

	s.Advance(testMissions[0], 2)
	require.NoError(t, s.Save())

	reloaded, err := New(dir)
	require.NoError(t, err)
	n, ok := reloaded.Count("wins")
	require.True(t, ok)
	assert.Equal(t, 2, n)

	require.NoError(t, reloaded.Reset())
	_, ok = reloaded.Count("wins")
	assert.False(t, ok)

	again, err := New(dir)
	require.NoError(t, err)
	assert.Empty(t, again.Counts)
}

func TestStoreCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, progressFile), []byte("{not json"), 0644))

	_, err := New(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing progress")
}

func TestStoreOverallProgressAndXP(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	completed, total, pct := s.OverallProgress(testMissions)
	assert.Equal(t, 1, completed, "0/0 counts as complete")
	assert.Equal(t, 3, total)
	assert.InDelta(t, 33.33, pct, 0.01)
	assert.Equal(t, 5, s.EarnedXP(testMissions))

	s.Advance(testMissions[0], 3)
	completed, _, _ = s.OverallProgress(testMissions)
	assert.Equal(t, 2, completed)
	assert.Equal(t, 105, s.EarnedXP(testMissions))

	applied := s.Apply(testMissions)
	assert.Equal(t, "3/3", applied[0].Progress)
	assert.Equal(t, "0/3", testMissions[0].Progress, "Apply does not touch the input")

	_, _, pct = s.OverallProgress(nil)
	assert.Equal(t, float64(0), pct)
}
