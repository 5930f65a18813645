package boltdb

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	planner "github.com/danielkim-905/schedule-planner"
)

func testRepo(t *testing.T) *repo {
	t.Helper()
	return New(Config{Path: filepath.Join(t.TempDir(), "schedule.bdb")})
}

var entries = planner.Schedule{
	{Task: "Gym", Day: "Monday", StartTime: "18:00", EndTime: "19:00"},
	{Task: planner.SyllabusTask, Day: "Monday", StartTime: planner.NA, EndTime: planner.NA, Description: "2025-03-03"},
	{Task: "Study group", Day: "Thursday", StartTime: "16:00", EndTime: "17:30"},
}

func TestSaveAndLoadEntries(t *testing.T) {
	r := testRepo(t)
	require.NoError(t, r.SaveEntries(entries...))

	got, err := r.LoadEntries()
	require.NoError(t, err)
	require.Len(t, got, len(entries))
	for i, e := range got {
		assert.True(t, e.Equals(entries[i]), "entry %d changed across the round-trip", i)
	}
}

func TestSaveKeepsInsertionOrderAcrossCalls(t *testing.T) {
	r := testRepo(t)
	for _, e := range entries {
		require.NoError(t, r.SaveEntries(e))
	}

	got, err := r.LoadEntries()
	require.NoError(t, err)
	require.Len(t, got, len(entries))
	assert.Equal(t, "Gym", got[0].Task)
	assert.Equal(t, "Study group", got[2].Task)
}

func TestLoadEntriesFiltersByDay(t *testing.T) {
	r := testRepo(t)
	require.NoError(t, r.SaveEntries(entries...))

	got, err := r.LoadEntries("monday")
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, e := range got {
		assert.Equal(t, "Monday", e.Day)
	}
}

func TestLoadEntriesEmptyDb(t *testing.T) {
	got, err := testRepo(t).LoadEntries()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestClear(t *testing.T) {
	r := testRepo(t)
	require.NoError(t, r.SaveEntries(entries...))
	require.NoError(t, r.Clear())

	got, err := r.LoadEntries()
	require.NoError(t, err)
	assert.Empty(t, got)

	// the repo stays usable after a clear
	require.NoError(t, r.SaveEntries(entries[0]))
	got, err = r.LoadEntries()
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
