package repositories

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holidayplanner/internal/models/db_models"
	"holidayplanner/pkg/utils"
)

func TestLoadMissingFileIsEmpty(t *testing.T) {
	repo := NewScheduleRepository(filepath.Join(t.TempDir(), "schedule-data.json"))

	schedule, err := repo.Load()
	require.NoError(t, err)
	assert.NotNil(t, schedule)
	assert.Empty(t, schedule)
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "schedule-data.json")
	repo := NewScheduleRepository(path)

	schedule := db_models.Schedule{
		3: {{Date: "2025-10-13", StartTime: 7.5, Duration: 1.25, Label: "Breakfast", Category: db_models.CategoryEating, Notes: "El Tovar"}},
		1: {{Date: "2025-10-11", StartTime: 12, Duration: 1.5, Label: "Arrive PHX", Category: db_models.CategoryFlight, MapURL: "https://maps.example/phx"}},
	}
	require.NoError(t, repo.Save(schedule))

	loaded, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, schedule, loaded)
	assert.Equal(t, []int{1, 3}, loaded.SortedDays())
}

func TestSaveWritesEmptyDaysAsArrays(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule-data.json")
	repo := NewScheduleRepository(path)

	require.NoError(t, repo.Save(db_models.Schedule{1: nil}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"1": []}`, string(content))
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule-data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewScheduleRepository(path).Load()
	assert.ErrorIs(t, err, utils.ErrScheduleParse)
}

func TestLoadNullFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule-data.json")
	require.NoError(t, os.WriteFile(path, []byte("null"), 0o644))

	schedule, err := NewScheduleRepository(path).Load()
	require.NoError(t, err)
	assert.Empty(t, schedule)
}

func TestSaveFailsWhenParentIsAFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := NewScheduleRepository(filepath.Join(blocker, "schedule-data.json")).Save(db_models.Schedule{})
	assert.ErrorIs(t, err, utils.ErrSchedulePersistence)
}
