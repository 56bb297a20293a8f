package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holidayplanner/internal/repositories"
	"holidayplanner/pkg/utils"
)

func TestRunImportsExampleYAML(t *testing.T) {
	target := filepath.Join(t.TempDir(), "schedule-data.json")

	require.NoError(t, run(filepath.Join("..", "..", "data", "itinerary.example.yaml"), target))

	schedule, err := repositories.NewScheduleRepository(target).Load()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, schedule.SortedDays())
	assert.Equal(t, "Drive to Sedona", schedule[1][1].Label)
	assert.Equal(t, 13.5, schedule[1][1].StartTime)
}

func TestRunImportsJSON(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "itinerary.json")
	require.NoError(t, os.WriteFile(source, []byte(`{"1":[{"date":"2025-10-11","startTime":9,"duration":2,"label":"Rafting","category":"Rafting"}]}`), 0o644))
	target := filepath.Join(dir, "out", "schedule-data.json")

	require.NoError(t, run(source, target))

	schedule, err := repositories.NewScheduleRepository(target).Load()
	require.NoError(t, err)
	assert.Len(t, schedule[1], 1)
}

func TestRunRejectsInvalidItinerary(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "itinerary.yaml")
	require.NoError(t, os.WriteFile(source, []byte("1:\n  - label: Nap\n    category: Sleeping\n"), 0o644))
	target := filepath.Join(dir, "schedule-data.json")

	err := run(source, target)
	assert.ErrorIs(t, err, utils.ErrInvalidSchedule)
	assert.NoFileExists(t, target)

	assert.ErrorIs(t, run("", target), utils.ErrInvalidInput)
	assert.Error(t, run(filepath.Join(dir, "missing.yaml"), target))
}
