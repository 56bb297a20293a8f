package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"holidayplanner/internal/models/db_models"
	"holidayplanner/pkg/utils"
)

type ScheduleRepository interface {
	// Load returns an empty schedule when the backing file does not exist yet.
	Load() (db_models.Schedule, error)
	// Save overwrites the backing file with the whole schedule.
	Save(schedule db_models.Schedule) error
}

type FileScheduleRepository struct {
	path string
}

func NewScheduleRepository(path string) ScheduleRepository {
	return &FileScheduleRepository{path: path}
}

func (r *FileScheduleRepository) Load() (db_models.Schedule, error) {
	content, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return db_models.Schedule{}, nil
		}
		log.Printf("Error reading schedule file %s: %v", r.path, err)
		return nil, fmt.Errorf("%w: %v", utils.ErrSchedulePersistence, err)
	}

	var schedule db_models.Schedule
	if err := json.Unmarshal(content, &schedule); err != nil {
		log.Printf("Error parsing schedule file %s: %v", r.path, err)
		return nil, fmt.Errorf("%w: %v", utils.ErrScheduleParse, err)
	}
	if schedule == nil {
		// a file holding a bare `null`
		schedule = db_models.Schedule{}
	}

	return schedule, nil
}

func (r *FileScheduleRepository) Save(schedule db_models.Schedule) error {
	if dir := filepath.Dir(r.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Printf("Error creating schedule directory %s: %v", dir, err)
			return fmt.Errorf("%w: %v", utils.ErrSchedulePersistence, err)
		}
	}

	// nil days would otherwise be written as `null`
	out := make(db_models.Schedule, len(schedule))
	for day, activities := range schedule {
		if activities == nil {
			activities = []db_models.Activity{}
		}
		out[day] = activities
	}

	content, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrSchedulePersistence, err)
	}

	if err := os.WriteFile(r.path, content, 0o644); err != nil {
		log.Printf("Error saving schedule file %s: %v", r.path, err)
		return fmt.Errorf("%w: %v", utils.ErrSchedulePersistence, err)
	}

	return nil
}
