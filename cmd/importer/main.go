package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"holidayplanner/internal/config"
	"holidayplanner/internal/repositories"
	"holidayplanner/internal/services"
	"holidayplanner/pkg/utils"
)

func main() {
	file := flag.String("file", "", "itinerary to import (.json, .yaml or .yml)")
	schedulePath := flag.String("schedule", "", "schedule file to write (defaults to SCHEDULE_FILE)")
	flag.Parse()

	if err := run(*file, *schedulePath); err != nil {
		log.Printf("Import failed: %v", err)
		os.Exit(1)
	}
}

func run(file, schedulePath string) error {
	if file == "" {
		return fmt.Errorf("%w: -file is required", utils.ErrInvalidInput)
	}
	if schedulePath == "" {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		schedulePath = cfg.ScheduleFile
	}

	raw, err := readItinerary(file)
	if err != nil {
		return err
	}

	schedule, err := services.DecodeSchedule(raw)
	if err != nil {
		return err
	}

	repo := repositories.NewScheduleRepository(schedulePath)
	if err := repo.Save(schedule); err != nil {
		return err
	}

	activities := 0
	for _, day := range schedule {
		activities += len(day)
	}
	log.Printf("Imported %d days (%d activities) into %s", len(schedule), activities, schedulePath)
	return nil
}

func readItinerary(file string) (any, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", file, err)
	}

	var raw any
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", utils.ErrInvalidInput, file, err)
		}
		return utils.NormalizeYAML(raw), nil
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", utils.ErrInvalidInput, file, err)
		}
		return raw, nil
	}
}
