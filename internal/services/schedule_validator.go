package services

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"holidayplanner/internal/models/db_models"
	"holidayplanner/pkg/utils"
)

// ShapeError reports the first structural problem found in a candidate schedule.
type ShapeError struct {
	Day    string
	Reason string
}

func (e *ShapeError) Error() string {
	return e.Reason
}

func (e *ShapeError) Is(target error) bool {
	return target == utils.ErrInvalidSchedule
}

var optionalTextFields = []string{"notes", "mapUrl", "allTrailsUrl"}

// ValidateSchedule checks a decoded JSON value (maps, slices, float64, string)
// against the schedule shape. It stops at the first violation.
func ValidateSchedule(raw any) error {
	days, ok := raw.(map[string]any)
	if !ok || days == nil {
		return &ShapeError{Reason: "schedule should be an object"}
	}

	// walk days in a fixed order so the reported violation is stable
	keys := make([]string, 0, len(days))
	for day := range days {
		keys = append(keys, day)
	}
	sort.Strings(keys)

	for _, day := range keys {
		value := days[day]
		// "01" and "+1" would decode onto day 1 and overwrite it
		if n, err := strconv.Atoi(day); err != nil || n < 1 || strconv.Itoa(n) != day {
			return &ShapeError{Day: day, Reason: fmt.Sprintf("day %s is not a positive day number", day)}
		}

		activities, ok := value.([]any)
		if !ok {
			return &ShapeError{Day: day, Reason: fmt.Sprintf("day %s activities should be an array", day)}
		}

		for _, item := range activities {
			activity, ok := item.(map[string]any)
			if !ok || activity == nil {
				return &ShapeError{Day: day, Reason: fmt.Sprintf("invalid activity in day %s", day)}
			}
			if !validActivity(activity) {
				return &ShapeError{Day: day, Reason: fmt.Sprintf("invalid activity data in day %s: %s", day, render(activity))}
			}
		}
	}

	return nil
}

// DecodeSchedule validates raw and converts it into the typed model.
func DecodeSchedule(raw any) (db_models.Schedule, error) {
	if err := ValidateSchedule(raw); err != nil {
		return nil, err
	}

	days := raw.(map[string]any)
	schedule := make(db_models.Schedule, len(days))
	for key, value := range days {
		day, _ := strconv.Atoi(key)
		items := value.([]any)
		activities := make([]db_models.Activity, 0, len(items))
		for _, item := range items {
			fields := item.(map[string]any)
			activities = append(activities, db_models.Activity{
				Date:         fields["date"].(string),
				StartTime:    toFloat(fields["startTime"]),
				Duration:     toFloat(fields["duration"]),
				Label:        fields["label"].(string),
				Category:     db_models.Category(fields["category"].(string)),
				Notes:        optionalText(fields, "notes"),
				MapURL:       optionalText(fields, "mapUrl"),
				AllTrailsURL: optionalText(fields, "allTrailsUrl"),
			})
		}
		schedule[day] = activities
	}

	return schedule, nil
}

// ValidateActivity applies the per-activity rules to an already typed activity.
func ValidateActivity(day int, activity db_models.Activity) error {
	if !activity.Category.IsValid() {
		content, _ := json.Marshal(activity)
		return &ShapeError{
			Day:    strconv.Itoa(day),
			Reason: fmt.Sprintf("invalid activity data in day %d: %s", day, content),
		}
	}
	return nil
}

func validActivity(activity map[string]any) bool {
	if _, ok := activity["label"].(string); !ok {
		return false
	}
	if !isNumber(activity["startTime"]) || !isNumber(activity["duration"]) {
		return false
	}
	if _, ok := activity["date"].(string); !ok {
		return false
	}
	category, ok := activity["category"].(string)
	if !ok || !db_models.Category(category).IsValid() {
		return false
	}
	for _, field := range optionalTextFields {
		if v, present := activity[field]; present && v != nil {
			if _, ok := v.(string); !ok {
				return false
			}
		}
	}
	return true
}

func isNumber(v any) bool {
	switch v.(type) {
	case float64, float32, int, int64, json.Number:
		return true
	}
	return false
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, _ := n.Float64()
		return f
	}
	return 0
}

func optionalText(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}

func render(v any) string {
	content, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(content)
}
