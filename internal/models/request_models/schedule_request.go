package request_models

import (
	"fmt"

	"holidayplanner/internal/models/db_models"
	"holidayplanner/pkg/utils"
)

// ActivityRequest accepts the start either as decimal hours or as an "HH:MM" clock value.
type ActivityRequest struct {
	Date         string   `json:"date" binding:"required"`
	StartTime    *float64 `json:"startTime,omitempty"`
	Start        string   `json:"start,omitempty"`
	Duration     *float64 `json:"duration" binding:"required"`
	Label        string   `json:"label"`
	Category     string   `json:"category" binding:"required"`
	Notes        string   `json:"notes,omitempty"`
	MapURL       string   `json:"mapUrl,omitempty"`
	AllTrailsURL string   `json:"allTrailsUrl,omitempty"`
}

func (r ActivityRequest) ToActivity() (db_models.Activity, error) {
	var start float64
	switch {
	case r.StartTime != nil:
		start = *r.StartTime
	case r.Start != "":
		parsed, err := utils.ParseClock(r.Start)
		if err != nil {
			return db_models.Activity{}, err
		}
		start = parsed
	default:
		return db_models.Activity{}, fmt.Errorf("%w: startTime or start is required", utils.ErrInvalidInput)
	}

	return db_models.Activity{
		Date:         r.Date,
		StartTime:    start,
		Duration:     *r.Duration,
		Label:        r.Label,
		Category:     db_models.Category(r.Category),
		Notes:        r.Notes,
		MapURL:       r.MapURL,
		AllTrailsURL: r.AllTrailsURL,
	}, nil
}

// AIScheduleUpdateRequest mirrors the editor dialog. CurrentSchedule is optional;
// the stored schedule is used when it is absent.
type AIScheduleUpdateRequest struct {
	Prompt          string `json:"prompt" binding:"required"`
	Model           string `json:"model,omitempty"`
	CurrentSchedule any    `json:"currentSchedule,omitempty"`
}
