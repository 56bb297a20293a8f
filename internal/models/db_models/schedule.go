package db_models

import (
	"fmt"
	"sort"

	"holidayplanner/pkg/utils"
)

// Activity is one scheduled item. StartTime and Duration are decimal hours.
type Activity struct {
	Date         string   `json:"date"`
	StartTime    float64  `json:"startTime"`
	Duration     float64  `json:"duration"`
	Label        string   `json:"label"`
	Category     Category `json:"category"`
	Notes        string   `json:"notes,omitempty"`
	MapURL       string   `json:"mapUrl,omitempty"`
	AllTrailsURL string   `json:"allTrailsUrl,omitempty"`
}

func (a Activity) EndTime() float64 {
	return a.StartTime + a.Duration
}

// Schedule maps a 1-based day number to that day's activities.
// Key order carries no meaning; use SortedDays for display.
type Schedule map[int][]Activity

func (s Schedule) Clone() Schedule {
	out := make(Schedule, len(s))
	for day, activities := range s {
		out[day] = append([]Activity{}, activities...)
	}
	return out
}

func (s Schedule) SortedDays() []int {
	days := make([]int, 0, len(s))
	for day := range s {
		days = append(days, day)
	}
	sort.Ints(days)
	return days
}

// WithActivity appends activity to day and re-sorts that day by start time.
func (s Schedule) WithActivity(day int, activity Activity) (Schedule, error) {
	if _, ok := s[day]; !ok {
		return nil, fmt.Errorf("%w: %d", utils.ErrDayNotFound, day)
	}
	out := s.Clone()
	activities := append(out[day], activity)
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].StartTime < activities[j].StartTime
	})
	out[day] = activities
	return out, nil
}

// WithReplacedActivity swaps the activity at index in place; ordering is left alone.
func (s Schedule) WithReplacedActivity(day, index int, activity Activity) (Schedule, error) {
	if err := s.checkIndex(day, index); err != nil {
		return nil, err
	}
	out := s.Clone()
	out[day][index] = activity
	return out, nil
}

func (s Schedule) WithoutActivity(day, index int) (Schedule, error) {
	if err := s.checkIndex(day, index); err != nil {
		return nil, err
	}
	out := s.Clone()
	activities := out[day]
	out[day] = append(activities[:index], activities[index+1:]...)
	return out, nil
}

// WithNewDay adds an empty day after the highest existing one.
func (s Schedule) WithNewDay() (Schedule, int) {
	next := 1
	for day := range s {
		if day >= next {
			next = day + 1
		}
	}
	out := s.Clone()
	out[next] = []Activity{}
	return out, next
}

func (s Schedule) WithoutDay(day int) (Schedule, error) {
	if _, ok := s[day]; !ok {
		return nil, fmt.Errorf("%w: %d", utils.ErrDayNotFound, day)
	}
	if len(s) <= 1 {
		return nil, utils.ErrLastDay
	}
	out := s.Clone()
	delete(out, day)
	return out, nil
}

func (s Schedule) checkIndex(day, index int) error {
	activities, ok := s[day]
	if !ok {
		return fmt.Errorf("%w: %d", utils.ErrDayNotFound, day)
	}
	if index < 0 || index >= len(activities) {
		return fmt.Errorf("%w: day %d index %d", utils.ErrActivityNotFound, day, index)
	}
	return nil
}
