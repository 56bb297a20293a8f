package services

import (
	"log"
	"sort"

	"holidayplanner/internal/models/db_models"
	"holidayplanner/internal/models/response_models"
	"holidayplanner/internal/repositories"
	mem "holidayplanner/pkg/memcache"
	"holidayplanner/pkg/utils"
)

const (
	viewKeyDays    = "days"
	viewKeySummary = "summary"
)

type ScheduleServiceInterface interface {
	LoadSchedule() (db_models.Schedule, error)
	SaveSchedule(schedule db_models.Schedule) error
	ImportSchedule(raw any) (db_models.Schedule, error)

	AddActivity(day int, activity db_models.Activity) (db_models.Schedule, error)
	UpdateActivity(day, index int, activity db_models.Activity) (db_models.Schedule, error)
	DeleteActivity(day, index int) (db_models.Schedule, error)
	AddDay() (db_models.Schedule, int, error)
	DeleteDay(day int) (db_models.Schedule, error)

	DayViews() ([]response_models.DayView, error)
	Summary() (response_models.ScheduleSummary, error)
	Categories() []response_models.CategoryColor
}

type ScheduleService struct {
	scheduleRepo repositories.ScheduleRepository
	views        mem.ViewCache
}

func NewScheduleService(scheduleRepo repositories.ScheduleRepository, views mem.ViewCache) ScheduleServiceInterface {
	return &ScheduleService{
		scheduleRepo: scheduleRepo,
		views:        views,
	}
}

func (s *ScheduleService) LoadSchedule() (db_models.Schedule, error) {
	return s.scheduleRepo.Load()
}

// SaveSchedule overwrites the stored schedule and drops every cached view.
func (s *ScheduleService) SaveSchedule(schedule db_models.Schedule) error {
	if err := s.scheduleRepo.Save(schedule); err != nil {
		return err
	}
	s.views.Purge()
	return nil
}

func (s *ScheduleService) ImportSchedule(raw any) (db_models.Schedule, error) {
	schedule, err := DecodeSchedule(raw)
	if err != nil {
		log.Printf("Rejected schedule import: %v", err)
		return nil, err
	}
	if err := s.SaveSchedule(schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

func (s *ScheduleService) AddActivity(day int, activity db_models.Activity) (db_models.Schedule, error) {
	if err := ValidateActivity(day, activity); err != nil {
		return nil, err
	}
	return s.mutate(func(current db_models.Schedule) (db_models.Schedule, error) {
		return current.WithActivity(day, activity)
	})
}

func (s *ScheduleService) UpdateActivity(day, index int, activity db_models.Activity) (db_models.Schedule, error) {
	if err := ValidateActivity(day, activity); err != nil {
		return nil, err
	}
	return s.mutate(func(current db_models.Schedule) (db_models.Schedule, error) {
		return current.WithReplacedActivity(day, index, activity)
	})
}

func (s *ScheduleService) DeleteActivity(day, index int) (db_models.Schedule, error) {
	return s.mutate(func(current db_models.Schedule) (db_models.Schedule, error) {
		return current.WithoutActivity(day, index)
	})
}

func (s *ScheduleService) AddDay() (db_models.Schedule, int, error) {
	var added int
	schedule, err := s.mutate(func(current db_models.Schedule) (db_models.Schedule, error) {
		next, day := current.WithNewDay()
		added = day
		return next, nil
	})
	if err != nil {
		return nil, 0, err
	}
	return schedule, added, nil
}

func (s *ScheduleService) DeleteDay(day int) (db_models.Schedule, error) {
	return s.mutate(func(current db_models.Schedule) (db_models.Schedule, error) {
		return current.WithoutDay(day)
	})
}

// mutate is one load/edit/overwrite cycle. Concurrent editors race; the last save wins.
func (s *ScheduleService) mutate(edit func(db_models.Schedule) (db_models.Schedule, error)) (db_models.Schedule, error) {
	current, err := s.scheduleRepo.Load()
	if err != nil {
		return nil, err
	}
	next, err := edit(current)
	if err != nil {
		return nil, err
	}
	if err := s.SaveSchedule(next); err != nil {
		return nil, err
	}
	return next, nil
}

func (s *ScheduleService) DayViews() ([]response_models.DayView, error) {
	if cached, ok := s.views.Get(viewKeyDays); ok {
		return cached.([]response_models.DayView), nil
	}

	schedule, err := s.scheduleRepo.Load()
	if err != nil {
		return nil, err
	}

	views := BuildDayViews(schedule)
	s.views.Set(viewKeyDays, views)
	return views, nil
}

func (s *ScheduleService) Summary() (response_models.ScheduleSummary, error) {
	if cached, ok := s.views.Get(viewKeySummary); ok {
		return cached.(response_models.ScheduleSummary), nil
	}

	schedule, err := s.scheduleRepo.Load()
	if err != nil {
		return response_models.ScheduleSummary{}, err
	}

	summary := BuildSummary(schedule)
	s.views.Set(viewKeySummary, summary)
	return summary, nil
}

func (s *ScheduleService) Categories() []response_models.CategoryColor {
	out := make([]response_models.CategoryColor, 0, len(db_models.Categories))
	for _, c := range db_models.Categories {
		out = append(out, response_models.CategoryColor{Category: string(c), Color: c.Color()})
	}
	return out
}

// BuildDayViews orders days numerically; activities keep their stored order
// because edit and delete address them by index.
func BuildDayViews(schedule db_models.Schedule) []response_models.DayView {
	days := schedule.SortedDays()
	views := make([]response_models.DayView, 0, len(days))

	for _, day := range days {
		activities := schedule[day]
		view := response_models.DayView{
			Day:        day,
			Activities: make([]response_models.ActivityView, 0, len(activities)),
		}
		var total float64
		for i, a := range activities {
			if view.Date == "" {
				view.Date = a.Date
			}
			total += a.Duration
			view.Activities = append(view.Activities, response_models.ActivityView{
				Index:        i,
				Date:         a.Date,
				StartTime:    a.StartTime,
				Duration:     a.Duration,
				Start:        utils.FormatClock(a.StartTime),
				End:          utils.FormatClock(a.EndTime()),
				Label:        a.Label,
				Category:     string(a.Category),
				Color:        a.Category.Color(),
				Notes:        a.Notes,
				MapURL:       a.MapURL,
				AllTrailsURL: a.AllTrailsURL,
			})
		}
		view.TotalHours = utils.RoundHours(total)
		views = append(views, view)
	}

	return views
}

// BuildSummary totals hours per day and per category, largest category first.
func BuildSummary(schedule db_models.Schedule) response_models.ScheduleSummary {
	var total float64
	byCategory := make(map[db_models.Category]float64)
	summary := response_models.ScheduleSummary{
		TotalDays: len(schedule),
		DayTotals: make([]response_models.DayTotal, 0, len(schedule)),
	}

	for _, day := range schedule.SortedDays() {
		var dayTotal float64
		for _, a := range schedule[day] {
			dayTotal += a.Duration
			byCategory[a.Category] += a.Duration
		}
		total += dayTotal
		summary.DayTotals = append(summary.DayTotals, response_models.DayTotal{
			Day:   day,
			Hours: utils.RoundHours(dayTotal),
		})
	}

	summary.TotalHours = utils.RoundHours(total)
	summary.CategoryTotals = make([]response_models.CategoryTotal, 0, len(byCategory))
	for category, hours := range byCategory {
		var percent float64
		if total > 0 {
			percent = utils.RoundHours(hours / total * 100)
		}
		summary.CategoryTotals = append(summary.CategoryTotals, response_models.CategoryTotal{
			Category: string(category),
			Color:    category.Color(),
			Hours:    utils.RoundHours(hours),
			Percent:  percent,
		})
	}
	sort.Slice(summary.CategoryTotals, func(i, j int) bool {
		a, b := summary.CategoryTotals[i], summary.CategoryTotals[j]
		if a.Hours != b.Hours {
			return a.Hours > b.Hours
		}
		return a.Category < b.Category
	})

	return summary
}
