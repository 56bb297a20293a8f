package response_models

type ActivityView struct {
	Index        int     `json:"index"`
	Date         string  `json:"date"`
	StartTime    float64 `json:"start_time"`
	Duration     float64 `json:"duration"`
	Start        string  `json:"start"`
	End          string  `json:"end"`
	Label        string  `json:"label"`
	Category     string  `json:"category"`
	Color        string  `json:"color"`
	Notes        string  `json:"notes,omitempty"`
	MapURL       string  `json:"map_url,omitempty"`
	AllTrailsURL string  `json:"all_trails_url,omitempty"`
}

type DayView struct {
	Day        int            `json:"day"`
	Date       string         `json:"date,omitempty"`
	TotalHours float64        `json:"total_hours"`
	Activities []ActivityView `json:"activities"`
}

type CategoryTotal struct {
	Category string  `json:"category"`
	Color    string  `json:"color"`
	Hours    float64 `json:"hours"`
	Percent  float64 `json:"percent"`
}

type DayTotal struct {
	Day   int     `json:"day"`
	Hours float64 `json:"hours"`
}

type ScheduleSummary struct {
	TotalDays      int             `json:"total_days"`
	TotalHours     float64         `json:"total_hours"`
	DayTotals      []DayTotal      `json:"day_totals"`
	CategoryTotals []CategoryTotal `json:"category_totals"`
}

type CategoryColor struct {
	Category string `json:"category"`
	Color    string `json:"color"`
}
