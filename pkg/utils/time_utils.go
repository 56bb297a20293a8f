// utils/time_utils.go
package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatClock renders decimal hours as HH:MM, e.g. 14.5 -> "14:30".
// Values past midnight keep counting (25.0 -> "25:00") so overnight blocks stay readable.
func FormatClock(hours float64) string {
	if hours < 0 {
		hours = 0
	}
	total := int(math.Round(hours * 60))
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// ParseClock is the inverse of FormatClock.
func ParseClock(s string) (float64, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("%w: time %q is not HH:MM", ErrInvalidInput, s)
	}
	hours, err := strconv.Atoi(h)
	if err != nil || hours < 0 {
		return 0, fmt.Errorf("%w: bad hour in %q", ErrInvalidInput, s)
	}
	minutes, err := strconv.Atoi(m)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: bad minute in %q", ErrInvalidInput, s)
	}
	return float64(hours) + float64(minutes)/60, nil
}

// RoundHours keeps one decimal place, the precision the summary displays.
func RoundHours(h float64) float64 {
	return math.Round(h*10) / 10
}
