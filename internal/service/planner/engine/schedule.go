package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/heartmarshall/hifz-planner/internal/domain"
)

// Schedule projects how many calendar days a plan takes at the given pace.
func Schedule(totalPages int, pagesPerDay float64, start time.Time) (domain.Schedule, error) {
	if pagesPerDay <= 0 || math.IsNaN(pagesPerDay) || math.IsInf(pagesPerDay, 0) {
		return domain.Schedule{}, fmt.Errorf("pages per day %v: %w", pagesPerDay, domain.ErrInvalidPace)
	}
	if totalPages <= 0 {
		return domain.Schedule{}, domain.ErrEmptyBreakdown
	}

	days := int(math.Ceil(float64(totalPages) / pagesPerDay))
	return domain.Schedule{
		TotalDays:      days,
		CompletionDate: start.AddDate(0, 0, days),
	}, nil
}

// StartOfDay truncates t to midnight UTC.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween counts whole calendar days from a to b; negative when b is
// before a.
func daysBetween(a, b time.Time) int {
	return int(StartOfDay(b).Sub(StartOfDay(a)).Hours() / 24)
}
