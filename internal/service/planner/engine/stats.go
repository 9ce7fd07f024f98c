package engine

import (
	"math"
	"time"

	"github.com/heartmarshall/hifz-planner/internal/domain"
)

// Stats summarizes progress against the schedule as of now.
func Stats(plan *domain.Plan, now time.Time) domain.PlanStats {
	total := plan.TotalPages()
	memorized := plan.CompletedCount()

	s := domain.PlanStats{
		TotalPages:      total,
		MemorizedPages:  memorized,
		RevisedPages:    plan.RevisedCount(),
		ProgressPercent: progressPercent(memorized, total),
		DaysElapsed:     max(daysBetween(plan.StartDate, now), 0),
		DaysRemaining:   max(daysBetween(now, plan.CompletionDate), 0),
	}

	ppd := 0.0
	if pace, ok := domain.PaceByKey(plan.Pace); ok {
		ppd = pace.PagesPerDay
	}

	s.ExpectedPages = min(int(math.Floor(float64(s.DaysElapsed)*ppd)), total)
	s.OnTrack = memorized >= s.ExpectedPages

	if n := len(plan.Progress.Memorized); n > 0 {
		at := plan.Progress.Memorized[n-1].DateCompleted
		s.LastMemorizedAt = &at
	}
	if n := len(plan.Progress.Revised); n > 0 {
		at := plan.Progress.Revised[n-1].DateCompleted
		s.LastRevisedAt = &at
	}

	remaining := total - memorized
	switch {
	case remaining == 0 && s.LastMemorizedAt != nil:
		s.EstimatedFinishAt = StartOfDay(*s.LastMemorizedAt)
	case ppd > 0:
		s.EstimatedFinishAt = StartOfDay(now).AddDate(0, 0, int(math.Ceil(float64(remaining)/ppd)))
	default:
		s.EstimatedFinishAt = plan.CompletionDate
	}
	return s
}
