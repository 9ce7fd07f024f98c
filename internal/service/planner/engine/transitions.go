package engine

import (
	"fmt"
	"time"

	"github.com/heartmarshall/hifz-planner/internal/domain"
)

// ApplyMemorized marks the current page completed and unlocks the next one.
// The input plan is never modified; the returned plan is a copy.
func ApplyMemorized(plan *domain.Plan, now time.Time) (*domain.Plan, error) {
	i := plan.CurrentPageIndex()
	if i >= plan.TotalPages() {
		return nil, domain.ErrPlanComplete
	}

	if a := DeriveAssignment(plan); a.Kind == domain.AssignmentRevisionRequired {
		return nil, fmt.Errorf("page %d must be revised first: %w", a.RevisionPage.PageNumber, domain.ErrRevisionPending)
	}

	next := plan.Clone()
	pg := &next.PageBreakdown[i]
	pg.Unlocked = true
	pg.Completed = true
	next.Progress.Memorized = append(next.Progress.Memorized, domain.ProgressEntry{
		PageNumber:    pg.PageNumber,
		DateCompleted: now,
	})

	if i+1 < next.TotalPages() {
		next.PageBreakdown[i+1].Unlocked = true
	}
	return next, nil
}

// ApplyRevised marks a memorized page as revised. Revising an already
// revised page returns an unchanged copy.
func ApplyRevised(plan *domain.Plan, pageNumber int, now time.Time) (*domain.Plan, error) {
	idx := plan.PageIndex(pageNumber)
	if idx < 0 {
		return nil, fmt.Errorf("page %d: %w", pageNumber, domain.ErrPageNotFound)
	}
	if !plan.IncludeRevision {
		return nil, domain.NewValidationError("include_revision", "revision is disabled for this plan")
	}

	next := plan.Clone()
	pg := &next.PageBreakdown[idx]
	if pg.Revised {
		return next, nil
	}
	if !pg.Completed {
		return nil, domain.NewValidationError("page_number", "page must be memorized before it can be revised")
	}

	pg.Revised = true
	next.Progress.Revised = append(next.Progress.Revised, domain.ProgressEntry{
		PageNumber:    pg.PageNumber,
		DateCompleted: now,
	})
	return next, nil
}
