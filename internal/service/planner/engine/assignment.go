package engine

import (
	"math"

	"github.com/heartmarshall/hifz-planner/internal/domain"
)

// DeriveAssignment computes today's task from the page flags alone.
//
// While revision is enabled, the oldest unrevised page before the current
// one blocks new memorization.
func DeriveAssignment(plan *domain.Plan) domain.Assignment {
	total := plan.TotalPages()
	i := plan.CurrentPageIndex()
	if i >= total {
		return domain.Assignment{Kind: domain.AssignmentPlanComplete, ProgressPercent: 100}
	}

	percent := progressPercent(i, total)

	if plan.IncludeRevision {
		for j := 0; j < i; j++ {
			if !plan.PageBreakdown[j].Revised {
				return domain.Assignment{
					Kind:            domain.AssignmentRevisionRequired,
					RevisionPage:    pageRef(plan, j),
					UpcomingPage:    pageRef(plan, i),
					ProgressPercent: percent,
				}
			}
		}
	}

	return domain.Assignment{
		Kind:            domain.AssignmentMemorizeNext,
		Page:            pageRef(plan, i),
		ProgressPercent: percent,
	}
}

func progressPercent(done, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}

// pageRef returns a copy so the assignment never aliases the plan.
func pageRef(plan *domain.Plan, i int) *domain.Page {
	pg := plan.PageBreakdown[i]
	return &pg
}
