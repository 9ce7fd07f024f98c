package domain

import "fmt"

// CheckInvariants verifies the structural rules of a plan: sequential page
// numbers, the sequential unlock gate, revision only on memorized pages, and
// progress logs that agree with the page flags. All violations are collected
// into a single *ValidationError.
func (p *Plan) CheckInvariants() error {
	var errs []FieldError

	if p.ContentID < MinSurah || p.ContentID > MaxSurah {
		errs = append(errs, FieldError{Field: "content_id", Message: fmt.Sprintf("must be between %d and %d", MinSurah, MaxSurah)})
	}
	if !p.Pace.IsValid() {
		errs = append(errs, FieldError{Field: "pace", Message: "must be SHORT, MEDIUM, or LONG"})
	}
	if len(p.PageBreakdown) == 0 {
		errs = append(errs, FieldError{Field: "page_breakdown", Message: "must not be empty"})
	}

	open := 0
	for i, pg := range p.PageBreakdown {
		field := fmt.Sprintf("page_breakdown[%d]", i)

		if pg.PageNumber != i+1 {
			errs = append(errs, FieldError{Field: field, Message: fmt.Sprintf("page_number must be %d", i+1)})
		}
		if pg.Unlocked && !pg.Completed {
			open++
		}
		if pg.Completed && !pg.Unlocked {
			errs = append(errs, FieldError{Field: field, Message: "completed page must be unlocked"})
		}
		if i == 0 && !pg.Unlocked {
			errs = append(errs, FieldError{Field: field, Message: "first page must be unlocked"})
		}
		if i > 0 && pg.Unlocked && !p.PageBreakdown[i-1].Completed {
			errs = append(errs, FieldError{Field: field, Message: "unlocked before previous page was completed"})
		}
		if pg.Revised && !pg.Completed {
			errs = append(errs, FieldError{Field: field, Message: "revised page must be completed"})
		}
		if pg.Revised && !p.IncludeRevision {
			errs = append(errs, FieldError{Field: field, Message: "revision is disabled for this plan"})
		}
	}

	if open > 1 {
		errs = append(errs, FieldError{Field: "page_breakdown", Message: "more than one current page"})
	}
	if got, want := len(p.Progress.Memorized), p.CompletedCount(); got != want {
		errs = append(errs, FieldError{Field: "progress.memorized", Message: fmt.Sprintf("has %d entries, want %d", got, want)})
	}
	if got, want := len(p.Progress.Revised), p.RevisedCount(); got != want {
		errs = append(errs, FieldError{Field: "progress.revised", Message: fmt.Sprintf("has %d entries, want %d", got, want)})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}
