package planner

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/hifz-planner/internal/domain"
	"github.com/heartmarshall/hifz-planner/internal/service/planner/engine"
	"github.com/heartmarshall/hifz-planner/pkg/ctxutil"
)

// ReplacePlan stores a full plan sent back by the client. Only page flags
// and progress logs may change, and only forward: settings fixed at creation
// and already recorded progress must match the stored plan. New log entries
// are replayed through the same transitions as MarkCurrentPageMemorized and
// MarkPageRevised, so the revision gate applies here too.
func (s *Service) ReplacePlan(ctx context.Context, input ReplacePlanInput) (*domain.Plan, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var saved *domain.Plan

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.plans.GetByUserIDForUpdate(txCtx, userID)
		if err != nil {
			return fmt.Errorf("get plan: %w", err)
		}
		if current.ID != input.PlanID {
			return fmt.Errorf("plan %s: %w", input.PlanID, domain.ErrNotFound)
		}

		if err := checkReplacement(current, input.Plan); err != nil {
			return err
		}

		next, err := replayProgress(current, input.Plan)
		if err != nil {
			return err
		}

		if err := next.CheckInvariants(); err != nil {
			return err
		}

		saved, err = s.plans.Update(txCtx, next)
		if err != nil {
			return fmt.Errorf("update plan: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "plan replaced",
		"user_id", userID,
		"plan_id", saved.ID,
		"memorized", saved.CompletedCount(),
		"revised", saved.RevisedCount(),
	)

	return saved, nil
}

// checkReplacement compares an incoming plan against the stored one.
func checkReplacement(current, incoming *domain.Plan) error {
	var errs []domain.FieldError

	if incoming.ContentID != current.ContentID {
		errs = append(errs, domain.FieldError{Field: "content_id", Message: "cannot be changed"})
	}
	if incoming.Pace != current.Pace {
		errs = append(errs, domain.FieldError{Field: "pace", Message: "cannot be changed"})
	}
	if incoming.IncludeRevision != current.IncludeRevision {
		errs = append(errs, domain.FieldError{Field: "include_revision", Message: "cannot be changed"})
	}
	if !incoming.StartDate.Equal(current.StartDate) {
		errs = append(errs, domain.FieldError{Field: "start_date", Message: "cannot be changed"})
	}
	if !incoming.CompletionDate.Equal(current.CompletionDate) {
		errs = append(errs, domain.FieldError{Field: "completion_date", Message: "cannot be changed"})
	}

	if len(incoming.PageBreakdown) != len(current.PageBreakdown) {
		errs = append(errs, domain.FieldError{
			Field:   "page_breakdown",
			Message: fmt.Sprintf("must have %d pages", len(current.PageBreakdown)),
		})
		return domain.NewValidationErrors(errs)
	}

	for i := range current.PageBreakdown {
		cur, in := current.PageBreakdown[i], incoming.PageBreakdown[i]
		field := fmt.Sprintf("page_breakdown[%d]", i)

		if !sameBoundaries(cur, in) {
			errs = append(errs, domain.FieldError{Field: field, Message: "page boundaries cannot be changed"})
		}
		if cur.Completed && !in.Completed {
			errs = append(errs, domain.FieldError{Field: field, Message: "completed cannot be reverted"})
		}
		if cur.Revised && !in.Revised {
			errs = append(errs, domain.FieldError{Field: field, Message: "revised cannot be reverted"})
		}
	}

	if !isPrefix(current.Progress.Memorized, incoming.Progress.Memorized) {
		errs = append(errs, domain.FieldError{Field: "progress.memorized", Message: "recorded entries cannot be changed"})
	}
	if !isPrefix(current.Progress.Revised, incoming.Progress.Revised) {
		errs = append(errs, domain.FieldError{Field: "progress.revised", Message: "recorded entries cannot be changed"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func sameBoundaries(a, b domain.Page) bool {
	return a.PageNumber == b.PageNumber &&
		a.GlobalPage == b.GlobalPage &&
		a.StartSurah == b.StartSurah &&
		a.StartAyah == b.StartAyah &&
		a.EndSurah == b.EndSurah &&
		a.EndAyah == b.EndAyah
}

// isPrefix reports whether every entry of old appears unchanged at the start
// of updated.
func isPrefix(old, updated []domain.ProgressEntry) bool {
	if len(updated) < len(old) {
		return false
	}
	for i := range old {
		if old[i].PageNumber != updated[i].PageNumber || !old[i].DateCompleted.Equal(updated[i].DateCompleted) {
			return false
		}
	}
	return true
}

// loggedEntry is a progress entry added by a replacement, with its index in
// the full incoming log.
type loggedEntry struct {
	index int
	entry domain.ProgressEntry
}

// replayProgress applies the entries incoming appends to current's logs, in
// log order, using the engine transitions. The page flags it produces must
// match the incoming flags exactly. Both inputs have already passed
// checkReplacement.
func replayProgress(current, incoming *domain.Plan) (*domain.Plan, error) {
	var completed, revised []int
	for i := range current.PageBreakdown {
		cur, in := current.PageBreakdown[i], incoming.PageBreakdown[i]
		if in.Completed && !cur.Completed {
			completed = append(completed, cur.PageNumber)
		}
		if in.Revised && !cur.Revised {
			revised = append(revised, cur.PageNumber)
		}
	}

	var errs []domain.FieldError
	memorized, fes := addedEntries("progress.memorized", current.Progress.Memorized, incoming.Progress.Memorized, completed)
	errs = append(errs, fes...)
	revisions, fes := addedEntries("progress.revised", current.Progress.Revised, incoming.Progress.Revised, revised)
	errs = append(errs, fes...)
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	plan := current.Clone()
	for len(memorized) > 0 || len(revisions) > 0 {
		progressed := false

		// Revisions go first so they can clear the gate for the next page.
		var pending []loggedEntry
		for _, le := range revisions {
			i := plan.PageIndex(le.entry.PageNumber)
			if !plan.PageBreakdown[i].Completed {
				pending = append(pending, le)
				continue
			}
			next, err := engine.ApplyRevised(plan, le.entry.PageNumber, le.entry.DateCompleted)
			if err != nil {
				return nil, err
			}
			plan, progressed = next, true
		}
		revisions = pending

		if len(memorized) > 0 {
			le := memorized[0]
			if err := memorizeNext(plan, le); err != nil {
				return nil, err
			}
			next, err := engine.ApplyMemorized(plan, le.entry.DateCompleted)
			if err != nil {
				return nil, gateError(plan, le, err)
			}
			plan, memorized, progressed = next, memorized[1:], true
		}

		if !progressed {
			le := revisions[0]
			return nil, domain.NewValidationError(
				fmt.Sprintf("progress.revised[%d]", le.index),
				fmt.Sprintf("page %d must be memorized before it can be revised", le.entry.PageNumber),
			)
		}
	}

	for i := range plan.PageBreakdown {
		if plan.PageBreakdown[i] != incoming.PageBreakdown[i] {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("page_breakdown[%d]", i),
				Message: "flags do not match the progress log",
			})
		}
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	plan.Progress = domain.Progress{
		Memorized: append([]domain.ProgressEntry(nil), incoming.Progress.Memorized...),
		Revised:   append([]domain.ProgressEntry(nil), incoming.Progress.Revised...),
	}
	return plan, nil
}

// addedEntries returns the entries updated appends to old. Each must name a
// distinct page from flagged, and every flagged page needs one.
func addedEntries(field string, old, updated []domain.ProgressEntry, flagged []int) ([]loggedEntry, []domain.FieldError) {
	want := make(map[int]bool, len(flagged))
	for _, n := range flagged {
		want[n] = true
	}

	var (
		out  []loggedEntry
		errs []domain.FieldError
		seen = make(map[int]bool, len(flagged))
	)
	for j, e := range updated[len(old):] {
		idx := len(old) + j
		f := fmt.Sprintf("%s[%d]", field, idx)
		switch {
		case seen[e.PageNumber]:
			errs = append(errs, domain.FieldError{Field: f, Message: fmt.Sprintf("page %d is listed twice", e.PageNumber)})
		case !want[e.PageNumber]:
			errs = append(errs, domain.FieldError{Field: f, Message: fmt.Sprintf("page %d was not newly marked", e.PageNumber)})
		default:
			seen[e.PageNumber] = true
			out = append(out, loggedEntry{index: idx, entry: e})
		}
	}

	for _, n := range flagged {
		if !seen[n] {
			errs = append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("missing entry for page %d", n)})
		}
	}
	return out, errs
}

// memorizeNext checks that le names the page ApplyMemorized would complete.
func memorizeNext(plan *domain.Plan, le loggedEntry) error {
	i := plan.CurrentPageIndex()
	if i < plan.TotalPages() && plan.PageBreakdown[i].PageNumber == le.entry.PageNumber {
		return nil
	}
	return domain.NewValidationError(
		fmt.Sprintf("progress.memorized[%d]", le.index),
		fmt.Sprintf("page %d memorized out of order", le.entry.PageNumber),
	)
}

// gateError reports a memorization blocked by a pending revision against the
// page that was memorized too early.
func gateError(plan *domain.Plan, le loggedEntry, err error) error {
	if !errors.Is(err, domain.ErrRevisionPending) {
		return err
	}
	a := engine.DeriveAssignment(plan)
	return domain.NewValidationError(
		fmt.Sprintf("page_breakdown[%d]", plan.PageIndex(le.entry.PageNumber)),
		fmt.Sprintf("page %d must be revised before page %d is memorized", a.RevisionPage.PageNumber, le.entry.PageNumber),
	)
}
