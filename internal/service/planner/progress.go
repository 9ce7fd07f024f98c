package planner

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/heartmarshall/hifz-planner/internal/domain"
	"github.com/heartmarshall/hifz-planner/internal/service/planner/engine"
	"github.com/heartmarshall/hifz-planner/pkg/ctxutil"
)

// MarkCurrentPageMemorized completes the current page and unlocks the next.
// The stored plan changes only if the whole transition is saved.
func (s *Service) MarkCurrentPageMemorized(ctx context.Context) Result {
	var pageNumber int

	saved, err := s.mutate(ctx, func(plan *domain.Plan) (*domain.Plan, error) {
		if i := plan.CurrentPageIndex(); i < plan.TotalPages() {
			pageNumber = plan.PageBreakdown[i].PageNumber
		}
		return engine.ApplyMemorized(plan, s.now())
	})
	if err != nil {
		return s.failure(ctx, "mark memorized", err)
	}

	s.log.InfoContext(ctx, "page memorized", "user_id", userIDOrNil(ctx), "plan_id", saved.ID, "page", pageNumber)

	return Result{
		Success:    true,
		Message:    fmt.Sprintf("Page %d memorized.", pageNumber),
		Assignment: engine.DeriveAssignment(saved),
		Plan:       saved,
	}
}

// MarkPageRevised records a revision of the page with the given plan-local
// number. Revising a page twice is a no-op.
func (s *Service) MarkPageRevised(ctx context.Context, pageNumber int) Result {
	saved, err := s.mutate(ctx, func(plan *domain.Plan) (*domain.Plan, error) {
		return engine.ApplyRevised(plan, pageNumber, s.now())
	})
	if err != nil {
		return s.failure(ctx, "mark revised", err)
	}

	s.log.InfoContext(ctx, "page revised", "user_id", userIDOrNil(ctx), "plan_id", saved.ID, "page", pageNumber)

	return Result{
		Success:    true,
		Message:    fmt.Sprintf("Page %d revised.", pageNumber),
		Assignment: engine.DeriveAssignment(saved),
		Plan:       saved,
	}
}

// mutate locks the user's plan, applies fn to it and saves the result in one
// transaction.
func (s *Service) mutate(ctx context.Context, fn func(*domain.Plan) (*domain.Plan, error)) (*domain.Plan, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var saved *domain.Plan

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		plan, err := s.plans.GetByUserIDForUpdate(txCtx, userID)
		if err != nil {
			return fmt.Errorf("get plan: %w", err)
		}

		next, err := fn(plan)
		if err != nil {
			return err
		}

		saved, err = s.plans.Update(txCtx, next)
		if err != nil {
			return fmt.Errorf("update plan: %w", saveError{err})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// saveError marks a failure to persist a transition.
type saveError struct{ err error }

func (e saveError) Error() string { return e.err.Error() }
func (e saveError) Unwrap() error { return e.err }

// failure converts an error into a failed Result. Expected conditions are
// logged at info; anything else is an error with the generic save message.
func (s *Service) failure(ctx context.Context, op string, err error) Result {
	r := Result{Err: err}

	var saveErr saveError
	switch {
	case errors.As(err, &saveErr):
		r.Message = msgSaveFailed
	case errors.Is(err, domain.ErrUnauthorized):
		r.Message = msgSignIn
	case errors.Is(err, domain.ErrPageNotFound):
		r.Message = msgPageNotFound
	case errors.Is(err, domain.ErrNotFound):
		r.Message = msgNoPlan
	case errors.Is(err, domain.ErrPlanComplete):
		r.Message = msgPlanComplete
	case errors.Is(err, domain.ErrRevisionPending):
		r.Message = msgRevisionPending
	case errors.Is(err, domain.ErrValidation):
		r.Message = validationMessage(err)
	default:
		r.Message = msgSaveFailed
	}

	if r.Message == msgSaveFailed {
		s.log.ErrorContext(ctx, op+" failed", "user_id", userIDOrNil(ctx), "error", err)
	} else {
		s.log.InfoContext(ctx, op+" rejected", "user_id", userIDOrNil(ctx), "reason", err.Error())
	}
	return r
}

func validationMessage(err error) string {
	var verr *domain.ValidationError
	if errors.As(err, &verr) && len(verr.Errors) > 0 {
		return verr.Errors[0].Message
	}
	return err.Error()
}

// userIDOrNil is used for log attributes only.
func userIDOrNil(ctx context.Context) uuid.UUID {
	id, _ := ctxutil.UserIDFromCtx(ctx)
	return id
}
