package planner

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/hifz-planner/internal/domain"
	"github.com/heartmarshall/hifz-planner/internal/service/planner/engine"
	"github.com/heartmarshall/hifz-planner/pkg/ctxutil"
)

// GetCurrentPlan returns the user's active plan, or nil when there is none.
// Anonymous callers get nil without a repository call.
func (s *Service) GetCurrentPlan(ctx context.Context) (*domain.Plan, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, nil
	}

	plan, err := s.plans.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plan: %w", err)
	}
	return plan, nil
}

// GetTodaysAssignment derives what the user should do today.
func (s *Service) GetTodaysAssignment(ctx context.Context) (domain.Assignment, error) {
	plan, err := s.requirePlan(ctx)
	if err != nil {
		return domain.Assignment{}, err
	}
	return engine.DeriveAssignment(plan), nil
}

// GetPlanStats summarizes progress against the schedule.
func (s *Service) GetPlanStats(ctx context.Context) (domain.PlanStats, error) {
	plan, err := s.requirePlan(ctx)
	if err != nil {
		return domain.PlanStats{}, err
	}
	return engine.Stats(plan, s.now()), nil
}

// ResetPlan deletes the user's plan. A new plan has to be created to start
// over.
func (s *Service) ResetPlan(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.plans.DeleteByUserID(ctx, userID); err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}

	s.log.InfoContext(ctx, "plan reset", "user_id", userID)
	return nil
}

func (s *Service) requirePlan(ctx context.Context) (*domain.Plan, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	plan, err := s.plans.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get plan: %w", err)
	}
	return plan, nil
}
