package planner

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/hifz-planner/internal/domain"
	"github.com/heartmarshall/hifz-planner/internal/service/planner/engine"
	"github.com/heartmarshall/hifz-planner/pkg/ctxutil"
)

// CreatePlan paginates a surah, schedules it at the chosen pace and stores
// it as the user's active plan.
func (s *Service) CreatePlan(ctx context.Context, input CreatePlanInput) (*domain.Plan, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.plans.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get plan: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("user already has a plan: %w", domain.ErrAlreadyExists)
	}

	var (
		markers []domain.PageMarker
		details *domain.ContentDetails
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		markers, err = s.structure.PageMarkers(gctx)
		if err != nil {
			return fmt.Errorf("load page markers: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		details, err = s.structure.ContentDetails(gctx, input.ContentID)
		if err != nil {
			return fmt.Errorf("load surah %d: %w", input.ContentID, err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	pages, err := engine.BuildPageBreakdown(input.ContentID, markers)
	if err != nil {
		return nil, fmt.Errorf("build page breakdown: %w", err)
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("surah %d: %w", input.ContentID, domain.ErrEmptyBreakdown)
	}
	engine.ResolveOpenEnds(pages, details.AyahCount)

	pace, _ := domain.PaceByKey(input.Pace)
	start := engine.StartOfDay(s.now())

	sched, err := engine.Schedule(len(pages), pace.PagesPerDay, start)
	if err != nil {
		return nil, fmt.Errorf("schedule: %w", err)
	}

	plan := &domain.Plan{
		UserID:          userID,
		ContentID:       input.ContentID,
		Pace:            pace.Key,
		IncludeRevision: input.IncludeRevision,
		StartDate:       start,
		CompletionDate:  sched.CompletionDate,
		PageBreakdown:   pages,
		ContentDetails:  *details,
	}

	created, err := s.plans.Create(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("create plan: %w", err)
	}

	s.log.InfoContext(ctx, "plan created",
		"user_id", userID,
		"plan_id", created.ID,
		"content_id", created.ContentID,
		"pace", created.Pace,
		"total_pages", created.TotalPages(),
		"total_days", sched.TotalDays,
	)

	return created, nil
}
