package planner

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/heartmarshall/hifz-planner/internal/domain"
	"github.com/heartmarshall/hifz-planner/pkg/ctxutil"
)

func TestService_MarkCurrentPageMemorized_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	repo := memoryRepo(storedPlan(t, userID, false))
	tx := passthroughTx()
	svc := newTestService(repo, nil, tx)
	ctx := ctxutil.WithUserID(context.Background(), userID)

	r := svc.MarkCurrentPageMemorized(ctx)

	if !r.Success {
		t.Fatalf("Success = false: %s (%v)", r.Message, r.Err)
	}
	if r.Message != "Page 1 memorized." {
		t.Errorf("Message = %q", r.Message)
	}
	if r.Assignment.Kind != domain.AssignmentMemorizeNext || r.Assignment.Page.PageNumber != 2 {
		t.Errorf("assignment = %+v, want MEMORIZE_NEXT page 2", r.Assignment)
	}
	if !r.Plan.PageBreakdown[0].Completed || !r.Plan.PageBreakdown[1].Unlocked {
		t.Error("plan in result does not reflect the transition")
	}
	if len(tx.RunInTxCalls()) != 1 {
		t.Errorf("RunInTx calls = %d, want 1", len(tx.RunInTxCalls()))
	}
	if len(repo.GetByUserIDForUpdateCalls()) != 1 {
		t.Errorf("GetByUserIDForUpdate calls = %d, want 1", len(repo.GetByUserIDForUpdateCalls()))
	}
	if got := repo.UpdateCalls()[0].Plan.Progress.Memorized[0].DateCompleted; !got.Equal(fixedNow) {
		t.Errorf("DateCompleted = %v, want %v", got, fixedNow)
	}
}

func TestService_MarkCurrentPageMemorized_RevisionPending(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	repo := memoryRepo(storedPlan(t, userID, true))
	svc := newTestService(repo, nil, passthroughTx())
	ctx := ctxutil.WithUserID(context.Background(), userID)

	if r := svc.MarkCurrentPageMemorized(ctx); !r.Success {
		t.Fatalf("first memorize failed: %s", r.Message)
	}

	r := svc.MarkCurrentPageMemorized(ctx)

	if r.Success {
		t.Fatal("Success = true, want false")
	}
	if !errors.Is(r.Err, domain.ErrRevisionPending) {
		t.Errorf("Err = %v, want ErrRevisionPending", r.Err)
	}
	if r.Message != msgRevisionPending {
		t.Errorf("Message = %q", r.Message)
	}
	if len(repo.UpdateCalls()) != 1 {
		t.Errorf("Update calls = %d, want 1", len(repo.UpdateCalls()))
	}
}

func TestService_MarkCurrentPageMemorized_PlanComplete(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	svc := newTestService(memoryRepo(storedPlan(t, userID, false)), nil, passthroughTx())
	ctx := ctxutil.WithUserID(context.Background(), userID)

	for i := 0; i < 3; i++ {
		if r := svc.MarkCurrentPageMemorized(ctx); !r.Success {
			t.Fatalf("memorize %d failed: %s", i+1, r.Message)
		}
	}

	r := svc.MarkCurrentPageMemorized(ctx)
	if r.Success || !errors.Is(r.Err, domain.ErrPlanComplete) || r.Message != msgPlanComplete {
		t.Errorf("result = %+v, want plan complete failure", r)
	}
}

func TestService_MarkCurrentPageMemorized_SaveFailureKeepsStoredPlan(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	stored := storedPlan(t, userID, false)
	repo := &planRepoMock{
		GetByUserIDForUpdateFunc: func(ctx context.Context, uid uuid.UUID) (*domain.Plan, error) {
			return stored, nil
		},
		UpdateFunc: func(ctx context.Context, p *domain.Plan) (*domain.Plan, error) {
			return nil, errors.New("connection reset")
		},
	}
	svc := newTestService(repo, nil, passthroughTx())
	ctx := ctxutil.WithUserID(context.Background(), userID)

	r := svc.MarkCurrentPageMemorized(ctx)

	if r.Success {
		t.Fatal("Success = true, want false")
	}
	if r.Message != msgSaveFailed {
		t.Errorf("Message = %q, want %q", r.Message, msgSaveFailed)
	}
	if r.Plan != nil {
		t.Error("failed result should not carry a plan")
	}
	if stored.PageBreakdown[0].Completed || len(stored.Progress.Memorized) != 0 {
		t.Error("stored plan was mutated by a failed save")
	}
}

func TestService_MarkCurrentPageMemorized_NoPlan(t *testing.T) {
	t.Parallel()

	svc := newTestService(memoryRepo(nil), nil, passthroughTx())
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	r := svc.MarkCurrentPageMemorized(ctx)
	if r.Success || r.Message != msgNoPlan || !errors.Is(r.Err, domain.ErrNotFound) {
		t.Errorf("result = %+v, want no plan failure", r)
	}
}

func TestService_MarkCurrentPageMemorized_Unauthorized(t *testing.T) {
	t.Parallel()

	tx := passthroughTx()
	svc := newTestService(&planRepoMock{}, nil, tx)

	r := svc.MarkCurrentPageMemorized(context.Background())
	if r.Success || !errors.Is(r.Err, domain.ErrUnauthorized) || r.Message != msgSignIn {
		t.Errorf("result = %+v, want unauthorized failure", r)
	}
	if len(tx.RunInTxCalls()) != 0 {
		t.Error("no transaction should start without a user")
	}
}

func TestService_MarkPageRevised_PageNotFound(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	repo := memoryRepo(storedPlan(t, userID, true))
	svc := newTestService(repo, nil, passthroughTx())
	ctx := ctxutil.WithUserID(context.Background(), userID)

	r := svc.MarkPageRevised(ctx, 42)

	if r.Success {
		t.Fatal("Success = true, want false")
	}
	if !errors.Is(r.Err, domain.ErrPageNotFound) || r.Message != msgPageNotFound {
		t.Errorf("result = %+v, want page not found", r)
	}
	if len(repo.UpdateCalls()) != 0 {
		t.Error("Update should not be called")
	}
}

func TestService_MarkPageRevised_NotMemorized(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	svc := newTestService(memoryRepo(storedPlan(t, userID, true)), nil, passthroughTx())
	ctx := ctxutil.WithUserID(context.Background(), userID)

	r := svc.MarkPageRevised(ctx, 1)
	if r.Success || !errors.Is(r.Err, domain.ErrValidation) {
		t.Errorf("result = %+v, want validation failure", r)
	}
	if r.Message == "" || r.Message == msgSaveFailed {
		t.Errorf("Message = %q, want a specific reason", r.Message)
	}
}

func TestService_ThreePagePlan_EndToEnd(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	svc := newTestService(memoryRepo(storedPlan(t, userID, true)), nil, passthroughTx())
	ctx := ctxutil.WithUserID(context.Background(), userID)

	expect := func(r Result, kind domain.AssignmentKind) domain.Assignment {
		t.Helper()
		if !r.Success {
			t.Fatalf("operation failed: %s (%v)", r.Message, r.Err)
		}
		if r.Assignment.Kind != kind {
			t.Fatalf("assignment = %s, want %s", r.Assignment.Kind, kind)
		}
		return r.Assignment
	}

	a, err := svc.GetTodaysAssignment(ctx)
	if err != nil {
		t.Fatalf("GetTodaysAssignment: %v", err)
	}
	if a.Kind != domain.AssignmentMemorizeNext || a.Page.PageNumber != 1 || a.ProgressPercent != 0 {
		t.Fatalf("initial assignment = %+v", a)
	}

	a = expect(svc.MarkCurrentPageMemorized(ctx), domain.AssignmentRevisionRequired)
	if a.RevisionPage.PageNumber != 1 {
		t.Fatalf("revision page = %d, want 1", a.RevisionPage.PageNumber)
	}

	a = expect(svc.MarkPageRevised(ctx, 1), domain.AssignmentMemorizeNext)
	if a.Page.PageNumber != 2 || a.ProgressPercent != 33 {
		t.Fatalf("assignment = page %d at %d%%, want page 2 at 33%%", a.Page.PageNumber, a.ProgressPercent)
	}

	a = expect(svc.MarkCurrentPageMemorized(ctx), domain.AssignmentRevisionRequired)
	if a.RevisionPage.PageNumber != 2 || a.UpcomingPage.PageNumber != 3 {
		t.Fatalf("revise %d upcoming %d, want 2 and 3", a.RevisionPage.PageNumber, a.UpcomingPage.PageNumber)
	}

	expect(svc.MarkPageRevised(ctx, 2), domain.AssignmentMemorizeNext)
	expect(svc.MarkCurrentPageMemorized(ctx), domain.AssignmentPlanComplete)

	a, err = svc.GetTodaysAssignment(ctx)
	if err != nil || a.Kind != domain.AssignmentPlanComplete {
		t.Fatalf("final assignment = %+v, %v; want PLAN_COMPLETE", a, err)
	}

	plan, err := svc.GetCurrentPlan(ctx)
	if err != nil {
		t.Fatalf("GetCurrentPlan: %v", err)
	}
	if err := plan.CheckInvariants(); err != nil {
		t.Errorf("final plan violates invariants: %v", err)
	}
}
