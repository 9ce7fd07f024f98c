package planner

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/hifz-planner/internal/domain"
	"sync"
)

var _ planRepo = &planRepoMock{}

type planRepoMock struct {
	CreateFunc               func(ctx context.Context, plan *domain.Plan) (*domain.Plan, error)
	DeleteByUserIDFunc       func(ctx context.Context, userID uuid.UUID) error
	GetByUserIDFunc          func(ctx context.Context, userID uuid.UUID) (*domain.Plan, error)
	GetByUserIDForUpdateFunc func(ctx context.Context, userID uuid.UUID) (*domain.Plan, error)
	UpdateFunc               func(ctx context.Context, plan *domain.Plan) (*domain.Plan, error)

	calls struct {
		Create []struct {
			Ctx  context.Context
			Plan *domain.Plan
		}
		DeleteByUserID []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		GetByUserID []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		GetByUserIDForUpdate []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Update []struct {
			Ctx  context.Context
			Plan *domain.Plan
		}
	}
	lockCreate               sync.RWMutex
	lockDeleteByUserID       sync.RWMutex
	lockGetByUserID          sync.RWMutex
	lockGetByUserIDForUpdate sync.RWMutex
	lockUpdate               sync.RWMutex
}

func (mock *planRepoMock) Create(ctx context.Context, plan *domain.Plan) (*domain.Plan, error) {
	if mock.CreateFunc == nil {
		panic("planRepoMock.CreateFunc: method is nil but planRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Plan *domain.Plan
	}{Ctx: ctx, Plan: plan}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, plan)
}

func (mock *planRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Plan *domain.Plan
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *planRepoMock) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	if mock.DeleteByUserIDFunc == nil {
		panic("planRepoMock.DeleteByUserIDFunc: method is nil but planRepo.DeleteByUserID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockDeleteByUserID.Lock()
	mock.calls.DeleteByUserID = append(mock.calls.DeleteByUserID, callInfo)
	mock.lockDeleteByUserID.Unlock()
	return mock.DeleteByUserIDFunc(ctx, userID)
}

func (mock *planRepoMock) DeleteByUserIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockDeleteByUserID.RLock()
	calls := mock.calls.DeleteByUserID
	mock.lockDeleteByUserID.RUnlock()
	return calls
}

func (mock *planRepoMock) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Plan, error) {
	if mock.GetByUserIDFunc == nil {
		panic("planRepoMock.GetByUserIDFunc: method is nil but planRepo.GetByUserID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetByUserID.Lock()
	mock.calls.GetByUserID = append(mock.calls.GetByUserID, callInfo)
	mock.lockGetByUserID.Unlock()
	return mock.GetByUserIDFunc(ctx, userID)
}

func (mock *planRepoMock) GetByUserIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetByUserID.RLock()
	calls := mock.calls.GetByUserID
	mock.lockGetByUserID.RUnlock()
	return calls
}

func (mock *planRepoMock) GetByUserIDForUpdate(ctx context.Context, userID uuid.UUID) (*domain.Plan, error) {
	if mock.GetByUserIDForUpdateFunc == nil {
		panic("planRepoMock.GetByUserIDForUpdateFunc: method is nil but planRepo.GetByUserIDForUpdate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetByUserIDForUpdate.Lock()
	mock.calls.GetByUserIDForUpdate = append(mock.calls.GetByUserIDForUpdate, callInfo)
	mock.lockGetByUserIDForUpdate.Unlock()
	return mock.GetByUserIDForUpdateFunc(ctx, userID)
}

func (mock *planRepoMock) GetByUserIDForUpdateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetByUserIDForUpdate.RLock()
	calls := mock.calls.GetByUserIDForUpdate
	mock.lockGetByUserIDForUpdate.RUnlock()
	return calls
}

func (mock *planRepoMock) Update(ctx context.Context, plan *domain.Plan) (*domain.Plan, error) {
	if mock.UpdateFunc == nil {
		panic("planRepoMock.UpdateFunc: method is nil but planRepo.Update was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Plan *domain.Plan
	}{Ctx: ctx, Plan: plan}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, plan)
}

func (mock *planRepoMock) UpdateCalls() []struct {
	Ctx  context.Context
	Plan *domain.Plan
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
