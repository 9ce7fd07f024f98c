package planner

import (
	"context"
	"github.com/heartmarshall/hifz-planner/internal/domain"
	"sync"
)

var _ structureProvider = &structureProviderMock{}

type structureProviderMock struct {
	ContentDetailsFunc func(ctx context.Context, contentID int) (*domain.ContentDetails, error)
	PageMarkersFunc    func(ctx context.Context) ([]domain.PageMarker, error)

	calls struct {
		ContentDetails []struct {
			Ctx       context.Context
			ContentID int
		}
		PageMarkers []struct {
			Ctx context.Context
		}
	}
	lockContentDetails sync.RWMutex
	lockPageMarkers    sync.RWMutex
}

func (mock *structureProviderMock) ContentDetails(ctx context.Context, contentID int) (*domain.ContentDetails, error) {
	if mock.ContentDetailsFunc == nil {
		panic("structureProviderMock.ContentDetailsFunc: method is nil but structureProvider.ContentDetails was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ContentID int
	}{Ctx: ctx, ContentID: contentID}
	mock.lockContentDetails.Lock()
	mock.calls.ContentDetails = append(mock.calls.ContentDetails, callInfo)
	mock.lockContentDetails.Unlock()
	return mock.ContentDetailsFunc(ctx, contentID)
}

func (mock *structureProviderMock) ContentDetailsCalls() []struct {
	Ctx       context.Context
	ContentID int
} {
	mock.lockContentDetails.RLock()
	calls := mock.calls.ContentDetails
	mock.lockContentDetails.RUnlock()
	return calls
}

func (mock *structureProviderMock) PageMarkers(ctx context.Context) ([]domain.PageMarker, error) {
	if mock.PageMarkersFunc == nil {
		panic("structureProviderMock.PageMarkersFunc: method is nil but structureProvider.PageMarkers was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockPageMarkers.Lock()
	mock.calls.PageMarkers = append(mock.calls.PageMarkers, callInfo)
	mock.lockPageMarkers.Unlock()
	return mock.PageMarkersFunc(ctx)
}

func (mock *structureProviderMock) PageMarkersCalls() []struct {
	Ctx context.Context
} {
	mock.lockPageMarkers.RLock()
	calls := mock.calls.PageMarkers
	mock.lockPageMarkers.RUnlock()
	return calls
}
