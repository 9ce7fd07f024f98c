package planner

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/hifz-planner/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type planRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Plan, error)
	GetByUserIDForUpdate(ctx context.Context, userID uuid.UUID) (*domain.Plan, error)
	Create(ctx context.Context, plan *domain.Plan) (*domain.Plan, error)
	Update(ctx context.Context, plan *domain.Plan) (*domain.Plan, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

type structureProvider interface {
	PageMarkers(ctx context.Context) ([]domain.PageMarker, error)
	ContentDetails(ctx context.Context, contentID int) (*domain.ContentDetails, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service owns the memorization plan of each user: creation, progress
// transitions and the derived daily assignment.
type Service struct {
	plans     planRepo
	structure structureProvider
	tx        txManager
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new planner service.
func NewService(
	log *slog.Logger,
	plans planRepo,
	structure structureProvider,
	tx txManager,
) *Service {
	return &Service{
		plans:     plans,
		structure: structure,
		tx:        tx,
		log:       log.With("service", "planner"),
		now:       time.Now,
	}
}

// ListPaces returns the pace presets a plan can be created with.
func (s *Service) ListPaces() []domain.Pace {
	return domain.Paces()
}
