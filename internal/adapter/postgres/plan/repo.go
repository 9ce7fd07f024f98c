// Package plan implements the memorization plan repository using PostgreSQL.
// Page breakdown, progress logs and content details are stored as JSONB and
// converted through the json structs in json.go.
package plan

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/hifz-planner/internal/adapter/postgres"
	"github.com/heartmarshall/hifz-planner/internal/domain"
)

const table = "memorization_plans"

var columns = []string{
	"id", "user_id", "content_id", "pace", "include_revision",
	"start_date", "completion_date",
	"page_breakdown", "progress", "content_details",
	"created_at", "updated_at",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides plan persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new plan repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByUserID returns the user's plan.
// Returns domain.ErrNotFound if the user has none.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Plan, error) {
	return r.getByUserID(ctx, userID, false)
}

// GetByUserIDForUpdate is GetByUserID with a row lock held until the
// surrounding transaction ends.
func (r *Repo) GetByUserIDForUpdate(ctx context.Context, userID uuid.UUID) (*domain.Plan, error) {
	return r.getByUserID(ctx, userID, true)
}

func (r *Repo) getByUserID(ctx context.Context, userID uuid.UUID, forUpdate bool) (*domain.Plan, error) {
	query := psql.Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID})
	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select plan: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...)

	plan, err := scanPlan(row)
	if err != nil {
		return nil, postgres.MapError(err, "plan for user", userID)
	}
	return plan, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new plan and returns the stored row. An ID is assigned
// when the plan has none. A second plan for the same user results in
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, plan *domain.Plan) (*domain.Plan, error) {
	id := plan.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	breakdown, progress, details, err := marshalPlan(plan)
	if err != nil {
		return nil, fmt.Errorf("plan %s: %w", id, err)
	}

	sql, args, err := psql.Insert(table).
		Columns(
			"id", "user_id", "content_id", "pace", "include_revision",
			"start_date", "completion_date",
			"page_breakdown", "progress", "content_details",
		).
		Values(
			id,
			plan.UserID,
			plan.ContentID,
			string(plan.Pace),
			plan.IncludeRevision,
			plan.StartDate.UTC().Truncate(time.Microsecond),
			plan.CompletionDate.UTC().Truncate(time.Microsecond),
			breakdown,
			progress,
			details,
		).
		Suffix("RETURNING " + returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert plan: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...)

	created, err := scanPlan(row)
	if err != nil {
		return nil, postgres.MapError(err, "plan", id)
	}
	return created, nil
}

// Update stores the page flags and progress logs of an existing plan.
// Settings fixed at creation are never written.
// Returns domain.ErrNotFound if the plan does not exist for its user.
func (r *Repo) Update(ctx context.Context, plan *domain.Plan) (*domain.Plan, error) {
	breakdown, progress, _, err := marshalPlan(plan)
	if err != nil {
		return nil, fmt.Errorf("plan %s: %w", plan.ID, err)
	}

	sql, args, err := psql.Update(table).
		Set("page_breakdown", breakdown).
		Set("progress", progress).
		Where(sq.Eq{"id": plan.ID}).
		Where(sq.Eq{"user_id": plan.UserID}).
		Suffix("RETURNING " + returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update plan: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...)

	updated, err := scanPlan(row)
	if err != nil {
		return nil, postgres.MapError(err, "plan", plan.ID)
	}
	return updated, nil
}

// DeleteByUserID hard-deletes the user's plan.
// Returns domain.ErrNotFound if the user has none.
func (r *Repo) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	sql, args, err := psql.Delete(table).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete plan: %w", err)
	}

	ct, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "plan for user", userID)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("plan for user %s: %w", userID, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func returning() string {
	out := columns[0]
	for _, c := range columns[1:] {
		out += ", " + c
	}
	return out
}

func scanPlan(row pgx.Row) (*domain.Plan, error) {
	var (
		p                            domain.Plan
		pace                         string
		breakdown, progress, details []byte
	)

	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.ContentID,
		&pace,
		&p.IncludeRevision,
		&p.StartDate,
		&p.CompletionDate,
		&breakdown,
		&progress,
		&details,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Pace = domain.PaceKey(pace)

	if err := unmarshalPlan(&p, breakdown, progress, details); err != nil {
		return nil, fmt.Errorf("plan %s: %w", p.ID, err)
	}
	return &p, nil
}
