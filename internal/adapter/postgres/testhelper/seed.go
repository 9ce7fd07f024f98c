package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/hifz-planner/internal/domain"
)

// NewPlan returns an unsaved three page plan for a fresh user. The first
// page is unlocked and nothing is completed.
func NewPlan() *domain.Plan {
	start := time.Now().UTC().Truncate(24 * time.Hour)
	return &domain.Plan{
		UserID:          uuid.New(),
		ContentID:       67,
		Pace:            domain.PaceMedium,
		IncludeRevision: true,
		StartDate:       start,
		CompletionDate:  start.AddDate(0, 0, 6),
		PageBreakdown: []domain.Page{
			{PageNumber: 1, GlobalPage: 562, StartSurah: 67, StartAyah: 1, EndSurah: 67, EndAyah: 12, Unlocked: true},
			{PageNumber: 2, GlobalPage: 563, StartSurah: 67, StartAyah: 13, EndSurah: 67, EndAyah: 26},
			{PageNumber: 3, GlobalPage: 564, StartSurah: 67, StartAyah: 27, EndSurah: 67, EndAyah: 30},
		},
		ContentDetails: domain.ContentDetails{
			Number:         67,
			Name:           "سُورَةُ المُلْكِ",
			EnglishName:    "Al-Mulk",
			TranslatedName: "The Sovereignty",
			AyahCount:      30,
			RevelationType: "Meccan",
		},
	}
}

// SeedPlan inserts NewPlan directly and returns it with its ID set.
func SeedPlan(t *testing.T, pool *pgxpool.Pool) *domain.Plan {
	t.Helper()

	p := NewPlan()
	p.ID = uuid.New()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO memorization_plans
		   (id, user_id, content_id, pace, include_revision, start_date, completion_date, page_breakdown, content_details)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, '{}')`,
		p.ID, p.UserID, p.ContentID, string(p.Pace), p.IncludeRevision, p.StartDate, p.CompletionDate,
		`[{"page_number":1,"global_page":562,"start_surah":67,"start_ayah":1,"end_surah":67,"end_ayah":12,"unlocked":true},
		  {"page_number":2,"global_page":563,"start_surah":67,"start_ayah":13,"end_surah":67,"end_ayah":26},
		  {"page_number":3,"global_page":564,"start_surah":67,"start_ayah":27,"end_surah":67,"end_ayah":30}]`,
	)
	if err != nil {
		t.Fatalf("SeedPlan: %v", err)
	}

	p.ContentDetails = domain.ContentDetails{}
	return p
}
