package domain

import (
	"time"

	"github.com/google/uuid"
)

// MinSurah and MaxSurah bound the content identifier of a plan.
const (
	MinSurah = 1
	MaxSurah = 114
)

// PageMarker is one entry of the structure metadata: the surah and ayah that
// begin a global mushaf page.
type PageMarker struct {
	Surah int
	Ayah  int
}

// ContentDetails is denormalized display metadata about a surah.
type ContentDetails struct {
	Number         int
	Name           string
	EnglishName    string
	TranslatedName string
	AyahCount      int
	RevelationType string
}

// Page is a plan-local unit of study with verse-range boundaries.
// Completed and Revised only ever move from false to true.
type Page struct {
	PageNumber int
	GlobalPage int
	StartSurah int
	StartAyah  int
	EndSurah   int
	EndAyah    int
	Completed  bool
	Revised    bool
	Unlocked   bool
}

// ProgressEntry records when a page went through a phase.
type ProgressEntry struct {
	PageNumber    int
	DateCompleted time.Time
}

// Progress holds the append-only activity logs of a plan. The flags on Page
// are authoritative; these logs only feed history views.
type Progress struct {
	Memorized []ProgressEntry
	Revised   []ProgressEntry
}

// Plan is a user's single active memorization plan.
type Plan struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	ContentID       int
	Pace            PaceKey
	IncludeRevision bool
	StartDate       time.Time
	CompletionDate  time.Time
	PageBreakdown   []Page
	Progress        Progress
	ContentDetails  ContentDetails
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TotalPages returns the fixed length of the page breakdown.
func (p *Plan) TotalPages() int { return len(p.PageBreakdown) }

// CurrentPageIndex returns the index of the first page not yet completed, or
// TotalPages when every page is completed. It is derived on every call.
func (p *Plan) CurrentPageIndex() int {
	for i := range p.PageBreakdown {
		if !p.PageBreakdown[i].Completed {
			return i
		}
	}
	return len(p.PageBreakdown)
}

// PageIndex returns the index of the page with the given plan-local number,
// or -1 when there is none.
func (p *Plan) PageIndex(pageNumber int) int {
	for i := range p.PageBreakdown {
		if p.PageBreakdown[i].PageNumber == pageNumber {
			return i
		}
	}
	return -1
}

// CompletedCount returns the number of memorized pages.
func (p *Plan) CompletedCount() int {
	n := 0
	for i := range p.PageBreakdown {
		if p.PageBreakdown[i].Completed {
			n++
		}
	}
	return n
}

// RevisedCount returns the number of revised pages.
func (p *Plan) RevisedCount() int {
	n := 0
	for i := range p.PageBreakdown {
		if p.PageBreakdown[i].Revised {
			n++
		}
	}
	return n
}

// Clone returns a deep copy so callers can mutate it without touching p.
func (p *Plan) Clone() *Plan {
	if p == nil {
		return nil
	}
	c := *p
	c.PageBreakdown = append([]Page(nil), p.PageBreakdown...)
	c.Progress.Memorized = append([]ProgressEntry(nil), p.Progress.Memorized...)
	c.Progress.Revised = append([]ProgressEntry(nil), p.Progress.Revised...)
	return &c
}

// Schedule is the projected timeline of a plan.
type Schedule struct {
	TotalDays      int
	CompletionDate time.Time
}

// Assignment is today's derived task.
//
// MEMORIZE_NEXT sets Page; REVISION_REQUIRED sets RevisionPage and
// UpcomingPage; PLAN_COMPLETE sets neither. ProgressPercent is always set.
type Assignment struct {
	Kind            AssignmentKind
	Page            *Page
	RevisionPage    *Page
	UpcomingPage    *Page
	ProgressPercent int
}

// PlanStats summarizes progress against the schedule.
type PlanStats struct {
	TotalPages        int
	MemorizedPages    int
	RevisedPages      int
	ProgressPercent   int
	DaysElapsed       int
	DaysRemaining     int
	ExpectedPages     int
	OnTrack           bool
	LastMemorizedAt   *time.Time
	LastRevisedAt     *time.Time
	EstimatedFinishAt time.Time
}
