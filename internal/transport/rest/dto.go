package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/hifz-planner/internal/domain"
	"github.com/heartmarshall/hifz-planner/internal/service/planner"
)

type pageDTO struct {
	PageNumber int  `json:"pageNumber"`
	GlobalPage int  `json:"globalPage"`
	StartSurah int  `json:"startSurah"`
	StartAyah  int  `json:"startAyah"`
	EndSurah   int  `json:"endSurah"`
	EndAyah    int  `json:"endAyah"`
	Completed  bool `json:"completed"`
	Revised    bool `json:"revised"`
	Unlocked   bool `json:"unlocked"`
}

type progressEntryDTO struct {
	PageNumber    int       `json:"pageNumber"`
	DateCompleted time.Time `json:"dateCompleted"`
}

type progressDTO struct {
	Memorized []progressEntryDTO `json:"memorized"`
	Revised   []progressEntryDTO `json:"revised"`
}

type contentDetailsDTO struct {
	Number         int    `json:"number"`
	Name           string `json:"name"`
	EnglishName    string `json:"englishName"`
	TranslatedName string `json:"translatedName"`
	AyahCount      int    `json:"ayahCount"`
	RevelationType string `json:"revelationType"`
}

// planDTO is the wire form of a plan. CurrentPageIndex and TotalPages are
// output only and ignored on input.
type planDTO struct {
	ID               uuid.UUID         `json:"id"`
	UserID           uuid.UUID         `json:"userId"`
	ContentID        int               `json:"contentId"`
	Pace             domain.PaceKey    `json:"pace"`
	IncludeRevision  bool              `json:"includeRevision"`
	StartDate        time.Time         `json:"startDate"`
	CompletionDate   time.Time         `json:"completionDate"`
	CurrentPageIndex int               `json:"currentPageIndex"`
	TotalPages       int               `json:"totalPages"`
	PageBreakdown    []pageDTO         `json:"pageBreakdown"`
	Progress         progressDTO       `json:"progress"`
	ContentDetails   contentDetailsDTO `json:"contentDetails"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

type createPlanRequest struct {
	ContentID       int    `json:"contentId"`
	Pace            string `json:"pace"`
	IncludeRevision bool   `json:"includeRevision"`
}

type assignmentDTO struct {
	Kind            domain.AssignmentKind `json:"kind"`
	Page            *pageDTO              `json:"page,omitempty"`
	RevisionPage    *pageDTO              `json:"revisionPage,omitempty"`
	UpcomingPage    *pageDTO              `json:"upcomingPage,omitempty"`
	ProgressPercent int                   `json:"progressPercent"`
}

type resultDTO struct {
	Success    bool           `json:"success"`
	Message    string         `json:"message"`
	Assignment *assignmentDTO `json:"assignment,omitempty"`
	Plan       *planDTO       `json:"plan,omitempty"`
}

type statsDTO struct {
	TotalPages        int        `json:"totalPages"`
	MemorizedPages    int        `json:"memorizedPages"`
	RevisedPages      int        `json:"revisedPages"`
	ProgressPercent   int        `json:"progressPercent"`
	DaysElapsed       int        `json:"daysElapsed"`
	DaysRemaining     int        `json:"daysRemaining"`
	ExpectedPages     int        `json:"expectedPages"`
	OnTrack           bool       `json:"onTrack"`
	LastMemorizedAt   *time.Time `json:"lastMemorizedAt,omitempty"`
	LastRevisedAt     *time.Time `json:"lastRevisedAt,omitempty"`
	EstimatedFinishAt time.Time  `json:"estimatedFinishAt"`
}

type paceDTO struct {
	Key         domain.PaceKey `json:"key"`
	PagesPerDay float64        `json:"pagesPerDay"`
	Label       string         `json:"label"`
}

func toPageDTO(p domain.Page) pageDTO {
	return pageDTO(p)
}

func toPagePtr(p *domain.Page) *pageDTO {
	if p == nil {
		return nil
	}
	d := toPageDTO(*p)
	return &d
}

func toEntries(in []domain.ProgressEntry) []progressEntryDTO {
	out := make([]progressEntryDTO, len(in))
	for i, e := range in {
		out[i] = progressEntryDTO(e)
	}
	return out
}

func fromEntries(in []progressEntryDTO) []domain.ProgressEntry {
	out := make([]domain.ProgressEntry, len(in))
	for i, e := range in {
		out[i] = domain.ProgressEntry(e)
	}
	return out
}

func toPlanDTO(p *domain.Plan) *planDTO {
	if p == nil {
		return nil
	}
	pages := make([]pageDTO, len(p.PageBreakdown))
	for i, pg := range p.PageBreakdown {
		pages[i] = toPageDTO(pg)
	}
	return &planDTO{
		ID:               p.ID,
		UserID:           p.UserID,
		ContentID:        p.ContentID,
		Pace:             p.Pace,
		IncludeRevision:  p.IncludeRevision,
		StartDate:        p.StartDate,
		CompletionDate:   p.CompletionDate,
		CurrentPageIndex: p.CurrentPageIndex(),
		TotalPages:       p.TotalPages(),
		PageBreakdown:    pages,
		Progress: progressDTO{
			Memorized: toEntries(p.Progress.Memorized),
			Revised:   toEntries(p.Progress.Revised),
		},
		ContentDetails: contentDetailsDTO(p.ContentDetails),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// toDomain converts a client payload. The user and timestamps are never
// taken from the client.
func (d *planDTO) toDomain() *domain.Plan {
	pages := make([]domain.Page, len(d.PageBreakdown))
	for i, pg := range d.PageBreakdown {
		pages[i] = domain.Page(pg)
	}
	return &domain.Plan{
		ID:              d.ID,
		ContentID:       d.ContentID,
		Pace:            d.Pace,
		IncludeRevision: d.IncludeRevision,
		StartDate:       d.StartDate,
		CompletionDate:  d.CompletionDate,
		PageBreakdown:   pages,
		Progress: domain.Progress{
			Memorized: fromEntries(d.Progress.Memorized),
			Revised:   fromEntries(d.Progress.Revised),
		},
		ContentDetails: domain.ContentDetails(d.ContentDetails),
	}
}

func toAssignmentDTO(a domain.Assignment) assignmentDTO {
	return assignmentDTO{
		Kind:            a.Kind,
		Page:            toPagePtr(a.Page),
		RevisionPage:    toPagePtr(a.RevisionPage),
		UpcomingPage:    toPagePtr(a.UpcomingPage),
		ProgressPercent: a.ProgressPercent,
	}
}

func toResultDTO(r planner.Result) resultDTO {
	out := resultDTO{
		Success: r.Success,
		Message: r.Message,
		Plan:    toPlanDTO(r.Plan),
	}
	if r.Success {
		a := toAssignmentDTO(r.Assignment)
		out.Assignment = &a
	}
	return out
}

func toStatsDTO(s domain.PlanStats) statsDTO {
	return statsDTO(s)
}

func toPaceDTOs(in []domain.Pace) []paceDTO {
	out := make([]paceDTO, len(in))
	for i, p := range in {
		out[i] = paceDTO(p)
	}
	return out
}
