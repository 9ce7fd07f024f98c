package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/hifz-planner/internal/domain"
	"github.com/heartmarshall/hifz-planner/internal/service/planner"
)

type plannerService interface {
	CreatePlan(ctx context.Context, input planner.CreatePlanInput) (*domain.Plan, error)
	GetCurrentPlan(ctx context.Context) (*domain.Plan, error)
	ReplacePlan(ctx context.Context, input planner.ReplacePlanInput) (*domain.Plan, error)
	ResetPlan(ctx context.Context) error
	GetTodaysAssignment(ctx context.Context) (domain.Assignment, error)
	GetPlanStats(ctx context.Context) (domain.PlanStats, error)
	MarkCurrentPageMemorized(ctx context.Context) planner.Result
	MarkPageRevised(ctx context.Context, pageNumber int) planner.Result
	ListPaces() []domain.Pace
}

// PlanHandler serves the memorization plan endpoints.
type PlanHandler struct {
	svc plannerService
	log *slog.Logger
}

// NewPlanHandler creates a PlanHandler.
func NewPlanHandler(svc plannerService, logger *slog.Logger) *PlanHandler {
	return &PlanHandler{svc: svc, log: logger.With("handler", "plan")}
}

// GetPlan handles GET /plan.
func (h *PlanHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := h.svc.GetCurrentPlan(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	if plan == nil {
		writeError(w, http.StatusNotFound, "no active plan")
		return
	}
	writeJSON(w, http.StatusOK, toPlanDTO(plan))
}

// CreatePlan handles POST /plan.
func (h *PlanHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var req createPlanRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	plan, err := h.svc.CreatePlan(r.Context(), planner.CreatePlanInput{
		ContentID:       req.ContentID,
		Pace:            domain.PaceKey(req.Pace),
		IncludeRevision: req.IncludeRevision,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPlanDTO(plan))
}

// ReplacePlan handles PUT /plan/{id}.
func (h *PlanHandler) ReplacePlan(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid plan id")
		return
	}

	var req planDTO
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	plan, err := h.svc.ReplacePlan(r.Context(), planner.ReplacePlanInput{
		PlanID: id,
		Plan:   req.toDomain(),
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPlanDTO(plan))
}

// ResetPlan handles DELETE /plan.
func (h *PlanHandler) ResetPlan(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ResetPlan(r.Context()); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Assignment handles GET /plan/assignment.
func (h *PlanHandler) Assignment(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.GetTodaysAssignment(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAssignmentDTO(a))
}

// Stats handles GET /plan/stats.
func (h *PlanHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetPlanStats(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toStatsDTO(stats))
}

// Memorize handles POST /plan/memorize.
func (h *PlanHandler) Memorize(w http.ResponseWriter, r *http.Request) {
	h.writeResult(w, h.svc.MarkCurrentPageMemorized(r.Context()))
}

// Revise handles POST /plan/pages/{pageNumber}/revise.
func (h *PlanHandler) Revise(w http.ResponseWriter, r *http.Request) {
	pageNumber, err := strconv.Atoi(chi.URLParam(r, "pageNumber"))
	if err != nil || pageNumber < 1 {
		writeError(w, http.StatusBadRequest, "invalid page number")
		return
	}
	h.writeResult(w, h.svc.MarkPageRevised(r.Context(), pageNumber))
}

// Paces handles GET /paces.
func (h *PlanHandler) Paces(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toPaceDTOs(h.svc.ListPaces()))
}

// writeResult answers 200 for a successful transition and the mapped error
// status otherwise. The body is always the Result.
func (h *PlanHandler) writeResult(w http.ResponseWriter, res planner.Result) {
	status := http.StatusOK
	if !res.Success {
		status = statusFor(res.Err)
	}
	writeJSON(w, status, toResultDTO(res))
}
