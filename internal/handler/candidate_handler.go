package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/onegt/chrms-backend/internal/middleware"
	"github.com/onegt/chrms-backend/internal/model"
	"github.com/onegt/chrms-backend/internal/response"
	"github.com/onegt/chrms-backend/internal/service"
	"github.com/onegt/chrms-backend/internal/validator"
)

// CandidateHandler handles candidate pipeline endpoints.
type CandidateHandler struct {
	candidateService *service.CandidateService
	interviewService *service.InterviewService
}

// NewCandidateHandler creates a new CandidateHandler.
func NewCandidateHandler(candidateService *service.CandidateService, interviewService *service.InterviewService) *CandidateHandler {
	return &CandidateHandler{candidateService: candidateService, interviewService: interviewService}
}

// ListCandidates godoc
// GET /api/v1/talent/candidates?demand_id=...
// Returns the candidates the current identity may see. Interviewers only
// receive candidates reachable through interviews carrying their email.
func (h *CandidateHandler) ListCandidates(c *gin.Context) {
	ev := middleware.GetEvaluator(c)

	if raw := c.Query("demand_id"); raw != "" {
		demandID, err := uuid.Parse(raw)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
			return
		}
		candidates, err := h.candidateService.ListByDemand(c.Request.Context(), demandID, ev)
		if err != nil {
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"candidates": candidates})
		return
	}

	candidates, err := h.candidateService.List(c.Request.Context(), ev)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"candidates": candidates})
}

// GetCandidate godoc
// GET /api/v1/talent/candidates/:id
func (h *CandidateHandler) GetCandidate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	candidate, err := h.candidateService.Get(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Success(c, http.StatusOK, candidate)
}

// CreateCandidate godoc
// POST /api/v1/talent/candidates
func (h *CandidateHandler) CreateCandidate(c *gin.Context) {
	var req model.CreateCandidateRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	candidate, err := h.candidateService.Create(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, candidate)
}

// UpdateCandidateStatus godoc
// PATCH /api/v1/talent/candidates/:id/status
func (h *CandidateHandler) UpdateCandidateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateCandidateStatusRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.candidateService.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{})
}

// ListCandidateInterviews godoc
// GET /api/v1/talent/candidates/:id/interviews
func (h *CandidateHandler) ListCandidateInterviews(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	ev := middleware.GetEvaluator(c)
	interviews, err := h.interviewService.ListByCandidate(c.Request.Context(), id, ev)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"interviews": interviews})
}
