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

// InterviewHandler handles interview scheduling endpoints.
type InterviewHandler struct {
	interviewService *service.InterviewService
}

// NewInterviewHandler creates a new InterviewHandler.
func NewInterviewHandler(interviewService *service.InterviewService) *InterviewHandler {
	return &InterviewHandler{interviewService: interviewService}
}

// ListInterviews godoc
// GET /api/v1/talent/interviews
// Returns the interviews the current identity may see.
func (h *InterviewHandler) ListInterviews(c *gin.Context) {
	ev := middleware.GetEvaluator(c)

	interviews, err := h.interviewService.List(c.Request.Context(), ev)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"interviews": interviews})
}

// ScheduleInterview godoc
// POST /api/v1/talent/interviews
// Books a slot, advances the candidate, and notifies the interviewer.
func (h *InterviewHandler) ScheduleInterview(c *gin.Context) {
	var req model.ScheduleInterviewRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	interview, err := h.interviewService.Schedule(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, interview)
}

// UpdateInterview godoc
// PATCH /api/v1/talent/interviews/:id
// Records the outcome of an interview round.
func (h *InterviewHandler) UpdateInterview(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateInterviewRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.interviewService.UpdateOutcome(c.Request.Context(), id, &req); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{})
}
