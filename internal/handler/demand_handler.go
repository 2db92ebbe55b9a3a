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

// DemandHandler handles hiring demand endpoints.
type DemandHandler struct {
	demandService *service.DemandService
}

// NewDemandHandler creates a new DemandHandler.
func NewDemandHandler(demandService *service.DemandService) *DemandHandler {
	return &DemandHandler{demandService: demandService}
}

// ListDemands godoc
// GET /api/v1/talent/demands
func (h *DemandHandler) ListDemands(c *gin.Context) {
	demands, err := h.demandService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"demands": demands})
}

// GetDemand godoc
// GET /api/v1/talent/demands/:id
func (h *DemandHandler) GetDemand(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	demand, err := h.demandService.Get(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Success(c, http.StatusOK, demand)
}

// CreateDemand godoc
// POST /api/v1/talent/demands
func (h *DemandHandler) CreateDemand(c *gin.Context) {
	var req model.CreateDemandRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	demand, err := h.demandService.Create(c.Request.Context(), &req, claims.Email)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, demand)
}

// UpdateDemandStatus godoc
// PATCH /api/v1/talent/demands/:id/status
func (h *DemandHandler) UpdateDemandStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateDemandStatusRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.demandService.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{})
}
