package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/onegt/chrms-backend/internal/model"
	"github.com/onegt/chrms-backend/internal/response"
	"github.com/onegt/chrms-backend/internal/service"
	"github.com/onegt/chrms-backend/internal/validator"
)

// AssociateHandler handles directory endpoints.
type AssociateHandler struct {
	associateService *service.AssociateService
}

// NewAssociateHandler creates a new AssociateHandler.
func NewAssociateHandler(associateService *service.AssociateService) *AssociateHandler {
	return &AssociateHandler{associateService: associateService}
}

// ListAssociates godoc
// GET /api/v1/associates?page=1&per_page=20
func (h *AssociateHandler) ListAssociates(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	associates, total, err := h.associateService.List(c.Request.Context(), perPage, (page-1)*perPage)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	totalPages := (total + perPage - 1) / perPage
	response.SuccessWithPagination(c, http.StatusOK, gin.H{"associates": associates}, &response.Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: totalPages,
	})
}

// GetAssociate godoc
// GET /api/v1/associates/:id
func (h *AssociateHandler) GetAssociate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	associate, err := h.associateService.Get(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Success(c, http.StatusOK, associate)
}

// CreateAssociate godoc
// POST /api/v1/associates
func (h *AssociateHandler) CreateAssociate(c *gin.Context) {
	var req model.CreateAssociateRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	associate, err := h.associateService.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, associate)
}

// DeactivateAssociate godoc
// DELETE /api/v1/associates/:id
// Disables the account rather than deleting it.
func (h *AssociateHandler) DeactivateAssociate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.associateService.Deactivate(c.Request.Context(), id); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{})
}
