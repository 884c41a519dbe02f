package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/campushq/campuscore-backend/internal/middleware"
	"github.com/campushq/campuscore-backend/internal/model"
	"github.com/campushq/campuscore-backend/internal/repository"
	"github.com/campushq/campuscore-backend/internal/response"
	"github.com/campushq/campuscore-backend/internal/service"
	"github.com/campushq/campuscore-backend/internal/validator"
)

// ClearanceHandler handles the multi-desk clearance workflow.
type ClearanceHandler struct {
	clearanceService *service.ClearanceService
}

// NewClearanceHandler creates a new ClearanceHandler.
func NewClearanceHandler(clearanceService *service.ClearanceService) *ClearanceHandler {
	return &ClearanceHandler{clearanceService: clearanceService}
}

// Open godoc
// POST /api/v1/student/clearance
// Opens the student's clearance for the current session.
func (h *ClearanceHandler) Open(c *gin.Context) {
	claims := middleware.GetClaims(c)

	clearance, err := h.clearanceService.Open(c.Request.Context(), claims.UserID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"clearance": clearance})
}

// GetMine godoc
// GET /api/v1/student/clearance
func (h *ClearanceHandler) GetMine(c *gin.Context) {
	claims := middleware.GetClaims(c)

	clearance, err := h.clearanceService.GetMine(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrClearanceNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"clearance": clearance})
}

// Get godoc
// GET /api/v1/admin/clearances/:id
func (h *ClearanceHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	clearance, err := h.clearanceService.Get(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrClearanceNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"clearance": clearance})
}

// PendingForUnit godoc
// GET /api/v1/admin/clearances/pending
// Lists clearances awaiting the authenticated staff member's desk.
func (h *ClearanceHandler) PendingForUnit(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims.Unit == "" {
		response.Fail(c, http.StatusForbidden, response.ErrWrongDepartment)
		return
	}

	clearances, err := h.clearanceService.ListPendingForUnit(c.Request.Context(), model.ClearanceUnit(claims.Unit))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"clearances": clearances})
}

// DecideItem godoc
// POST /api/v1/admin/clearances/:id/items/:unit/decide
// Approves or rejects one desk's item; the overall status is re-derived.
func (h *ClearanceHandler) DecideItem(c *gin.Context) {
	claims := middleware.GetClaims(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}
	unit := model.ClearanceUnit(c.Param("unit"))

	var req model.DecideClearanceRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	clearance, err := h.clearanceService.DecideItem(c.Request.Context(), id, unit, &req, claims.UserID, model.ClearanceUnit(claims.Unit))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWrongUnit):
			response.Fail(c, http.StatusForbidden, response.ErrWrongDepartment)
		case errors.Is(err, repository.ErrItemDecided):
			response.Fail(c, http.StatusConflict, response.ErrClearanceDecided)
		default:
			response.Fail(c, http.StatusNotFound, response.ErrClearanceNotFound)
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"clearance": clearance})
}
