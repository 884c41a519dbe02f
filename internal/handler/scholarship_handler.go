package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/campushq/campuscore-backend/internal/middleware"
	"github.com/campushq/campuscore-backend/internal/model"
	"github.com/campushq/campuscore-backend/internal/response"
	"github.com/campushq/campuscore-backend/internal/service"
	"github.com/campushq/campuscore-backend/internal/validator"
)

// ScholarshipHandler handles scholarships and their applications.
type ScholarshipHandler struct {
	scholarshipService *service.ScholarshipService
}

// NewScholarshipHandler creates a new ScholarshipHandler.
func NewScholarshipHandler(scholarshipService *service.ScholarshipService) *ScholarshipHandler {
	return &ScholarshipHandler{scholarshipService: scholarshipService}
}

// ListOpen godoc
// GET /api/v1/student/scholarships
func (h *ScholarshipHandler) ListOpen(c *gin.Context) {
	scholarships, err := h.scholarshipService.List(c.Request.Context(), true)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"scholarships": scholarships})
}

// List godoc
// GET /api/v1/admin/scholarships
func (h *ScholarshipHandler) List(c *gin.Context) {
	scholarships, err := h.scholarshipService.List(c.Request.Context(), false)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"scholarships": scholarships})
}

// Create godoc
// POST /api/v1/admin/scholarships
func (h *ScholarshipHandler) Create(c *gin.Context) {
	var req model.CreateScholarshipRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	scholarship, err := h.scholarshipService.Create(c.Request.Context(), &req)
	if err != nil {
		failFromPgError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"scholarship": scholarship})
}

// Update godoc
// PUT /api/v1/admin/scholarships/:id
func (h *ScholarshipHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.CreateScholarshipRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	scholarship, err := h.scholarshipService.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"scholarship": scholarship})
}

// Close godoc
// POST /api/v1/admin/scholarships/:id/close
func (h *ScholarshipHandler) Close(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.scholarshipService.Close(c.Request.Context(), id); err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "scholarship closed"})
}

// Delete godoc
// DELETE /api/v1/admin/scholarships/:id
func (h *ScholarshipHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.scholarshipService.Delete(c.Request.Context(), id); err != nil {
		failFromPgError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "scholarship deleted successfully"})
}

// Apply godoc
// POST /api/v1/student/scholarships/:id/apply
func (h *ScholarshipHandler) Apply(c *gin.Context) {
	claims := middleware.GetClaims(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	app, err := h.scholarshipService.Apply(c.Request.Context(), id, claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrScholarshipClosed):
			response.Fail(c, http.StatusConflict, response.ErrScholarshipClosed)
		case errors.Is(err, service.ErrDeadlinePassed):
			response.Fail(c, http.StatusConflict, response.ErrDeadlinePassed)
		default:
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				response.Fail(c, http.StatusConflict, response.ErrConflict)
				return
			}
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"application": app})
}

// MyApplications godoc
// GET /api/v1/student/scholarships/applications
func (h *ScholarshipHandler) MyApplications(c *gin.Context) {
	claims := middleware.GetClaims(c)

	apps, err := h.scholarshipService.MyApplications(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"applications": apps})
}

// ListApplications godoc
// GET /api/v1/admin/scholarships/:id/applications
func (h *ScholarshipHandler) ListApplications(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	apps, err := h.scholarshipService.ListApplications(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"applications": apps})
}

// Decide godoc
// POST /api/v1/admin/scholarships/applications/:id/decide
func (h *ScholarshipHandler) Decide(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.DecideScholarshipRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.scholarshipService.Decide(c.Request.Context(), id, req.Status); err != nil {
		if errors.Is(err, service.ErrApplicationNotFound) {
			response.Fail(c, http.StatusConflict, response.ErrApplicationDecided)
			return
		}
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "application decided"})
}
