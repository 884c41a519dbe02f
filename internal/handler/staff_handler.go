package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campushq/campuscore-backend/internal/model"
	"github.com/campushq/campuscore-backend/internal/response"
	"github.com/campushq/campuscore-backend/internal/service"
	"github.com/campushq/campuscore-backend/internal/validator"
)

// StaffHandler handles admin CRUD for staff accounts.
type StaffHandler struct {
	staffService *service.StaffService
	authService  *service.AuthService
}

// NewStaffHandler creates a new StaffHandler.
func NewStaffHandler(staffService *service.StaffService, authService *service.AuthService) *StaffHandler {
	return &StaffHandler{staffService: staffService, authService: authService}
}

// List godoc
// GET /api/v1/admin/staff
func (h *StaffHandler) List(c *gin.Context) {
	staff, err := h.staffService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"staff": staff})
}

// Get godoc
// GET /api/v1/admin/staff/:id
func (h *StaffHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	staff, err := h.staffService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"staff": staff})
}

// Create godoc
// POST /api/v1/admin/staff
func (h *StaffHandler) Create(c *gin.Context) {
	var req model.CreateStaffRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	hash, err := h.authService.HashPassword(req.Password)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	staff := &model.Staff{
		Email:         req.Email,
		Name:          req.Name,
		PasswordHash:  hash,
		RoleID:        req.RoleID,
		DepartmentID:  req.DepartmentID,
		ClearanceUnit: req.ClearanceUnit,
	}
	if err := h.staffService.Create(c.Request.Context(), staff); err != nil {
		failFromPgError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"staff": staff})
}

// Update godoc
// PUT /api/v1/admin/staff/:id
func (h *StaffHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateStaffRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	hash := ""
	if req.Password != "" {
		if hash, err = h.authService.HashPassword(req.Password); err != nil {
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
			return
		}
	}

	staff := &model.Staff{
		ID:            id,
		Email:         req.Email,
		Name:          req.Name,
		PasswordHash:  hash,
		RoleID:        req.RoleID,
		DepartmentID:  req.DepartmentID,
		ClearanceUnit: req.ClearanceUnit,
	}
	if err := h.staffService.Update(c.Request.Context(), staff); err != nil {
		failFromPgError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"staff": staff})
}

// Delete godoc
// DELETE /api/v1/admin/staff/:id
func (h *StaffHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.staffService.Delete(c.Request.Context(), id); err != nil {
		failFromPgError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "staff deleted successfully"})
}
