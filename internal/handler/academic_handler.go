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

// AcademicHandler handles faculty and department CRUD.
type AcademicHandler struct {
	academicService *service.AcademicService
}

// NewAcademicHandler creates a new AcademicHandler.
func NewAcademicHandler(academicService *service.AcademicService) *AcademicHandler {
	return &AcademicHandler{academicService: academicService}
}

// ListFaculties godoc
// GET /api/v1/admin/faculties
func (h *AcademicHandler) ListFaculties(c *gin.Context) {
	faculties, err := h.academicService.ListFaculties(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"faculties": faculties})
}

// CreateFaculty godoc
// POST /api/v1/admin/faculties
func (h *AcademicHandler) CreateFaculty(c *gin.Context) {
	var req model.CreateFacultyRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	faculty := &model.Faculty{Name: req.Name, Code: req.Code}
	if err := h.academicService.CreateFaculty(c.Request.Context(), faculty); err != nil {
		failFromPgError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"faculty": faculty})
}

// UpdateFaculty godoc
// PUT /api/v1/admin/faculties/:id
func (h *AcademicHandler) UpdateFaculty(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.CreateFacultyRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	faculty := &model.Faculty{ID: id, Name: req.Name, Code: req.Code}
	if err := h.academicService.UpdateFaculty(c.Request.Context(), faculty); err != nil {
		failFromPgError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"faculty": faculty})
}

// DeleteFaculty godoc
// DELETE /api/v1/admin/faculties/:id
func (h *AcademicHandler) DeleteFaculty(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.academicService.DeleteFaculty(c.Request.Context(), id); err != nil {
		failFromPgError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "faculty deleted successfully"})
}

// ListDepartments godoc
// GET /api/v1/admin/departments?faculty_id=
func (h *AcademicHandler) ListDepartments(c *gin.Context) {
	departments, err := h.academicService.ListDepartments(c.Request.Context(), queryInt(c, "faculty_id"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"departments": departments})
}

// CreateDepartment godoc
// POST /api/v1/admin/departments
func (h *AcademicHandler) CreateDepartment(c *gin.Context) {
	var req model.CreateDepartmentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	department := &model.Department{FacultyID: req.FacultyID, Name: req.Name, Code: req.Code}
	if err := h.academicService.CreateDepartment(c.Request.Context(), department); err != nil {
		failFromPgError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"department": department})
}

// UpdateDepartment godoc
// PUT /api/v1/admin/departments/:id
func (h *AcademicHandler) UpdateDepartment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.CreateDepartmentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	department := &model.Department{ID: id, FacultyID: req.FacultyID, Name: req.Name, Code: req.Code}
	if err := h.academicService.UpdateDepartment(c.Request.Context(), department); err != nil {
		failFromPgError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"department": department})
}

// DeleteDepartment godoc
// DELETE /api/v1/admin/departments/:id
func (h *AcademicHandler) DeleteDepartment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.academicService.DeleteDepartment(c.Request.Context(), id); err != nil {
		failFromPgError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "department deleted successfully"})
}
