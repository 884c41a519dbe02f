package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campushq/campuscore-backend/internal/middleware"
	"github.com/campushq/campuscore-backend/internal/model"
	"github.com/campushq/campuscore-backend/internal/response"
	"github.com/campushq/campuscore-backend/internal/service"
	"github.com/campushq/campuscore-backend/internal/validator"
)

// CourseHandler handles course CRUD and the student course catalogue.
type CourseHandler struct {
	courseService  *service.CourseService
	studentService *service.StudentService
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(courseService *service.CourseService, studentService *service.StudentService) *CourseHandler {
	return &CourseHandler{courseService: courseService, studentService: studentService}
}

// List godoc
// GET /api/v1/admin/courses?department_id=&level=&page=&per_page=
func (h *CourseHandler) List(c *gin.Context) {
	page, perPage := parsePagination(c)

	courses, total, err := h.courseService.ListPaginated(c.Request.Context(),
		queryInt(c, "department_id"), queryInt(c, "level"), perPage, (page-1)*perPage)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"courses": courses},
		response.NewPagination(page, perPage, total))
}

// Get godoc
// GET /api/v1/admin/courses/:id
func (h *CourseHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	course, err := h.courseService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"course": course})
}

// Create godoc
// POST /api/v1/admin/courses
func (h *CourseHandler) Create(c *gin.Context) {
	var req model.CreateCourseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	course := &model.Course{
		Code:         req.Code,
		Title:        req.Title,
		Units:        req.Units,
		Level:        req.Level,
		Semester:     req.Semester,
		DepartmentID: req.DepartmentID,
	}
	if err := h.courseService.Create(c.Request.Context(), course); err != nil {
		failFromPgError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"course": course})
}

// Update godoc
// PUT /api/v1/admin/courses/:id
func (h *CourseHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.CreateCourseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	course := &model.Course{
		ID:           id,
		Code:         req.Code,
		Title:        req.Title,
		Units:        req.Units,
		Level:        req.Level,
		Semester:     req.Semester,
		DepartmentID: req.DepartmentID,
	}
	if err := h.courseService.Update(c.Request.Context(), course); err != nil {
		failFromPgError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"course": course})
}

// Delete godoc
// DELETE /api/v1/admin/courses/:id
func (h *CourseHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.courseService.Delete(c.Request.Context(), id); err != nil {
		failFromPgError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "course deleted successfully"})
}

// Catalogue godoc
// GET /api/v1/student/courses
// Lists the courses available to the authenticated student's department and
// level.
func (h *CourseHandler) Catalogue(c *gin.Context) {
	claims := middleware.GetClaims(c)
	student, err := h.studentService.GetByID(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	courses, err := h.courseService.ListForStudent(c.Request.Context(), student)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"courses": courses})
}
