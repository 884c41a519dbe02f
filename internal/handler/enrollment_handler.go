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

// EnrollmentHandler handles course enrollment for students and staff.
type EnrollmentHandler struct {
	enrollmentService *service.EnrollmentService
}

// NewEnrollmentHandler creates a new EnrollmentHandler.
func NewEnrollmentHandler(enrollmentService *service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentService: enrollmentService}
}

// Enroll godoc
// POST /api/v1/student/enrollments
// Enrolls the authenticated student in a course for the current session.
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.EnrollRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	enrollment, err := h.enrollmentService.Enroll(c.Request.Context(), claims.UserID, req.CourseID, "")
	if err != nil {
		failEnrollment(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"enrollment": enrollment})
}

// Drop godoc
// POST /api/v1/student/enrollments/:id/drop
func (h *EnrollmentHandler) Drop(c *gin.Context) {
	claims := middleware.GetClaims(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.enrollmentService.Drop(c.Request.Context(), id, claims.UserID); err != nil {
		switch {
		case errors.Is(err, service.ErrNotEnrollmentOwner):
			response.Fail(c, http.StatusForbidden, response.ErrForbidden)
		case errors.Is(err, service.ErrEnrollmentCompleted):
			response.Fail(c, http.StatusConflict, response.ErrActionForbidden)
		default:
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "enrollment dropped successfully"})
}

// MyEnrollments godoc
// GET /api/v1/student/enrollments?session=
func (h *EnrollmentHandler) MyEnrollments(c *gin.Context) {
	claims := middleware.GetClaims(c)

	enrollments, err := h.enrollmentService.ListByStudent(c.Request.Context(), claims.UserID, c.Query("session"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"enrollments": enrollments})
}

// AdminEnroll godoc
// POST /api/v1/admin/enrollments
// Enrolls any student, optionally for a past session.
func (h *EnrollmentHandler) AdminEnroll(c *gin.Context) {
	var req model.AdminEnrollRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	enrollment, err := h.enrollmentService.Enroll(c.Request.Context(), req.StudentID, req.CourseID, req.Session)
	if err != nil {
		failEnrollment(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"enrollment": enrollment})
}

// ListByCourse godoc
// GET /api/v1/admin/courses/:id/enrollments?session=
func (h *EnrollmentHandler) ListByCourse(c *gin.Context) {
	courseID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	enrollments, err := h.enrollmentService.ListByCourse(c.Request.Context(), courseID, c.Query("session"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"enrollments": enrollments})
}

// failEnrollment maps duplicate enrollments to their own error code before
// falling back to the generic constraint mapping.
func failEnrollment(c *gin.Context, err error) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		response.Fail(c, http.StatusConflict, response.ErrAlreadyEnrolled)
		return
	}
	failFromPgError(c, err)
}
