package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campushq/campuscore-backend/internal/middleware"
	"github.com/campushq/campuscore-backend/internal/model"
	"github.com/campushq/campuscore-backend/internal/response"
	"github.com/campushq/campuscore-backend/internal/service"
	"github.com/campushq/campuscore-backend/internal/validator"
)

// ResultHandler handles result entry and transcripts.
type ResultHandler struct {
	resultService *service.ResultService
}

// NewResultHandler creates a new ResultHandler.
func NewResultHandler(resultService *service.ResultService) *ResultHandler {
	return &ResultHandler{resultService: resultService}
}

// Enter godoc
// POST /api/v1/admin/results
// Records a result for an enrollment; the grade is derived from the score.
func (h *ResultHandler) Enter(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.EnterResultRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	result, err := h.resultService.Enter(c.Request.Context(), req.EnrollmentID, req.Score, claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrResultExists):
			response.Fail(c, http.StatusConflict, response.ErrResultAlreadyEntered)
		case errors.Is(err, service.ErrEnrollmentDropped), errors.Is(err, service.ErrScoreOutOfRange):
			response.Fail(c, http.StatusUnprocessableEntity, response.ErrActionForbidden)
		default:
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"result": result})
}

// ListByCourse godoc
// GET /api/v1/admin/courses/:id/results?session=
func (h *ResultHandler) ListByCourse(c *gin.Context) {
	courseID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	results, err := h.resultService.ListByCourse(c.Request.Context(), courseID, c.Query("session"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"results": results})
}

// MyTranscript godoc
// GET /api/v1/student/transcript
// Returns the student's full result history with GPA summaries and CGPA.
func (h *ResultHandler) MyTranscript(c *gin.Context) {
	claims := middleware.GetClaims(c)

	transcript, err := h.resultService.Transcript(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"transcript": transcript})
}
