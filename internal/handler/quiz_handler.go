package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campushq/campuscore-backend/internal/middleware"
	"github.com/campushq/campuscore-backend/internal/model"
	"github.com/campushq/campuscore-backend/internal/response"
	"github.com/campushq/campuscore-backend/internal/service"
	"github.com/campushq/campuscore-backend/internal/validator"
)

// QuizHandler handles quiz authoring and student attempts.
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// Create godoc
// POST /api/v1/admin/quizzes
func (h *QuizHandler) Create(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.CreateQuizRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	quiz, err := h.quizService.Create(c.Request.Context(), claims.UserID, &req)
	if err != nil {
		failFromPgError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"quiz": quiz})
}

// Get godoc
// GET /api/v1/admin/quizzes/:id
func (h *QuizHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	quiz, err := h.quizService.Get(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"quiz": quiz})
}

// ListByCourse godoc
// GET /api/v1/admin/courses/:id/quizzes
func (h *QuizHandler) ListByCourse(c *gin.Context) {
	courseID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	quizzes, err := h.quizService.ListByCourse(c.Request.Context(), courseID, false)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"quizzes": quizzes})
}

// Delete godoc
// DELETE /api/v1/admin/quizzes/:id
func (h *QuizHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.quizService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrQuizNotDraft) {
			response.Fail(c, http.StatusConflict, response.ErrQuizNotDraft)
			return
		}
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "quiz deleted successfully"})
}

// AddQuestion godoc
// POST /api/v1/admin/quizzes/:id/questions
func (h *QuizHandler) AddQuestion(c *gin.Context) {
	quizID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.CreateQuestionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	question, err := h.quizService.AddQuestion(c.Request.Context(), quizID, &req)
	if err != nil {
		if errors.Is(err, service.ErrQuizNotDraft) {
			response.Fail(c, http.StatusConflict, response.ErrQuizNotDraft)
			return
		}
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"question": question})
}

// DeleteQuestion godoc
// DELETE /api/v1/admin/quizzes/:id/questions/:question_id
func (h *QuizHandler) DeleteQuestion(c *gin.Context) {
	quizID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}
	questionID, err := uuid.Parse(c.Param("question_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.quizService.DeleteQuestion(c.Request.Context(), quizID, questionID); err != nil {
		if errors.Is(err, service.ErrQuizNotDraft) {
			response.Fail(c, http.StatusConflict, response.ErrQuizNotDraft)
			return
		}
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "question deleted successfully"})
}

// Publish godoc
// POST /api/v1/admin/quizzes/:id/publish
// Moves a draft quiz with questions to PUBLISHED.
func (h *QuizHandler) Publish(c *gin.Context) {
	h.transition(c, h.quizService.Publish)
}

// Close godoc
// POST /api/v1/admin/quizzes/:id/close
func (h *QuizHandler) Close(c *gin.Context) {
	h.transition(c, h.quizService.Close)
}

func (h *QuizHandler) transition(c *gin.Context, fn func(context.Context, uuid.UUID) error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := fn(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrQuizNotDraft):
			response.Fail(c, http.StatusConflict, response.ErrQuizNotDraft)
		case errors.Is(err, service.ErrQuizNotPublished):
			response.Fail(c, http.StatusConflict, response.ErrQuizNotPublished)
		case errors.Is(err, service.ErrQuizNoQuestions):
			response.Fail(c, http.StatusConflict, response.ErrNoQuestions)
		default:
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "quiz updated successfully"})
}

// ListAttempts godoc
// GET /api/v1/admin/quizzes/:id/attempts
func (h *QuizHandler) ListAttempts(c *gin.Context) {
	quizID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	attempts, err := h.quizService.ListAttempts(c.Request.Context(), quizID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"attempts": attempts})
}

// CourseQuizzes godoc
// GET /api/v1/student/courses/:id/quizzes
// Lists published quizzes for a course.
func (h *QuizHandler) CourseQuizzes(c *gin.Context) {
	courseID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	quizzes, err := h.quizService.ListByCourse(c.Request.Context(), courseID, true)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"quizzes": quizzes})
}

// Questions godoc
// GET /api/v1/student/quizzes/:id/questions
// Returns the questions of a published quiz without the answer key.
func (h *QuizHandler) Questions(c *gin.Context) {
	claims := middleware.GetClaims(c)

	quizID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	questions, err := h.quizService.QuestionsForStudent(c.Request.Context(), quizID, claims.UserID)
	if err != nil {
		failQuizAccess(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"questions": questions})
}

// SubmitAttempt godoc
// POST /api/v1/student/quizzes/:id/attempts
// Submits the student's single attempt; the score is returned immediately.
func (h *QuizHandler) SubmitAttempt(c *gin.Context) {
	claims := middleware.GetClaims(c)

	quizID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.SubmitAttemptRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	attempt, err := h.quizService.SubmitAttempt(c.Request.Context(), quizID, claims.UserID, &req)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyAttempted) {
			response.Fail(c, http.StatusConflict, response.ErrAttemptSubmitted)
			return
		}
		if errors.Is(err, service.ErrQuizTimeUp) {
			response.Fail(c, http.StatusConflict, response.ErrQuizTimeUp)
			return
		}
		failQuizAccess(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"attempt": attempt})
}

func failQuizAccess(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrQuizNotPublished):
		response.Fail(c, http.StatusConflict, response.ErrQuizNotPublished)
	case errors.Is(err, service.ErrNotEnrolledInQuiz):
		response.Fail(c, http.StatusForbidden, response.ErrNotEnrolledInQuiz)
	case errors.Is(err, service.ErrQuizNoQuestions):
		response.Fail(c, http.StatusConflict, response.ErrNoQuestions)
	default:
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	}
}
