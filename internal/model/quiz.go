package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// QuizStatus enumerates the possible states of a quiz.
type QuizStatus string

const (
	QuizStatusDraft     QuizStatus = "DRAFT"
	QuizStatusPublished QuizStatus = "PUBLISHED"
	QuizStatusClosed    QuizStatus = "CLOSED"
)

// Quiz represents a course quiz.
type Quiz struct {
	ID              uuid.UUID  `json:"id"`
	CourseID        int        `json:"course_id"`
	Title           string     `json:"title"`
	DurationMinutes int        `json:"duration_minutes"`
	Status          QuizStatus `json:"status"`
	CreatedBy       int        `json:"created_by"`
	QuestionCount   int        `json:"question_count,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// QuizQuestion is a single question with its answer key.
type QuizQuestion struct {
	ID           uuid.UUID       `json:"id"`
	QuizID       uuid.UUID       `json:"quiz_id"`
	QuestionText string          `json:"question_text"`
	Options      json.RawMessage `json:"options"`
	Answer       string          `json:"answer,omitempty"`
	OrderNum     int             `json:"order_num"`
}

// QuestionForStudent is a question without the answer key.
type QuestionForStudent struct {
	ID           uuid.UUID       `json:"id"`
	QuestionText string          `json:"question_text"`
	Options      json.RawMessage `json:"options"`
	OrderNum     int             `json:"order_num"`
}

// QuizAttempt records a student's attempt at a quiz. Score is nil until the
// scoring worker persists it.
type QuizAttempt struct {
	ID          uuid.UUID       `json:"id"`
	QuizID      uuid.UUID       `json:"quiz_id"`
	StudentID   int             `json:"student_id"`
	Answers     json.RawMessage `json:"answers,omitempty"`
	Score       *float64        `json:"score,omitempty"`
	SubmittedAt *time.Time      `json:"submitted_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`

	// Joined fields for listings.
	StudentName string `json:"student_name,omitempty"`
	MatricNo    string `json:"matric_no,omitempty"`
	QuizTitle   string `json:"quiz_title,omitempty"`
}

// ScoreJob is the queue payload consumed by the quiz scoring worker.
type ScoreJob struct {
	AttemptID uuid.UUID `json:"attempt_id"`
	Score     float64   `json:"score"`
}

// CreateQuizRequest is the payload for creating or updating a quiz.
type CreateQuizRequest struct {
	CourseID        int    `json:"course_id" binding:"required"`
	Title           string `json:"title" binding:"required,min=3,max=255"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=1,max=240"`
}

// CreateQuestionRequest is the payload for adding a question to a quiz.
type CreateQuestionRequest struct {
	QuestionText string          `json:"question_text" binding:"required,min=3"`
	Options      json.RawMessage `json:"options" binding:"required"`
	Answer       string          `json:"answer" binding:"required,min=1,max=10"`
	OrderNum     int             `json:"order_num" binding:"required,min=1"`
}

// SubmitAttemptRequest carries the student's answers keyed by question ID.
type SubmitAttemptRequest struct {
	Answers map[string]string `json:"answers" binding:"required"`
}
