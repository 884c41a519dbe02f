package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/campushq/campuscore-backend/internal/config"
	"github.com/campushq/campuscore-backend/internal/model"
	"github.com/campushq/campuscore-backend/internal/repository"
)

// Quiz errors surfaced to handlers.
var (
	ErrQuizNotDraft      = errors.New("quiz is not in draft")
	ErrQuizNotPublished  = errors.New("quiz is not published")
	ErrQuizNoQuestions   = errors.New("quiz has no questions")
	ErrAlreadyAttempted  = errors.New("student already attempted this quiz")
	ErrNotEnrolledInQuiz = errors.New("student is not enrolled in the quiz course")
	ErrQuizTimeUp        = errors.New("quiz time window has expired")
)

// quizClockGrace absorbs network latency between the client-side timer
// running out and the submission arriving.
const quizClockGrace = time.Minute

// QuizService handles quiz authoring, publication and attempts. Attempt
// scores are computed synchronously so the student sees an immediate result,
// but persisted asynchronously through the scoring worker.
type QuizService struct {
	quizRepo       *repository.QuizRepository
	enrollmentRepo *repository.EnrollmentRepository
	rdb            *redis.Client
}

// NewQuizService creates a new QuizService.
func NewQuizService(quizRepo *repository.QuizRepository, enrollmentRepo *repository.EnrollmentRepository, rdb *redis.Client) *QuizService {
	return &QuizService{quizRepo: quizRepo, enrollmentRepo: enrollmentRepo, rdb: rdb}
}

// Create creates a DRAFT quiz.
func (s *QuizService) Create(ctx context.Context, staffID int, req *model.CreateQuizRequest) (*model.Quiz, error) {
	quiz := &model.Quiz{
		ID:              uuid.New(),
		CourseID:        req.CourseID,
		Title:           req.Title,
		DurationMinutes: req.DurationMinutes,
		Status:          model.QuizStatusDraft,
		CreatedBy:       staffID,
	}
	if err := s.quizRepo.Create(ctx, quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

// Get retrieves a quiz by id.
func (s *QuizService) Get(ctx context.Context, id uuid.UUID) (*model.Quiz, error) {
	return s.quizRepo.GetByID(ctx, id)
}

// ListByCourse retrieves a course's quizzes. Students only see published
// ones.
func (s *QuizService) ListByCourse(ctx context.Context, courseID int, publishedOnly bool) ([]model.Quiz, error) {
	return s.quizRepo.ListByCourse(ctx, courseID, publishedOnly)
}

// Delete removes a DRAFT quiz and its questions.
func (s *QuizService) Delete(ctx context.Context, id uuid.UUID) error {
	quiz, err := s.quizRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if quiz.Status != model.QuizStatusDraft {
		return ErrQuizNotDraft
	}
	return s.quizRepo.Delete(ctx, id)
}

// AddQuestion appends a question to a DRAFT quiz.
func (s *QuizService) AddQuestion(ctx context.Context, quizID uuid.UUID, req *model.CreateQuestionRequest) (*model.QuizQuestion, error) {
	quiz, err := s.quizRepo.GetByID(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if quiz.Status != model.QuizStatusDraft {
		return nil, ErrQuizNotDraft
	}

	question := &model.QuizQuestion{
		ID:           uuid.New(),
		QuizID:       quizID,
		QuestionText: req.QuestionText,
		Options:      req.Options,
		Answer:       req.Answer,
		OrderNum:     req.OrderNum,
	}
	if err := s.quizRepo.AddQuestion(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

// DeleteQuestion removes a question from a DRAFT quiz.
func (s *QuizService) DeleteQuestion(ctx context.Context, quizID, questionID uuid.UUID) error {
	quiz, err := s.quizRepo.GetByID(ctx, quizID)
	if err != nil {
		return err
	}
	if quiz.Status != model.QuizStatusDraft {
		return ErrQuizNotDraft
	}
	return s.quizRepo.DeleteQuestion(ctx, quizID, questionID)
}

// Publish moves a DRAFT quiz with at least one question to PUBLISHED.
func (s *QuizService) Publish(ctx context.Context, id uuid.UUID) error {
	quiz, err := s.quizRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if quiz.Status != model.QuizStatusDraft {
		return ErrQuizNotDraft
	}
	questions, err := s.quizRepo.ListQuestions(ctx, id)
	if err != nil {
		return err
	}
	if len(questions) == 0 {
		return ErrQuizNoQuestions
	}
	return s.quizRepo.UpdateStatus(ctx, id, model.QuizStatusPublished)
}

// Close moves a PUBLISHED quiz to CLOSED.
func (s *QuizService) Close(ctx context.Context, id uuid.UUID) error {
	quiz, err := s.quizRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if quiz.Status != model.QuizStatusPublished {
		return ErrQuizNotPublished
	}
	return s.quizRepo.UpdateStatus(ctx, id, model.QuizStatusClosed)
}

// QuestionsForStudent returns a published quiz's questions stripped of the
// answer key. The quiz must belong to a course the student is enrolled in.
func (s *QuizService) QuestionsForStudent(ctx context.Context, quizID uuid.UUID, studentID int) ([]model.QuestionForStudent, error) {
	quiz, err := s.quizRepo.GetByID(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if quiz.Status != model.QuizStatusPublished {
		return nil, ErrQuizNotPublished
	}
	if err := s.requireEnrolled(ctx, studentID, quiz.CourseID); err != nil {
		return nil, err
	}

	questions, err := s.quizRepo.ListQuestions(ctx, quizID)
	if err != nil {
		return nil, err
	}
	stripped := make([]model.QuestionForStudent, 0, len(questions))
	for _, q := range questions {
		stripped = append(stripped, model.QuestionForStudent{
			ID:           q.ID,
			QuestionText: q.QuestionText,
			Options:      q.Options,
			OrderNum:     q.OrderNum,
		})
	}
	s.startClock(ctx, quiz, studentID)
	return stripped, nil
}

// startClock records the moment a student first opens the quiz. The marker
// expires after the quiz duration plus a grace window; re-opening the quiz
// does not reset it.
func (s *QuizService) startClock(ctx context.Context, quiz *model.Quiz, studentID int) {
	key := config.CacheKey.QuizAttemptKey(quiz.ID.String(), studentID)
	ttl := time.Duration(quiz.DurationMinutes)*time.Minute + quizClockGrace
	if err := s.rdb.SetNX(ctx, key, time.Now().Unix(), ttl).Err(); err != nil {
		log.Warn().Err(err).Int("student_id", studentID).Msg("Failed to start quiz clock")
	}
}

// SubmitAttempt grades and stores a student's one attempt at a published
// quiz. The score is returned immediately; the scoring worker writes it to
// the attempt row.
func (s *QuizService) SubmitAttempt(ctx context.Context, quizID uuid.UUID, studentID int, req *model.SubmitAttemptRequest) (*model.QuizAttempt, error) {
	quiz, err := s.quizRepo.GetByID(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if quiz.Status != model.QuizStatusPublished {
		return nil, ErrQuizNotPublished
	}
	if err := s.requireEnrolled(ctx, studentID, quiz.CourseID); err != nil {
		return nil, err
	}

	if _, err := s.quizRepo.GetAttempt(ctx, quizID, studentID); err == nil {
		return nil, ErrAlreadyAttempted
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	// The clock marker is written on first question fetch and expires after
	// the quiz duration. Missing marker means the window has closed (or the
	// student never opened the quiz, which amounts to the same thing).
	clockKey := config.CacheKey.QuizAttemptKey(quizID.String(), studentID)
	if exists, err := s.rdb.Exists(ctx, clockKey).Result(); err == nil && exists == 0 {
		return nil, ErrQuizTimeUp
	}

	key, err := s.quizRepo.GetAnswerKey(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if len(key) == 0 {
		return nil, ErrQuizNoQuestions
	}
	score := GradeAttempt(key, req.Answers)

	attempt := &model.QuizAttempt{
		ID:        uuid.New(),
		QuizID:    quizID,
		StudentID: studentID,
		Score:     &score,
	}
	if err := s.quizRepo.CreateAttempt(ctx, attempt, req.Answers); err != nil {
		return nil, err
	}

	s.enqueueScore(ctx, attempt.ID, score)
	if err := s.rdb.Del(ctx, clockKey).Err(); err != nil {
		log.Warn().Err(err).Int("student_id", studentID).Msg("Failed to clear quiz clock")
	}
	return attempt, nil
}

// ListAttempts retrieves a quiz's attempts for staff review.
func (s *QuizService) ListAttempts(ctx context.Context, quizID uuid.UUID) ([]model.QuizAttempt, error) {
	return s.quizRepo.ListAttempts(ctx, quizID)
}

func (s *QuizService) requireEnrolled(ctx context.Context, studentID, courseID int) error {
	enrolled, err := s.enrollmentRepo.IsStudentEnrolledInCourse(ctx, studentID, courseID)
	if err != nil {
		return err
	}
	if !enrolled {
		return ErrNotEnrolledInQuiz
	}
	return nil
}

// GradeAttempt scores answers against the key as a percentage. Comparison is
// by exact option key. Unanswered questions score zero.
func GradeAttempt(key map[string]string, answers map[string]string) float64 {
	if len(key) == 0 {
		return 0
	}
	correct := 0
	for questionID, expected := range key {
		if answers[questionID] == expected {
			correct++
		}
	}
	return float64(correct) * 100 / float64(len(key))
}

func (s *QuizService) enqueueScore(ctx context.Context, attemptID uuid.UUID, score float64) {
	payload, err := json.Marshal(model.ScoreJob{AttemptID: attemptID, Score: score})
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal score job")
		return
	}
	if err := s.rdb.RPush(ctx, config.WorkerKey.QuizScoresQueue, payload).Err(); err != nil {
		log.Error().Err(err).Str("attempt_id", attemptID.String()).Msg("Failed to enqueue score job")
	}
}
