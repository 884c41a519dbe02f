package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/campuscore-backend/internal/model"
)

// QuizRepository handles quiz, question, and attempt data access.
type QuizRepository struct {
	pool *pgxpool.Pool
}

// NewQuizRepository creates a new QuizRepository.
func NewQuizRepository(pool *pgxpool.Pool) *QuizRepository {
	return &QuizRepository{pool: pool}
}

// GetByID retrieves a quiz by ID with its question count.
func (r *QuizRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Quiz, error) {
	q := &model.Quiz{}
	err := r.pool.QueryRow(ctx,
		`SELECT q.id, q.course_id, q.title, q.duration_minutes, q.status, q.created_by,
		        q.created_at, q.updated_at,
		        (SELECT COUNT(*) FROM quiz_questions qq WHERE qq.quiz_id = q.id)
		 FROM quizzes q WHERE q.id = $1`, id,
	).Scan(&q.ID, &q.CourseID, &q.Title, &q.DurationMinutes, &q.Status, &q.CreatedBy,
		&q.CreatedAt, &q.UpdatedAt, &q.QuestionCount)
	if err != nil {
		return nil, err
	}
	return q, nil
}

// ListByCourse retrieves the quizzes of a course, optionally only published ones.
func (r *QuizRepository) ListByCourse(ctx context.Context, courseID int, publishedOnly bool) ([]model.Quiz, error) {
	query := `SELECT q.id, q.course_id, q.title, q.duration_minutes, q.status, q.created_by,
	       q.created_at, q.updated_at,
	       (SELECT COUNT(*) FROM quiz_questions qq WHERE qq.quiz_id = q.id)
	       FROM quizzes q WHERE q.course_id = $1`
	if publishedOnly {
		query += ` AND q.status = 'PUBLISHED'`
	}
	query += ` ORDER BY q.created_at DESC`

	rows, err := r.pool.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quizzes []model.Quiz
	for rows.Next() {
		var q model.Quiz
		if err := rows.Scan(&q.ID, &q.CourseID, &q.Title, &q.DurationMinutes, &q.Status, &q.CreatedBy,
			&q.CreatedAt, &q.UpdatedAt, &q.QuestionCount); err != nil {
			return nil, err
		}
		quizzes = append(quizzes, q)
	}
	return quizzes, rows.Err()
}

// Create inserts a new draft quiz.
func (r *QuizRepository) Create(ctx context.Context, q *model.Quiz) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO quizzes (id, course_id, title, duration_minutes, status, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at, updated_at`,
		q.ID, q.CourseID, q.Title, q.DurationMinutes, q.Status, q.CreatedBy,
	).Scan(&q.CreatedAt, &q.UpdatedAt)
}

// UpdateStatus transitions a quiz to a new status.
func (r *QuizRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.QuizStatus) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE quizzes SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	return err
}

// Delete removes a quiz and cascades to its questions and attempts.
func (r *QuizRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM quizzes WHERE id = $1`, id)
	return err
}

// AddQuestion inserts a question into a quiz.
func (r *QuizRepository) AddQuestion(ctx context.Context, q *model.QuizQuestion) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO quiz_questions (id, quiz_id, question_text, options, answer, order_num)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		q.ID, q.QuizID, q.QuestionText, q.Options, q.Answer, q.OrderNum,
	).Scan(&q.ID)
}

// DeleteQuestion removes a question from a quiz.
func (r *QuizRepository) DeleteQuestion(ctx context.Context, quizID, questionID uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM quiz_questions WHERE id = $1 AND quiz_id = $2`, questionID, quizID)
	return err
}

// ListQuestions retrieves a quiz's questions including answers (staff view).
func (r *QuizRepository) ListQuestions(ctx context.Context, quizID uuid.UUID) ([]model.QuizQuestion, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, quiz_id, question_text, options, answer, order_num
		 FROM quiz_questions WHERE quiz_id = $1 ORDER BY order_num`, quizID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []model.QuizQuestion
	for rows.Next() {
		var q model.QuizQuestion
		if err := rows.Scan(&q.ID, &q.QuizID, &q.QuestionText, &q.Options, &q.Answer, &q.OrderNum); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// GetAnswerKey returns the answer map (question ID -> answer) for a quiz.
func (r *QuizRepository) GetAnswerKey(ctx context.Context, quizID uuid.UUID) (map[string]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, answer FROM quiz_questions WHERE quiz_id = $1`, quizID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	key := make(map[string]string)
	for rows.Next() {
		var id uuid.UUID
		var answer string
		if err := rows.Scan(&id, &answer); err != nil {
			return nil, err
		}
		key[id.String()] = answer
	}
	return key, rows.Err()
}

// GetAttempt retrieves a student's attempt at a quiz, if any.
func (r *QuizRepository) GetAttempt(ctx context.Context, quizID uuid.UUID, studentID int) (*model.QuizAttempt, error) {
	a := &model.QuizAttempt{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, quiz_id, student_id, answers, score, submitted_at, created_at
		 FROM quiz_attempts WHERE quiz_id = $1 AND student_id = $2`, quizID, studentID,
	).Scan(&a.ID, &a.QuizID, &a.StudentID, &a.Answers, &a.Score, &a.SubmittedAt, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// CreateAttempt inserts a submitted attempt without a score. The score is
// computed in-process and persisted asynchronously by the scoring worker.
func (r *QuizRepository) CreateAttempt(ctx context.Context, a *model.QuizAttempt, answers map[string]string) error {
	raw, err := json.Marshal(answers)
	if err != nil {
		return err
	}
	a.Answers = raw
	return r.pool.QueryRow(ctx,
		`INSERT INTO quiz_attempts (id, quiz_id, student_id, answers, submitted_at)
		 VALUES ($1, $2, $3, $4, NOW())
		 RETURNING created_at, submitted_at`,
		a.ID, a.QuizID, a.StudentID, a.Answers,
	).Scan(&a.CreatedAt, &a.SubmittedAt)
}

// ListAttempts retrieves all attempts for a quiz with student fields joined.
func (r *QuizRepository) ListAttempts(ctx context.Context, quizID uuid.UUID) ([]model.QuizAttempt, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT a.id, a.quiz_id, a.student_id, a.score, a.submitted_at, a.created_at, s.name, s.matric_no
		 FROM quiz_attempts a JOIN students s ON a.student_id = s.id
		 WHERE a.quiz_id = $1 ORDER BY a.submitted_at`, quizID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attempts []model.QuizAttempt
	for rows.Next() {
		var a model.QuizAttempt
		if err := rows.Scan(&a.ID, &a.QuizID, &a.StudentID, &a.Score, &a.SubmittedAt, &a.CreatedAt,
			&a.StudentName, &a.MatricNo); err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}
