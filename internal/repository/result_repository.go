package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/campuscore-backend/internal/model"
)

// ResultRepository handles result data access.
type ResultRepository struct {
	pool *pgxpool.Pool
}

// NewResultRepository creates a new ResultRepository.
func NewResultRepository(pool *pgxpool.Pool) *ResultRepository {
	return &ResultRepository{pool: pool}
}

// Create inserts a result and marks its enrollment COMPLETED in one transaction.
func (r *ResultRepository) Create(ctx context.Context, res *model.Result) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO results (enrollment_id, score, grade, grade_point, recorded_by)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		res.EnrollmentID, res.Score, res.Grade, res.GradePoint, res.RecordedBy,
	).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx,
		`UPDATE enrollments SET status = 'COMPLETED', updated_at = NOW() WHERE id = $1`,
		res.EnrollmentID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// ListByStudent retrieves all results for a student with course fields joined,
// ordered for transcript rendering.
func (r *ResultRepository) ListByStudent(ctx context.Context, studentID int) ([]model.Result, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT res.id, res.enrollment_id, res.score, res.grade, res.grade_point, res.recorded_by,
		        res.created_at, res.updated_at, c.code, c.title, c.units, e.session, e.semester
		 FROM results res
		 JOIN enrollments e ON res.enrollment_id = e.id
		 JOIN courses c ON e.course_id = c.id
		 WHERE e.student_id = $1
		 ORDER BY e.session, e.semester, c.code`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []model.Result
	for rows.Next() {
		var res model.Result
		if err := rows.Scan(&res.ID, &res.EnrollmentID, &res.Score, &res.Grade, &res.GradePoint,
			&res.RecordedBy, &res.CreatedAt, &res.UpdatedAt,
			&res.CourseCode, &res.CourseTitle, &res.CourseUnits, &res.Session, &res.Semester); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, rows.Err()
}

// ListByCourse retrieves results for one course and session.
func (r *ResultRepository) ListByCourse(ctx context.Context, courseID int, session string) ([]model.Result, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT res.id, res.enrollment_id, res.score, res.grade, res.grade_point, res.recorded_by,
		        res.created_at, res.updated_at, c.code, c.title, c.units, e.session, e.semester
		 FROM results res
		 JOIN enrollments e ON res.enrollment_id = e.id
		 JOIN courses c ON e.course_id = c.id
		 WHERE e.course_id = $1 AND e.session = $2
		 ORDER BY res.score DESC`, courseID, session)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []model.Result
	for rows.Next() {
		var res model.Result
		if err := rows.Scan(&res.ID, &res.EnrollmentID, &res.Score, &res.Grade, &res.GradePoint,
			&res.RecordedBy, &res.CreatedAt, &res.UpdatedAt,
			&res.CourseCode, &res.CourseTitle, &res.CourseUnits, &res.Session, &res.Semester); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, rows.Err()
}

// ExistsForEnrollment reports whether a result is already recorded for an enrollment.
func (r *ResultRepository) ExistsForEnrollment(ctx context.Context, enrollmentID int) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM results WHERE enrollment_id = $1)`, enrollmentID,
	).Scan(&exists)
	return exists, err
}
