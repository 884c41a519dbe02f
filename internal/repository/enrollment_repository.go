package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/campuscore-backend/internal/model"
)

// EnrollmentRepository handles enrollment data access.
type EnrollmentRepository struct {
	pool *pgxpool.Pool
}

// NewEnrollmentRepository creates a new EnrollmentRepository.
func NewEnrollmentRepository(pool *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{pool: pool}
}

// GetByID retrieves an enrollment with its course fields joined.
func (r *EnrollmentRepository) GetByID(ctx context.Context, id int) (*model.Enrollment, error) {
	e := &model.Enrollment{}
	err := r.pool.QueryRow(ctx,
		`SELECT e.id, e.student_id, e.course_id, e.session, e.semester, e.status,
		        e.created_at, e.updated_at, c.code, c.title, c.units
		 FROM enrollments e JOIN courses c ON e.course_id = c.id
		 WHERE e.id = $1`, id,
	).Scan(&e.ID, &e.StudentID, &e.CourseID, &e.Session, &e.Semester, &e.Status,
		&e.CreatedAt, &e.UpdatedAt, &e.CourseCode, &e.CourseTitle, &e.CourseUnits)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// ListByStudent retrieves a student's enrollments for one session.
func (r *EnrollmentRepository) ListByStudent(ctx context.Context, studentID int, session string) ([]model.Enrollment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT e.id, e.student_id, e.course_id, e.session, e.semester, e.status,
		        e.created_at, e.updated_at, c.code, c.title, c.units
		 FROM enrollments e JOIN courses c ON e.course_id = c.id
		 WHERE e.student_id = $1 AND e.session = $2
		 ORDER BY c.code`, studentID, session)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []model.Enrollment
	for rows.Next() {
		var e model.Enrollment
		if err := rows.Scan(&e.ID, &e.StudentID, &e.CourseID, &e.Session, &e.Semester, &e.Status,
			&e.CreatedAt, &e.UpdatedAt, &e.CourseCode, &e.CourseTitle, &e.CourseUnits); err != nil {
			return nil, err
		}
		enrollments = append(enrollments, e)
	}
	return enrollments, rows.Err()
}

// ListByCourse retrieves enrollments for a course and session with student fields joined.
func (r *EnrollmentRepository) ListByCourse(ctx context.Context, courseID int, session string) ([]model.Enrollment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT e.id, e.student_id, e.course_id, e.session, e.semester, e.status,
		        e.created_at, e.updated_at, s.name, s.matric_no
		 FROM enrollments e JOIN students s ON e.student_id = s.id
		 WHERE e.course_id = $1 AND e.session = $2
		 ORDER BY s.matric_no`, courseID, session)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []model.Enrollment
	for rows.Next() {
		var e model.Enrollment
		if err := rows.Scan(&e.ID, &e.StudentID, &e.CourseID, &e.Session, &e.Semester, &e.Status,
			&e.CreatedAt, &e.UpdatedAt, &e.StudentName, &e.MatricNo); err != nil {
			return nil, err
		}
		enrollments = append(enrollments, e)
	}
	return enrollments, rows.Err()
}

// Create inserts a new enrollment. The UNIQUE(student_id, course_id, session)
// constraint rejects duplicates.
func (r *EnrollmentRepository) Create(ctx context.Context, e *model.Enrollment) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO enrollments (student_id, course_id, session, semester, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		e.StudentID, e.CourseID, e.Session, e.Semester, e.Status,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

// UpdateStatus transitions an enrollment to a new status.
func (r *EnrollmentRepository) UpdateStatus(ctx context.Context, id int, status model.EnrollmentStatus) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE enrollments SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	return err
}

// IsStudentEnrolledInCourse reports whether the student has a non-dropped
// enrollment in the course for any session. Used to gate quiz attempts.
func (r *EnrollmentRepository) IsStudentEnrolledInCourse(ctx context.Context, studentID, courseID int) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (
		   SELECT 1 FROM enrollments
		   WHERE student_id = $1 AND course_id = $2 AND status <> 'DROPPED'
		 )`, studentID, courseID,
	).Scan(&exists)
	return exists, err
}
