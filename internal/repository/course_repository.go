package repository

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/campuscore-backend/internal/model"
)

// CourseRepository handles course data access.
type CourseRepository struct {
	pool *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

const courseColumns = `id, code, title, units, level, semester, department_id, created_at, updated_at`

func scanCourse(row interface{ Scan(...any) error }) (*model.Course, error) {
	c := &model.Course{}
	err := row.Scan(&c.ID, &c.Code, &c.Title, &c.Units, &c.Level, &c.Semester, &c.DepartmentID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// GetByID retrieves a course by ID.
func (r *CourseRepository) GetByID(ctx context.Context, id int) (*model.Course, error) {
	return scanCourse(r.pool.QueryRow(ctx,
		`SELECT `+courseColumns+` FROM courses WHERE id = $1`, id))
}

// ListPaginated retrieves courses with pagination and optional department/level filters.
func (r *CourseRepository) ListPaginated(ctx context.Context, departmentID, level *int, limit, offset int) ([]model.Course, int, error) {
	where := ``
	var args []interface{}
	argIdx := 1

	if departmentID != nil {
		where = ` WHERE department_id = $1`
		args = append(args, *departmentID)
		argIdx++
	}
	if level != nil {
		if where == "" {
			where = ` WHERE`
		} else {
			where += ` AND`
		}
		where += ` level = $` + strconv.Itoa(argIdx)
		args = append(args, *level)
		argIdx++
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM courses`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + courseColumns + ` FROM courses` + where +
		` ORDER BY code LIMIT $` + strconv.Itoa(argIdx) + ` OFFSET $` + strconv.Itoa(argIdx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, 0, err
		}
		courses = append(courses, *c)
	}
	return courses, total, rows.Err()
}

// ListForStudent retrieves the courses matching a student's department and level.
func (r *CourseRepository) ListForStudent(ctx context.Context, departmentID, level int) ([]model.Course, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+courseColumns+` FROM courses
		 WHERE department_id = $1 AND level = $2 ORDER BY semester, code`,
		departmentID, level)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, *c)
	}
	return courses, rows.Err()
}

// Create inserts a new course.
func (r *CourseRepository) Create(ctx context.Context, c *model.Course) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO courses (code, title, units, level, semester, department_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		c.Code, c.Title, c.Units, c.Level, c.Semester, c.DepartmentID,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// Update modifies an existing course.
func (r *CourseRepository) Update(ctx context.Context, c *model.Course) error {
	return r.pool.QueryRow(ctx,
		`UPDATE courses
		 SET code = $1, title = $2, units = $3, level = $4, semester = $5, department_id = $6, updated_at = NOW()
		 WHERE id = $7
		 RETURNING created_at, updated_at`,
		c.Code, c.Title, c.Units, c.Level, c.Semester, c.DepartmentID, c.ID,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
}

// Delete removes a course.
func (r *CourseRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	return err
}
