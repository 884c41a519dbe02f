package repository

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/campuscore-backend/internal/model"
)

// StudentRepository handles student data access.
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

const studentColumns = `id, matric_no, email, name, gender, level, department_id, password_hash, created_at, updated_at`

func scanStudent(row interface{ Scan(...any) error }) (*model.Student, error) {
	s := &model.Student{}
	err := row.Scan(&s.ID, &s.MatricNo, &s.Email, &s.Name, &s.Gender, &s.Level, &s.DepartmentID, &s.PasswordHash, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetByID retrieves a student by ID.
func (r *StudentRepository) GetByID(ctx context.Context, id int) (*model.Student, error) {
	return scanStudent(r.pool.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE id = $1`, id))
}

// GetByIdentifier retrieves a student by matric number or email.
func (r *StudentRepository) GetByIdentifier(ctx context.Context, identifier string) (*model.Student, error) {
	return scanStudent(r.pool.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE matric_no = $1 OR email = $1`, identifier))
}

// ListPaginated retrieves students with pagination and optional department/level filters.
func (r *StudentRepository) ListPaginated(ctx context.Context, departmentID, level *int, limit, offset int) ([]model.Student, int, error) {
	where := ``
	var args []interface{}
	argIdx := 1

	if departmentID != nil {
		where += ` WHERE department_id = $` + strconv.Itoa(argIdx)
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
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM students`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + studentColumns + ` FROM students` + where +
		` ORDER BY name LIMIT $` + strconv.Itoa(argIdx) + ` OFFSET $` + strconv.Itoa(argIdx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, 0, err
		}
		students = append(students, *s)
	}
	return students, total, rows.Err()
}

// ListIDsByAudience returns student IDs filtered by level and/or department.
// Zero values mean "any". Used for notification broadcasts.
func (r *StudentRepository) ListIDsByAudience(ctx context.Context, level, departmentID int) ([]int, error) {
	query := `SELECT id FROM students WHERE ($1 = 0 OR level = $1) AND ($2 = 0 OR department_id = $2)`
	rows, err := r.pool.Query(ctx, query, level, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Create inserts a new student.
func (r *StudentRepository) Create(ctx context.Context, s *model.Student) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO students (matric_no, email, name, gender, level, department_id, password_hash)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		s.MatricNo, s.Email, s.Name, s.Gender, s.Level, s.DepartmentID, s.PasswordHash,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// Update modifies an existing student. An empty passwordHash keeps the current one.
func (r *StudentRepository) Update(ctx context.Context, s *model.Student) error {
	return r.pool.QueryRow(ctx,
		`UPDATE students
		 SET matric_no = $1, email = $2, name = $3, gender = $4, level = $5, department_id = $6,
		     password_hash = CASE WHEN $7 = '' THEN password_hash ELSE $7 END,
		     updated_at = NOW()
		 WHERE id = $8
		 RETURNING created_at, updated_at`,
		s.MatricNo, s.Email, s.Name, s.Gender, s.Level, s.DepartmentID, s.PasswordHash, s.ID,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
}

// Delete removes a student.
func (r *StudentRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	return err
}
