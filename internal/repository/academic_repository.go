package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/campuscore-backend/internal/model"
)

// AcademicRepository handles faculty and department data access.
type AcademicRepository struct {
	pool *pgxpool.Pool
}

// NewAcademicRepository creates a new AcademicRepository.
func NewAcademicRepository(pool *pgxpool.Pool) *AcademicRepository {
	return &AcademicRepository{pool: pool}
}

// ListFaculties retrieves all faculties.
func (r *AcademicRepository) ListFaculties(ctx context.Context) ([]model.Faculty, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, code, created_at, updated_at FROM faculties ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var faculties []model.Faculty
	for rows.Next() {
		var f model.Faculty
		if err := rows.Scan(&f.ID, &f.Name, &f.Code, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		faculties = append(faculties, f)
	}
	return faculties, rows.Err()
}

// CreateFaculty inserts a new faculty.
func (r *AcademicRepository) CreateFaculty(ctx context.Context, f *model.Faculty) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO faculties (name, code) VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		f.Name, f.Code,
	).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
}

// UpdateFaculty modifies an existing faculty.
func (r *AcademicRepository) UpdateFaculty(ctx context.Context, f *model.Faculty) error {
	return r.pool.QueryRow(ctx,
		`UPDATE faculties SET name = $1, code = $2, updated_at = NOW()
		 WHERE id = $3 RETURNING created_at, updated_at`,
		f.Name, f.Code, f.ID,
	).Scan(&f.CreatedAt, &f.UpdatedAt)
}

// DeleteFaculty removes a faculty.
func (r *AcademicRepository) DeleteFaculty(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM faculties WHERE id = $1`, id)
	return err
}

// GetDepartmentByID retrieves a department by ID.
func (r *AcademicRepository) GetDepartmentByID(ctx context.Context, id int) (*model.Department, error) {
	d := &model.Department{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, faculty_id, name, code, created_at, updated_at FROM departments WHERE id = $1`, id,
	).Scan(&d.ID, &d.FacultyID, &d.Name, &d.Code, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// ListDepartments retrieves all departments, optionally filtered by faculty.
func (r *AcademicRepository) ListDepartments(ctx context.Context, facultyID *int) ([]model.Department, error) {
	query := `SELECT id, faculty_id, name, code, created_at, updated_at FROM departments`
	var args []interface{}
	if facultyID != nil {
		query += ` WHERE faculty_id = $1`
		args = append(args, *facultyID)
	}
	query += ` ORDER BY name`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []model.Department
	for rows.Next() {
		var d model.Department
		if err := rows.Scan(&d.ID, &d.FacultyID, &d.Name, &d.Code, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

// CreateDepartment inserts a new department.
func (r *AcademicRepository) CreateDepartment(ctx context.Context, d *model.Department) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO departments (faculty_id, name, code) VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		d.FacultyID, d.Name, d.Code,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
}

// UpdateDepartment modifies an existing department.
func (r *AcademicRepository) UpdateDepartment(ctx context.Context, d *model.Department) error {
	return r.pool.QueryRow(ctx,
		`UPDATE departments SET faculty_id = $1, name = $2, code = $3, updated_at = NOW()
		 WHERE id = $4 RETURNING created_at, updated_at`,
		d.FacultyID, d.Name, d.Code, d.ID,
	).Scan(&d.CreatedAt, &d.UpdatedAt)
}

// DeleteDepartment removes a department.
func (r *AcademicRepository) DeleteDepartment(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	return err
}
