package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/campuscore-backend/internal/model"
)

// StaffRepository handles staff data access.
type StaffRepository struct {
	pool *pgxpool.Pool
}

// NewStaffRepository creates a new StaffRepository.
func NewStaffRepository(pool *pgxpool.Pool) *StaffRepository {
	return &StaffRepository{pool: pool}
}

const staffSelect = `SELECT s.id, s.email, s.name, s.password_hash, s.role_id, r.name,
       s.department_id, COALESCE(s.clearance_unit, ''), s.created_at, s.updated_at
       FROM staff s JOIN roles r ON s.role_id = r.id`

func scanStaff(row interface{ Scan(...any) error }) (*model.Staff, error) {
	s := &model.Staff{}
	err := row.Scan(&s.ID, &s.Email, &s.Name, &s.PasswordHash, &s.RoleID, &s.RoleName,
		&s.DepartmentID, &s.ClearanceUnit, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetByID retrieves a staff member by ID.
func (r *StaffRepository) GetByID(ctx context.Context, id int) (*model.Staff, error) {
	return scanStaff(r.pool.QueryRow(ctx, staffSelect+` WHERE s.id = $1`, id))
}

// GetByEmail retrieves a staff member by their unique email.
func (r *StaffRepository) GetByEmail(ctx context.Context, email string) (*model.Staff, error) {
	return scanStaff(r.pool.QueryRow(ctx, staffSelect+` WHERE s.email = $1`, email))
}

// List retrieves all staff members ordered by name.
func (r *StaffRepository) List(ctx context.Context) ([]model.Staff, error) {
	rows, err := r.pool.Query(ctx, staffSelect+` ORDER BY s.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var staff []model.Staff
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}
		staff = append(staff, *s)
	}
	return staff, rows.Err()
}

// Create inserts a new staff member.
func (r *StaffRepository) Create(ctx context.Context, s *model.Staff) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO staff (email, name, password_hash, role_id, department_id, clearance_unit)
		 VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
		 RETURNING id, created_at, updated_at`,
		s.Email, s.Name, s.PasswordHash, s.RoleID, s.DepartmentID, string(s.ClearanceUnit),
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// Update modifies an existing staff member. An empty passwordHash keeps the current one.
func (r *StaffRepository) Update(ctx context.Context, s *model.Staff) error {
	return r.pool.QueryRow(ctx,
		`UPDATE staff
		 SET email = $1, name = $2,
		     password_hash = CASE WHEN $3 = '' THEN password_hash ELSE $3 END,
		     role_id = $4, department_id = $5, clearance_unit = NULLIF($6, ''),
		     updated_at = NOW()
		 WHERE id = $7
		 RETURNING created_at, updated_at`,
		s.Email, s.Name, s.PasswordHash, s.RoleID, s.DepartmentID, string(s.ClearanceUnit), s.ID,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
}

// Delete removes a staff member.
func (r *StaffRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM staff WHERE id = $1`, id)
	return err
}
