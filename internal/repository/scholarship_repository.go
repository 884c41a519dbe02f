package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/campuscore-backend/internal/model"
)

// ScholarshipRepository handles scholarship data access.
type ScholarshipRepository struct {
	pool *pgxpool.Pool
}

// NewScholarshipRepository creates a new ScholarshipRepository.
func NewScholarshipRepository(pool *pgxpool.Pool) *ScholarshipRepository {
	return &ScholarshipRepository{pool: pool}
}

const scholarshipColumns = `id, name, sponsor, amount, session, deadline, status, created_at, updated_at`

func scanScholarship(row interface{ Scan(...any) error }) (*model.Scholarship, error) {
	s := &model.Scholarship{}
	err := row.Scan(&s.ID, &s.Name, &s.Sponsor, &s.Amount, &s.Session, &s.Deadline, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetByID retrieves a scholarship by ID.
func (r *ScholarshipRepository) GetByID(ctx context.Context, id int) (*model.Scholarship, error) {
	return scanScholarship(r.pool.QueryRow(ctx,
		`SELECT `+scholarshipColumns+` FROM scholarships WHERE id = $1`, id))
}

// List retrieves scholarships, optionally only OPEN ones.
func (r *ScholarshipRepository) List(ctx context.Context, openOnly bool) ([]model.Scholarship, error) {
	query := `SELECT ` + scholarshipColumns + ` FROM scholarships`
	if openOnly {
		query += ` WHERE status = 'OPEN'`
	}
	query += ` ORDER BY deadline`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scholarships []model.Scholarship
	for rows.Next() {
		s, err := scanScholarship(rows)
		if err != nil {
			return nil, err
		}
		scholarships = append(scholarships, *s)
	}
	return scholarships, rows.Err()
}

// Create inserts a new scholarship.
func (r *ScholarshipRepository) Create(ctx context.Context, s *model.Scholarship) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO scholarships (name, sponsor, amount, session, deadline, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		s.Name, s.Sponsor, s.Amount, s.Session, s.Deadline, s.Status,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// Update modifies an existing scholarship.
func (r *ScholarshipRepository) Update(ctx context.Context, s *model.Scholarship) error {
	return r.pool.QueryRow(ctx,
		`UPDATE scholarships
		 SET name = $1, sponsor = $2, amount = $3, deadline = $4, status = $5, updated_at = NOW()
		 WHERE id = $6
		 RETURNING created_at, updated_at`,
		s.Name, s.Sponsor, s.Amount, s.Deadline, s.Status, s.ID,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
}

// Delete removes a scholarship.
func (r *ScholarshipRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM scholarships WHERE id = $1`, id)
	return err
}

// CreateApplication inserts a new application. The UNIQUE(scholarship_id,
// student_id) constraint rejects duplicates.
func (r *ScholarshipRepository) CreateApplication(ctx context.Context, a *model.ScholarshipApplication) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO scholarship_applications (scholarship_id, student_id, status)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		a.ScholarshipID, a.StudentID, a.Status,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

// GetApplicationByID retrieves one application with its scholarship name joined.
func (r *ScholarshipRepository) GetApplicationByID(ctx context.Context, id int) (*model.ScholarshipApplication, error) {
	a := &model.ScholarshipApplication{}
	err := r.pool.QueryRow(ctx,
		`SELECT a.id, a.scholarship_id, a.student_id, a.status, a.created_at, a.updated_at, sc.name
		 FROM scholarship_applications a JOIN scholarships sc ON a.scholarship_id = sc.id
		 WHERE a.id = $1`, id,
	).Scan(&a.ID, &a.ScholarshipID, &a.StudentID, &a.Status, &a.CreatedAt, &a.UpdatedAt, &a.ScholarshipName)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// ListApplications retrieves a scholarship's applications with student fields joined.
func (r *ScholarshipRepository) ListApplications(ctx context.Context, scholarshipID int) ([]model.ScholarshipApplication, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT a.id, a.scholarship_id, a.student_id, a.status, a.created_at, a.updated_at, s.name, s.matric_no
		 FROM scholarship_applications a JOIN students s ON a.student_id = s.id
		 WHERE a.scholarship_id = $1 ORDER BY a.created_at`, scholarshipID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []model.ScholarshipApplication
	for rows.Next() {
		var a model.ScholarshipApplication
		if err := rows.Scan(&a.ID, &a.ScholarshipID, &a.StudentID, &a.Status, &a.CreatedAt, &a.UpdatedAt,
			&a.StudentName, &a.MatricNo); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

// ListApplicationsByStudent retrieves a student's applications with scholarship names joined.
func (r *ScholarshipRepository) ListApplicationsByStudent(ctx context.Context, studentID int) ([]model.ScholarshipApplication, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT a.id, a.scholarship_id, a.student_id, a.status, a.created_at, a.updated_at, sc.name
		 FROM scholarship_applications a JOIN scholarships sc ON a.scholarship_id = sc.id
		 WHERE a.student_id = $1 ORDER BY a.created_at DESC`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []model.ScholarshipApplication
	for rows.Next() {
		var a model.ScholarshipApplication
		if err := rows.Scan(&a.ID, &a.ScholarshipID, &a.StudentID, &a.Status, &a.CreatedAt, &a.UpdatedAt,
			&a.ScholarshipName); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

// DecideApplication transitions a PENDING application to AWARDED or REJECTED.
func (r *ScholarshipRepository) DecideApplication(ctx context.Context, id int, status model.ScholarshipApplicationStatus) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE scholarship_applications SET status = $1, updated_at = NOW()
		 WHERE id = $2 AND status = 'PENDING'`, status, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
