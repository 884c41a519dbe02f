package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/campuscore-backend/internal/model"
)

// ErrItemDecided is returned when a decision targets an item that is no
// longer PENDING.
var ErrItemDecided = errors.New("clearance item already decided")

// ClearanceRepository handles clearance workflow data access.
type ClearanceRepository struct {
	pool *pgxpool.Pool
}

// NewClearanceRepository creates a new ClearanceRepository.
func NewClearanceRepository(pool *pgxpool.Pool) *ClearanceRepository {
	return &ClearanceRepository{pool: pool}
}

// Open creates a clearance with one PENDING item per unit, in one transaction.
func (r *ClearanceRepository) Open(ctx context.Context, c *model.Clearance) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO clearances (student_id, session, status)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		c.StudentID, c.Session, c.Status,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return err
	}

	for _, unit := range model.AllClearanceUnits {
		if _, err := tx.Exec(ctx,
			`INSERT INTO clearance_items (clearance_id, unit, status) VALUES ($1, $2, 'PENDING')`,
			c.ID, unit); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// GetByID retrieves a clearance with its items.
func (r *ClearanceRepository) GetByID(ctx context.Context, id int) (*model.Clearance, error) {
	c := &model.Clearance{}
	err := r.pool.QueryRow(ctx,
		`SELECT c.id, c.student_id, c.session, c.status, c.created_at, c.updated_at, s.name, s.matric_no
		 FROM clearances c JOIN students s ON c.student_id = s.id
		 WHERE c.id = $1`, id,
	).Scan(&c.ID, &c.StudentID, &c.Session, &c.Status, &c.CreatedAt, &c.UpdatedAt, &c.StudentName, &c.MatricNo)
	if err != nil {
		return nil, err
	}

	items, err := r.listItems(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	c.Items = items
	return c, nil
}

// GetForStudent retrieves a student's clearance for one session, with items.
func (r *ClearanceRepository) GetForStudent(ctx context.Context, studentID int, session string) (*model.Clearance, error) {
	c := &model.Clearance{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, student_id, session, status, created_at, updated_at
		 FROM clearances WHERE student_id = $1 AND session = $2`, studentID, session,
	).Scan(&c.ID, &c.StudentID, &c.Session, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}

	items, err := r.listItems(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	c.Items = items
	return c, nil
}

// ListPendingForUnit retrieves clearances whose item for the given unit is
// still PENDING, for that unit's work queue.
func (r *ClearanceRepository) ListPendingForUnit(ctx context.Context, unit model.ClearanceUnit, session string) ([]model.Clearance, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT c.id, c.student_id, c.session, c.status, c.created_at, c.updated_at, s.name, s.matric_no
		 FROM clearances c
		 JOIN clearance_items i ON i.clearance_id = c.id
		 JOIN students s ON c.student_id = s.id
		 WHERE i.unit = $1 AND i.status = 'PENDING' AND c.session = $2
		 ORDER BY c.created_at`, unit, session)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clearances []model.Clearance
	for rows.Next() {
		var c model.Clearance
		if err := rows.Scan(&c.ID, &c.StudentID, &c.Session, &c.Status, &c.CreatedAt, &c.UpdatedAt,
			&c.StudentName, &c.MatricNo); err != nil {
			return nil, err
		}
		clearances = append(clearances, c)
	}
	return clearances, rows.Err()
}

// DecideItem records a unit's decision and recomputes the overall status in
// the same transaction. Returns the refreshed clearance.
func (r *ClearanceRepository) DecideItem(ctx context.Context, clearanceID int, unit model.ClearanceUnit, status model.ItemStatus, staffID int, note string, derive func([]model.ClearanceItem) model.ClearanceStatus) (*model.Clearance, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE clearance_items
		 SET status = $1, acted_by = $2, note = $3, updated_at = NOW()
		 WHERE clearance_id = $4 AND unit = $5 AND status = 'PENDING'`,
		status, staffID, note, clearanceID, unit)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrItemDecided
	}

	rows, err := tx.Query(ctx,
		`SELECT id, clearance_id, unit, status, acted_by, COALESCE(note, ''), updated_at
		 FROM clearance_items WHERE clearance_id = $1 ORDER BY id`, clearanceID)
	if err != nil {
		return nil, err
	}
	items, err := collectItems(rows)
	if err != nil {
		return nil, err
	}

	overall := derive(items)
	if _, err := tx.Exec(ctx,
		`UPDATE clearances SET status = $1, updated_at = NOW() WHERE id = $2`,
		overall, clearanceID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, clearanceID)
}

func (r *ClearanceRepository) listItems(ctx context.Context, clearanceID int) ([]model.ClearanceItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, clearance_id, unit, status, acted_by, COALESCE(note, ''), updated_at
		 FROM clearance_items WHERE clearance_id = $1 ORDER BY id`, clearanceID)
	if err != nil {
		return nil, err
	}
	return collectItems(rows)
}

func collectItems(rows interface {
	Next() bool
	Scan(...any) error
	Close()
	Err() error
}) ([]model.ClearanceItem, error) {
	defer rows.Close()
	var items []model.ClearanceItem
	for rows.Next() {
		var item model.ClearanceItem
		if err := rows.Scan(&item.ID, &item.ClearanceID, &item.Unit, &item.Status, &item.ActedBy,
			&item.Note, &item.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
