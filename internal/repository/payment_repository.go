package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/campuscore-backend/internal/model"
)

// ErrPaymentNotPending is returned when a decision targets a payment that has
// already reached a terminal state.
var ErrPaymentNotPending = errors.New("payment is not pending")

// PaymentRepository handles payment data access.
type PaymentRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository creates a new PaymentRepository.
func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{pool: pool}
}

const paymentSelect = `SELECT p.id, p.student_id, p.purpose, p.amount, p.session, p.reference,
       p.status, p.confirmed_by, p.paid_at, p.created_at, p.updated_at, s.name, s.matric_no
       FROM payments p JOIN students s ON p.student_id = s.id`

func scanPayment(row interface{ Scan(...any) error }) (*model.Payment, error) {
	p := &model.Payment{}
	err := row.Scan(&p.ID, &p.StudentID, &p.Purpose, &p.Amount, &p.Session, &p.Reference,
		&p.Status, &p.ConfirmedBy, &p.PaidAt, &p.CreatedAt, &p.UpdatedAt, &p.StudentName, &p.MatricNo)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GetByID retrieves a payment by its id.
func (r *PaymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Payment, error) {
	return scanPayment(r.pool.QueryRow(ctx, paymentSelect+` WHERE p.id = $1`, id))
}

// GetByReference retrieves a payment by its unique reference.
func (r *PaymentRepository) GetByReference(ctx context.Context, reference string) (*model.Payment, error) {
	return scanPayment(r.pool.QueryRow(ctx, paymentSelect+` WHERE p.reference = $1`, reference))
}

// ListByStudent retrieves a student's payments, newest first.
func (r *PaymentRepository) ListByStudent(ctx context.Context, studentID int) ([]model.Payment, error) {
	rows, err := r.pool.Query(ctx, paymentSelect+` WHERE p.student_id = $1 ORDER BY p.created_at DESC`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []model.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, *p)
	}
	return payments, rows.Err()
}

// ListPaginated retrieves payments with pagination and optional status filter.
func (r *PaymentRepository) ListPaginated(ctx context.Context, status *model.PaymentStatus, limit, offset int) ([]model.Payment, int, error) {
	where := ``
	var args []interface{}
	argIdx := 1
	if status != nil {
		where = ` WHERE p.status = $1`
		args = append(args, *status)
		argIdx++
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM payments p`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := paymentSelect + where +
		` ORDER BY p.created_at DESC LIMIT $` + strconv.Itoa(argIdx) + ` OFFSET $` + strconv.Itoa(argIdx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var payments []model.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, 0, err
		}
		payments = append(payments, *p)
	}
	return payments, total, rows.Err()
}

// Create inserts a new pending payment.
func (r *PaymentRepository) Create(ctx context.Context, p *model.Payment) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO payments (id, student_id, purpose, amount, session, reference, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at, updated_at`,
		p.ID, p.StudentID, p.Purpose, p.Amount, p.Session, p.Reference, p.Status,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}

// Decide transitions a PENDING payment to CONFIRMED or FAILED. The status
// guard in the WHERE clause makes terminal states immutable even under
// concurrent decisions.
func (r *PaymentRepository) Decide(ctx context.Context, id uuid.UUID, status model.PaymentStatus, staffID int) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE payments
		 SET status = $1, confirmed_by = $2,
		     paid_at = CASE WHEN $1 = 'CONFIRMED' THEN NOW() ELSE paid_at END,
		     updated_at = NOW()
		 WHERE id = $3 AND status = 'PENDING'`,
		status, staffID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPaymentNotPending
	}
	return nil
}
