package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/campuscore-backend/internal/model"
)

// ReportRepository runs the aggregate queries behind bursary reporting.
type ReportRepository struct {
	pool *pgxpool.Pool
}

// NewReportRepository creates a new ReportRepository.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{pool: pool}
}

// Totals returns the confirmed/pending/failed payment sums for a session.
func (r *ReportRepository) Totals(ctx context.Context, session string) (confirmed, pending, failed float64, err error) {
	err = r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount) FILTER (WHERE status = 'CONFIRMED'), 0),
		        COALESCE(SUM(amount) FILTER (WHERE status = 'PENDING'), 0),
		        COALESCE(SUM(amount) FILTER (WHERE status = 'FAILED'), 0)
		 FROM payments WHERE session = $1`, session,
	).Scan(&confirmed, &pending, &failed)
	return
}

// ByPurpose returns confirmed payment sums grouped by purpose for a session.
func (r *ReportRepository) ByPurpose(ctx context.Context, session string) ([]model.PurposeBreakdown, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT purpose, COUNT(*), COALESCE(SUM(amount), 0)
		 FROM payments
		 WHERE session = $1 AND status = 'CONFIRMED'
		 GROUP BY purpose ORDER BY purpose`, session)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var breakdown []model.PurposeBreakdown
	for rows.Next() {
		var b model.PurposeBreakdown
		if err := rows.Scan(&b.Purpose, &b.Count, &b.Amount); err != nil {
			return nil, err
		}
		breakdown = append(breakdown, b)
	}
	return breakdown, rows.Err()
}

// ByMonth returns confirmed payment sums grouped by paid month for a session.
func (r *ReportRepository) ByMonth(ctx context.Context, session string) ([]model.MonthlyBreakdown, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT to_char(paid_at, 'YYYY-MM'), COUNT(*), COALESCE(SUM(amount), 0)
		 FROM payments
		 WHERE session = $1 AND status = 'CONFIRMED' AND paid_at IS NOT NULL
		 GROUP BY 1 ORDER BY 1`, session)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var breakdown []model.MonthlyBreakdown
	for rows.Next() {
		var b model.MonthlyBreakdown
		if err := rows.Scan(&b.Month, &b.Count, &b.Amount); err != nil {
			return nil, err
		}
		breakdown = append(breakdown, b)
	}
	return breakdown, rows.Err()
}
