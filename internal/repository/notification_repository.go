package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/campuscore-backend/internal/model"
)

// NotificationRepository handles notification data access.
type NotificationRepository struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository creates a new NotificationRepository.
func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

// ListForRecipient retrieves a recipient's notifications, newest first.
func (r *NotificationRepository) ListForRecipient(ctx context.Context, recipientType model.PartyType, recipientID, limit, offset int) ([]model.Notification, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, recipient_type, recipient_id, title, body, read, created_at
		 FROM notifications
		 WHERE recipient_type = $1 AND recipient_id = $2
		 ORDER BY created_at DESC
		 LIMIT $3 OFFSET $4`, recipientType, recipientID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []model.Notification
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.RecipientType, &n.RecipientID, &n.Title, &n.Body, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// UnreadCount returns how many unread notifications a recipient has.
func (r *NotificationRepository) UnreadCount(ctx context.Context, recipientType model.PartyType, recipientID int) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications
		 WHERE recipient_type = $1 AND recipient_id = $2 AND read = FALSE`,
		recipientType, recipientID,
	).Scan(&count)
	return count, err
}

// MarkRead marks a single notification read, only for its recipient.
func (r *NotificationRepository) MarkRead(ctx context.Context, id int, recipientType model.PartyType, recipientID int) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE notifications SET read = TRUE
		 WHERE id = $1 AND recipient_type = $2 AND recipient_id = $3`,
		id, recipientType, recipientID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// MarkAllRead marks all of a recipient's notifications read.
func (r *NotificationRepository) MarkAllRead(ctx context.Context, recipientType model.PartyType, recipientID int) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE notifications SET read = TRUE
		 WHERE recipient_type = $1 AND recipient_id = $2 AND read = FALSE`,
		recipientType, recipientID)
	return err
}

// BulkInsert inserts a batch of notifications with CopyFrom. Used by the
// notification worker to drain its queue efficiently.
func (r *NotificationRepository) BulkInsert(ctx context.Context, jobs []*model.NotifyJob) error {
	if len(jobs) == 0 {
		return nil
	}
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"notifications"},
		[]string{"recipient_type", "recipient_id", "title", "body"},
		pgx.CopyFromSlice(len(jobs), func(i int) ([]interface{}, error) {
			return []interface{}{string(jobs[i].RecipientType), jobs[i].RecipientID, jobs[i].Title, jobs[i].Body}, nil
		}),
	)
	return err
}
