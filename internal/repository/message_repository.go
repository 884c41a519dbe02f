package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/campuscore-backend/internal/model"
)

// MessageRepository handles direct message data access.
type MessageRepository struct {
	pool *pgxpool.Pool
}

// NewMessageRepository creates a new MessageRepository.
func NewMessageRepository(pool *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{pool: pool}
}

// GetByID retrieves a message by ID.
func (r *MessageRepository) GetByID(ctx context.Context, id int) (*model.Message, error) {
	m := &model.Message{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, sender_type, sender_id, recipient_type, recipient_id, body, read_at, created_at
		 FROM messages WHERE id = $1`, id,
	).Scan(&m.ID, &m.SenderType, &m.SenderID, &m.RecipientType, &m.RecipientID, &m.Body, &m.ReadAt, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// ListForParty retrieves messages sent to or by an account, newest first.
func (r *MessageRepository) ListForParty(ctx context.Context, partyType model.PartyType, partyID, limit, offset int) ([]model.Message, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, sender_type, sender_id, recipient_type, recipient_id, body, read_at, created_at
		 FROM messages
		 WHERE (recipient_type = $1 AND recipient_id = $2) OR (sender_type = $1 AND sender_id = $2)
		 ORDER BY created_at DESC
		 LIMIT $3 OFFSET $4`, partyType, partyID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []model.Message
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.ID, &m.SenderType, &m.SenderID, &m.RecipientType, &m.RecipientID,
			&m.Body, &m.ReadAt, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// Create inserts a new message.
func (r *MessageRepository) Create(ctx context.Context, m *model.Message) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO messages (sender_type, sender_id, recipient_type, recipient_id, body)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		m.SenderType, m.SenderID, m.RecipientType, m.RecipientID, m.Body,
	).Scan(&m.ID, &m.CreatedAt)
}

// MarkRead stamps read_at on a message, only for its recipient.
func (r *MessageRepository) MarkRead(ctx context.Context, id int, recipientType model.PartyType, recipientID int) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE messages SET read_at = NOW()
		 WHERE id = $1 AND recipient_type = $2 AND recipient_id = $3 AND read_at IS NULL`,
		id, recipientType, recipientID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
