package model

import "time"

// PartyType distinguishes student and staff participants in messaging
// and notifications.
type PartyType string

const (
	PartyStudent PartyType = "student"
	PartyStaff   PartyType = "staff"
)

// Message is a direct message between two accounts.
type Message struct {
	ID            int        `json:"id"`
	SenderType    PartyType  `json:"sender_type"`
	SenderID      int        `json:"sender_id"`
	RecipientType PartyType  `json:"recipient_type"`
	RecipientID   int        `json:"recipient_id"`
	Body          string     `json:"body"`
	ReadAt        *time.Time `json:"read_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// SendMessageRequest is the payload for sending a direct message.
type SendMessageRequest struct {
	RecipientType PartyType `json:"recipient_type" binding:"required,oneof=student staff"`
	RecipientID   int       `json:"recipient_id" binding:"required"`
	Body          string    `json:"body" binding:"required,min=1,max=4000"`
}
