package model

import "time"

// Notification is a system message delivered to one recipient. Rows are
// inserted in batches by the notification worker; live delivery goes over
// Redis Pub/Sub to the WebSocket stream.
type Notification struct {
	ID            int       `json:"id"`
	RecipientType PartyType `json:"recipient_type"`
	RecipientID   int       `json:"recipient_id"`
	Title         string    `json:"title"`
	Body          string    `json:"body"`
	Read          bool      `json:"read"`
	CreatedAt     time.Time `json:"created_at"`
}

// NotifyJob is the queue payload consumed by the notification worker.
type NotifyJob struct {
	RecipientType PartyType `json:"recipient_type"`
	RecipientID   int       `json:"recipient_id"`
	Title         string    `json:"title"`
	Body          string    `json:"body"`
}

// BroadcastRequest is the payload for a staff broadcast. Level and
// DepartmentID narrow the student audience; both zero means all students.
type BroadcastRequest struct {
	Title        string `json:"title" binding:"required,min=3,max=200"`
	Body         string `json:"body" binding:"required,min=1,max=4000"`
	Level        int    `json:"level" binding:"omitempty,oneof=100 200 300 400 500 600"`
	DepartmentID int    `json:"department_id" binding:"omitempty"`
}
