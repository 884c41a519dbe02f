package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentPurpose enumerates what a payment is for.
type PaymentPurpose string

const (
	PaymentTuition    PaymentPurpose = "TUITION"
	PaymentHostel     PaymentPurpose = "HOSTEL"
	PaymentAcceptance PaymentPurpose = "ACCEPTANCE"
	PaymentOther      PaymentPurpose = "OTHER"
)

// PaymentStatus enumerates payment lifecycle states. PENDING is the only
// non-terminal state.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentConfirmed PaymentStatus = "CONFIRMED"
	PaymentFailed    PaymentStatus = "FAILED"
)

// Payment represents a student payment record.
type Payment struct {
	ID          uuid.UUID      `json:"id"`
	StudentID   int            `json:"student_id"`
	Purpose     PaymentPurpose `json:"purpose"`
	Amount      float64        `json:"amount"`
	Session     string         `json:"session"`
	Reference   string         `json:"reference"`
	Status      PaymentStatus  `json:"status"`
	ConfirmedBy *int           `json:"confirmed_by,omitempty"`
	PaidAt      *time.Time     `json:"paid_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`

	// Joined fields for bursary views and receipts.
	StudentName string `json:"student_name,omitempty"`
	MatricNo    string `json:"matric_no,omitempty"`
}

// InitiatePaymentRequest is the payload for a student starting a payment.
type InitiatePaymentRequest struct {
	Purpose PaymentPurpose `json:"purpose" binding:"required,oneof=TUITION HOSTEL ACCEPTANCE OTHER"`
	Amount  float64        `json:"amount" binding:"required,gt=0"`
}

// DecidePaymentRequest is the payload for confirming or failing a payment.
type DecidePaymentRequest struct {
	Status PaymentStatus `json:"status" binding:"required,oneof=CONFIRMED FAILED"`
}
