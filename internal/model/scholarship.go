package model

import "time"

// ScholarshipStatus enumerates scholarship availability states.
type ScholarshipStatus string

const (
	ScholarshipOpen   ScholarshipStatus = "OPEN"
	ScholarshipClosed ScholarshipStatus = "CLOSED"
)

// Scholarship represents a sponsored award students can apply for.
type Scholarship struct {
	ID        int               `json:"id"`
	Name      string            `json:"name"`
	Sponsor   string            `json:"sponsor"`
	Amount    float64           `json:"amount"`
	Session   string            `json:"session"`
	Deadline  time.Time         `json:"deadline"`
	Status    ScholarshipStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// ScholarshipApplicationStatus enumerates application outcomes.
type ScholarshipApplicationStatus string

const (
	ScholarshipAppPending  ScholarshipApplicationStatus = "PENDING"
	ScholarshipAppAwarded  ScholarshipApplicationStatus = "AWARDED"
	ScholarshipAppRejected ScholarshipApplicationStatus = "REJECTED"
)

// ScholarshipApplication is a student's application for a scholarship.
type ScholarshipApplication struct {
	ID            int                          `json:"id"`
	ScholarshipID int                          `json:"scholarship_id"`
	StudentID     int                          `json:"student_id"`
	Status        ScholarshipApplicationStatus `json:"status"`
	CreatedAt     time.Time                    `json:"created_at"`
	UpdatedAt     time.Time                    `json:"updated_at"`

	// Joined fields for listings.
	StudentName     string `json:"student_name,omitempty"`
	MatricNo        string `json:"matric_no,omitempty"`
	ScholarshipName string `json:"scholarship_name,omitempty"`
}

// CreateScholarshipRequest is the payload for creating or updating a scholarship.
type CreateScholarshipRequest struct {
	Name     string    `json:"name" binding:"required,min=3,max=200"`
	Sponsor  string    `json:"sponsor" binding:"required,min=2,max=200"`
	Amount   float64   `json:"amount" binding:"required,gt=0"`
	Deadline time.Time `json:"deadline" binding:"required"`
}

// DecideScholarshipRequest is the payload for awarding or rejecting an application.
type DecideScholarshipRequest struct {
	Status ScholarshipApplicationStatus `json:"status" binding:"required,oneof=AWARDED REJECTED"`
}
