package model

import "time"

// EnrollmentStatus enumerates the possible states of an enrollment.
type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "ACTIVE"
	EnrollmentDropped   EnrollmentStatus = "DROPPED"
	EnrollmentCompleted EnrollmentStatus = "COMPLETED"
)

// Enrollment ties a student to a course for a session.
type Enrollment struct {
	ID        int              `json:"id"`
	StudentID int              `json:"student_id"`
	CourseID  int              `json:"course_id"`
	Session   string           `json:"session"`
	Semester  Semester         `json:"semester"`
	Status    EnrollmentStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`

	// Joined fields, populated on listing queries.
	CourseCode  string `json:"course_code,omitempty"`
	CourseTitle string `json:"course_title,omitempty"`
	CourseUnits int    `json:"course_units,omitempty"`
	StudentName string `json:"student_name,omitempty"`
	MatricNo    string `json:"matric_no,omitempty"`
}

// EnrollRequest is the payload for enrolling a student in a course.
type EnrollRequest struct {
	CourseID int `json:"course_id" binding:"required"`
}

// AdminEnrollRequest is the payload for staff-driven enrollment.
type AdminEnrollRequest struct {
	StudentID int    `json:"student_id" binding:"required"`
	CourseID  int    `json:"course_id" binding:"required"`
	Session   string `json:"session" binding:"omitempty,len=9"`
}
