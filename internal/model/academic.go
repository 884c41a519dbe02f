package model

import "time"

// Faculty represents a faculty (college) grouping departments.
type Faculty struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Department represents an academic department within a faculty.
type Department struct {
	ID        int       `json:"id"`
	FacultyID int       `json:"faculty_id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateFacultyRequest is the payload for creating or updating a faculty.
type CreateFacultyRequest struct {
	Name string `json:"name" binding:"required,min=3,max=100"`
	Code string `json:"code" binding:"required,min=2,max=10"`
}

// CreateDepartmentRequest is the payload for creating or updating a department.
type CreateDepartmentRequest struct {
	FacultyID int    `json:"faculty_id" binding:"required"`
	Name      string `json:"name" binding:"required,min=3,max=100"`
	Code      string `json:"code" binding:"required,min=2,max=10"`
}
