package model

import "time"

// Semester identifies one of the two semesters in an academic session.
type Semester string

const (
	SemesterFirst  Semester = "FIRST"
	SemesterSecond Semester = "SECOND"
)

// Course represents a course offered by a department.
type Course struct {
	ID           int       `json:"id"`
	Code         string    `json:"code"`
	Title        string    `json:"title"`
	Units        int       `json:"units"`
	Level        int       `json:"level"`
	Semester     Semester  `json:"semester"`
	DepartmentID int       `json:"department_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateCourseRequest is the payload for creating or updating a course.
type CreateCourseRequest struct {
	Code         string   `json:"code" binding:"required,min=5,max=10"`
	Title        string   `json:"title" binding:"required,min=3,max=255"`
	Units        int      `json:"units" binding:"required,min=1,max=6"`
	Level        int      `json:"level" binding:"required,oneof=100 200 300 400 500 600"`
	Semester     Semester `json:"semester" binding:"required,oneof=FIRST SECOND"`
	DepartmentID int      `json:"department_id" binding:"required"`
}
