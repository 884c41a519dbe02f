package model

import "time"

// Gender represents the student's gender, used for hostel eligibility.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// Student represents a student account.
type Student struct {
	ID           int       `json:"id"`
	MatricNo     string    `json:"matric_no"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Gender       Gender    `json:"gender"`
	Level        int       `json:"level"`
	DepartmentID int       `json:"department_id"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// StudentLoginRequest is the payload for student authentication.
// Identifier accepts either a matric number or an email address.
type StudentLoginRequest struct {
	Identifier string `json:"identifier" binding:"required,min=4,max=100"`
	Password   string `json:"password" binding:"required,min=4,max=128"`
}

// StudentLoginResponse is returned after successful student login.
type StudentLoginResponse struct {
	Token   string  `json:"token"`
	Student Student `json:"student"`
}

// CreateStudentRequest is the payload for registering a new student.
type CreateStudentRequest struct {
	MatricNo     string `json:"matric_no" binding:"required,min=6,max=20"`
	Email        string `json:"email" binding:"required,email,max=100"`
	Name         string `json:"name" binding:"required,min=2,max=100"`
	Gender       Gender `json:"gender" binding:"required,oneof=MALE FEMALE"`
	Level        int    `json:"level" binding:"required,oneof=100 200 300 400 500 600"`
	DepartmentID int    `json:"department_id" binding:"required"`
	Password     string `json:"password" binding:"required,min=6,max=128"`
}

// UpdateStudentRequest is the payload for updating an existing student.
// Password is optional; empty keeps the current hash.
type UpdateStudentRequest struct {
	MatricNo     string `json:"matric_no" binding:"required,min=6,max=20"`
	Email        string `json:"email" binding:"required,email,max=100"`
	Name         string `json:"name" binding:"required,min=2,max=100"`
	Gender       Gender `json:"gender" binding:"required,oneof=MALE FEMALE"`
	Level        int    `json:"level" binding:"required,oneof=100 200 300 400 500 600"`
	DepartmentID int    `json:"department_id" binding:"required"`
	Password     string `json:"password" binding:"omitempty,min=6,max=128"`
}
