package model

import "time"

// Staff represents a staff account (lecturer, bursary officer, admin).
// DepartmentID is nil for central units such as the bursary or registry.
type Staff struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	RoleID       int       `json:"role_id"`
	RoleName     string    `json:"role_name,omitempty"`
	DepartmentID *int      `json:"department_id,omitempty"`
	// ClearanceUnit is the clearance desk this staff member acts for,
	// empty if they hold no clearance duty.
	ClearanceUnit ClearanceUnit `json:"clearance_unit,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// StaffLoginRequest is the payload for staff authentication.
type StaffLoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}

// StaffLoginResponse is returned after successful staff login.
type StaffLoginResponse struct {
	Token       string   `json:"token"`
	Staff       Staff    `json:"staff"`
	Permissions []string `json:"permissions"`
}

// CreateStaffRequest is the payload for creating a staff account.
type CreateStaffRequest struct {
	Email         string        `json:"email" binding:"required,email,max=255"`
	Name          string        `json:"name" binding:"required,min=2,max=100"`
	Password      string        `json:"password" binding:"required,min=6,max=128"`
	RoleID        int           `json:"role_id" binding:"required"`
	DepartmentID  *int          `json:"department_id" binding:"omitempty"`
	ClearanceUnit ClearanceUnit `json:"clearance_unit" binding:"omitempty,oneof=LIBRARY BURSARY HOSTEL ACADEMIC STUDENT_AFFAIRS"`
}

// UpdateStaffRequest is the payload for updating a staff account.
type UpdateStaffRequest struct {
	Email         string        `json:"email" binding:"required,email,max=255"`
	Name          string        `json:"name" binding:"required,min=2,max=100"`
	Password      string        `json:"password" binding:"omitempty,min=6,max=128"`
	RoleID        int           `json:"role_id" binding:"required"`
	DepartmentID  *int          `json:"department_id" binding:"omitempty"`
	ClearanceUnit ClearanceUnit `json:"clearance_unit" binding:"omitempty,oneof=LIBRARY BURSARY HOSTEL ACADEMIC STUDENT_AFFAIRS"`
}
