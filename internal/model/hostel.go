package model

import "time"

// Hostel represents a hostel building.
type Hostel struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Gender    Gender    `json:"gender"`
	Campus    string    `json:"campus"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Room represents a room within a hostel. Occupancy never exceeds Capacity;
// the allocation path enforces this with a conditional update and the schema
// backs it with a CHECK constraint.
type Room struct {
	ID        int       `json:"id"`
	HostelID  int       `json:"hostel_id"`
	Number    string    `json:"number"`
	Capacity  int       `json:"capacity"`
	Occupancy int       `json:"occupancy"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HostelApplicationStatus enumerates allocation workflow states.
type HostelApplicationStatus string

const (
	HostelApplicationPending   HostelApplicationStatus = "PENDING"
	HostelApplicationAllocated HostelApplicationStatus = "ALLOCATED"
	HostelApplicationRejected  HostelApplicationStatus = "REJECTED"
)

// HostelApplication is a student's request for a bed space in a session.
type HostelApplication struct {
	ID        int                     `json:"id"`
	StudentID int                     `json:"student_id"`
	HostelID  int                     `json:"hostel_id"`
	Session   string                  `json:"session"`
	Status    HostelApplicationStatus `json:"status"`
	RoomID    *int                    `json:"room_id,omitempty"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at"`

	// Joined fields for listings.
	StudentName string `json:"student_name,omitempty"`
	MatricNo    string `json:"matric_no,omitempty"`
	HostelName  string `json:"hostel_name,omitempty"`
	RoomNumber  string `json:"room_number,omitempty"`
}

// CreateHostelRequest is the payload for creating or updating a hostel.
type CreateHostelRequest struct {
	Name   string `json:"name" binding:"required,min=3,max=100"`
	Gender Gender `json:"gender" binding:"required,oneof=MALE FEMALE"`
	Campus string `json:"campus" binding:"required,min=2,max=100"`
}

// CreateRoomRequest is the payload for adding a room to a hostel.
type CreateRoomRequest struct {
	Number   string `json:"number" binding:"required,min=1,max=10"`
	Capacity int    `json:"capacity" binding:"required,min=1,max=12"`
}

// ApplyHostelRequest is the payload for a student's hostel application.
type ApplyHostelRequest struct {
	HostelID int `json:"hostel_id" binding:"required"`
}

// AllocateRequest is the payload for allocating an application to a room.
// RoomID is optional; when omitted the first room with free space is used.
type AllocateRequest struct {
	RoomID *int `json:"room_id" binding:"omitempty"`
}
