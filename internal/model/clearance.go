package model

import "time"

// ClearanceUnit identifies a desk that must sign off a student's clearance.
type ClearanceUnit string

const (
	ClearanceLibrary       ClearanceUnit = "LIBRARY"
	ClearanceBursary       ClearanceUnit = "BURSARY"
	ClearanceHostel        ClearanceUnit = "HOSTEL"
	ClearanceAcademic      ClearanceUnit = "ACADEMIC"
	ClearanceStudentAffair ClearanceUnit = "STUDENT_AFFAIRS"
)

// AllClearanceUnits lists every desk a clearance must pass through, in the
// order items are created.
var AllClearanceUnits = []ClearanceUnit{
	ClearanceLibrary,
	ClearanceBursary,
	ClearanceHostel,
	ClearanceAcademic,
	ClearanceStudentAffair,
}

// ClearanceStatus is the derived overall state of a clearance.
type ClearanceStatus string

const (
	ClearancePending    ClearanceStatus = "PENDING"
	ClearanceInProgress ClearanceStatus = "IN_PROGRESS"
	ClearanceCleared    ClearanceStatus = "CLEARED"
	ClearanceRejected   ClearanceStatus = "REJECTED"
)

// ItemStatus is the state of a single desk's sign-off.
type ItemStatus string

const (
	ItemPending  ItemStatus = "PENDING"
	ItemApproved ItemStatus = "APPROVED"
	ItemRejected ItemStatus = "REJECTED"
)

// Clearance is a student's clearance record for one session. Status is never
// written directly by handlers; it is recomputed from the items after every
// decision.
type Clearance struct {
	ID        int             `json:"id"`
	StudentID int             `json:"student_id"`
	Session   string          `json:"session"`
	Status    ClearanceStatus `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	Items []ClearanceItem `json:"items,omitempty"`

	// Joined fields for listings.
	StudentName string `json:"student_name,omitempty"`
	MatricNo    string `json:"matric_no,omitempty"`
}

// ClearanceItem is one desk's entry on a clearance.
type ClearanceItem struct {
	ID          int           `json:"id"`
	ClearanceID int           `json:"clearance_id"`
	Unit        ClearanceUnit `json:"unit"`
	Status      ItemStatus    `json:"status"`
	ActedBy     *int          `json:"acted_by,omitempty"`
	Note        string        `json:"note,omitempty"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// DecideClearanceRequest is the payload for approving or rejecting an item.
type DecideClearanceRequest struct {
	Status ItemStatus `json:"status" binding:"required,oneof=APPROVED REJECTED"`
	Note   string     `json:"note" binding:"omitempty,max=500"`
}
