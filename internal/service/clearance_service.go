package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/campushq/campuscore-backend/internal/config"
	"github.com/campushq/campuscore-backend/internal/model"
	"github.com/campushq/campuscore-backend/internal/repository"
)

// ErrWrongUnit is returned when staff decide an item outside their desk.
var ErrWrongUnit = errors.New("staff cannot act for this clearance unit")

// ClearanceService runs the multi-desk clearance workflow. Every desk holds
// one item per clearance; the overall status is always derived from the
// items, never set directly.
type ClearanceService struct {
	clearanceRepo *repository.ClearanceRepository
	notifSvc      *NotificationService
	cfg           *config.Config
}

// NewClearanceService creates a new ClearanceService.
func NewClearanceService(clearanceRepo *repository.ClearanceRepository, notifSvc *NotificationService, cfg *config.Config) *ClearanceService {
	return &ClearanceService{clearanceRepo: clearanceRepo, notifSvc: notifSvc, cfg: cfg}
}

// Open starts a clearance for the current session with one PENDING item per
// desk. The unique index on (student_id, session) blocks duplicates.
func (s *ClearanceService) Open(ctx context.Context, studentID int) (*model.Clearance, error) {
	clearance := &model.Clearance{
		StudentID: studentID,
		Session:   s.cfg.CurrentSession,
		Status:    model.ClearancePending,
	}
	if err := s.clearanceRepo.Open(ctx, clearance); err != nil {
		return nil, err
	}
	return clearance, nil
}

// GetMine retrieves the calling student's clearance for the current session.
func (s *ClearanceService) GetMine(ctx context.Context, studentID int) (*model.Clearance, error) {
	return s.clearanceRepo.GetForStudent(ctx, studentID, s.cfg.CurrentSession)
}

// Get retrieves a clearance with its items.
func (s *ClearanceService) Get(ctx context.Context, id int) (*model.Clearance, error) {
	return s.clearanceRepo.GetByID(ctx, id)
}

// ListPendingForUnit retrieves clearances whose item for the given desk is
// still PENDING.
func (s *ClearanceService) ListPendingForUnit(ctx context.Context, unit model.ClearanceUnit) ([]model.Clearance, error) {
	return s.clearanceRepo.ListPendingForUnit(ctx, unit, s.cfg.CurrentSession)
}

// DecideItem records a desk's approval or rejection. staffUnit must match the
// item's unit. The overall status is re-derived inside the same transaction
// and the student is notified of the new state.
func (s *ClearanceService) DecideItem(ctx context.Context, clearanceID int, unit model.ClearanceUnit, req *model.DecideClearanceRequest, staffID int, staffUnit model.ClearanceUnit) (*model.Clearance, error) {
	if staffUnit != unit {
		return nil, ErrWrongUnit
	}

	clearance, err := s.clearanceRepo.DecideItem(ctx, clearanceID, unit, req.Status, staffID, req.Note, DeriveStatus)
	if err != nil {
		return nil, err
	}

	title := "Clearance update"
	body := fmt.Sprintf("The %s desk marked your clearance item %s.", unit, req.Status)
	switch clearance.Status {
	case model.ClearanceCleared:
		title = "Clearance complete"
		body = fmt.Sprintf("All desks have approved your %s clearance.", clearance.Session)
	case model.ClearanceRejected:
		title = "Clearance rejected"
		body = fmt.Sprintf("The %s desk rejected your clearance. %s", unit, req.Note)
	}
	s.notifSvc.Enqueue(ctx, model.PartyStudent, clearance.StudentID, title, body)
	return clearance, nil
}

// DeriveStatus reduces per-desk items to the overall clearance status: any
// rejection rejects the clearance, all approvals clear it, any progress marks
// it in progress, otherwise it stays pending.
func DeriveStatus(items []model.ClearanceItem) model.ClearanceStatus {
	approved := 0
	for _, item := range items {
		switch item.Status {
		case model.ItemRejected:
			return model.ClearanceRejected
		case model.ItemApproved:
			approved++
		}
	}
	switch {
	case len(items) > 0 && approved == len(items):
		return model.ClearanceCleared
	case approved > 0:
		return model.ClearanceInProgress
	default:
		return model.ClearancePending
	}
}
