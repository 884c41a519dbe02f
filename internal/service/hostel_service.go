package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/campushq/campuscore-backend/internal/config"
	"github.com/campushq/campuscore-backend/internal/model"
	"github.com/campushq/campuscore-backend/internal/repository"
)

// ErrGenderMismatch is returned when a student applies to a hostel reserved
// for the other gender.
var ErrGenderMismatch = errors.New("hostel does not accommodate the student's gender")

// HostelService handles hostel CRUD and the allocation workflow.
type HostelService struct {
	hostelRepo  *repository.HostelRepository
	studentRepo *repository.StudentRepository
	notifSvc    *NotificationService
	cfg         *config.Config
}

// NewHostelService creates a new HostelService.
func NewHostelService(hostelRepo *repository.HostelRepository, studentRepo *repository.StudentRepository, notifSvc *NotificationService, cfg *config.Config) *HostelService {
	return &HostelService{hostelRepo: hostelRepo, studentRepo: studentRepo, notifSvc: notifSvc, cfg: cfg}
}

// GetHostel retrieves a hostel with its rooms.
func (s *HostelService) GetHostel(ctx context.Context, id int) (*model.Hostel, []model.Room, error) {
	hostel, err := s.hostelRepo.GetHostelByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	rooms, err := s.hostelRepo.ListRooms(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return hostel, rooms, nil
}

// ListHostels retrieves all hostels.
func (s *HostelService) ListHostels(ctx context.Context) ([]model.Hostel, error) {
	return s.hostelRepo.ListHostels(ctx)
}

// CreateHostel creates a hostel.
func (s *HostelService) CreateHostel(ctx context.Context, req *model.CreateHostelRequest) (*model.Hostel, error) {
	hostel := &model.Hostel{Name: req.Name, Gender: req.Gender}
	if err := s.hostelRepo.CreateHostel(ctx, hostel); err != nil {
		return nil, err
	}
	return hostel, nil
}

// UpdateHostel updates a hostel's name and gender.
func (s *HostelService) UpdateHostel(ctx context.Context, id int, req *model.CreateHostelRequest) (*model.Hostel, error) {
	hostel, err := s.hostelRepo.GetHostelByID(ctx, id)
	if err != nil {
		return nil, err
	}
	hostel.Name = req.Name
	hostel.Gender = req.Gender
	if err := s.hostelRepo.UpdateHostel(ctx, hostel); err != nil {
		return nil, err
	}
	return hostel, nil
}

// DeleteHostel removes a hostel and its rooms.
func (s *HostelService) DeleteHostel(ctx context.Context, id int) error {
	return s.hostelRepo.DeleteHostel(ctx, id)
}

// CreateRoom adds a room to a hostel.
func (s *HostelService) CreateRoom(ctx context.Context, hostelID int, req *model.CreateRoomRequest) (*model.Room, error) {
	if _, err := s.hostelRepo.GetHostelByID(ctx, hostelID); err != nil {
		return nil, err
	}
	room := &model.Room{HostelID: hostelID, Number: req.Number, Capacity: req.Capacity}
	if err := s.hostelRepo.CreateRoom(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// DeleteRoom removes a room.
func (s *HostelService) DeleteRoom(ctx context.Context, id int) error {
	return s.hostelRepo.DeleteRoom(ctx, id)
}

// Apply files a hostel application for the current session. The hostel's
// gender must match the student's, and a student holds at most one
// application per session.
func (s *HostelService) Apply(ctx context.Context, studentID int, req *model.ApplyHostelRequest) (*model.HostelApplication, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	hostel, err := s.hostelRepo.GetHostelByID(ctx, req.HostelID)
	if err != nil {
		return nil, err
	}
	if hostel.Gender != student.Gender {
		return nil, ErrGenderMismatch
	}

	app := &model.HostelApplication{
		StudentID: studentID,
		HostelID:  req.HostelID,
		Session:   s.cfg.CurrentSession,
		Status:    model.HostelApplicationPending,
	}
	if err := s.hostelRepo.CreateApplication(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// MyApplication retrieves the calling student's application for the current
// session.
func (s *HostelService) MyApplication(ctx context.Context, studentID int) (*model.HostelApplication, error) {
	return s.hostelRepo.GetApplicationForStudent(ctx, studentID, s.cfg.CurrentSession)
}

// ListApplications retrieves a hostel's applications for the current session.
func (s *HostelService) ListApplications(ctx context.Context, hostelID int) ([]model.HostelApplication, error) {
	return s.hostelRepo.ListApplications(ctx, hostelID, s.cfg.CurrentSession)
}

// Allocate assigns a room to a pending application. When roomID is nil the
// first room with free space is picked. The occupancy bookkeeping happens in
// a single transaction, so concurrent allocations never oversell a room.
func (s *HostelService) Allocate(ctx context.Context, applicationID int, roomID *int) (*model.HostelApplication, error) {
	app, err := s.hostelRepo.Allocate(ctx, applicationID, roomID)
	if err != nil {
		return nil, err
	}

	s.notifSvc.Enqueue(ctx, model.PartyStudent, app.StudentID, "Hostel allocated",
		fmt.Sprintf("You have been allocated room %s in %s for %s.", app.RoomNumber, app.HostelName, app.Session))
	return app, nil
}

// Reject declines a pending application.
func (s *HostelService) Reject(ctx context.Context, applicationID int) error {
	app, err := s.hostelRepo.GetApplicationByID(ctx, applicationID)
	if err != nil {
		return err
	}
	if err := s.hostelRepo.RejectApplication(ctx, applicationID); err != nil {
		return err
	}

	s.notifSvc.Enqueue(ctx, model.PartyStudent, app.StudentID, "Hostel application rejected",
		fmt.Sprintf("Your hostel application for %s was not successful.", app.Session))
	return nil
}
