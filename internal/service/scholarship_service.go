package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/campushq/campuscore-backend/internal/config"
	"github.com/campushq/campuscore-backend/internal/model"
	"github.com/campushq/campuscore-backend/internal/repository"
)

// Scholarship errors surfaced to handlers.
var (
	ErrScholarshipClosed   = errors.New("scholarship is closed")
	ErrDeadlinePassed      = errors.New("scholarship deadline has passed")
	ErrApplicationNotFound = errors.New("scholarship application not found or already decided")
)

// ScholarshipService handles scholarships and their applications.
type ScholarshipService struct {
	scholarshipRepo *repository.ScholarshipRepository
	notifSvc        *NotificationService
	cfg             *config.Config
}

// NewScholarshipService creates a new ScholarshipService.
func NewScholarshipService(scholarshipRepo *repository.ScholarshipRepository, notifSvc *NotificationService, cfg *config.Config) *ScholarshipService {
	return &ScholarshipService{scholarshipRepo: scholarshipRepo, notifSvc: notifSvc, cfg: cfg}
}

// List retrieves scholarships. Students only see OPEN ones.
func (s *ScholarshipService) List(ctx context.Context, openOnly bool) ([]model.Scholarship, error) {
	return s.scholarshipRepo.List(ctx, openOnly)
}

// Get retrieves a scholarship by id.
func (s *ScholarshipService) Get(ctx context.Context, id int) (*model.Scholarship, error) {
	return s.scholarshipRepo.GetByID(ctx, id)
}

// Create creates an OPEN scholarship for the current session.
func (s *ScholarshipService) Create(ctx context.Context, req *model.CreateScholarshipRequest) (*model.Scholarship, error) {
	scholarship := &model.Scholarship{
		Name:     req.Name,
		Sponsor:  req.Sponsor,
		Amount:   req.Amount,
		Session:  s.cfg.CurrentSession,
		Deadline: req.Deadline,
		Status:   model.ScholarshipOpen,
	}
	if err := s.scholarshipRepo.Create(ctx, scholarship); err != nil {
		return nil, err
	}
	return scholarship, nil
}

// Update modifies a scholarship's details.
func (s *ScholarshipService) Update(ctx context.Context, id int, req *model.CreateScholarshipRequest) (*model.Scholarship, error) {
	scholarship, err := s.scholarshipRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	scholarship.Name = req.Name
	scholarship.Sponsor = req.Sponsor
	scholarship.Amount = req.Amount
	scholarship.Deadline = req.Deadline
	if err := s.scholarshipRepo.Update(ctx, scholarship); err != nil {
		return nil, err
	}
	return scholarship, nil
}

// Close marks a scholarship CLOSED.
func (s *ScholarshipService) Close(ctx context.Context, id int) error {
	scholarship, err := s.scholarshipRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	scholarship.Status = model.ScholarshipClosed
	return s.scholarshipRepo.Update(ctx, scholarship)
}

// Delete removes a scholarship.
func (s *ScholarshipService) Delete(ctx context.Context, id int) error {
	return s.scholarshipRepo.Delete(ctx, id)
}

// Apply files a student's application for an open scholarship before its
// deadline. The unique index on (scholarship_id, student_id) blocks repeats.
func (s *ScholarshipService) Apply(ctx context.Context, scholarshipID, studentID int) (*model.ScholarshipApplication, error) {
	scholarship, err := s.scholarshipRepo.GetByID(ctx, scholarshipID)
	if err != nil {
		return nil, err
	}
	if scholarship.Status != model.ScholarshipOpen {
		return nil, ErrScholarshipClosed
	}
	if time.Now().After(scholarship.Deadline) {
		return nil, ErrDeadlinePassed
	}

	app := &model.ScholarshipApplication{
		ScholarshipID: scholarshipID,
		StudentID:     studentID,
		Status:        model.ScholarshipAppPending,
	}
	if err := s.scholarshipRepo.CreateApplication(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// MyApplications retrieves the calling student's applications.
func (s *ScholarshipService) MyApplications(ctx context.Context, studentID int) ([]model.ScholarshipApplication, error) {
	return s.scholarshipRepo.ListApplicationsByStudent(ctx, studentID)
}

// ListApplications retrieves a scholarship's applications for staff review.
func (s *ScholarshipService) ListApplications(ctx context.Context, scholarshipID int) ([]model.ScholarshipApplication, error) {
	return s.scholarshipRepo.ListApplications(ctx, scholarshipID)
}

// Decide awards or rejects a pending application and notifies the student.
func (s *ScholarshipService) Decide(ctx context.Context, applicationID int, status model.ScholarshipApplicationStatus) error {
	app, err := s.scholarshipRepo.GetApplicationByID(ctx, applicationID)
	if err != nil {
		return err
	}

	decided, err := s.scholarshipRepo.DecideApplication(ctx, applicationID, status)
	if err != nil {
		return err
	}
	if !decided {
		return ErrApplicationNotFound
	}

	title := "Scholarship awarded"
	body := fmt.Sprintf("Congratulations, you have been awarded the %s scholarship.", app.ScholarshipName)
	if status == model.ScholarshipAppRejected {
		title = "Scholarship application update"
		body = fmt.Sprintf("Your application for the %s scholarship was not successful.", app.ScholarshipName)
	}
	s.notifSvc.Enqueue(ctx, model.PartyStudent, app.StudentID, title, body)
	return nil
}
