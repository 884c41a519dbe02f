package service

import (
	"context"
	"errors"

	"github.com/campushq/campuscore-backend/internal/config"
	"github.com/campushq/campuscore-backend/internal/model"
	"github.com/campushq/campuscore-backend/internal/repository"
)

// Enrollment errors surfaced to handlers.
var (
	ErrEnrollmentCompleted = errors.New("completed enrollments cannot be dropped")
	ErrNotEnrollmentOwner  = errors.New("enrollment belongs to another student")
)

// EnrollmentService handles enrollment business logic.
type EnrollmentService struct {
	enrollmentRepo *repository.EnrollmentRepository
	courseRepo     *repository.CourseRepository
	cfg            *config.Config
}

// NewEnrollmentService creates a new EnrollmentService.
func NewEnrollmentService(enrollmentRepo *repository.EnrollmentRepository, courseRepo *repository.CourseRepository, cfg *config.Config) *EnrollmentService {
	return &EnrollmentService{enrollmentRepo: enrollmentRepo, courseRepo: courseRepo, cfg: cfg}
}

// GetByID retrieves an enrollment.
func (s *EnrollmentService) GetByID(ctx context.Context, id int) (*model.Enrollment, error) {
	return s.enrollmentRepo.GetByID(ctx, id)
}

// Enroll creates an ACTIVE enrollment for the given student and course. The
// semester comes from the course; an empty session defaults to the current
// one. The unique constraint surfaces duplicates as a pg 23505 error.
func (s *EnrollmentService) Enroll(ctx context.Context, studentID, courseID int, session string) (*model.Enrollment, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	if session == "" {
		session = s.cfg.CurrentSession
	}

	enrollment := &model.Enrollment{
		StudentID: studentID,
		CourseID:  course.ID,
		Session:   session,
		Semester:  course.Semester,
		Status:    model.EnrollmentActive,
	}
	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		return nil, err
	}

	enrollment.CourseCode = course.Code
	enrollment.CourseTitle = course.Title
	enrollment.CourseUnits = course.Units
	return enrollment, nil
}

// Drop marks an enrollment DROPPED. Only the owning student may drop it, and
// completed enrollments are immutable.
func (s *EnrollmentService) Drop(ctx context.Context, enrollmentID, studentID int) error {
	enrollment, err := s.enrollmentRepo.GetByID(ctx, enrollmentID)
	if err != nil {
		return err
	}
	if enrollment.StudentID != studentID {
		return ErrNotEnrollmentOwner
	}
	if enrollment.Status == model.EnrollmentCompleted {
		return ErrEnrollmentCompleted
	}
	return s.enrollmentRepo.UpdateStatus(ctx, enrollmentID, model.EnrollmentDropped)
}

// ListByStudent retrieves a student's enrollments for a session (current
// session when empty).
func (s *EnrollmentService) ListByStudent(ctx context.Context, studentID int, session string) ([]model.Enrollment, error) {
	if session == "" {
		session = s.cfg.CurrentSession
	}
	return s.enrollmentRepo.ListByStudent(ctx, studentID, session)
}

// ListByCourse retrieves a course's enrollments for a session.
func (s *EnrollmentService) ListByCourse(ctx context.Context, courseID int, session string) ([]model.Enrollment, error) {
	if session == "" {
		session = s.cfg.CurrentSession
	}
	return s.enrollmentRepo.ListByCourse(ctx, courseID, session)
}
