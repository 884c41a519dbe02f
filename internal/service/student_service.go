package service

import (
	"context"

	"github.com/campushq/campuscore-backend/internal/model"
	"github.com/campushq/campuscore-backend/internal/repository"
)

// StudentService handles student account business logic.
type StudentService struct {
	studentRepo *repository.StudentRepository
}

// NewStudentService creates a new StudentService.
func NewStudentService(studentRepo *repository.StudentRepository) *StudentService {
	return &StudentService{studentRepo: studentRepo}
}

// GetByID retrieves a student by ID.
func (s *StudentService) GetByID(ctx context.Context, id int) (*model.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// GetByIdentifier retrieves a student by matric number or email.
func (s *StudentService) GetByIdentifier(ctx context.Context, identifier string) (*model.Student, error) {
	return s.studentRepo.GetByIdentifier(ctx, identifier)
}

// ListPaginated retrieves students with pagination and optional filters.
func (s *StudentService) ListPaginated(ctx context.Context, departmentID, level *int, limit, offset int) ([]model.Student, int, error) {
	return s.studentRepo.ListPaginated(ctx, departmentID, level, limit, offset)
}

// Create registers a new student account.
func (s *StudentService) Create(ctx context.Context, student *model.Student) error {
	return s.studentRepo.Create(ctx, student)
}

// Update modifies an existing student account.
func (s *StudentService) Update(ctx context.Context, student *model.Student) error {
	return s.studentRepo.Update(ctx, student)
}

// Delete removes a student account. Foreign keys on enrollments, payments,
// and applications block deletion while dependent records exist.
func (s *StudentService) Delete(ctx context.Context, id int) error {
	return s.studentRepo.Delete(ctx, id)
}
