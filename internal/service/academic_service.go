package service

import (
	"context"

	"github.com/campushq/campuscore-backend/internal/model"
	"github.com/campushq/campuscore-backend/internal/repository"
)

// AcademicService handles faculty and department business logic.
type AcademicService struct {
	academicRepo *repository.AcademicRepository
}

// NewAcademicService creates a new AcademicService.
func NewAcademicService(academicRepo *repository.AcademicRepository) *AcademicService {
	return &AcademicService{academicRepo: academicRepo}
}

// ListFaculties retrieves all faculties.
func (s *AcademicService) ListFaculties(ctx context.Context) ([]model.Faculty, error) {
	return s.academicRepo.ListFaculties(ctx)
}

// CreateFaculty creates a new faculty.
func (s *AcademicService) CreateFaculty(ctx context.Context, f *model.Faculty) error {
	return s.academicRepo.CreateFaculty(ctx, f)
}

// UpdateFaculty modifies an existing faculty.
func (s *AcademicService) UpdateFaculty(ctx context.Context, f *model.Faculty) error {
	return s.academicRepo.UpdateFaculty(ctx, f)
}

// DeleteFaculty removes a faculty. Departments referencing it block deletion.
func (s *AcademicService) DeleteFaculty(ctx context.Context, id int) error {
	return s.academicRepo.DeleteFaculty(ctx, id)
}

// GetDepartmentByID retrieves a department.
func (s *AcademicService) GetDepartmentByID(ctx context.Context, id int) (*model.Department, error) {
	return s.academicRepo.GetDepartmentByID(ctx, id)
}

// ListDepartments retrieves departments, optionally filtered by faculty.
func (s *AcademicService) ListDepartments(ctx context.Context, facultyID *int) ([]model.Department, error) {
	return s.academicRepo.ListDepartments(ctx, facultyID)
}

// CreateDepartment creates a new department.
func (s *AcademicService) CreateDepartment(ctx context.Context, d *model.Department) error {
	return s.academicRepo.CreateDepartment(ctx, d)
}

// UpdateDepartment modifies an existing department.
func (s *AcademicService) UpdateDepartment(ctx context.Context, d *model.Department) error {
	return s.academicRepo.UpdateDepartment(ctx, d)
}

// DeleteDepartment removes a department. Students and courses referencing it
// block deletion.
func (s *AcademicService) DeleteDepartment(ctx context.Context, id int) error {
	return s.academicRepo.DeleteDepartment(ctx, id)
}
