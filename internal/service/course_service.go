package service

import (
	"context"

	"github.com/campushq/campuscore-backend/internal/model"
	"github.com/campushq/campuscore-backend/internal/repository"
)

// CourseService handles course business logic.
type CourseService struct {
	courseRepo *repository.CourseRepository
}

// NewCourseService creates a new CourseService.
func NewCourseService(courseRepo *repository.CourseRepository) *CourseService {
	return &CourseService{courseRepo: courseRepo}
}

// GetByID retrieves a course by its ID.
func (s *CourseService) GetByID(ctx context.Context, id int) (*model.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// ListPaginated retrieves courses with pagination and optional filters.
func (s *CourseService) ListPaginated(ctx context.Context, departmentID, level *int, limit, offset int) ([]model.Course, int, error) {
	return s.courseRepo.ListPaginated(ctx, departmentID, level, limit, offset)
}

// ListForStudent retrieves the courses a student can take this session.
func (s *CourseService) ListForStudent(ctx context.Context, student *model.Student) ([]model.Course, error) {
	return s.courseRepo.ListForStudent(ctx, student.DepartmentID, student.Level)
}

// Create creates a new course.
func (s *CourseService) Create(ctx context.Context, course *model.Course) error {
	return s.courseRepo.Create(ctx, course)
}

// Update modifies an existing course.
func (s *CourseService) Update(ctx context.Context, course *model.Course) error {
	return s.courseRepo.Update(ctx, course)
}

// Delete removes a course. Enrollments referencing it block deletion.
func (s *CourseService) Delete(ctx context.Context, id int) error {
	return s.courseRepo.Delete(ctx, id)
}
