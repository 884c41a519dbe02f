package service

import (
	"context"

	"github.com/campushq/campuscore-backend/internal/model"
	"github.com/campushq/campuscore-backend/internal/repository"
)

// StaffService handles staff account business logic.
type StaffService struct {
	staffRepo *repository.StaffRepository
	roleRepo  *repository.RoleRepository
}

// NewStaffService creates a new StaffService.
func NewStaffService(staffRepo *repository.StaffRepository, roleRepo *repository.RoleRepository) *StaffService {
	return &StaffService{staffRepo: staffRepo, roleRepo: roleRepo}
}

// GetByID retrieves a staff member by ID.
func (s *StaffService) GetByID(ctx context.Context, id int) (*model.Staff, error) {
	return s.staffRepo.GetByID(ctx, id)
}

// GetByEmail retrieves a staff member by email.
func (s *StaffService) GetByEmail(ctx context.Context, email string) (*model.Staff, error) {
	return s.staffRepo.GetByEmail(ctx, email)
}

// GetPermissions retrieves the permission codes of a staff member's role.
func (s *StaffService) GetPermissions(ctx context.Context, roleID int) ([]string, error) {
	return s.roleRepo.GetPermissionsByRoleID(ctx, roleID)
}

// List retrieves all staff members.
func (s *StaffService) List(ctx context.Context) ([]model.Staff, error) {
	return s.staffRepo.List(ctx)
}

// Create inserts a new staff account.
func (s *StaffService) Create(ctx context.Context, staff *model.Staff) error {
	return s.staffRepo.Create(ctx, staff)
}

// Update modifies an existing staff account.
func (s *StaffService) Update(ctx context.Context, staff *model.Staff) error {
	return s.staffRepo.Update(ctx, staff)
}

// Delete removes a staff account.
func (s *StaffService) Delete(ctx context.Context, id int) error {
	return s.staffRepo.Delete(ctx, id)
}
