package service

import (
	"context"

	"github.com/campushq/campuscore-backend/internal/model"
	"github.com/campushq/campuscore-backend/internal/repository"
)

// RoleService handles RBAC role business logic.
type RoleService struct {
	roleRepo *repository.RoleRepository
}

// NewRoleService creates a new RoleService.
func NewRoleService(roleRepo *repository.RoleRepository) *RoleService {
	return &RoleService{roleRepo: roleRepo}
}

// List retrieves all roles with their permissions.
func (s *RoleService) List(ctx context.Context) ([]model.RoleWithPermissions, error) {
	return s.roleRepo.ListRolesWithPermissions(ctx)
}

// GetByID retrieves a role with its permissions.
func (s *RoleService) GetByID(ctx context.Context, id int) (*model.RoleWithPermissions, error) {
	return s.roleRepo.GetRoleByID(ctx, id)
}

// Create inserts a new role and assigns the given permission codes.
func (s *RoleService) Create(ctx context.Context, name string, permissionCodes []string) (*model.RoleWithPermissions, error) {
	id, err := s.roleRepo.CreateRole(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := s.roleRepo.AssignPermissionsToRole(ctx, id, permissionCodes); err != nil {
		return nil, err
	}
	return s.roleRepo.GetRoleByID(ctx, id)
}

// Update renames a role and replaces its permission set.
func (s *RoleService) Update(ctx context.Context, id int, name string, permissionCodes []string) (*model.RoleWithPermissions, error) {
	if err := s.roleRepo.UpdateRole(ctx, id, name); err != nil {
		return nil, err
	}
	if err := s.roleRepo.DeleteAllPermissionsFromRole(ctx, id); err != nil {
		return nil, err
	}
	if err := s.roleRepo.AssignPermissionsToRole(ctx, id, permissionCodes); err != nil {
		return nil, err
	}
	return s.roleRepo.GetRoleByID(ctx, id)
}

// Delete removes a role. Staff rows referencing it block deletion.
func (s *RoleService) Delete(ctx context.Context, id int) error {
	return s.roleRepo.DeleteRole(ctx, id)
}
