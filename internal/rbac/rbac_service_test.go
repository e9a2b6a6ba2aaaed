package rbac

import (
	"errors"
	"testing"

	"github.com/KinzixInfotech/edutemp-sub017/internal/rbac/infra"

	"github.com/stretchr/testify/assert"
)

type mockRepo struct {
	rolesErr error
}

func (m *mockRepo) GetUserRoles(schoolID string) ([]UserRoleRow, error) {
	if m.rolesErr != nil {
		return nil, m.rolesErr
	}
	if schoolID != "school-1" {
		return nil, nil
	}
	return []UserRoleRow{
		{UserID: "user-accountant", RoleID: "role-accountant"},
		{UserID: "user-principal", RoleID: "role-principal"},
	}, nil
}

func (m *mockRepo) GetRolePermissions(schoolID string) ([]RolePermissionRow, error) {
	if schoolID != "school-1" {
		return nil, nil
	}
	return []RolePermissionRow{
		{RoleID: "role-accountant", Resource: ResourcePayroll, Action: ActionCompute},
		{RoleID: "role-accountant", Resource: ResourcePayroll, Action: ActionSubmit},
		{RoleID: "role-principal", Resource: ResourcePayroll, Action: ActionApprove},
	}, nil
}

func TestRBACService_Enforce(t *testing.T) {
	enforcer, err := infra.NewEnforcer()
	assert.NoError(t, err)

	service := NewService(&mockRepo{}, enforcer)

	assert.NoError(t, service.LoadSchoolPolicy("school-1"))

	allowed, err := service.Enforce(EnforceRequest{
		UserID:   "user-accountant",
		SchoolID: "school-1",
		Resource: ResourcePayroll,
		Action:   ActionCompute,
	})
	assert.NoError(t, err)
	assert.True(t, allowed)

	// the accountant prepares payroll but may not approve it
	allowed, err = service.Enforce(EnforceRequest{
		UserID:   "user-accountant",
		SchoolID: "school-1",
		Resource: ResourcePayroll,
		Action:   ActionApprove,
	})
	assert.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = service.Enforce(EnforceRequest{
		UserID:   "user-principal",
		SchoolID: "school-1",
		Resource: ResourcePayroll,
		Action:   ActionApprove,
	})
	assert.NoError(t, err)
	assert.True(t, allowed)
}

func TestRBACService_Enforce_OtherSchool(t *testing.T) {
	enforcer, err := infra.NewEnforcer()
	assert.NoError(t, err)

	service := NewService(&mockRepo{}, enforcer)

	allowed, err := service.Enforce(EnforceRequest{
		UserID:   "user-principal",
		SchoolID: "school-2",
		Resource: ResourcePayroll,
		Action:   ActionApprove,
	})
	assert.NoError(t, err)
	assert.False(t, allowed)
}

func TestRBACService_Enforce_RepoError(t *testing.T) {
	enforcer, err := infra.NewEnforcer()
	assert.NoError(t, err)

	service := NewService(&mockRepo{rolesErr: errors.New("db down")}, enforcer)

	allowed, err := service.Enforce(EnforceRequest{UserID: "u", SchoolID: "school-1", Resource: ResourcePayroll, Action: ActionRead})
	assert.Error(t, err)
	assert.False(t, allowed)
}
