package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/onegt/chrms-backend/internal/access"
	"github.com/onegt/chrms-backend/internal/model"
)

func identityWithRole(role model.Role) *model.Identity {
	return &model.Identity{
		AssociateID: "a-1",
		Email:       "user@example.com",
		Name:        "Test User",
		Role:        role,
	}
}

func TestCanAccessNilIdentity(t *testing.T) {
	e := access.NewEvaluator(nil)
	for m := range access.ModuleAccess {
		assert.False(t, e.CanAccess(m), "nil identity must be denied %q", m)
	}
}

func TestCanAccessAdminUnconditional(t *testing.T) {
	e := access.NewEvaluator(identityWithRole(model.RoleAdmin))
	for m := range access.ModuleAccess {
		assert.True(t, e.CanAccess(m), "admin must access %q", m)
	}
	// Even a module no allow-list knows about.
	assert.True(t, e.CanAccess(access.Module("made-up")))
}

func TestCanAccessEmptyAllowListPermitsAllRoles(t *testing.T) {
	for _, role := range model.AllRoles {
		e := access.NewEvaluator(identityWithRole(role))
		assert.True(t, e.CanAccess(access.ModuleDashboard), "role %q on unrestricted module", role)
	}
}

func TestCanAccessRoleOutsideAllowListDenied(t *testing.T) {
	// Payroll allows HR and Associate groups only.
	e := access.NewEvaluator(identityWithRole(model.RoleProjectManager))
	assert.False(t, e.CanAccess(access.ModulePayroll))

	// Projects allows Manager group only.
	e = access.NewEvaluator(identityWithRole(model.RoleHR))
	assert.False(t, e.CanAccess(access.ModuleProjects))
}

func TestCanAccessUnknownModuleFailsClosed(t *testing.T) {
	e := access.NewEvaluator(identityWithRole(model.RoleHR))
	assert.False(t, e.CanAccess(access.Module("billing")))
}

func TestClassifyOperationsManagerSpansGroups(t *testing.T) {
	f := access.Classify(model.RoleOperationsManager, "")
	assert.True(t, f.IsHR)
	assert.True(t, f.IsMarketingManager)
	assert.True(t, f.IsManager)
	assert.False(t, f.IsAdmin)

	// Spans both HR-only and Manager-only modules.
	e := access.NewEvaluator(identityWithRole(model.RoleOperationsManager))
	assert.True(t, e.CanAccess(access.ModuleAssets))
	assert.True(t, e.CanAccess(access.ModuleProjects))
}

func TestClassifyDesignationDrivesAssociate(t *testing.T) {
	f := access.Classify(model.RoleHR, "Software Engineer")
	assert.True(t, f.IsAssociate, "designation match is case-insensitive")
	assert.True(t, f.IsHR, "designation does not unset the role group")

	f = access.Classify(model.Role("Contractor"), "developer")
	assert.True(t, f.IsAssociate)

	f = access.Classify(model.Role("Contractor"), "designer")
	assert.False(t, f.IsAssociate)
}

func TestUnknownRoleDeniedOnRestrictedModules(t *testing.T) {
	e := access.NewEvaluator(identityWithRole(model.Role("Intern")))
	assert.False(t, e.CanAccess(access.ModuleAssociates))
	assert.False(t, e.CanAccess(access.ModulePayroll))
	// Unrestricted modules stay open to any authenticated role.
	assert.True(t, e.CanAccess(access.ModuleDashboard))
}

func TestTalentRoleProjection(t *testing.T) {
	cases := []struct {
		role        model.Role
		designation string
		want        model.TalentRole
	}{
		{model.RoleAdmin, "", model.TalentRoleSuperAdmin},
		{model.RoleHR, "", model.TalentRoleAdmin},
		{model.RoleOperationsManager, "", model.TalentRoleAdmin},
		{model.RoleProjectManager, "", model.TalentRoleHiringManager},
		{model.RoleMarketingManager, "", model.TalentRoleHiringManager},
		{model.RoleAssociate, "", model.TalentRoleHiringManager},
		{model.Role("Contractor"), "developer", model.TalentRoleHiringManager},
		{model.Role("Contractor"), "", model.TalentRoleInterviewer},
	}

	for _, tc := range cases {
		id := identityWithRole(tc.role)
		id.Designation = tc.designation
		e := access.NewEvaluator(id)
		assert.Equal(t, tc.want, e.TalentRole(), "role=%q designation=%q", tc.role, tc.designation)
	}
}

func TestHasRoleMatchesRoleAndTalentRole(t *testing.T) {
	e := access.NewEvaluator(identityWithRole(model.RoleHR))
	assert.True(t, e.HasRole("HR"))
	assert.True(t, e.HasRole("admin"), "talent projection matches too")
	assert.False(t, e.HasRole("Admin", "Project Manager"))
	assert.True(t, e.HasRole(), "empty list is unrestricted")

	anon := access.NewEvaluator(nil)
	assert.False(t, anon.HasRole("Admin"))
	assert.True(t, anon.HasRole(), "empty list stays unrestricted even when anonymous")
}
