package capability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onegt/chrms-backend/internal/access"
	"github.com/onegt/chrms-backend/internal/capability"
	"github.com/onegt/chrms-backend/internal/model"
)

func evaluatorFor(role model.Role, designation string) *access.Evaluator {
	return access.NewEvaluator(&model.Identity{
		AssociateID: "a-1",
		Email:       "u@x.com",
		Role:        role,
		Designation: designation,
	})
}

func sectionNames(sections []capability.MenuSection) []string {
	names := make([]string, len(sections))
	for i, s := range sections {
		names[i] = s.Section
	}
	return names
}

func itemLabels(sections []capability.MenuSection, section string) []string {
	for _, s := range sections {
		if s.Section != section {
			continue
		}
		labels := make([]string, len(s.Items))
		for i, it := range s.Items {
			labels[i] = it.Label
		}
		return labels
	}
	return nil
}

func TestMenuForAdminSeesEverything(t *testing.T) {
	menu := capability.MenuFor(capability.HRMS, evaluatorFor(model.RoleAdmin, ""))
	assert.Equal(t, []string{"Overview", "HR Management", "Projects", "Finance", "My Profile"}, sectionNames(menu))
}

func TestMenuSectionRoleGate(t *testing.T) {
	// Finance is gated to Admin at section level.
	menu := capability.MenuFor(capability.HRMS, evaluatorFor(model.RoleHR, ""))
	assert.NotContains(t, sectionNames(menu), "Finance")

	// Item-level gates inside kept sections still apply.
	assert.NotContains(t, itemLabels(menu, "HR Management"), "Payroll")
	assert.Contains(t, itemLabels(menu, "HR Management"), "Associates")
}

func TestMenuDesignationExclusionDropsItems(t *testing.T) {
	menu := capability.MenuFor(capability.CRMS, evaluatorFor(model.RoleOperationsManager, "Marketing Manager"))

	assert.NotContains(t, itemLabels(menu, "Sales"), "Deals")
	assert.NotContains(t, itemLabels(menu, "Customers"), "Invoices")
	assert.Contains(t, itemLabels(menu, "Sales"), "Leads")
}

func TestMenuEmptySectionIsOmitted(t *testing.T) {
	// Finance Overview holds a single Admin-only item; for anyone else the
	// whole section must disappear, not render empty.
	menu := capability.MenuFor(capability.CRMS, evaluatorFor(model.RoleMarketingManager, ""))

	assert.NotContains(t, sectionNames(menu), "Finance Overview")
	for _, s := range menu {
		require.NotEmpty(t, s.Items, "section %q rendered with zero items", s.Section)
	}
}

func TestMenuTalentRolesMatchProjection(t *testing.T) {
	// The talent Settings item is listed by talent-role names; an HR user
	// projects to talent admin and must see it, an unknown role projects to
	// interviewer and must not.
	menu := capability.MenuFor(capability.TalentManagement, evaluatorFor(model.RoleHR, ""))
	assert.Contains(t, sectionNames(menu), "System")

	menu = capability.MenuFor(capability.TalentManagement, evaluatorFor(model.Role("Consultant"), ""))
	assert.NotContains(t, sectionNames(menu), "System")
}

func TestMenuForUnknownCapability(t *testing.T) {
	assert.Nil(t, capability.MenuFor(capability.ID("nope"), evaluatorFor(model.RoleAdmin, "")))
}

func TestAvailableRestrictsCRMS(t *testing.T) {
	all := capability.Available(evaluatorFor(model.RoleAdmin, ""))
	require.Len(t, all, 4)

	restricted := capability.Available(evaluatorFor(model.RoleHR, ""))
	names := make([]capability.ID, len(restricted))
	for i, c := range restricted {
		names[i] = c.ID
	}
	assert.Equal(t, []capability.ID{capability.HRMS, capability.TalentManagement, capability.AssessmentPortal}, names)

	marketing := capability.Available(evaluatorFor(model.RoleMarketingManager, ""))
	assert.Len(t, marketing, 4, "Marketing Manager is on the CRMS allow-list")
}
