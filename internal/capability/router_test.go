package capability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/onegt/chrms-backend/internal/capability"
)

func TestRouterStartsAtHRMS(t *testing.T) {
	r := capability.NewRouter(nil)
	assert.Equal(t, capability.HRMS, r.Current())
}

func TestSetNavigatesToDefaultRoute(t *testing.T) {
	var navigated []string
	r := capability.NewRouter(func(route string) { navigated = append(navigated, route) })

	r.Set(capability.TalentManagement)

	assert.Equal(t, capability.TalentManagement, r.Current())
	assert.Equal(t, []string{"/talent"}, navigated)
}

func TestSetUnknownIDIsIgnored(t *testing.T) {
	var navigated []string
	r := capability.NewRouter(func(route string) { navigated = append(navigated, route) })
	r.Set(capability.CRMS)
	navigated = nil

	r.Set(capability.ID("unknown"))

	assert.Equal(t, capability.CRMS, r.Current(), "state unchanged")
	assert.Empty(t, navigated, "no navigation")
}

func TestSetSameCapabilityStillNavigates(t *testing.T) {
	// Explicit selection always returns to the capability's dashboard,
	// even when it is already active.
	var navigated []string
	r := capability.NewRouter(func(route string) { navigated = append(navigated, route) })

	r.Set(capability.HRMS)

	assert.Equal(t, []string{"/hrms"}, navigated)
}

func TestSyncFromPathResolvesPrefix(t *testing.T) {
	r := capability.NewRouter(nil)

	r.SyncFromPath("/talent/candidates")
	assert.Equal(t, capability.TalentManagement, r.Current())

	r.SyncFromPath("/assessment/questions/42")
	assert.Equal(t, capability.AssessmentPortal, r.Current())
}

func TestSyncFromPathUnmappedIsNoOp(t *testing.T) {
	r := capability.NewRouter(nil)
	r.Set(capability.CRMS)

	r.SyncFromPath("/unmapped")
	assert.Equal(t, capability.CRMS, r.Current())

	r.SyncFromPath("")
	assert.Equal(t, capability.CRMS, r.Current())
}

func TestSyncFromPathSubRouteCausesNoTransition(t *testing.T) {
	var navigated []string
	r := capability.NewRouter(func(route string) { navigated = append(navigated, route) })
	r.Set(capability.TalentManagement)
	navigated = nil

	// Moving between sub-routes of the active capability is idempotent.
	r.SyncFromPath("/talent/interviews")
	r.SyncFromPath("/talent/demands")

	assert.Equal(t, capability.TalentManagement, r.Current())
	assert.Empty(t, navigated, "sync never navigates")
}
