package access

import (
	"strings"

	"github.com/onegt/chrms-backend/internal/model"
)

// Flags are the role-derived booleans the rest of the application consumes.
// They are computed exactly once per identity (see NewEvaluator) so every
// call site sees the same classification.
type Flags struct {
	IsAdmin             bool
	IsHR                bool
	IsManager           bool
	IsMarketingManager  bool
	IsOperationsManager bool
	IsAssociate         bool
}

// Classify derives the composite role-group flags from a role and
// designation. Operations Manager counts as both HR and Marketing Manager;
// Marketing Manager counts as Manager. A developer or software engineer
// designation makes the user an Associate regardless of role.
func Classify(role model.Role, designation string) Flags {
	f := Flags{
		IsAdmin:             role == model.RoleAdmin,
		IsOperationsManager: role == model.RoleOperationsManager,
	}
	f.IsHR = role == model.RoleHR || f.IsOperationsManager
	f.IsMarketingManager = role == model.RoleMarketingManager || f.IsOperationsManager
	f.IsManager = role == model.RoleProjectManager || f.IsMarketingManager

	d := strings.ToLower(strings.TrimSpace(designation))
	f.IsAssociate = strings.EqualFold(string(role), string(model.RoleAssociate)) || associateDesignations[d]

	return f
}

// Evaluator answers access questions for a single identity. It is pure:
// all decisions are synchronous functions of the identity captured at
// construction plus static configuration, and none of them can fail.
type Evaluator struct {
	identity *model.Identity
	flags    Flags
	groups   map[RoleGroup]bool
	talent   model.TalentRole
}

// NewEvaluator classifies the identity once and returns an evaluator bound
// to it. A nil identity yields an evaluator that denies everything and sees
// no records.
func NewEvaluator(identity *model.Identity) *Evaluator {
	e := &Evaluator{identity: identity, groups: map[RoleGroup]bool{}}
	if identity == nil {
		return e
	}

	e.flags = Classify(identity.Role, identity.Designation)
	e.groups[GroupHR] = e.flags.IsHR
	e.groups[GroupManager] = e.flags.IsManager
	e.groups[GroupAssociate] = e.flags.IsAssociate

	switch {
	case e.flags.IsAdmin:
		e.talent = model.TalentRoleSuperAdmin
	case e.flags.IsHR:
		e.talent = model.TalentRoleAdmin
	case e.flags.IsManager || e.flags.IsAssociate:
		e.talent = model.TalentRoleHiringManager
	default:
		e.talent = model.TalentRoleInterviewer
	}

	return e
}

// Identity returns the bound identity, or nil for an anonymous evaluator.
func (e *Evaluator) Identity() *model.Identity {
	return e.identity
}

// Flags returns the role-derived booleans for the bound identity.
func (e *Evaluator) Flags() Flags {
	return e.flags
}

// TalentRole returns the talent-module projection of the bound role.
func (e *Evaluator) TalentRole() model.TalentRole {
	return e.talent
}

// CanAccess reports whether the identity may enter the given module.
// Absent identity denies. Admin is permitted unconditionally. An unknown
// module id denies. An empty allow-list permits every role; otherwise the
// identity must belong to at least one listed role group.
func (e *Evaluator) CanAccess(m Module) bool {
	if e.identity == nil {
		return false
	}
	if e.flags.IsAdmin {
		return true
	}

	allowed, ok := ModuleAccess[m]
	if !ok {
		return false
	}
	if len(allowed) == 0 {
		return true
	}
	for _, g := range allowed {
		if e.groups[g] {
			return true
		}
	}
	return false
}

// HasRole reports whether the bound identity's role is in roles. An empty
// list is treated as unrestricted. Talent-role names are matched too, so a
// single allow-list can mix "Admin" with "hiring_manager". Matching is
// exact: the talent projection "admin" never satisfies an "Admin" entry.
func (e *Evaluator) HasRole(roles ...string) bool {
	if len(roles) == 0 {
		return true
	}
	if e.identity == nil {
		return false
	}
	for _, r := range roles {
		if r == string(e.identity.Role) || r == string(e.talent) {
			return true
		}
	}
	return false
}
