package model

// Role is the coarse authenticated-user category driving access decisions.
// The enumeration is closed: unknown role strings deny by default everywhere
// an allow-list is consulted.
type Role string

const (
	RoleAdmin             Role = "Admin"
	RoleHR                Role = "HR"
	RoleProjectManager    Role = "Project Manager"
	RoleMarketingManager  Role = "Marketing Manager"
	RoleOperationsManager Role = "Operations Manager"
	RoleAssociate         Role = "Associate"
)

// AllRoles is a slice of all assignable roles.
var AllRoles = []Role{
	RoleAdmin,
	RoleHR,
	RoleProjectManager,
	RoleMarketingManager,
	RoleOperationsManager,
	RoleAssociate,
}

// TalentRole is the narrower role the talent module projects from Role.
// It decides record visibility for candidates and interviews.
type TalentRole string

const (
	TalentRoleSuperAdmin    TalentRole = "super_admin"
	TalentRoleAdmin         TalentRole = "admin"
	TalentRoleHiringManager TalentRole = "hiring_manager"
	TalentRoleInterviewer   TalentRole = "interviewer"
)
