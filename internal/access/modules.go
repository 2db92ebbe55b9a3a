package access

// Module identifies a guarded application area.
type Module string

const (
	ModuleDashboard   Module = "dashboard"
	ModuleAssociates  Module = "associates"
	ModulePayroll     Module = "payroll"
	ModuleAssets      Module = "assets"
	ModuleProfile     Module = "profile"
	ModuleProjects    Module = "projects"
	ModuleAllocations Module = "allocations"
	ModuleTimesheets  Module = "timesheets"
	ModuleExpenses    Module = "expenses"
	ModuleCustomers   Module = "customers"
	ModuleDemands     Module = "demands"
	ModuleCandidates  Module = "candidates"
	ModuleInterviews  Module = "interviews"
)

// RoleGroup is a composite role category. Membership is an OR over base
// roles (see Classify), not a strict hierarchy: Operations Manager belongs
// to both the HR and Manager groups at once.
type RoleGroup string

const (
	GroupHR        RoleGroup = "hr"
	GroupManager   RoleGroup = "manager"
	GroupAssociate RoleGroup = "associate"
)

// ModuleAccess enumerates, per module, which role groups may enter.
// An empty list means the module is unrestricted. A module absent from this
// map is denied for everyone except Admin. Admin bypasses the map entirely.
var ModuleAccess = map[Module][]RoleGroup{
	ModuleDashboard:   {},
	ModuleAssociates:  {GroupHR, GroupManager},
	ModulePayroll:     {GroupHR, GroupAssociate},
	ModuleAssets:      {GroupHR},
	ModuleProfile:     {GroupHR},
	ModuleProjects:    {GroupManager},
	ModuleAllocations: {GroupManager, GroupAssociate},
	ModuleTimesheets:  {GroupManager, GroupAssociate},
	ModuleExpenses:    {GroupManager},
	ModuleCustomers:   {GroupManager},
	ModuleDemands: {GroupHR, GroupManager, GroupAssociate},

	// Candidates and interviews are open to every authenticated role. The
	// record visibility filter narrows what an interviewer actually sees,
	// so a group gate here would lock interviewers out entirely.
	ModuleCandidates: {},
	ModuleInterviews: {},
}

// associateDesignations are job titles treated as Associate regardless of
// the role column. Compared case-insensitively.
var associateDesignations = map[string]bool{
	"developer":         true,
	"software engineer": true,
}
