package capability

import "github.com/onegt/chrms-backend/internal/model"

// ID identifies a top-level application area.
type ID string

const (
	HRMS             ID = "HRMS"
	CRMS             ID = "CRMS"
	TalentManagement ID = "TalentManagement"
	AssessmentPortal ID = "AssessmentPortal"
)

// Capability describes one top-level application area. Icon and Color are
// presentation data forwarded verbatim to clients.
type Capability struct {
	ID           ID           `json:"id"`
	Name         string       `json:"name"`
	FullName     string       `json:"full_name"`
	Icon         string       `json:"icon"`
	Color        string       `json:"color"`
	Description  string       `json:"description"`
	DefaultRoute string       `json:"default_route"`
	Roles        []model.Role `json:"roles,omitempty"` // Empty = available to all roles.
}

// MenuItem is a single navigation entry. Roles and ExcludeDesignations are
// both optional: an empty Roles list admits every role, and a designation
// listed in ExcludeDesignations drops the item for that user.
type MenuItem struct {
	To                  string   `json:"to,omitempty"`
	Action              string   `json:"action,omitempty"`
	Icon                string   `json:"icon"`
	Label               string   `json:"label"`
	End                 bool     `json:"end,omitempty"`
	DynamicLabel        bool     `json:"dynamic_label,omitempty"`
	Roles               []string `json:"roles,omitempty"`
	ExcludeDesignations []string `json:"exclude_designations,omitempty"`
}

// MenuSection groups menu items under a heading. A section-level Roles list
// gates the whole section.
type MenuSection struct {
	Section string     `json:"section"`
	Roles   []string   `json:"roles,omitempty"`
	Items   []MenuItem `json:"items"`
}

// Registry is the static capability catalog, compiled into the binary.
var Registry = map[ID]Capability{
	HRMS: {
		ID:           HRMS,
		Name:         "HRMS",
		FullName:     "People Management",
		Icon:         "users",
		Color:        "#3b82f6",
		Description:  "Manage associates, payroll, and HR operations",
		DefaultRoute: "/hrms",
	},
	CRMS: {
		ID:           CRMS,
		Name:         "CRMS",
		FullName:     "Customer Relationship Management",
		Icon:         "briefcase",
		Color:        "#10b981",
		Description:  "Manage customers, leads, and sales",
		DefaultRoute: "/crms",
		Roles:        []model.Role{model.RoleAdmin, model.RoleMarketingManager, model.RoleOperationsManager},
	},
	TalentManagement: {
		ID:           TalentManagement,
		Name:         "Talent Mgmt",
		FullName:     "Talent Management",
		Icon:         "graduation-cap",
		Color:        "#8b5cf6",
		Description:  "Recruitment, training, and performance",
		DefaultRoute: "/talent",
	},
	AssessmentPortal: {
		ID:           AssessmentPortal,
		Name:         "Assessment",
		FullName:     "Assessment Portal",
		Icon:         "clipboard-check",
		Color:        "#f59e0b",
		Description:  "Conduct assessments and evaluations",
		DefaultRoute: "/assessment",
	},
}

// routePrefixes maps URL prefixes to capabilities in match order. Longer
// prefixes are tried first so sub-capability routes can be added later
// without shadowing.
var routePrefixes = []struct {
	prefix string
	id     ID
}{
	{"/assessment", AssessmentPortal},
	{"/talent", TalentManagement},
	{"/hrms", HRMS},
	{"/crms", CRMS},
}

// Menus is the static per-capability navigation config.
var Menus = map[ID][]MenuSection{
	HRMS: {
		{Section: "Overview", Items: []MenuItem{
			{To: "/hrms", Icon: "layout-dashboard", Label: "Dashboard", End: true},
		}},
		{Section: "HR Management", Items: []MenuItem{
			{To: "/hrms/associates", Icon: "users", Label: "Associates", Roles: []string{"Admin", "Project Manager", "HR", "Operations Manager"}},
			{To: "/hrms/payroll", Icon: "wallet", Label: "Payroll", Roles: []string{"Admin"}},
			{To: "/hrms/assets", Icon: "package", Label: "Asset Management", DynamicLabel: true},
			{To: "/hrms/org-chart", Icon: "users", Label: "Org Chart"},
		}},
		{Section: "Projects", Items: []MenuItem{
			{To: "/hrms/projects", Icon: "folder-kanban", Label: "Projects", Roles: []string{"Admin", "Project Manager"}},
			{To: "/hrms/allocations", Icon: "calendar-days", Label: "Allocations"},
			{To: "/hrms/timesheets", Icon: "clock", Label: "Timesheets"},
		}},
		{Section: "Finance", Roles: []string{"Admin"}, Items: []MenuItem{
			{To: "/hrms/expenses", Icon: "receipt", Label: "Expenses"},
			{To: "/hrms/currency", Icon: "dollar-sign", Label: "Currency Rates"},
		}},
		{Section: "My Profile", Items: []MenuItem{
			{To: "/hrms/profile", Icon: "user", Label: "Personal Info"},
			{To: "/hrms/paystructure", Icon: "dollar-sign", Label: "Pay Structure"},
		}},
	},
	CRMS: {
		{Section: "Overview", Items: []MenuItem{
			{To: "/crms", Icon: "layout-dashboard", Label: "Dashboard", End: true},
		}},
		{Section: "Sales", Items: []MenuItem{
			{To: "/crms/leads", Icon: "user-plus", Label: "Leads"},
			{To: "/crms/opportunities", Icon: "target", Label: "Opportunities"},
			{To: "/crms/deals", Icon: "handshake", Label: "Deals", ExcludeDesignations: []string{"Marketing Manager", "Operations Manager"}},
		}},
		{Section: "Customers", Items: []MenuItem{
			{To: "/crms/customers", Icon: "building-2", Label: "Customers"},
			{To: "/crms/contacts", Icon: "contact", Label: "Contacts"},
			{To: "/crms/invoices", Icon: "file-text", Label: "Invoices", ExcludeDesignations: []string{"Marketing Manager", "Operations Manager"}},
		}},
		{Section: "Finance Overview", Items: []MenuItem{
			{To: "/crms/finance", Icon: "dollar-sign", Label: "Finance View", Roles: []string{"Admin"}},
		}},
		{Section: "Activities", Items: []MenuItem{
			{To: "/crms/tasks", Icon: "clipboard-check", Label: "Tasks"},
			{To: "/crms/calls", Icon: "phone", Label: "Call Logs"},
		}},
	},
	TalentManagement: {
		{Section: "Overview", Items: []MenuItem{
			{To: "/talent", Icon: "layout-dashboard", Label: "Dashboard", End: true},
		}},
		{Section: "Recruitment", Items: []MenuItem{
			{To: "/talent/demands", Icon: "briefcase", Label: "Demands"},
			{To: "/talent/candidates", Icon: "user-plus", Label: "Candidates"},
			{To: "/talent/interviews", Icon: "calendar-days", Label: "Interviews"},
		}},
		{Section: "Development", Items: []MenuItem{
			{To: "/talent/training", Icon: "book-open", Label: "Training Programs"},
			{To: "/talent/performance", Icon: "award", Label: "Performance Reviews"},
			{To: "/talent/goals", Icon: "target", Label: "Goals & OKRs"},
		}},
		{Section: "System", Items: []MenuItem{
			{Action: "openTalentSettings", Icon: "settings", Label: "Settings", Roles: []string{"super_admin", "admin", "hiring_manager"}},
		}},
	},
	AssessmentPortal: {
		{Section: "Overview", Items: []MenuItem{
			{To: "/assessment", Icon: "layout-dashboard", Label: "Dashboard", End: true},
		}},
		{Section: "Portals", Items: []MenuItem{
			{To: "/assessment/admin", Icon: "shield", Label: "Admin Portal", Roles: []string{"Admin"}},
			{To: "/assessment/examiner", Icon: "book-open", Label: "Examiner Portal", Roles: []string{"Admin", "Examiner"}},
			{To: "/assessment/candidate", Icon: "graduation-cap", Label: "Candidate Portal", Roles: []string{"Admin", "Candidate"}},
		}},
		{Section: "Assessments", Items: []MenuItem{
			{To: "/assessment/list", Icon: "clipboard-check", Label: "All Assessments"},
			{To: "/assessment/create", Icon: "file-text", Label: "Create Assessment"},
			{To: "/assessment/learning", Icon: "book-open", Label: "Learning Materials"},
			{To: "/assessment/questions", Icon: "file-question", Label: "Question Bank"},
		}},
		{Section: "Participants", Items: []MenuItem{
			{To: "/assessment/candidates", Icon: "user-check", Label: "Candidates"},
			{To: "/assessment/invitations", Icon: "user-plus", Label: "Invitations"},
		}},
		{Section: "Analytics", Items: []MenuItem{
			{To: "/assessment/reports", Icon: "bar-chart-3", Label: "Reports"},
			{To: "/assessment/analytics", Icon: "trending-up", Label: "Analytics"},
		}},
	},
}
