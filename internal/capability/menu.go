package capability

import (
	"strings"

	"github.com/onegt/chrms-backend/internal/access"
)

// Available returns the capabilities the identity may switch to, in the
// product's fixed display order. A capability with an empty role list is
// available to every authenticated role.
func Available(e *access.Evaluator) []Capability {
	order := []ID{HRMS, CRMS, TalentManagement, AssessmentPortal}

	caps := make([]Capability, 0, len(order))
	for _, id := range order {
		if c, ok := Registry[id]; ok && allowedCapability(c, e) {
			caps = append(caps, c)
		}
	}
	return caps
}

func allowedCapability(c Capability, e *access.Evaluator) bool {
	if len(c.Roles) == 0 {
		return true
	}
	if e == nil {
		return false
	}
	names := make([]string, len(c.Roles))
	for i, r := range c.Roles {
		names[i] = string(r)
	}
	return e.HasRole(names...)
}

// MenuFor derives the visible navigation menu for one capability and one
// identity. Filtering applies three rules in order: the section role
// allow-list, each item's role allow-list, and each item's designation
// exclusion list. Sections whose items are all filtered away disappear
// entirely. The result is recomputed on every call and never persisted.
func MenuFor(id ID, e *access.Evaluator) []MenuSection {
	sections, ok := Menus[id]
	if !ok {
		return nil
	}

	var designation string
	if e != nil && e.Identity() != nil {
		designation = e.Identity().Designation
	}

	visible := make([]MenuSection, 0, len(sections))
	for _, sec := range sections {
		if e == nil || !e.HasRole(sec.Roles...) {
			continue
		}

		items := make([]MenuItem, 0, len(sec.Items))
		for _, item := range sec.Items {
			if !e.HasRole(item.Roles...) {
				continue
			}
			if excludedByDesignation(item, designation) {
				continue
			}
			items = append(items, item)
		}

		if len(items) == 0 {
			continue
		}
		visible = append(visible, MenuSection{Section: sec.Section, Roles: sec.Roles, Items: items})
	}
	return visible
}

func excludedByDesignation(item MenuItem, designation string) bool {
	if designation == "" {
		return false
	}
	for _, d := range item.ExcludeDesignations {
		if strings.EqualFold(d, designation) {
			return true
		}
	}
	return false
}
