package access

import (
	"strings"

	"github.com/google/uuid"
	"github.com/onegt/chrms-backend/internal/model"
)

// FilterCandidates narrows a candidate collection to what the identity may
// see. Administrative and management-tier talent roles (super_admin, admin,
// hiring_manager) see everything. Interviewers see only candidates reachable
// through an interview whose interviewer email matches their own,
// case-insensitively. Any other role sees the full collection; the product
// treats unknown talent roles permissively here, unlike CanAccess.
// Input ordering is preserved; this is a stable filter, never a resort.
func FilterCandidates(candidates []model.Candidate, interviews []model.Interview, e *Evaluator) []model.Candidate {
	if e == nil || e.identity == nil {
		return []model.Candidate{}
	}

	switch e.talent {
	case model.TalentRoleSuperAdmin, model.TalentRoleAdmin, model.TalentRoleHiringManager:
		return candidates
	case model.TalentRoleInterviewer:
		assigned := make(map[uuid.UUID]bool)
		for _, iv := range interviews {
			if iv.InterviewerEmail == "" {
				continue
			}
			if strings.EqualFold(iv.InterviewerEmail, e.identity.Email) {
				assigned[iv.CandidateID] = true
			}
		}

		visible := make([]model.Candidate, 0, len(assigned))
		for _, cand := range candidates {
			if assigned[cand.ID] {
				visible = append(visible, cand)
			}
		}
		return visible
	}

	return candidates
}

// FilterInterviews narrows an interview collection the same way: management
// tiers see everything, interviewers see only their own slots, matched by
// email case-insensitively.
func FilterInterviews(interviews []model.Interview, e *Evaluator) []model.Interview {
	if e == nil || e.identity == nil {
		return []model.Interview{}
	}

	switch e.talent {
	case model.TalentRoleSuperAdmin, model.TalentRoleAdmin, model.TalentRoleHiringManager:
		return interviews
	case model.TalentRoleInterviewer:
		visible := make([]model.Interview, 0)
		for _, iv := range interviews {
			if iv.InterviewerEmail == "" {
				continue
			}
			if strings.EqualFold(iv.InterviewerEmail, e.identity.Email) {
				visible = append(visible, iv)
			}
		}
		return visible
	}

	return interviews
}
