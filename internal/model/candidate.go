package model

import (
	"time"

	"github.com/google/uuid"
)

// CandidateStatus tracks a candidate through the recruitment pipeline.
type CandidateStatus string

const (
	CandidateStatusApplied            CandidateStatus = "applied"
	CandidateStatusScreening          CandidateStatus = "screening"
	CandidateStatusInterviewScheduled CandidateStatus = "interview_scheduled"
	CandidateStatusInterviewCompleted CandidateStatus = "interview_completed"
	CandidateStatusSelected           CandidateStatus = "selected"
	CandidateStatusRejected           CandidateStatus = "rejected"
	CandidateStatusOfferRolled        CandidateStatus = "offer_rolled"
	CandidateStatusOfferAccepted      CandidateStatus = "offer_accepted"
	CandidateStatusOfferRejected      CandidateStatus = "offer_rejected"
	CandidateStatusOnboarding         CandidateStatus = "onboarding"
	CandidateStatusOnboarded          CandidateStatus = "onboarded"
)

// CandidateSource is where the application came from.
type CandidateSource string

const (
	SourceCareerPortal CandidateSource = "career_portal"
	SourceLinkedIn     CandidateSource = "linkedin"
	SourceIndeed       CandidateSource = "indeed"
	SourceNaukri       CandidateSource = "naukri"
	SourceReferral     CandidateSource = "referral"
	SourceOther        CandidateSource = "other"
)

// Candidate represents an applicant against a demand. Owned by the talent
// module; list responses are narrowed by the visibility filter before they
// leave the service layer.
type Candidate struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone,omitempty"`
	DemandID       uuid.UUID       `json:"demand_id"`
	Status         CandidateStatus `json:"status"`
	Skills         []string        `json:"skills"`
	Source         CandidateSource `json:"source"`
	Experience     string          `json:"experience,omitempty"`
	CurrentCompany string          `json:"current_company,omitempty"`
	Location       string          `json:"location,omitempty"`
	ResumeURL      string          `json:"resume_url,omitempty"`
	AppliedAt      time.Time       `json:"applied_at"`
}

// CreateCandidateRequest is the payload for registering an applicant.
type CreateCandidateRequest struct {
	Name           string          `json:"name" binding:"required,max=255"`
	Email          string          `json:"email" binding:"required,email,max=255"`
	Phone          string          `json:"phone" binding:"max=32"`
	DemandID       uuid.UUID       `json:"demand_id" binding:"required"`
	Skills         []string        `json:"skills" binding:"omitempty,dive,max=64"`
	Source         CandidateSource `json:"source" binding:"required,oneof=career_portal linkedin indeed naukri referral other"`
	Experience     string          `json:"experience" binding:"max=64"`
	CurrentCompany string          `json:"current_company" binding:"max=255"`
	Location       string          `json:"location" binding:"max=255"`
	ResumeURL      string          `json:"resume_url" binding:"omitempty,url,max=1024"`
}

// UpdateCandidateStatusRequest moves a candidate through the pipeline.
type UpdateCandidateStatusRequest struct {
	Status CandidateStatus `json:"status" binding:"required"`
}
