package model

import (
	"time"

	"github.com/google/uuid"
)

// InterviewStatus tracks an interview through its lifecycle.
type InterviewStatus string

const (
	InterviewStatusScheduled   InterviewStatus = "scheduled"
	InterviewStatusCompleted   InterviewStatus = "completed"
	InterviewStatusCancelled   InterviewStatus = "cancelled"
	InterviewStatusNoShow      InterviewStatus = "no_show"
	InterviewStatusRescheduled InterviewStatus = "rescheduled"
)

// InterviewRound identifies which round an interview belongs to.
// Rounds 1-3 are internal; "client" is a customer-facing round.
type InterviewRound string

const (
	RoundOne    InterviewRound = "1"
	RoundTwo    InterviewRound = "2"
	RoundThree  InterviewRound = "3"
	RoundClient InterviewRound = "client"
)

// Interview links a candidate to an interviewer by email. The interviewer
// email is the join key the visibility filter uses: an interviewer role only
// sees candidates reachable through interviews carrying their own email.
type Interview struct {
	ID               uuid.UUID       `json:"id"`
	CandidateID      uuid.UUID       `json:"candidate_id"`
	DemandID         uuid.UUID       `json:"demand_id"`
	InterviewerEmail string          `json:"interviewer_email"`
	InterviewerName  string          `json:"interviewer_name,omitempty"`
	Round            InterviewRound  `json:"round"`
	Status           InterviewStatus `json:"status"`
	ScheduledAt      time.Time       `json:"scheduled_at"`
	Feedback         string          `json:"feedback,omitempty"`
	Recommendation   string          `json:"recommendation,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

// ScheduleInterviewRequest is the payload for booking an interview slot.
type ScheduleInterviewRequest struct {
	CandidateID      uuid.UUID      `json:"candidate_id" binding:"required"`
	DemandID         uuid.UUID      `json:"demand_id" binding:"required"`
	InterviewerEmail string         `json:"interviewer_email" binding:"required,email,max=255"`
	InterviewerName  string         `json:"interviewer_name" binding:"max=255"`
	Round            InterviewRound `json:"round" binding:"required,oneof=1 2 3 client"`
	ScheduledAt      time.Time      `json:"scheduled_at" binding:"required"`
}

// UpdateInterviewRequest records the outcome of an interview.
type UpdateInterviewRequest struct {
	Status         InterviewStatus `json:"status" binding:"required,oneof=scheduled completed cancelled no_show rescheduled"`
	Feedback       string          `json:"feedback" binding:"max=4096"`
	Recommendation string          `json:"recommendation" binding:"max=255"`
}
