package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/onegt/chrms-backend/internal/access"
	"github.com/onegt/chrms-backend/internal/model"
)

// InterviewService handles interview scheduling and outcomes. Scheduling an
// interview also advances the candidate and notifies the interviewer.
type InterviewService struct {
	interviews InterviewStore
	candidates CandidateStore
	notifier   *NotificationService
}

// NewInterviewService creates a new InterviewService.
func NewInterviewService(interviews InterviewStore, candidates CandidateStore, notifier *NotificationService) *InterviewService {
	return &InterviewService{interviews: interviews, candidates: candidates, notifier: notifier}
}

// List returns interviews visible to the evaluator's identity.
func (s *InterviewService) List(ctx context.Context, e *access.Evaluator) ([]model.Interview, error) {
	interviews, err := s.interviews.List(ctx)
	if err != nil {
		return nil, err
	}
	return access.FilterInterviews(interviews, e), nil
}

// ListByCandidate returns one candidate's interviews, narrowed the same way.
func (s *InterviewService) ListByCandidate(ctx context.Context, candidateID uuid.UUID, e *access.Evaluator) ([]model.Interview, error) {
	interviews, err := s.interviews.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	return access.FilterInterviews(interviews, e), nil
}

// Schedule books an interview slot, moves the candidate to the scheduled
// stage, and notifies the interviewer.
func (s *InterviewService) Schedule(ctx context.Context, req *model.ScheduleInterviewRequest) (*model.Interview, error) {
	candidate, err := s.candidates.GetByID(ctx, req.CandidateID)
	if err != nil {
		return nil, err
	}

	iv := &model.Interview{
		CandidateID:      req.CandidateID,
		DemandID:         req.DemandID,
		InterviewerEmail: req.InterviewerEmail,
		InterviewerName:  req.InterviewerName,
		Round:            req.Round,
		Status:           model.InterviewStatusScheduled,
		ScheduledAt:      req.ScheduledAt,
	}
	if err := s.interviews.Create(ctx, iv); err != nil {
		return nil, err
	}

	if err := s.candidates.UpdateStatus(ctx, candidate.ID, model.CandidateStatusInterviewScheduled); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.Publish(ctx, iv.InterviewerEmail,
			InterviewScheduledNotification(candidate.Name, iv.ScheduledAt))
	}

	return iv, nil
}

// UpdateOutcome records the result of an interview.
func (s *InterviewService) UpdateOutcome(ctx context.Context, id uuid.UUID, req *model.UpdateInterviewRequest) error {
	return s.interviews.UpdateOutcome(ctx, id, req.Status, req.Feedback, req.Recommendation)
}
