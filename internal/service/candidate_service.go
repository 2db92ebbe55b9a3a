package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/onegt/chrms-backend/internal/access"
	"github.com/onegt/chrms-backend/internal/model"
)

// CandidateStore is the candidate persistence surface the service needs.
// Satisfied by repository.CandidateRepository.
type CandidateStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Candidate, error)
	List(ctx context.Context) ([]model.Candidate, error)
	ListByDemand(ctx context.Context, demandID uuid.UUID) ([]model.Candidate, error)
	Create(ctx context.Context, c *model.Candidate) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.CandidateStatus) error
}

// InterviewStore is the interview persistence surface the talent services
// need. Satisfied by repository.InterviewRepository.
type InterviewStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Interview, error)
	List(ctx context.Context) ([]model.Interview, error)
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]model.Interview, error)
	Create(ctx context.Context, iv *model.Interview) error
	UpdateOutcome(ctx context.Context, id uuid.UUID, status model.InterviewStatus, feedback, recommendation string) error
}

// CandidateService handles candidate business logic. Every list it returns
// has already been narrowed to what the caller's talent role may see.
type CandidateService struct {
	candidates CandidateStore
	interviews InterviewStore
}

// NewCandidateService creates a new CandidateService.
func NewCandidateService(candidates CandidateStore, interviews InterviewStore) *CandidateService {
	return &CandidateService{candidates: candidates, interviews: interviews}
}

// List returns candidates visible to the evaluator's identity. Interviewer
// roles only receive candidates they are booked against.
func (s *CandidateService) List(ctx context.Context, e *access.Evaluator) ([]model.Candidate, error) {
	candidates, err := s.candidates.List(ctx)
	if err != nil {
		return nil, err
	}

	if e != nil && e.TalentRole() == model.TalentRoleInterviewer {
		interviews, err := s.interviews.List(ctx)
		if err != nil {
			return nil, err
		}
		return access.FilterCandidates(candidates, interviews, e), nil
	}

	return access.FilterCandidates(candidates, nil, e), nil
}

// ListByDemand returns one demand's candidates, narrowed the same way.
func (s *CandidateService) ListByDemand(ctx context.Context, demandID uuid.UUID, e *access.Evaluator) ([]model.Candidate, error) {
	candidates, err := s.candidates.ListByDemand(ctx, demandID)
	if err != nil {
		return nil, err
	}

	if e != nil && e.TalentRole() == model.TalentRoleInterviewer {
		interviews, err := s.interviews.List(ctx)
		if err != nil {
			return nil, err
		}
		return access.FilterCandidates(candidates, interviews, e), nil
	}

	return access.FilterCandidates(candidates, nil, e), nil
}

// Get returns one candidate by ID.
func (s *CandidateService) Get(ctx context.Context, id uuid.UUID) (*model.Candidate, error) {
	return s.candidates.GetByID(ctx, id)
}

// Create registers a new applicant at the start of the pipeline.
func (s *CandidateService) Create(ctx context.Context, req *model.CreateCandidateRequest) (*model.Candidate, error) {
	c := &model.Candidate{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		DemandID:       req.DemandID,
		Status:         model.CandidateStatusApplied,
		Skills:         req.Skills,
		Source:         req.Source,
		Experience:     req.Experience,
		CurrentCompany: req.CurrentCompany,
		Location:       req.Location,
		ResumeURL:      req.ResumeURL,
	}
	if c.Skills == nil {
		c.Skills = []string{}
	}
	if err := s.candidates.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateStatus moves a candidate to a new pipeline stage.
func (s *CandidateService) UpdateStatus(ctx context.Context, id uuid.UUID, status model.CandidateStatus) error {
	return s.candidates.UpdateStatus(ctx, id, status)
}
