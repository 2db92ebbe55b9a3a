package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/onegt/chrms-backend/internal/access"
	"github.com/onegt/chrms-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCandidateStore struct {
	candidates []model.Candidate
	created    []*model.Candidate
	statuses   map[uuid.UUID]model.CandidateStatus
}

func (s *stubCandidateStore) GetByID(_ context.Context, id uuid.UUID) (*model.Candidate, error) {
	for i := range s.candidates {
		if s.candidates[i].ID == id {
			return &s.candidates[i], nil
		}
	}
	return nil, assert.AnError
}

func (s *stubCandidateStore) List(context.Context) ([]model.Candidate, error) {
	return s.candidates, nil
}

func (s *stubCandidateStore) ListByDemand(_ context.Context, demandID uuid.UUID) ([]model.Candidate, error) {
	out := []model.Candidate{}
	for _, c := range s.candidates {
		if c.DemandID == demandID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *stubCandidateStore) Create(_ context.Context, c *model.Candidate) error {
	c.ID = uuid.New()
	s.created = append(s.created, c)
	s.candidates = append(s.candidates, *c)
	return nil
}

func (s *stubCandidateStore) UpdateStatus(_ context.Context, id uuid.UUID, status model.CandidateStatus) error {
	if s.statuses == nil {
		s.statuses = map[uuid.UUID]model.CandidateStatus{}
	}
	s.statuses[id] = status
	return nil
}

type stubInterviewStore struct {
	interviews []model.Interview
	created    []*model.Interview
	listCalls  int
}

func (s *stubInterviewStore) GetByID(_ context.Context, id uuid.UUID) (*model.Interview, error) {
	for i := range s.interviews {
		if s.interviews[i].ID == id {
			return &s.interviews[i], nil
		}
	}
	return nil, assert.AnError
}

func (s *stubInterviewStore) List(context.Context) ([]model.Interview, error) {
	s.listCalls++
	return s.interviews, nil
}

func (s *stubInterviewStore) ListByCandidate(_ context.Context, candidateID uuid.UUID) ([]model.Interview, error) {
	out := []model.Interview{}
	for _, iv := range s.interviews {
		if iv.CandidateID == candidateID {
			out = append(out, iv)
		}
	}
	return out, nil
}

func (s *stubInterviewStore) Create(_ context.Context, iv *model.Interview) error {
	iv.ID = uuid.New()
	s.created = append(s.created, iv)
	s.interviews = append(s.interviews, *iv)
	return nil
}

func (s *stubInterviewStore) UpdateOutcome(context.Context, uuid.UUID, model.InterviewStatus, string, string) error {
	return nil
}

func evaluatorFor(role model.Role, email string) *access.Evaluator {
	return access.NewEvaluator(&model.Identity{
		AssociateID: "a1",
		Email:       email,
		Role:        role,
	})
}

func TestListNarrowsForInterviewer(t *testing.T) {
	mine := model.Candidate{ID: uuid.New(), Name: "Mine"}
	other := model.Candidate{ID: uuid.New(), Name: "Other"}

	candidates := &stubCandidateStore{candidates: []model.Candidate{mine, other}}
	interviews := &stubInterviewStore{interviews: []model.Interview{
		{ID: uuid.New(), CandidateID: mine.ID, InterviewerEmail: "Interviewer@Example.com"},
		{ID: uuid.New(), CandidateID: other.ID, InterviewerEmail: "someone.else@example.com"},
	}}
	svc := NewCandidateService(candidates, interviews)

	// Roles outside every management group project to the interviewer
	// talent role.
	ev := evaluatorFor(model.Role("Finance"), "interviewer@example.com")
	require.Equal(t, model.TalentRoleInterviewer, ev.TalentRole())

	got, err := svc.List(context.Background(), ev)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Mine", got[0].Name)
	assert.Equal(t, 1, interviews.listCalls, "interviews fetched for the email join")
}

func TestListReturnsAllForManagementRoles(t *testing.T) {
	candidates := &stubCandidateStore{candidates: []model.Candidate{
		{ID: uuid.New(), Name: "A"},
		{ID: uuid.New(), Name: "B"},
	}}
	interviews := &stubInterviewStore{}
	svc := NewCandidateService(candidates, interviews)

	for _, role := range []model.Role{model.RoleAdmin, model.RoleHR, model.RoleProjectManager} {
		got, err := svc.List(context.Background(), evaluatorFor(role, "mgmt@example.com"))
		require.NoError(t, err)
		assert.Len(t, got, 2, "role %s sees everything", role)
	}
	assert.Equal(t, 0, interviews.listCalls, "no interview fetch for management roles")
}

func TestListNilEvaluatorSeesNothing(t *testing.T) {
	candidates := &stubCandidateStore{candidates: []model.Candidate{{ID: uuid.New()}}}
	svc := NewCandidateService(candidates, &stubInterviewStore{})

	got, err := svc.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestCreateStartsPipelineAtApplied(t *testing.T) {
	candidates := &stubCandidateStore{}
	svc := NewCandidateService(candidates, &stubInterviewStore{})

	c, err := svc.Create(context.Background(), &model.CreateCandidateRequest{
		Name:     "New Person",
		Email:    "new@example.com",
		DemandID: uuid.New(),
		Source:   model.SourceReferral,
	})
	require.NoError(t, err)
	assert.Equal(t, model.CandidateStatusApplied, c.Status)
	assert.NotNil(t, c.Skills)
}

func TestScheduleAdvancesCandidateAndNotifies(t *testing.T) {
	candidate := model.Candidate{ID: uuid.New(), Name: "Asha Rao"}
	candidates := &stubCandidateStore{candidates: []model.Candidate{candidate}}
	interviews := &stubInterviewStore{}
	svc := NewInterviewService(interviews, candidates, nil)

	iv, err := svc.Schedule(context.Background(), &model.ScheduleInterviewRequest{
		CandidateID:      candidate.ID,
		DemandID:         uuid.New(),
		InterviewerEmail: "interviewer@example.com",
		Round:            model.RoundOne,
	})
	require.NoError(t, err)
	assert.Equal(t, model.InterviewStatusScheduled, iv.Status)
	assert.Equal(t, model.CandidateStatusInterviewScheduled, candidates.statuses[candidate.ID])
	require.Len(t, interviews.created, 1)
}
