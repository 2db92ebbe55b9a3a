package access_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onegt/chrms-backend/internal/access"
	"github.com/onegt/chrms-backend/internal/model"
)

var (
	candA = model.Candidate{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Name: "Alice"}
	candB = model.Candidate{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Name: "Bob"}
	candC = model.Candidate{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Name: "Carol"}
)

func interviewerEvaluator(email string) *access.Evaluator {
	return access.NewEvaluator(&model.Identity{
		AssociateID: "a-9",
		Email:       email,
		Role:        model.Role("Consultant"), // Projects to interviewer.
	})
}

func TestFilterCandidatesInterviewerJoin(t *testing.T) {
	candidates := []model.Candidate{candA, candB, candC}
	interviews := []model.Interview{
		{ID: uuid.New(), CandidateID: candA.ID, InterviewerEmail: "A@x.com"},
		{ID: uuid.New(), CandidateID: candB.ID, InterviewerEmail: "someone@x.com"},
	}

	got := access.FilterCandidates(candidates, interviews, interviewerEvaluator("a@x.com"))

	require.Len(t, got, 1, "email match is case-insensitive")
	assert.Equal(t, candA.ID, got[0].ID)
}

func TestFilterCandidatesManagementSeesAll(t *testing.T) {
	candidates := []model.Candidate{candA, candB, candC}

	for _, role := range []model.Role{model.RoleAdmin, model.RoleHR, model.RoleProjectManager, model.RoleAssociate} {
		e := access.NewEvaluator(&model.Identity{AssociateID: "a-1", Email: "m@x.com", Role: role})
		got := access.FilterCandidates(candidates, nil, e)
		assert.Equal(t, candidates, got, "role %q sees the full collection", role)
	}
}

func TestFilterCandidatesNilUser(t *testing.T) {
	candidates := []model.Candidate{candA, candB, candC}

	assert.Empty(t, access.FilterCandidates(candidates, nil, access.NewEvaluator(nil)))
	assert.Empty(t, access.FilterCandidates(candidates, nil, nil))
}

func TestFilterCandidatesNoInterviewsMeansNoneVisible(t *testing.T) {
	candidates := []model.Candidate{candA, candB}
	assert.Empty(t, access.FilterCandidates(candidates, nil, interviewerEvaluator("a@x.com")))
	assert.Empty(t, access.FilterCandidates(candidates, []model.Interview{}, interviewerEvaluator("a@x.com")))
}

func TestFilterCandidatesMissingInterviewerEmailNeverMatches(t *testing.T) {
	candidates := []model.Candidate{candA}
	interviews := []model.Interview{{ID: uuid.New(), CandidateID: candA.ID, InterviewerEmail: ""}}

	e := access.NewEvaluator(&model.Identity{AssociateID: "a-9", Email: "", Role: model.Role("Consultant")})
	assert.Empty(t, access.FilterCandidates(candidates, interviews, e))
}

func TestFilterCandidatesPreservesInputOrder(t *testing.T) {
	candidates := []model.Candidate{candC, candA, candB}
	interviews := []model.Interview{
		{ID: uuid.New(), CandidateID: candA.ID, InterviewerEmail: "iv@x.com"},
		{ID: uuid.New(), CandidateID: candC.ID, InterviewerEmail: "iv@x.com"},
	}

	got := access.FilterCandidates(candidates, interviews, interviewerEvaluator("iv@x.com"))

	require.Len(t, got, 2)
	assert.Equal(t, candC.ID, got[0].ID, "output follows input ordering, not interview ordering")
	assert.Equal(t, candA.ID, got[1].ID)
}

func TestFilterInterviewsInterviewerSeesOwnOnly(t *testing.T) {
	interviews := []model.Interview{
		{ID: uuid.New(), CandidateID: candA.ID, InterviewerEmail: "IV@x.com"},
		{ID: uuid.New(), CandidateID: candB.ID, InterviewerEmail: "other@x.com"},
		{ID: uuid.New(), CandidateID: candC.ID, InterviewerEmail: "iv@x.com"},
	}

	got := access.FilterInterviews(interviews, interviewerEvaluator("iv@x.com"))

	require.Len(t, got, 2)
	assert.Equal(t, interviews[0].ID, got[0].ID)
	assert.Equal(t, interviews[2].ID, got[1].ID)
}

func TestFilterInterviewsManagementAndNilUser(t *testing.T) {
	interviews := []model.Interview{
		{ID: uuid.New(), CandidateID: candA.ID, InterviewerEmail: "iv@x.com"},
	}

	e := access.NewEvaluator(&model.Identity{AssociateID: "a-1", Email: "hr@x.com", Role: model.RoleHR})
	assert.Equal(t, interviews, access.FilterInterviews(interviews, e))

	assert.Empty(t, access.FilterInterviews(interviews, access.NewEvaluator(nil)))
}
