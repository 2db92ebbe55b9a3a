package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/onegt/chrms-backend/internal/model"
)

// InterviewRepository handles interview data access.
type InterviewRepository struct {
	pool *pgxpool.Pool
}

// NewInterviewRepository creates a new InterviewRepository.
func NewInterviewRepository(pool *pgxpool.Pool) *InterviewRepository {
	return &InterviewRepository{pool: pool}
}

// GetByID retrieves an interview by ID.
func (r *InterviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Interview, error) {
	iv := &model.Interview{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, candidate_id, demand_id, interviewer_email, interviewer_name, round, status, scheduled_at, feedback, recommendation, created_at
		 FROM interviews
		 WHERE id = $1`, id,
	).Scan(&iv.ID, &iv.CandidateID, &iv.DemandID, &iv.InterviewerEmail, &iv.InterviewerName, &iv.Round, &iv.Status, &iv.ScheduledAt, &iv.Feedback, &iv.Recommendation, &iv.CreatedAt)
	if err != nil {
		return nil, err
	}
	return iv, nil
}

// List retrieves all interviews ordered by schedule time, soonest first.
func (r *InterviewRepository) List(ctx context.Context) ([]model.Interview, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, candidate_id, demand_id, interviewer_email, interviewer_name, round, status, scheduled_at, feedback, recommendation, created_at
		 FROM interviews
		 ORDER BY scheduled_at`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanInterviews(rows)
}

// ListByCandidate retrieves every interview booked for one candidate.
func (r *InterviewRepository) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]model.Interview, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, candidate_id, demand_id, interviewer_email, interviewer_name, round, status, scheduled_at, feedback, recommendation, created_at
		 FROM interviews
		 WHERE candidate_id = $1
		 ORDER BY scheduled_at`, candidateID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanInterviews(rows)
}

// Create inserts a new interview.
func (r *InterviewRepository) Create(ctx context.Context, iv *model.Interview) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO interviews (candidate_id, demand_id, interviewer_email, interviewer_name, round, status, scheduled_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at`,
		iv.CandidateID, iv.DemandID, iv.InterviewerEmail, iv.InterviewerName, iv.Round, iv.Status, iv.ScheduledAt,
	).Scan(&iv.ID, &iv.CreatedAt)
}

// UpdateOutcome records the result of an interview.
func (r *InterviewRepository) UpdateOutcome(ctx context.Context, id uuid.UUID, status model.InterviewStatus, feedback, recommendation string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE interviews SET status = $2, feedback = $3, recommendation = $4 WHERE id = $1`,
		id, status, feedback, recommendation,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// CountScheduledToday returns interviews scheduled within the current day.
func (r *InterviewRepository) CountScheduledToday(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM interviews
		 WHERE status = 'scheduled' AND scheduled_at::date = CURRENT_DATE`,
	).Scan(&n)
	return n, err
}

func scanInterviews(rows pgx.Rows) ([]model.Interview, error) {
	interviews := []model.Interview{}
	for rows.Next() {
		var iv model.Interview
		if err := rows.Scan(&iv.ID, &iv.CandidateID, &iv.DemandID, &iv.InterviewerEmail, &iv.InterviewerName, &iv.Round, &iv.Status, &iv.ScheduledAt, &iv.Feedback, &iv.Recommendation, &iv.CreatedAt); err != nil {
			return nil, err
		}
		interviews = append(interviews, iv)
	}
	return interviews, rows.Err()
}
