package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/onegt/chrms-backend/internal/model"
)

// CandidateRepository handles candidate data access.
type CandidateRepository struct {
	pool *pgxpool.Pool
}

// NewCandidateRepository creates a new CandidateRepository.
func NewCandidateRepository(pool *pgxpool.Pool) *CandidateRepository {
	return &CandidateRepository{pool: pool}
}

// GetByID retrieves a candidate by ID.
func (r *CandidateRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Candidate, error) {
	c := &model.Candidate{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, email, phone, demand_id, status, skills, source, experience, current_company, location, resume_url, applied_at
		 FROM candidates
		 WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.DemandID, &c.Status, &c.Skills, &c.Source, &c.Experience, &c.CurrentCompany, &c.Location, &c.ResumeURL, &c.AppliedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// List retrieves all candidates, newest application first. Visibility
// narrowing happens in the service layer, so this always returns the full
// set.
func (r *CandidateRepository) List(ctx context.Context) ([]model.Candidate, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, phone, demand_id, status, skills, source, experience, current_company, location, resume_url, applied_at
		 FROM candidates
		 ORDER BY applied_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCandidates(rows)
}

// ListByDemand retrieves candidates attached to one demand.
func (r *CandidateRepository) ListByDemand(ctx context.Context, demandID uuid.UUID) ([]model.Candidate, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, phone, demand_id, status, skills, source, experience, current_company, location, resume_url, applied_at
		 FROM candidates
		 WHERE demand_id = $1
		 ORDER BY applied_at DESC`, demandID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCandidates(rows)
}

// Create inserts a new candidate.
func (r *CandidateRepository) Create(ctx context.Context, c *model.Candidate) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO candidates (name, email, phone, demand_id, status, skills, source, experience, current_company, location, resume_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id, applied_at`,
		c.Name, c.Email, c.Phone, c.DemandID, c.Status, c.Skills, c.Source, c.Experience, c.CurrentCompany, c.Location, c.ResumeURL,
	).Scan(&c.ID, &c.AppliedAt)
}

// UpdateStatus moves a candidate to a new pipeline stage.
func (r *CandidateRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.CandidateStatus) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE candidates SET status = $2 WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// CountByStatus returns candidate totals grouped by pipeline stage.
func (r *CandidateRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT status, COUNT(*) FROM candidates GROUP BY status`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

func scanCandidates(rows pgx.Rows) ([]model.Candidate, error) {
	candidates := []model.Candidate{}
	for rows.Next() {
		var c model.Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.DemandID, &c.Status, &c.Skills, &c.Source, &c.Experience, &c.CurrentCompany, &c.Location, &c.ResumeURL, &c.AppliedAt); err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}
