package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/onegt/chrms-backend/internal/model"
)

// DemandRepository handles hiring demand data access.
type DemandRepository struct {
	pool *pgxpool.Pool
}

// NewDemandRepository creates a new DemandRepository.
func NewDemandRepository(pool *pgxpool.Pool) *DemandRepository {
	return &DemandRepository{pool: pool}
}

// GetByID retrieves a demand by ID.
func (r *DemandRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Demand, error) {
	d := &model.Demand{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, role, experience, location, openings, skills, status, created_by, created_at
		 FROM demands
		 WHERE id = $1 AND status <> 'deleted'`, id,
	).Scan(&d.ID, &d.Title, &d.Role, &d.Experience, &d.Location, &d.Openings, &d.Skills, &d.Status, &d.CreatedBy, &d.CreatedAt)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// List retrieves all non-deleted demands, newest first.
func (r *DemandRepository) List(ctx context.Context) ([]model.Demand, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, role, experience, location, openings, skills, status, created_by, created_at
		 FROM demands
		 WHERE status <> 'deleted'
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	demands := []model.Demand{}
	for rows.Next() {
		var d model.Demand
		if err := rows.Scan(&d.ID, &d.Title, &d.Role, &d.Experience, &d.Location, &d.Openings, &d.Skills, &d.Status, &d.CreatedBy, &d.CreatedAt); err != nil {
			return nil, err
		}
		demands = append(demands, d)
	}
	return demands, rows.Err()
}

// Create inserts a new demand.
func (r *DemandRepository) Create(ctx context.Context, d *model.Demand) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO demands (title, role, experience, location, openings, skills, status, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at`,
		d.Title, d.Role, d.Experience, d.Location, d.Openings, d.Skills, d.Status, d.CreatedBy,
	).Scan(&d.ID, &d.CreatedAt)
}

// UpdateStatus changes a demand's lifecycle state.
func (r *DemandRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.DemandStatus) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE demands SET status = $2 WHERE id = $1`,
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

// CountByStatus returns demand totals grouped by status, excluding deleted.
func (r *DemandRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT status, COUNT(*) FROM demands WHERE status <> 'deleted' GROUP BY status`,
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
