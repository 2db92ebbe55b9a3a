package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/onegt/chrms-backend/internal/model"
)

// AssociateRepository handles associate directory data access.
type AssociateRepository struct {
	pool *pgxpool.Pool
}

// NewAssociateRepository creates a new AssociateRepository.
func NewAssociateRepository(pool *pgxpool.Pool) *AssociateRepository {
	return &AssociateRepository{pool: pool}
}

// GetByID retrieves an associate by ID.
func (r *AssociateRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Associate, error) {
	a := &model.Associate{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, name, password_hash, role, designation, picture, is_active, created_at, updated_at
		 FROM associates
		 WHERE id = $1`, id,
	).Scan(&a.ID, &a.Email, &a.Name, &a.PasswordHash, &a.Role, &a.Designation, &a.Picture, &a.IsActive, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// GetByEmail retrieves an associate by their unique email, case-insensitively.
func (r *AssociateRepository) GetByEmail(ctx context.Context, email string) (*model.Associate, error) {
	a := &model.Associate{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, name, password_hash, role, designation, picture, is_active, created_at, updated_at
		 FROM associates
		 WHERE LOWER(email) = LOWER($1)`, email,
	).Scan(&a.ID, &a.Email, &a.Name, &a.PasswordHash, &a.Role, &a.Designation, &a.Picture, &a.IsActive, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// List retrieves a page of associates ordered by name.
func (r *AssociateRepository) List(ctx context.Context, limit, offset int) ([]model.Associate, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM associates`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, email, name, password_hash, role, designation, picture, is_active, created_at, updated_at
		 FROM associates
		 ORDER BY name
		 LIMIT $1 OFFSET $2`, limit, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	associates := []model.Associate{}
	for rows.Next() {
		var a model.Associate
		if err := rows.Scan(&a.ID, &a.Email, &a.Name, &a.PasswordHash, &a.Role, &a.Designation, &a.Picture, &a.IsActive, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, 0, err
		}
		associates = append(associates, a)
	}
	return associates, total, rows.Err()
}

// Create inserts a new associate.
func (r *AssociateRepository) Create(ctx context.Context, a *model.Associate) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO associates (email, name, password_hash, role, designation, picture, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		a.Email, a.Name, a.PasswordHash, a.Role, a.Designation, a.Picture, a.IsActive,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

// SetActive flips the active flag on an account.
func (r *AssociateRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE associates SET is_active = $2, updated_at = NOW() WHERE id = $1`,
		id, active,
	)
	return err
}
