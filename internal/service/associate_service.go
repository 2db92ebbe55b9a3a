package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/onegt/chrms-backend/internal/model"
	"github.com/onegt/chrms-backend/internal/repository"
)

// ErrEmailTaken is returned when creating an associate under an email that
// already has an account.
var ErrEmailTaken = errors.New("email already registered")

// AssociateService handles directory business logic.
type AssociateService struct {
	repo *repository.AssociateRepository
	auth *AuthService
}

// NewAssociateService creates a new AssociateService.
func NewAssociateService(repo *repository.AssociateRepository, auth *AuthService) *AssociateService {
	return &AssociateService{repo: repo, auth: auth}
}

// List returns a page of the directory.
func (s *AssociateService) List(ctx context.Context, limit, offset int) ([]model.Associate, int, error) {
	return s.repo.List(ctx, limit, offset)
}

// Get returns one associate by ID.
func (s *AssociateService) Get(ctx context.Context, id uuid.UUID) (*model.Associate, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByEmail returns one associate by email.
func (s *AssociateService) GetByEmail(ctx context.Context, email string) (*model.Associate, error) {
	return s.repo.GetByEmail(ctx, email)
}

// Create registers a new directory entry. An empty password leaves the
// account as Google-sign-in only.
func (s *AssociateService) Create(ctx context.Context, req *model.CreateAssociateRequest) (*model.Associate, error) {
	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	a := &model.Associate{
		Email:       req.Email,
		Name:        req.Name,
		Role:        req.Role,
		Designation: req.Designation,
		IsActive:    true,
	}
	if req.Password != "" {
		hash, err := s.auth.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		a.PasswordHash = hash
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Deactivate disables an account without deleting its history.
func (s *AssociateService) Deactivate(ctx context.Context, id uuid.UUID) error {
	return s.repo.SetActive(ctx, id, false)
}
