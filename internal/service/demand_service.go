package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/onegt/chrms-backend/internal/model"
	"github.com/onegt/chrms-backend/internal/repository"
)

// DemandService handles hiring demand business logic.
type DemandService struct {
	repo *repository.DemandRepository
}

// NewDemandService creates a new DemandService.
func NewDemandService(repo *repository.DemandRepository) *DemandService {
	return &DemandService{repo: repo}
}

// List returns all live demands.
func (s *DemandService) List(ctx context.Context) ([]model.Demand, error) {
	return s.repo.List(ctx)
}

// Get returns one demand by ID.
func (s *DemandService) Get(ctx context.Context, id uuid.UUID) (*model.Demand, error) {
	return s.repo.GetByID(ctx, id)
}

// Create opens a new demand on behalf of the given identity.
func (s *DemandService) Create(ctx context.Context, req *model.CreateDemandRequest, createdBy string) (*model.Demand, error) {
	d := &model.Demand{
		Title:      req.Title,
		Role:       req.Role,
		Experience: req.Experience,
		Location:   req.Location,
		Openings:   req.Openings,
		Skills:     req.Skills,
		Status:     model.DemandStatusOpen,
		CreatedBy:  createdBy,
	}
	if d.Skills == nil {
		d.Skills = []string{}
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// UpdateStatus changes a demand's lifecycle state.
func (s *DemandService) UpdateStatus(ctx context.Context, id uuid.UUID, status model.DemandStatus) error {
	return s.repo.UpdateStatus(ctx, id, status)
}
