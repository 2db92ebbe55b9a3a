package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/onegt/chrms-backend/internal/config"
	"github.com/onegt/chrms-backend/internal/database"
	"github.com/onegt/chrms-backend/internal/logger"
	"github.com/onegt/chrms-backend/internal/model"
	"github.com/onegt/chrms-backend/internal/repository"
	"github.com/onegt/chrms-backend/internal/service"
)

// Seeds a small demo dataset: one associate per role, an open demand, and a
// couple of candidates against it. Safe to re-run; existing emails are kept.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	associateRepo := repository.NewAssociateRepository(pool)
	demandRepo := repository.NewDemandRepository(pool)
	candidateRepo := repository.NewCandidateRepository(pool)

	authService := service.NewAuthService(cfg, rdb)

	fmt.Println("=== Seeding Demo Directory ===")

	seedAssociates := []struct {
		email       string
		name        string
		role        model.Role
		designation string
	}{
		{"admin@onegt.dev", "Demo Admin", model.RoleAdmin, ""},
		{"hr@onegt.dev", "Demo HR", model.RoleHR, "HR Executive"},
		{"pm@onegt.dev", "Demo PM", model.RoleProjectManager, "Project Manager"},
		{"ops@onegt.dev", "Demo Ops", model.RoleOperationsManager, "Operations Manager"},
		{"dev@onegt.dev", "Demo Developer", model.RoleAssociate, "Developer"},
	}

	hash, err := authService.HashPassword("changeme")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash seed password")
	}

	var createdBy string
	for _, s := range seedAssociates {
		existing, err := associateRepo.GetByEmail(ctx, s.email)
		if err == nil {
			fmt.Printf("Exists:  %s\n", existing.Email)
			if createdBy == "" {
				createdBy = existing.Email
			}
			continue
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			log.Fatal().Err(err).Msg("Failed to check associate")
		}

		a := &model.Associate{
			Email:        s.email,
			Name:         s.name,
			PasswordHash: hash,
			Role:         s.role,
			Designation:  s.designation,
			IsActive:     true,
		}
		if err := associateRepo.Create(ctx, a); err != nil {
			log.Fatal().Err(err).Str("email", s.email).Msg("Failed to create associate")
		}
		fmt.Printf("Created: %s (%s)\n", a.Email, a.Role)
		if createdBy == "" {
			createdBy = a.Email
		}
	}

	demand := &model.Demand{
		Title:      "Backend Engineer",
		Role:       "Software Engineer",
		Experience: "3-5",
		Location:   "Remote",
		Openings:   2,
		Skills:     []string{"Go", "PostgreSQL", "Redis"},
		Status:     model.DemandStatusOpen,
		CreatedBy:  createdBy,
	}
	if err := demandRepo.Create(ctx, demand); err != nil {
		log.Fatal().Err(err).Msg("Failed to create demand")
	}
	fmt.Printf("Created demand: %s (%s)\n", demand.Title, demand.ID)

	for i, name := range []string{"Asha Rao", "Vikram Shetty"} {
		c := &model.Candidate{
			Name:     name,
			Email:    fmt.Sprintf("candidate%d@example.com", i+1),
			DemandID: demand.ID,
			Status:   model.CandidateStatusApplied,
			Skills:   []string{"Go"},
			Source:   model.SourceReferral,
		}
		if err := candidateRepo.Create(ctx, c); err != nil {
			log.Fatal().Err(err).Str("name", name).Msg("Failed to create candidate")
		}
		fmt.Printf("Created candidate: %s\n", c.Name)
	}

	fmt.Println("Done.")
}
