package model

import (
	"time"

	"github.com/google/uuid"
)

// DemandStatus is the lifecycle state of a hiring demand.
type DemandStatus string

const (
	DemandStatusOpen    DemandStatus = "open"
	DemandStatusClosed  DemandStatus = "closed"
	DemandStatusOnHold  DemandStatus = "on_hold"
	DemandStatusDeleted DemandStatus = "deleted"
)

// Demand represents an open hiring requisition.
type Demand struct {
	ID         uuid.UUID    `json:"id"`
	Title      string       `json:"title"`
	Role       string       `json:"role"`
	Experience string       `json:"experience,omitempty"`
	Location   string       `json:"location,omitempty"`
	Openings   int          `json:"openings"`
	Skills     []string     `json:"skills"`
	Status     DemandStatus `json:"status"`
	CreatedBy  string       `json:"created_by"`
	CreatedAt  time.Time    `json:"created_at"`
}

// CreateDemandRequest is the payload for opening a demand.
type CreateDemandRequest struct {
	Title      string   `json:"title" binding:"required,max=255"`
	Role       string   `json:"role" binding:"required,max=255"`
	Experience string   `json:"experience" binding:"max=64"`
	Location   string   `json:"location" binding:"max=255"`
	Openings   int      `json:"openings" binding:"required,min=1"`
	Skills     []string `json:"skills" binding:"omitempty,dive,max=64"`
}

// UpdateDemandStatusRequest changes a demand's lifecycle state.
type UpdateDemandStatusRequest struct {
	Status DemandStatus `json:"status" binding:"required,oneof=open closed on_hold deleted"`
}
