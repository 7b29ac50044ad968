package dto

import "github.com/SscSPs/cylinder_holdings/internal/core/domain"

// SyncCustomerResponse reports the customer after a billing sync.
type SyncCustomerResponse struct {
	Customer CustomerResponse `json:"customer"`
	Created  bool             `json:"created"`
}

// CheckMovementsParams bounds the invoice range to scan.
type CheckMovementsParams struct {
	StartDate string `form:"startDate" binding:"required"` // YYYY-MM-DD
	EndDate   string `form:"endDate" binding:"required"`   // YYYY-MM-DD
}

// PotentialMovementsResponse lists billing lines not yet recorded.
type PotentialMovementsResponse struct {
	Movements []domain.PotentialMovement `json:"movements"`
}

// SetSyncStatusRequest moves a document along the sync states.
type SetSyncStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ACTIVE PENDING_SYNC SYNCED"`
}
