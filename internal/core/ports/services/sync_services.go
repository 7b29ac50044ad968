package services

import (
	"context"
	"time"

	"github.com/SscSPs/cylinder_holdings/internal/core/domain"
)

// SyncSvcFacade reconciles the ledger with the billing system
type SyncSvcFacade interface {
	// SyncCustomer creates or refreshes a customer from billing master data.
	SyncCustomer(ctx context.Context, accountNumber string, actor domain.Actor) (*domain.Customer, bool, error)

	// CheckCylinderMovements lists cylinder lines on billing invoices in
	// [start, end] whose invoice number is not yet recorded.
	CheckCylinderMovements(ctx context.Context, start, end time.Time) ([]domain.PotentialMovement, error)

	// SetSyncStatus moves a document between ACTIVE, PENDING_SYNC and SYNCED.
	SetSyncStatus(ctx context.Context, documentNumber string, status domain.DocumentStatus, actor domain.Actor) (*domain.Document, error)
}
