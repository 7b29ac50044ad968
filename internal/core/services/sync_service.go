package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/cylinder_holdings/internal/apperrors"
	"github.com/SscSPs/cylinder_holdings/internal/core/domain"
	"github.com/SscSPs/cylinder_holdings/internal/core/ports/billing"
	portsrepo "github.com/SscSPs/cylinder_holdings/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cylinder_holdings/internal/core/ports/services"
	"github.com/SscSPs/cylinder_holdings/internal/dto"
)

// syncService reconciles customers and documents with the billing system.
type syncService struct {
	BaseService
	billingClient billing.Client
	customerRepo  portsrepo.CustomerRepositoryFacade
	documentRepo  portsrepo.DocumentRepositoryFacade
}

// NewSyncService creates a new SyncService. A nil client leaves the billing
// lookups unavailable while status changes keep working.
func NewSyncService(client billing.Client, customerRepo portsrepo.CustomerRepositoryFacade, documentRepo portsrepo.DocumentRepositoryFacade) portssvc.SyncSvcFacade {
	return &syncService{
		billingClient: client,
		customerRepo:  customerRepo,
		documentRepo:  documentRepo,
	}
}

var _ portssvc.SyncSvcFacade = (*syncService)(nil)

var errBillingNotConfigured = apperrors.NewAppError(http.StatusServiceUnavailable, "billing integration is not configured", nil)

func (s *syncService) SyncCustomer(ctx context.Context, accountNumber string, actor domain.Actor) (*domain.Customer, bool, error) {
	if err := s.RequireAdmin(ctx, actor, "sync customers"); err != nil {
		return nil, false, err
	}
	if s.billingClient == nil {
		return nil, false, errBillingNotConfigured
	}
	account, err := resolveAccountNumber(accountNumber)
	if err != nil {
		return nil, false, err
	}

	record, err := s.billingClient.GetCustomer(ctx, account)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch customer from billing", slog.String("account_number", account))
		return nil, false, fmt.Errorf("failed to fetch customer %s from billing: %w", account, err)
	}

	now := time.Now().UTC()
	customer := domain.Customer{
		AccountNumber: account,
		Name:          strings.TrimSpace(record.Name),
		ContactPerson: strings.TrimSpace(record.ContactPerson),
		PhoneNumber:   strings.TrimSpace(record.Telephone),
		Email:         strings.TrimSpace(record.Email),
		Address:       strings.TrimSpace(record.PhysicalAddress),
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}
	stored, created, err := s.customerRepo.UpsertCustomer(ctx, customer)
	if err != nil {
		s.LogError(ctx, err, "Failed to store synced customer", slog.String("account_number", account))
		return nil, false, fmt.Errorf("failed to store customer %s: %w", account, err)
	}

	s.LogInfo(ctx, "Customer synced from billing", slog.String("account_number", account), slog.Bool("created", created))
	return stored, created, nil
}

func (s *syncService) CheckCylinderMovements(ctx context.Context, start, end time.Time) ([]domain.PotentialMovement, error) {
	if s.billingClient == nil {
		return nil, errBillingNotConfigured
	}
	start, end = domain.DateOnly(start), domain.DateOnly(end)
	if end.Before(start) {
		return nil, apperrors.NewFieldError(apperrors.ErrValidation, "endDate", end.Format(dto.DateLayout), "end date must not be before start date")
	}

	items, err := s.billingClient.ListCylinderItems(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cylinder items from billing")
		return nil, fmt.Errorf("failed to list cylinder items: %w", err)
	}
	descriptions := make(map[string]string, len(items))
	for _, item := range items {
		descriptions[item.Code] = item.Description
	}

	invoices, err := s.billingClient.GetInvoicesInRange(ctx, start, end, "")
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices from billing")
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	if len(invoices) == 0 {
		return []domain.PotentialMovement{}, nil
	}

	numbers := make([]string, len(invoices))
	for i, inv := range invoices {
		numbers[i] = inv.Number
	}
	recorded, err := s.documentRepo.FindDocumentNumbers(ctx, numbers)
	if err != nil {
		return nil, fmt.Errorf("failed to look up recorded documents: %w", err)
	}

	potential := make([]domain.PotentialMovement, 0)
	for _, inv := range invoices {
		if recorded[inv.Number] {
			continue
		}
		date, err := time.Parse(dto.DateLayout, inv.Date)
		if err != nil {
			s.LogWarn(ctx, "Skipping billing invoice with unreadable date", slog.String("invoice_number", inv.Number), slog.String("date", inv.Date))
			continue
		}
		for _, line := range inv.Lines {
			description, ok := descriptions[line.ItemCode]
			if !ok {
				continue
			}
			potential = append(potential, domain.PotentialMovement{
				InvoiceNumber:   inv.Number,
				InvoiceDate:     date,
				CustomerAccount: inv.AccountCode,
				ItemCode:        line.ItemCode,
				Description:     description,
				Quantity:        line.Quantity,
			})
		}
	}
	return potential, nil
}

func (s *syncService) SetSyncStatus(ctx context.Context, documentNumber string, status domain.DocumentStatus, actor domain.Actor) (*domain.Document, error) {
	if err := s.RequireAdmin(ctx, actor, "change sync status"); err != nil {
		return nil, err
	}
	switch status {
	case domain.StatusActive, domain.StatusPendingSync, domain.StatusSynced:
	default:
		return nil, apperrors.NewFieldError(apperrors.ErrValidation, "status", string(status), "status must be ACTIVE, PENDING_SYNC or SYNCED")
	}

	doc, err := s.documentRepo.FindDocumentByNumber(ctx, strings.ToUpper(strings.TrimSpace(documentNumber)))
	if err != nil {
		return nil, err
	}
	if doc.Status == status {
		return doc, nil
	}
	if !doc.Status.CanSyncTo(status) {
		return nil, fmt.Errorf("%w: document %s cannot move from %s to %s", apperrors.ErrConflict, doc.DocumentNumber, doc.Status, status)
	}

	now := time.Now().UTC()
	changes := map[string]any{"status": map[string]any{"old": string(doc.Status), "new": string(status)}}
	doc.Status = status
	doc.LastUpdatedAt = now
	doc.LastUpdatedBy = actor.UserID
	if err := s.documentRepo.UpdateDocumentStatus(ctx, *doc, newAudit(doc, domain.AuditSync, actor, now, changes)); err != nil {
		s.LogError(ctx, err, "Failed to update sync status", slog.String("document_number", doc.DocumentNumber))
		return nil, fmt.Errorf("failed to update sync status: %w", err)
	}
	return doc, nil
}
