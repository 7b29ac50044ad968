package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/cylinder_holdings/internal/apperrors"
	"github.com/SscSPs/cylinder_holdings/internal/core/domain"
	portsrepo "github.com/SscSPs/cylinder_holdings/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cylinder_holdings/internal/core/ports/services"
	"github.com/SscSPs/cylinder_holdings/internal/dto"
)

const (
	defaultNumberingAttempts = 5
	defaultDocumentPageSize  = 20
)

// documentService implements the DocumentSvcFacade interface
type documentService struct {
	BaseService
	documentRepo      portsrepo.DocumentRepositoryFacade
	customerRepo      portsrepo.CustomerReader
	numberingAttempts int
	now               func() time.Time
}

// DocumentOption is a functional option for configuring the document service
type DocumentOption func(*documentService)

// WithNumberingAttempts bounds how often an auto-numbered insert is retried after a collision.
func WithNumberingAttempts(n int) DocumentOption {
	return func(s *documentService) {
		if n > 0 {
			s.numberingAttempts = n
		}
	}
}

// WithClock overrides the time source used for audit fields.
func WithClock(now func() time.Time) DocumentOption {
	return func(s *documentService) {
		s.now = now
	}
}

// NewDocumentService creates a new document service with the provided options
func NewDocumentService(documentRepo portsrepo.DocumentRepositoryFacade, customerRepo portsrepo.CustomerReader, options ...DocumentOption) portssvc.DocumentSvcFacade {
	svc := &documentService{
		documentRepo:      documentRepo,
		customerRepo:      customerRepo,
		numberingAttempts: defaultNumberingAttempts,
		now:               func() time.Time { return time.Now().UTC() },
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.DocumentSvcFacade = (*documentService)(nil)

func (s *documentService) NextDocumentNumber(ctx context.Context, docType domain.DocumentType) (string, error) {
	latest, err := s.documentRepo.FindLatestDocumentNumber(ctx, docType)
	if err != nil {
		s.LogError(ctx, err, "Failed to find latest document number", slog.String("document_type", docType.Prefix()))
		return "", fmt.Errorf("failed to find latest %s number: %w", docType.Prefix(), err)
	}
	return domain.NextDocumentNumber(docType, latest)
}

func (s *documentService) DocumentNumberExists(ctx context.Context, docType domain.DocumentType, input string) (string, bool, error) {
	number, err := domain.NormalizeDocumentNumber(docType, input)
	if err != nil {
		return "", false, err
	}
	exists, err := s.documentRepo.DocumentNumberExists(ctx, number)
	if err != nil {
		return "", false, fmt.Errorf("failed to check document number %s: %w", number, err)
	}
	return number, exists, nil
}

func (s *documentService) GetDocumentByNumber(ctx context.Context, documentNumber string) (*domain.Document, error) {
	number := strings.ToUpper(strings.TrimSpace(documentNumber))
	doc, err := s.documentRepo.FindDocumentByNumber(ctx, number)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get document", slog.String("document_number", number))
		}
		return nil, err
	}
	return doc, nil
}

func (s *documentService) ListCustomerDocuments(ctx context.Context, accountNumber string, params dto.ListDocumentsParams) ([]domain.Document, *string, error) {
	account, err := resolveAccountNumber(accountNumber)
	if err != nil {
		return nil, nil, err
	}
	if _, err := s.customerRepo.FindCustomerByAccountNumber(ctx, account); err != nil {
		return nil, nil, err
	}

	filter := domain.DocumentListFilter{Limit: params.Limit, NextToken: params.NextToken}
	if filter.Limit <= 0 {
		filter.Limit = defaultDocumentPageSize
	}
	if params.Month != "" {
		month, err := dto.ParseMonth("month", params.Month)
		if err != nil {
			return nil, nil, err
		}
		filter.Month = &month
	}

	docs, next, err := s.documentRepo.ListDocumentsByCustomer(ctx, account, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list documents", slog.String("account_number", account))
		return nil, nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, next, nil
}

func (s *documentService) CreateDocument(ctx context.Context, req dto.CreateDocumentRequest, actor domain.Actor) (*domain.Document, error) {
	docType, err := domain.ParseDocumentType(req.DocumentType)
	if err != nil {
		return nil, err
	}
	date, err := dto.ParseDate("documentDate", req.DocumentDate)
	if err != nil {
		return nil, err
	}
	account, err := resolveAccountNumber(req.CustomerAccount)
	if err != nil {
		return nil, err
	}
	customer, err := s.customerRepo.FindCustomerByAccountNumber(ctx, account)
	if err != nil {
		return nil, err
	}
	movements := dto.ToDomainMovements(req.Movements)
	if err := docType.ValidateMovements(movements); err != nil {
		return nil, err
	}

	now := s.now()
	doc := &domain.Document{
		Type:            docType,
		DocumentDate:    date,
		CustomerAccount: customer.AccountNumber,
		CustomerName:    customer.Name,
		Status:          domain.StatusActive,
		Movements:       movements,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if req.DocumentNumber != nil && strings.TrimSpace(*req.DocumentNumber) != "" {
		err = s.createWithNumber(ctx, doc, *req.DocumentNumber, actor)
	} else {
		err = s.createWithNextNumber(ctx, doc, actor)
	}
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Document created",
		slog.String("document_number", doc.DocumentNumber),
		slog.String("customer_account", doc.CustomerAccount),
		slog.String("user_id", actor.UserID))
	return doc, nil
}

// createWithNumber stores doc under a number supplied by the caller.
func (s *documentService) createWithNumber(ctx context.Context, doc *domain.Document, input string, actor domain.Actor) error {
	number, err := domain.NormalizeDocumentNumber(doc.Type, input)
	if err != nil {
		return err
	}
	if err := s.ensureNumberAvailable(ctx, number); err != nil {
		return err
	}
	doc.DocumentNumber = number
	err = s.documentRepo.CreateDocument(ctx, doc, newAudit(doc, domain.AuditCreate, actor, doc.CreatedAt, creationChanges(doc)))
	if errors.Is(err, apperrors.ErrConflict) {
		return duplicateNumberError(number)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to create document", slog.String("document_number", number))
		return fmt.Errorf("failed to create document: %w", err)
	}
	return nil
}

// createWithNextNumber issues the next number of the series, retrying when a
// concurrent writer takes it first.
func (s *documentService) createWithNextNumber(ctx context.Context, doc *domain.Document, actor domain.Actor) error {
	for attempt := 1; attempt <= s.numberingAttempts; attempt++ {
		number, err := s.NextDocumentNumber(ctx, doc.Type)
		if err != nil {
			return err
		}
		doc.DocumentNumber = number
		err = s.documentRepo.CreateDocument(ctx, doc, newAudit(doc, domain.AuditCreate, actor, doc.CreatedAt, creationChanges(doc)))
		if err == nil {
			return nil
		}
		if !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to create document", slog.String("document_number", number))
			return fmt.Errorf("failed to create document: %w", err)
		}
		s.LogWarn(ctx, "Document number taken concurrently, retrying",
			slog.String("document_number", number),
			slog.Int("attempt", attempt))
	}
	doc.DocumentNumber = ""
	return fmt.Errorf("%w: could not assign a %s document number after %d attempts", apperrors.ErrConflict, doc.Type.Prefix(), s.numberingAttempts)
}

func (s *documentService) UpdateDocument(ctx context.Context, documentID int64, req dto.UpdateDocumentRequest, actor domain.Actor) (*domain.Document, error) {
	if err := s.RequireAdmin(ctx, actor, "update documents"); err != nil {
		return nil, err
	}
	doc, err := s.documentRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if doc.Status == domain.StatusVoid {
		return nil, apperrors.NewFieldError(apperrors.ErrValidation, "status", string(doc.Status), "void documents cannot be edited")
	}

	date, err := dto.ParseDate("documentDate", req.DocumentDate)
	if err != nil {
		return nil, err
	}
	movements := dto.ToDomainMovements(req.Movements)
	if err := doc.Type.ValidateMovements(movements); err != nil {
		return nil, err
	}

	number := doc.DocumentNumber
	if req.DocumentNumber != nil && strings.TrimSpace(*req.DocumentNumber) != "" {
		number, err = domain.NormalizeDocumentNumber(doc.Type, *req.DocumentNumber)
		if err != nil {
			return nil, err
		}
		if number != doc.DocumentNumber {
			if err := s.ensureNumberAvailable(ctx, number); err != nil {
				return nil, err
			}
		}
	}

	changes := map[string]any{}
	if number != doc.DocumentNumber {
		changes["documentNumber"] = map[string]any{"old": doc.DocumentNumber, "new": number}
	}
	if !date.Equal(doc.DocumentDate) {
		changes["documentDate"] = map[string]any{"old": doc.DocumentDate.Format(dto.DateLayout), "new": date.Format(dto.DateLayout)}
	}
	changes["movements"] = map[string]any{"old": movementSummary(doc.Movements), "new": movementSummary(movements)}

	doc.DocumentNumber = number
	doc.DocumentDate = date
	doc.Movements = movements
	doc.LastUpdatedAt = s.now()
	doc.LastUpdatedBy = actor.UserID

	err = s.documentRepo.ReplaceDocument(ctx, doc, newAudit(doc, domain.AuditUpdate, actor, doc.LastUpdatedAt, changes))
	if errors.Is(err, apperrors.ErrConflict) {
		return nil, duplicateNumberError(number)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to update document", slog.Int64("document_id", documentID))
		return nil, fmt.Errorf("failed to update document: %w", err)
	}

	s.LogInfo(ctx, "Document updated", slog.String("document_number", doc.DocumentNumber), slog.String("user_id", actor.UserID))
	return doc, nil
}

func (s *documentService) DeleteDocument(ctx context.Context, documentID int64, actor domain.Actor) (*domain.DeletedDocumentSummary, error) {
	if err := s.RequireAdmin(ctx, actor, "delete documents"); err != nil {
		return nil, err
	}
	doc, err := s.documentRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return nil, err
	}

	changes := map[string]any{
		"customerAccount": doc.CustomerAccount,
		"documentDate":    doc.DocumentDate.Format(dto.DateLayout),
		"status":          string(doc.Status),
		"movements":       movementSummary(doc.Movements),
	}
	if err := s.documentRepo.DeleteDocument(ctx, documentID, newAudit(doc, domain.AuditDelete, actor, s.now(), changes)); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to delete document", slog.Int64("document_id", documentID))
		return nil, fmt.Errorf("failed to delete document: %w", err)
	}

	s.LogInfo(ctx, "Document deleted", slog.String("document_number", doc.DocumentNumber), slog.String("user_id", actor.UserID))
	return &domain.DeletedDocumentSummary{
		DocumentID:      doc.DocumentID,
		DocumentNumber:  doc.DocumentNumber,
		CustomerAccount: doc.CustomerAccount,
	}, nil
}

func (s *documentService) VoidDocument(ctx context.Context, documentID int64, reason string, actor domain.Actor) (*domain.Document, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, apperrors.NewFieldError(apperrors.ErrValidation, "reason", "", "a reason is required to void a document")
	}
	doc, err := s.documentRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if !doc.Status.CanVoid() {
		return nil, apperrors.NewFieldError(apperrors.ErrValidation, "status", string(doc.Status), "document cannot be voided in its current status")
	}

	now := s.now()
	changes := map[string]any{
		"status": map[string]any{"old": string(doc.Status), "new": string(domain.StatusVoid)},
		"reason": reason,
	}
	doc.Status = domain.StatusVoid
	doc.VoidReason = &reason
	doc.VoidDate = &now
	doc.VoidBy = &actor.UserID
	doc.LastUpdatedAt = now
	doc.LastUpdatedBy = actor.UserID

	if err := s.documentRepo.UpdateDocumentStatus(ctx, *doc, newAudit(doc, domain.AuditVoid, actor, now, changes)); err != nil {
		s.LogError(ctx, err, "Failed to void document", slog.Int64("document_id", documentID))
		return nil, fmt.Errorf("failed to void document: %w", err)
	}

	s.LogInfo(ctx, "Document voided", slog.String("document_number", doc.DocumentNumber), slog.String("user_id", actor.UserID))
	return doc, nil
}

func (s *documentService) ensureNumberAvailable(ctx context.Context, number string) error {
	exists, err := s.documentRepo.DocumentNumberExists(ctx, number)
	if err != nil {
		return fmt.Errorf("failed to check document number %s: %w", number, err)
	}
	if exists {
		return duplicateNumberError(number)
	}
	return nil
}

func duplicateNumberError(number string) error {
	return apperrors.NewFieldError(apperrors.ErrDuplicate, "documentNumber", number, "this document number already exists")
}

func newAudit(doc *domain.Document, action domain.AuditAction, actor domain.Actor, at time.Time, changes map[string]any) domain.DocumentAudit {
	audit := domain.DocumentAudit{
		DocumentNumber: doc.DocumentNumber,
		Action:         action,
		UserID:         actor.UserID,
		Timestamp:      at,
		Changes:        changes,
	}
	if doc.DocumentID != 0 {
		id := doc.DocumentID
		audit.DocumentID = &id
	}
	return audit
}

func creationChanges(doc *domain.Document) map[string]any {
	return map[string]any{
		"documentType":    doc.Type.Prefix(),
		"documentDate":    doc.DocumentDate.Format(dto.DateLayout),
		"customerAccount": doc.CustomerAccount,
		"movements":       movementSummary(doc.Movements),
	}
}

func movementSummary(movements []domain.CylinderMovement) []map[string]any {
	out := make([]map[string]any, len(movements))
	for i, m := range movements {
		entry := map[string]any{"direction": string(m.Direction), "quantity": m.Quantity}
		if m.ItemCode != nil {
			entry["itemCode"] = *m.ItemCode
		}
		out[i] = entry
	}
	return out
}
