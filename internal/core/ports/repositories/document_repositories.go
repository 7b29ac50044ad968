package repositories

import (
	"context"

	"github.com/SscSPs/cylinder_holdings/internal/core/domain"
)

// DocumentReader defines read operations for documents and their movements
type DocumentReader interface {
	// FindDocumentByID retrieves a document with its movements.
	FindDocumentByID(ctx context.Context, documentID int64) (*domain.Document, error)

	// FindDocumentByNumber retrieves a document with its movements by its unique number.
	FindDocumentByNumber(ctx context.Context, documentNumber string) (*domain.Document, error)

	// DocumentNumberExists reports whether any document carries the number.
	DocumentNumberExists(ctx context.Context, documentNumber string) (bool, error)

	// FindLatestDocumentNumber returns the greatest number issued for the type, or "" when none exists.
	FindLatestDocumentNumber(ctx context.Context, docType domain.DocumentType) (string, error)

	// ListDocumentsByCustomer lists a customer's documents newest first using token-based pagination.
	// It returns the documents, a token for the next page, and an error.
	ListDocumentsByCustomer(ctx context.Context, accountNumber string, filter domain.DocumentListFilter) ([]domain.Document, *string, error)

	// FindDocumentNumbers returns which of the given numbers are already recorded.
	FindDocumentNumbers(ctx context.Context, documentNumbers []string) (map[string]bool, error)
}

// DocumentWriter defines write operations. Each call runs in a single transaction
// that also appends the given audit record.
type DocumentWriter interface {
	// CreateDocument inserts the document and its movements, assigning their ids.
	// Returns ErrConflict when the document number is already taken.
	CreateDocument(ctx context.Context, doc *domain.Document, audit domain.DocumentAudit) error

	// ReplaceDocument updates the document header and replaces its whole movement set.
	ReplaceDocument(ctx context.Context, doc *domain.Document, audit domain.DocumentAudit) error

	// DeleteDocument removes a document; its movements go with it.
	DeleteDocument(ctx context.Context, documentID int64, audit domain.DocumentAudit) error

	// UpdateDocumentStatus persists status and void fields of the document.
	UpdateDocumentStatus(ctx context.Context, doc domain.Document, audit domain.DocumentAudit) error
}

// DocumentRepositoryFacade combines all document-related repository interfaces
type DocumentRepositoryFacade interface {
	DocumentReader
	DocumentWriter
}
