package services

import (
	"context"

	"github.com/SscSPs/cylinder_holdings/internal/core/domain"
	"github.com/SscSPs/cylinder_holdings/internal/dto"
)

// DocumentNumberingSvc issues and checks document numbers
type DocumentNumberingSvc interface {
	// NextDocumentNumber returns the number the next document of the type would receive.
	NextDocumentNumber(ctx context.Context, docType domain.DocumentType) (string, error)

	// DocumentNumberExists normalizes the input for the type and reports whether it is taken.
	DocumentNumberExists(ctx context.Context, docType domain.DocumentType, input string) (string, bool, error)
}

// DocumentReaderSvc defines read operations for documents
type DocumentReaderSvc interface {
	// GetDocumentByNumber retrieves a document with its movements.
	GetDocumentByNumber(ctx context.Context, documentNumber string) (*domain.Document, error)

	// ListCustomerDocuments lists a customer's documents newest first.
	ListCustomerDocuments(ctx context.Context, accountNumber string, params dto.ListDocumentsParams) ([]domain.Document, *string, error)
}

// DocumentLifecycleSvc defines the mutations of a document's life
type DocumentLifecycleSvc interface {
	// CreateDocument records a document and its movements.
	CreateDocument(ctx context.Context, req dto.CreateDocumentRequest, actor domain.Actor) (*domain.Document, error)

	// UpdateDocument replaces the date and whole movement set of a document. Admin only.
	UpdateDocument(ctx context.Context, documentID int64, req dto.UpdateDocumentRequest, actor domain.Actor) (*domain.Document, error)

	// DeleteDocument removes a document and its movements. Admin only.
	DeleteDocument(ctx context.Context, documentID int64, actor domain.Actor) (*domain.DeletedDocumentSummary, error)

	// VoidDocument marks a document VOID, keeping it and its movements.
	VoidDocument(ctx context.Context, documentID int64, reason string, actor domain.Actor) (*domain.Document, error)
}

// DocumentSvcFacade combines all document-related service interfaces
type DocumentSvcFacade interface {
	DocumentNumberingSvc
	DocumentReaderSvc
	DocumentLifecycleSvc
}
