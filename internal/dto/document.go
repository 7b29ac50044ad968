package dto

import (
	"time"

	"github.com/SscSPs/cylinder_holdings/internal/core/domain"
)

// MovementRequest is one received or returned quantity on a document.
type MovementRequest struct {
	Direction string  `json:"direction" binding:"required,oneof=R E"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	ItemCode  *string `json:"itemCode,omitempty" binding:"omitempty,max=50"`
}

// CreateDocumentRequest defines the data needed to record a new document.
// DocumentNumber is optional; when omitted the next number of the type is issued.
type CreateDocumentRequest struct {
	DocumentType    string            `json:"documentType" binding:"required,oneof=IN NR"`
	DocumentNumber  *string           `json:"documentNumber,omitempty"`
	DocumentDate    string            `json:"documentDate" binding:"required"` // YYYY-MM-DD
	CustomerAccount string            `json:"customerAccount" binding:"required,accountnumber"`
	Movements       []MovementRequest `json:"movements" binding:"dive"`
}

// UpdateDocumentRequest replaces a document's date and movement set.
type UpdateDocumentRequest struct {
	DocumentNumber *string           `json:"documentNumber,omitempty"`
	DocumentDate   string            `json:"documentDate" binding:"required"` // YYYY-MM-DD
	Movements      []MovementRequest `json:"movements" binding:"dive"`
}

// VoidDocumentRequest carries the reason for voiding a document.
type VoidDocumentRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

// ListDocumentsParams defines query parameters for listing a customer's documents.
type ListDocumentsParams struct {
	Month     string  `form:"month"` // YYYY-MM
	Limit     int     `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// CheckNumberParams defines query parameters for the number availability check.
type CheckNumberParams struct {
	DocumentType   string `form:"documentType" binding:"required,oneof=IN NR"`
	DocumentNumber string `form:"documentNumber" binding:"required"`
}

// MovementResponse defines the data returned for a movement.
type MovementResponse struct {
	MovementID int64   `json:"movementID"`
	Direction  string  `json:"direction"`
	Label      string  `json:"label"`
	Quantity   int     `json:"quantity"`
	ItemCode   *string `json:"itemCode,omitempty"`
}

// DocumentResponse defines the data returned for a document.
type DocumentResponse struct {
	DocumentID      int64              `json:"documentID"`
	DocumentNumber  string             `json:"documentNumber"`
	DocumentType    string             `json:"documentType"`
	TypeLabel       string             `json:"typeLabel"`
	DocumentDate    string             `json:"documentDate"`
	CustomerAccount string             `json:"customerAccount"`
	CustomerName    string             `json:"customerName,omitempty"`
	Status          string             `json:"status"`
	VoidReason      *string            `json:"voidReason,omitempty"`
	VoidDate        *time.Time         `json:"voidDate,omitempty"`
	VoidBy          *string            `json:"voidBy,omitempty"`
	TotalReceived   int                `json:"totalReceived"`
	TotalReturned   int                `json:"totalReturned"`
	Movements       []MovementResponse `json:"movements"`
	CreatedAt       time.Time          `json:"createdAt"`
	CreatedBy       string             `json:"createdBy"`
	LastUpdatedAt   time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy   string             `json:"lastUpdatedBy"`
}

// ListDocumentsResponse wraps a page of documents.
type ListDocumentsResponse struct {
	Documents []DocumentResponse `json:"documents"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// DeleteDocumentResponse summarises a deleted document.
type DeleteDocumentResponse struct {
	DocumentID      int64  `json:"documentID"`
	DocumentNumber  string `json:"documentNumber"`
	CustomerAccount string `json:"customerAccount"`
}

// CheckNumberResponse reports whether a normalized number is taken.
type CheckNumberResponse struct {
	DocumentNumber string `json:"documentNumber"`
	Exists         bool   `json:"exists"`
}

// ToDomainMovements converts request movements to domain movements.
func ToDomainMovements(reqs []MovementRequest) []domain.CylinderMovement {
	movements := make([]domain.CylinderMovement, len(reqs))
	for i, m := range reqs {
		movements[i] = domain.CylinderMovement{
			Direction: domain.MovementDirection(m.Direction),
			Quantity:  m.Quantity,
			ItemCode:  m.ItemCode,
		}
	}
	return movements
}

// ToDocumentResponse converts a domain.Document to DocumentResponse DTO.
func ToDocumentResponse(d *domain.Document) DocumentResponse {
	received, returned := d.Totals()
	resp := DocumentResponse{
		DocumentID:      d.DocumentID,
		DocumentNumber:  d.DocumentNumber,
		DocumentDate:    d.DocumentDate.Format(DateLayout),
		CustomerAccount: d.CustomerAccount,
		CustomerName:    d.CustomerName,
		Status:          string(d.Status),
		VoidReason:      d.VoidReason,
		VoidDate:        d.VoidDate,
		VoidBy:          d.VoidBy,
		TotalReceived:   received,
		TotalReturned:   returned,
		Movements:       make([]MovementResponse, len(d.Movements)),
		CreatedAt:       d.CreatedAt,
		CreatedBy:       d.CreatedBy,
		LastUpdatedAt:   d.LastUpdatedAt,
		LastUpdatedBy:   d.LastUpdatedBy,
	}
	if d.Type != nil {
		resp.DocumentType = d.Type.Prefix()
		resp.TypeLabel = d.Type.Label()
	}
	for i, m := range d.Movements {
		resp.Movements[i] = MovementResponse{
			MovementID: m.MovementID,
			Direction:  string(m.Direction),
			Label:      m.Direction.Label(),
			Quantity:   m.Quantity,
			ItemCode:   m.ItemCode,
		}
	}
	return resp
}

// ToDocumentResponses converts a slice of domain.Document to []DocumentResponse.
func ToDocumentResponses(docs []domain.Document) []DocumentResponse {
	responses := make([]DocumentResponse, len(docs))
	for i := range docs {
		responses[i] = ToDocumentResponse(&docs[i])
	}
	return responses
}
