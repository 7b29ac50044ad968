package domain

import "time"

// DocumentStatus indicates the lifecycle state of a document.
type DocumentStatus string

const (
	StatusDraft       DocumentStatus = "DRAFT"
	StatusActive      DocumentStatus = "ACTIVE"
	StatusVoid        DocumentStatus = "VOID"
	StatusPendingSync DocumentStatus = "PENDING_SYNC"
	StatusSynced      DocumentStatus = "SYNCED"
)

// IsValid reports whether s is a known status.
func (s DocumentStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusVoid, StatusPendingSync, StatusSynced:
		return true
	}
	return false
}

// CanVoid reports whether a document in status s may be voided.
// Drafts were never issued and VOID is terminal.
func (s DocumentStatus) CanVoid() bool {
	switch s {
	case StatusActive, StatusPendingSync, StatusSynced:
		return true
	}
	return false
}

// CanSyncTo reports whether the sync collaborator may move a document from s to next.
// Allowed: ACTIVE <-> PENDING_SYNC <-> SYNCED.
func (s DocumentStatus) CanSyncTo(next DocumentStatus) bool {
	switch s {
	case StatusActive:
		return next == StatusPendingSync
	case StatusPendingSync:
		return next == StatusActive || next == StatusSynced
	case StatusSynced:
		return next == StatusPendingSync
	}
	return false
}

// Document is an invoice or return slip with its movements.
type Document struct {
	DocumentID      int64              `json:"documentID"`
	DocumentNumber  string             `json:"documentNumber"`
	Type            DocumentType       `json:"-"`
	DocumentDate    time.Time          `json:"documentDate"`
	CustomerAccount string             `json:"customerAccount"`
	CustomerName    string             `json:"customerName,omitempty"`
	Status          DocumentStatus     `json:"status"`
	VoidReason      *string            `json:"voidReason,omitempty"`
	VoidDate        *time.Time         `json:"voidDate,omitempty"`
	VoidBy          *string            `json:"voidBy,omitempty"`
	Movements       []CylinderMovement `json:"movements"`
	AuditFields
}

// Totals returns the received and returned quantities on the document.
func (d Document) Totals() (received, returned int) {
	return SumByDirection(d.Movements)
}

// DeletedDocumentSummary describes a document removed through the delete path.
type DeletedDocumentSummary struct {
	DocumentID      int64  `json:"documentID"`
	DocumentNumber  string `json:"documentNumber"`
	CustomerAccount string `json:"customerAccount"`
}

// DocumentListFilter narrows a customer's document listing.
type DocumentListFilter struct {
	Month     *time.Time // Any date inside the wanted calendar month
	Limit     int
	NextToken *string
}
