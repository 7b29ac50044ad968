package domain

import "time"

// AuditAction is the kind of change recorded for a document.
type AuditAction string

const (
	AuditCreate AuditAction = "CREATE"
	AuditUpdate AuditAction = "UPDATE"
	AuditDelete AuditAction = "DELETE"
	AuditVoid   AuditAction = "VOID"
	AuditSync   AuditAction = "SYNC"
)

// DocumentAudit is an append-only record of a change to a document.
// DocumentID is nil once the document has been deleted.
type DocumentAudit struct {
	AuditID        int64          `json:"auditID"`
	DocumentID     *int64         `json:"documentID,omitempty"`
	DocumentNumber string         `json:"documentNumber"`
	Action         AuditAction    `json:"action"`
	UserID         string         `json:"userID"`
	Timestamp      time.Time      `json:"timestamp"`
	Changes        map[string]any `json:"changes,omitempty"`
}
