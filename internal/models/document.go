package models

import "time"

// Document is a row of the documents table.
type Document struct {
	DocumentID      int64      `db:"document_id"`
	DocumentNumber  string     `db:"document_number"`
	DocumentType    string     `db:"document_type"` // IN or NR
	DocumentDate    time.Time  `db:"document_date"`
	CustomerAccount string     `db:"customer_account"`
	CustomerName    string     `db:"customer_name"` // joined from customers
	Status          string     `db:"status"`
	VoidReason      *string    `db:"void_reason"`
	VoidDate        *time.Time `db:"void_date"`
	VoidBy          *string    `db:"void_by"`
	AuditFields
}

// CylinderMovement is a row of the cylinder_movements table.
type CylinderMovement struct {
	MovementID int64   `db:"movement_id"`
	DocumentID int64   `db:"document_id"`
	Direction  string  `db:"direction"`
	Quantity   int     `db:"quantity"`
	ItemCode   *string `db:"item_code"`
}

// DocumentAudit is a row of the document_audits table. Changes holds JSON.
type DocumentAudit struct {
	AuditID        int64     `db:"audit_id"`
	DocumentID     *int64    `db:"document_id"`
	DocumentNumber string    `db:"document_number"`
	Action         string    `db:"action"`
	UserID         string    `db:"user_id"`
	Timestamp      time.Time `db:"timestamp"`
	Changes        []byte    `db:"changes"`
}

// LedgerEntry is one row of the movements-with-documents ledger read.
type LedgerEntry struct {
	MovementID        int64     `db:"movement_id"`
	DocumentID        int64     `db:"document_id"`
	DocumentNumber    string    `db:"document_number"`
	DocumentType      string    `db:"document_type"`
	DocumentDate      time.Time `db:"document_date"`
	DocumentCreatedAt time.Time `db:"created_at"`
	DocumentStatus    string    `db:"status"`
	CustomerAccount   string    `db:"customer_account"`
	Direction         string    `db:"direction"`
	Quantity          int       `db:"quantity"`
}
