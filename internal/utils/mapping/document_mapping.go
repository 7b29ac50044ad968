package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/cylinder_holdings/internal/core/domain"
	"github.com/SscSPs/cylinder_holdings/internal/models"
)

// ToModelDocument converts a domain Document to a model Document
func ToModelDocument(d domain.Document) models.Document {
	return models.Document{
		DocumentID:      d.DocumentID,
		DocumentNumber:  d.DocumentNumber,
		DocumentType:    d.Type.Prefix(),
		DocumentDate:    domain.DateOnly(d.DocumentDate),
		CustomerAccount: d.CustomerAccount,
		CustomerName:    d.CustomerName,
		Status:          string(d.Status),
		VoidReason:      d.VoidReason,
		VoidDate:        d.VoidDate,
		VoidBy:          d.VoidBy,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDocument converts a model Document and its movements to a domain Document
func ToDomainDocument(m models.Document, movements []models.CylinderMovement) (domain.Document, error) {
	docType, err := domain.ParseDocumentType(m.DocumentType)
	if err != nil {
		return domain.Document{}, fmt.Errorf("document %s: %w", m.DocumentNumber, err)
	}
	d := domain.Document{
		DocumentID:      m.DocumentID,
		DocumentNumber:  m.DocumentNumber,
		Type:            docType,
		DocumentDate:    domain.DateOnly(m.DocumentDate),
		CustomerAccount: m.CustomerAccount,
		CustomerName:    m.CustomerName,
		Status:          domain.DocumentStatus(m.Status),
		VoidReason:      m.VoidReason,
		VoidDate:        m.VoidDate,
		VoidBy:          m.VoidBy,
		Movements:       make([]domain.CylinderMovement, len(movements)),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
	for i, mv := range movements {
		d.Movements[i] = ToDomainMovement(mv)
	}
	return d, nil
}

// ToModelMovement converts a domain CylinderMovement to a model CylinderMovement
func ToModelMovement(d domain.CylinderMovement) models.CylinderMovement {
	return models.CylinderMovement{
		MovementID: d.MovementID,
		DocumentID: d.DocumentID,
		Direction:  string(d.Direction),
		Quantity:   d.Quantity,
		ItemCode:   d.ItemCode,
	}
}

// ToDomainMovement converts a model CylinderMovement to a domain CylinderMovement
func ToDomainMovement(m models.CylinderMovement) domain.CylinderMovement {
	return domain.CylinderMovement{
		MovementID: m.MovementID,
		DocumentID: m.DocumentID,
		Direction:  domain.MovementDirection(m.Direction),
		Quantity:   m.Quantity,
		ItemCode:   m.ItemCode,
	}
}

// ToModelDocumentAudit converts a domain DocumentAudit to its row, encoding the changes as JSON
func ToModelDocumentAudit(d domain.DocumentAudit) (models.DocumentAudit, error) {
	changes, err := json.Marshal(d.Changes)
	if err != nil {
		return models.DocumentAudit{}, fmt.Errorf("failed to encode audit changes: %w", err)
	}
	return models.DocumentAudit{
		AuditID:        d.AuditID,
		DocumentID:     d.DocumentID,
		DocumentNumber: d.DocumentNumber,
		Action:         string(d.Action),
		UserID:         d.UserID,
		Timestamp:      d.Timestamp,
		Changes:        changes,
	}, nil
}

// ToDomainLedgerEntry converts a ledger row to a domain LedgerEntry
func ToDomainLedgerEntry(m models.LedgerEntry) (domain.LedgerEntry, error) {
	docType, err := domain.ParseDocumentType(m.DocumentType)
	if err != nil {
		return domain.LedgerEntry{}, fmt.Errorf("document %s: %w", m.DocumentNumber, err)
	}
	return domain.LedgerEntry{
		MovementID:        m.MovementID,
		DocumentID:        m.DocumentID,
		DocumentNumber:    m.DocumentNumber,
		DocumentType:      docType,
		DocumentDate:      domain.DateOnly(m.DocumentDate),
		DocumentCreatedAt: m.DocumentCreatedAt,
		DocumentStatus:    domain.DocumentStatus(m.DocumentStatus),
		CustomerAccount:   m.CustomerAccount,
		Direction:         domain.MovementDirection(m.Direction),
		Quantity:          m.Quantity,
	}, nil
}
