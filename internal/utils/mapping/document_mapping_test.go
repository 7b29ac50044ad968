package mapping

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/cylinder_holdings/internal/apperrors"
	"github.com/SscSPs/cylinder_holdings/internal/core/domain"
	"github.com/SscSPs/cylinder_holdings/internal/models"
)

func TestToDomainDocument(t *testing.T) {
	code := "CYL45"
	row := models.Document{
		DocumentID:      7,
		DocumentNumber:  "NR000003",
		DocumentType:    "NR",
		DocumentDate:    time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		CustomerAccount: "000123",
		Status:          "ACTIVE",
	}
	movements := []models.CylinderMovement{{MovementID: 11, DocumentID: 7, Direction: "E", Quantity: 4, ItemCode: &code}}

	doc, err := ToDomainDocument(row, movements)
	require.NoError(t, err)
	assert.Equal(t, domain.ReturnSlip, doc.Type)
	assert.Equal(t, domain.StatusActive, doc.Status)
	require.Len(t, doc.Movements, 1)
	assert.Equal(t, domain.EmptyReturn, doc.Movements[0].Direction)
	assert.Equal(t, &code, doc.Movements[0].ItemCode)
}

func TestToDomainDocument_UnknownType(t *testing.T) {
	_, err := ToDomainDocument(models.Document{DocumentNumber: "XX000001", DocumentType: "XX"}, nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidFormat)
}

func TestToModelDocumentAudit(t *testing.T) {
	id := int64(3)
	audit, err := ToModelDocumentAudit(domain.DocumentAudit{
		DocumentID:     &id,
		DocumentNumber: "IN000003",
		Action:         domain.AuditVoid,
		UserID:         "u1",
		Changes:        map[string]any{"reason": "typo"},
	})
	require.NoError(t, err)
	assert.Equal(t, "VOID", audit.Action)
	assert.JSONEq(t, `{"reason":"typo"}`, string(audit.Changes))
}

func TestToDomainAuditFields_NormalizesToUTC(t *testing.T) {
	zone := time.FixedZone("UTC+2", 2*60*60)
	created := time.Date(2024, 2, 1, 10, 0, 0, 0, zone)

	fields := ToDomainAuditFields(models.AuditFields{CreatedAt: created, CreatedBy: "u-1", LastUpdatedAt: created})

	assert.Equal(t, time.UTC, fields.CreatedAt.Location())
	assert.True(t, created.Equal(fields.CreatedAt))
	assert.Equal(t, 8, fields.LastUpdatedAt.Hour())
}
